package main

import (
	root "github.com/cristianoliveira/staffview/cmd"
	"github.com/cristianoliveira/staffview/internal/view"
	"github.com/spf13/cobra"
)

// NewDepartmentsCmd creates the departments command with explicit dependencies.
func NewDepartmentsCmd(load recordLoader) *cobra.Command {
	if load == nil {
		panic("NewDepartmentsCmd: load dependency cannot be nil")
	}

	var outputFormat string

	departmentsCmd := &cobra.Command{
		Use:   "departments",
		Short: "Show headcount and growth per department",
		Long: `Show headcount and growth per department.

Counts cover the whole roster; list filters do not apply. The previous
period is estimated as 90% of the current headcount, rounded down.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			formatter, err := resolveFormatter(outputFormat, out)
			if err != nil {
				return err
			}
			records, err := load(cmd.Context())
			if err != nil {
				return err
			}
			return formatter.FormatDepartments(view.New(records).Departments(), out)
		},
	}

	departmentsCmd.Flags().StringVar(&outputFormat, "format", "", "Output format: table, minimal, json (default: output_format)")
	return departmentsCmd
}

func init() {
	root.RootCmd.AddCommand(NewDepartmentsCmd(loadConfiguredRecords))
}
