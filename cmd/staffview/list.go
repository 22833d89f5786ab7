package main

import (
	root "github.com/cristianoliveira/staffview/cmd"
	"github.com/cristianoliveira/staffview/internal/logging"
	"github.com/cristianoliveira/staffview/internal/view"
	"github.com/spf13/cobra"
)

const listCommandLong = `List employees with filters, sorting and pagination.

USAGE:
    staffview list [OPTIONS]

Filters combine with AND. Unset flags leave the rule inactive.
Changing any filter or the page size starts over at page 1; pages past the
end show the last page.

EXAMPLES:
    staffview list --department Engineering --status active
    staffview list --sort salary --order desc --size 20 --page 2
    staffview list --hired-from 2020-01-01 --min-salary 50000 --format json`

// NewListCmd creates the list command with explicit dependencies.
func NewListCmd(load recordLoader) *cobra.Command {
	if load == nil {
		panic("NewListCmd: load dependency cannot be nil")
	}

	var flags viewFlags
	var outputFormat string

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List employees with filters and pagination",
		Long:  listCommandLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := flags.options()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			formatter, err := resolveFormatter(outputFormat, out)
			if err != nil {
				return err
			}

			records, err := load(cmd.Context())
			if err != nil {
				return err
			}

			result := view.New(records, opts...).Result()
			logging.Info("list rendered",
				"records", len(records),
				"matched", result.Pagination.TotalCount,
				"page", result.Pagination.CurrentPage,
			)
			return formatter.FormatView(result, out)
		},
	}

	registerViewFlags(listCmd, &flags)
	listCmd.Flags().StringVar(&outputFormat, "format", "", "Output format: table, minimal, json (default: output_format)")
	return listCmd
}

func init() {
	root.RootCmd.AddCommand(NewListCmd(loadConfiguredRecords))
}
