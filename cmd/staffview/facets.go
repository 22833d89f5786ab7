package main

import (
	"encoding/json"
	"fmt"
	"strings"

	root "github.com/cristianoliveira/staffview/cmd"
	"github.com/cristianoliveira/staffview/internal/domain"
	"github.com/cristianoliveira/staffview/internal/view"
	"github.com/spf13/cobra"
)

// NewFacetsCmd creates the facets command with explicit dependencies.
func NewFacetsCmd(load recordLoader) *cobra.Command {
	if load == nil {
		panic("NewFacetsCmd: load dependency cannot be nil")
	}

	var asJSON bool

	facetsCmd := &cobra.Command{
		Use:   "facets <field>",
		Short: "List the distinct values of a filter field",
		Long: `List the distinct values of a filter field, sorted.

FIELDS:
    department, status, gender, educationLevel, bloodType, maritalStatus`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			field, err := domain.ParseFilterField(args[0])
			if err != nil {
				return err
			}
			records, err := load(cmd.Context())
			if err != nil {
				return err
			}
			values, err := view.New(records).FacetValues(field)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				return json.NewEncoder(out).Encode(values)
			}
			if len(values) == 0 {
				return nil
			}
			_, err = fmt.Fprintln(out, strings.Join(values, "\n"))
			return err
		},
	}

	facetsCmd.Flags().BoolVar(&asJSON, "json", false, "Print the values as a JSON array")
	return facetsCmd
}

func init() {
	root.RootCmd.AddCommand(NewFacetsCmd(loadConfiguredRecords))
}
