package main

import (
	"encoding/json"
	"fmt"

	root "github.com/cristianoliveira/staffview/cmd"
	"github.com/cristianoliveira/staffview/internal/version"
	"github.com/spf13/cobra"
)

// NewVersionCmd creates the version command.
func NewVersionCmd() *cobra.Command {
	var asJSON bool

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Show the current version of staffview.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if asJSON {
				return json.NewEncoder(cmd.OutOrStdout()).Encode(version.Current())
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "staffview version %s\n", version.String())
			return err
		},
	}

	versionCmd.Flags().BoolVar(&asJSON, "json", false, "Print build information as JSON")
	return versionCmd
}

func init() {
	root.RootCmd.AddCommand(NewVersionCmd())
}
