package main

import (
	root "github.com/cristianoliveira/staffview/cmd"
	"github.com/cristianoliveira/staffview/internal/tui/app"
	"github.com/spf13/cobra"
)

const tuiCommandLong = `Interactive terminal UI for the roster.

USAGE:
    staffview tui [OPTIONS]

Accepts the same view flags as list for the initial view.

KEY BINDINGS:
    j/k, ↑/↓    Move the cursor
    n/p, →/←    Next/previous page
    /           Search (applied while typing, ESC clears)
    :           Command mode (Tab completes the command name)
    s           Next sort field
    o           Toggle sort order
    +           Next page size
    x           Clear all filters
    d           Department headcounts
    Enter       Employee details
    Ctrl+R      Reload the source
    q           Quit

COMMANDS:
    department|gender|education|blood|marital [value]
    status active|inactive|all
    salary <min|-> [max|-]     hired <from|-> [to|-]
    filter <field> [value]     search [term]     clear
    sort <field> [asc|desc]    size <n>          page <n>
    facets <field>             q`

// NewTUICmd creates the tui command with explicit dependencies.
func NewTUICmd(client app.Client) *cobra.Command {
	if client == nil {
		panic("NewTUICmd: client dependency cannot be nil")
	}

	var flags viewFlags

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "Interactive terminal UI for the roster",
		Long:  tuiCommandLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := flags.options()
			if err != nil {
				return err
			}
			records, err := client.LoadRecords(cmd.Context())
			if err != nil {
				return err
			}
			model, err := client.CreateModel(records, opts...)
			if err != nil {
				return err
			}
			return client.RunProgram(model)
		},
	}

	registerViewFlags(tuiCmd, &flags)
	return tuiCmd
}

func init() {
	root.RootCmd.AddCommand(NewTUICmd(tuiClient))
}
