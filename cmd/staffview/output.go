package main

import (
	"fmt"
	"io"

	root "github.com/cristianoliveira/staffview/cmd"
	"github.com/cristianoliveira/staffview/internal/config"
	"github.com/cristianoliveira/staffview/internal/format"
)

// resolveFormatter picks the formatter for the --format flag, falling back to
// the output_format and table_format settings when the flag is empty.
func resolveFormatter(flag string, w io.Writer) (format.Formatter, error) {
	var t format.FormatterType
	switch flag {
	case "":
		t = format.ParseFormatterType(config.Get("output_format", "table"), config.Get("table_format", "default"))
	case string(format.FormatterTypeTable), string(format.FormatterTypeMinimal), string(format.FormatterTypeJSON):
		t = format.FormatterType(flag)
	default:
		return nil, fmt.Errorf("invalid format: %s (must be table, minimal, json)", flag)
	}
	return format.NewFormatter(t, root.ColorEnabled(w)), nil
}
