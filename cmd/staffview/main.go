package main

import (
	"context"
	"os"
	"os/signal"

	root "github.com/cristianoliveira/staffview/cmd"
	"github.com/cristianoliveira/staffview/internal/notice"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], root.Execute)
	stop()
	os.Exit(code)
}

// run executes the root command with args and returns the process exit code.
func run(ctx context.Context, args []string, execute func(context.Context) error) int {
	root.RootCmd.SetArgs(args)
	if err := execute(ctx); err != nil {
		notice.NewCLIHandler(nil).Error(err.Error())
		return 1
	}
	return 0
}
