package main

import (
	"os"

	"github.com/spf13/cobra"

	"tinysh/internal/console"
	"tinysh/internal/shell"
)

func NewRootCmd() *cobra.Command {
	var (
		line           string
		foregroundOnly bool
	)

	root := &cobra.Command{
		Use:           "tinysh",
		Short:         "A small interactive shell with background job control",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := shell.New(os.Stdin, console.New(os.Stdout, os.Stderr))
			if foregroundOnly {
				s.Jobs().SetForegroundOnly(true)
			}
			if cmd.Flags().Changed("command") {
				return s.RunLine(line)
			}
			return s.Run()
		},
	}

	root.Flags().StringVarP(&line, "command", "c", "", "run a single command line and exit")
	root.Flags().BoolVar(&foregroundOnly, "foreground-only", false, "start with the background marker ignored")

	return root
}
