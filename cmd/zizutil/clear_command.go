package main

import (
	"github.com/spf13/cobra"

	"zizutil/internal/term"
)

func newClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:         "clear",
		Short:       "Clear the terminal",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return term.Clear(cmd.OutOrStdout())
		},
	}
}
