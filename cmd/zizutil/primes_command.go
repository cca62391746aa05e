package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"zizutil/internal/primes"
)

func newPrimesCommand() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:         "primes <count>",
		Short:       "List the first primes",
		Args:        cobra.ExactArgs(1),
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(strings.TrimSpace(args[0]))
			if err != nil {
				return fmt.Errorf("invalid count %q", args[0])
			}
			list, err := primes.FirstN(n)
			if err != nil {
				return err
			}
			if jsonOutput {
				return writeJSON(cmd, list)
			}
			rows := make([][]string, 0, len(list))
			for i, p := range list {
				rows = append(rows, []string{strconv.Itoa(i + 1), strconv.Itoa(p)})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"#", "Prime"}, rows, []columnAlignment{alignRight, alignRight}))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Print the primes as a JSON array")
	return cmd
}
