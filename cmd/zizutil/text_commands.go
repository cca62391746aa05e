package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"zizutil/internal/textutil"
)

func newRomanCommand() *cobra.Command {
	return &cobra.Command{
		Use:         "roman <number>...",
		Short:       "Convert integers to Roman numerals",
		Args:        cobra.MinimumNArgs(1),
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, arg := range args {
				n, err := strconv.Atoi(strings.TrimSpace(arg))
				if err != nil {
					return fmt.Errorf("invalid number %q", arg)
				}
				if n < 1 {
					return fmt.Errorf("%d has no Roman numeral form", n)
				}
				fmt.Fprintln(out, textutil.ToRoman(n))
			}
			return nil
		},
	}
}

func newIsIntCommand() *cobra.Command {
	return &cobra.Command{
		Use:         "isint <text>...",
		Short:       "Report whether each argument is an integer literal",
		Args:        cobra.MinimumNArgs(1),
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, arg := range args {
				fmt.Fprintf(out, "%s: %s\n", arg, yesNo(textutil.IsInt(arg)))
			}
			return nil
		},
	}
}

func newMenuCommand(ctx *commandContext) *cobra.Command {
	var opts textutil.MenuOptions
	var start int
	var keysOf string

	cmd := &cobra.Command{
		Use:   "menu [option]...",
		Short: "Format options as a numbered menu",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if !flags.Changed("start") {
				start = cfg.Menu.Start
			}
			opts.Start = &start
			if !flags.Changed("roman") {
				opts.Roman = cfg.Menu.Roman
			}
			if !flags.Changed("title") {
				opts.TitleCase = cfg.Menu.TitleCase
			}
			if !flags.Changed("no-dot") {
				opts.NoTrailingDot = cfg.Menu.NoTrailingDot
			}
			if opts.Roman && start < 1 {
				return fmt.Errorf("--start must be at least 1 with --roman, got %d", start)
			}

			if strings.TrimSpace(keysOf) != "" {
				doc, err := readDocumentFile(keysOf)
				if err != nil {
					return err
				}
				if doc.Len()+len(args) == 0 {
					return errors.New("at least one option is required")
				}
				fmt.Fprintln(cmd.OutOrStdout(), textutil.MenuFromKeys(doc, opts, args...))
				return nil
			}
			if len(args) == 0 {
				return errors.New("at least one option is required")
			}

			fmt.Fprintln(cmd.OutOrStdout(), textutil.Menu(args, opts))
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Prefix, "prefix", "", "Text placed before each option")
	cmd.Flags().StringVar(&opts.Suffix, "suffix", "", "Text placed after each option")
	cmd.Flags().IntVar(&start, "start", 1, "Number of the first option")
	cmd.Flags().BoolVar(&opts.NoTrailingDot, "no-dot", false, "Do not end lines with a dot")
	cmd.Flags().BoolVar(&opts.Roman, "roman", false, "Number options with Roman numerals")
	cmd.Flags().BoolVar(&opts.TitleCase, "title", false, "Title-case each option")
	cmd.Flags().StringVar(&keysOf, "keys-of", "", "Use the top-level keys of a JSON file as options")
	return cmd
}
