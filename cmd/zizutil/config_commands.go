package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"zizutil/internal/config"
	"zizutil/internal/jsonconfig"
)

// locationFlags binds --dir and --name to a jsonconfig.Location.
type locationFlags struct {
	dir  string
	name string
}

func (l *locationFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&l.dir, "dir", "", "Directory holding the config file")
	cmd.Flags().StringVar(&l.name, "name", "", "Config file name")
	_ = cmd.MarkFlagRequired("dir")
	_ = cmd.MarkFlagRequired("name")
}

func (l *locationFlags) location() (jsonconfig.Location, error) {
	dir, err := config.ExpandPath(strings.TrimSpace(l.dir))
	if err != nil {
		return jsonconfig.Location{}, fmt.Errorf("resolve config directory: %w", err)
	}
	return jsonconfig.Location{Dir: dir, Name: strings.TrimSpace(l.name)}, nil
}

func registerReconcileFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("type-set-only", false, "Compare the set of value kinds instead of keys")
	cmd.Flags().Bool("backup", false, "Keep <file>.bak before replacing a drifted config")
	cmd.Flags().Bool("lock", false, "Hold <file>.lock while reconciling")
}

func newConfigCommand(ctx *commandContext) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "JSON config reconciliation and settings utilities",
	}

	configCmd.AddCommand(newConfigEnsureCommand(ctx))
	configCmd.AddCommand(newConfigPersistCommand(ctx))
	configCmd.AddCommand(newConfigShowCommand(ctx))
	configCmd.AddCommand(newConfigCheckCommand())
	configCmd.AddCommand(newConfigInitCommand())

	return configCmd
}

func newConfigEnsureCommand(ctx *commandContext) *cobra.Command {
	var loc locationFlags
	var defaultsPath string

	cmd := &cobra.Command{
		Use:   "ensure",
		Short: "Create or repair a config file so it matches the defaults",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			defaults, err := readDocumentFile(defaultsPath)
			if err != nil {
				return err
			}
			target, err := loc.location()
			if err != nil {
				return err
			}
			reconciler, err := ctx.reconciler(cmd)
			if err != nil {
				return err
			}
			state, err := reconciler.Ensure(defaults, target)
			if err != nil {
				return fmt.Errorf("ensure config: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", target.Path(), state)
			return nil
		},
	}

	loc.register(cmd)
	cmd.Flags().StringVar(&defaultsPath, "defaults", "", "JSON file holding the default config")
	_ = cmd.MarkFlagRequired("defaults")
	registerReconcileFlags(cmd)
	return cmd
}

func newConfigPersistCommand(ctx *commandContext) *cobra.Command {
	var loc locationFlags
	var defaultsPath string
	var currentPath string

	cmd := &cobra.Command{
		Use:   "persist",
		Short: "Write a config document, initializing the location if needed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			defaults, err := readDocumentFile(defaultsPath)
			if err != nil {
				return err
			}
			current, err := readDocumentFile(currentPath)
			if err != nil {
				return err
			}
			target, err := loc.location()
			if err != nil {
				return err
			}
			reconciler, err := ctx.reconciler(cmd)
			if err != nil {
				return err
			}
			if err := reconciler.Persist(defaults, current, target); err != nil {
				return fmt.Errorf("persist config: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", target.Path())
			return nil
		},
	}

	loc.register(cmd)
	cmd.Flags().StringVar(&defaultsPath, "defaults", "", "JSON file holding the default config")
	cmd.Flags().StringVar(&currentPath, "current", "", "JSON file holding the config to write")
	_ = cmd.MarkFlagRequired("defaults")
	_ = cmd.MarkFlagRequired("current")
	registerReconcileFlags(cmd)
	return cmd
}

func newConfigShowCommand(ctx *commandContext) *cobra.Command {
	var loc locationFlags
	var defaultsPath string
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Reconcile a config file and print its contents",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			defaults, err := readDocumentFile(defaultsPath)
			if err != nil {
				return err
			}
			target, err := loc.location()
			if err != nil {
				return err
			}
			reconciler, err := ctx.reconciler(cmd)
			if err != nil {
				return err
			}
			doc, state, err := reconciler.Load(defaults, target)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if jsonOutput {
				return writeJSON(cmd, doc)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s (%s)\n", target.Path(), state)
			fmt.Fprintln(out, renderDocument(doc))
			return nil
		},
	}

	loc.register(cmd)
	cmd.Flags().StringVar(&defaultsPath, "defaults", "", "JSON file holding the default config")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Print the reconciled document as JSON")
	_ = cmd.MarkFlagRequired("defaults")
	registerReconcileFlags(cmd)
	return cmd
}

func newConfigCheckCommand() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Verify that a config directory is readable and writable",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			expanded, err := config.ExpandPath(strings.TrimSpace(dir))
			if err != nil {
				return fmt.Errorf("resolve directory: %w", err)
			}
			if err := jsonconfig.CheckAccess(expanded); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s (read/write ok)\n", expanded)
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "", "Directory to check")
	_ = cmd.MarkFlagRequired("dir")
	return cmd
}

func newConfigInitCommand() *cobra.Command {
	var targetPath string
	var overwrite bool

	cmd := &cobra.Command{
		Use:         "init",
		Short:       "Create a sample settings file",
		Annotations: map[string]string{"skipConfigLoad": "true"},
		Args:        cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			target := strings.TrimSpace(targetPath)
			if target == "" {
				defaultPath, err := config.DefaultConfigPath()
				if err != nil {
					return fmt.Errorf("determine default settings path: %w", err)
				}
				target = defaultPath
			} else {
				expanded, err := config.ExpandPath(target)
				if err != nil {
					return fmt.Errorf("resolve settings path: %w", err)
				}
				target = expanded
			}

			if !overwrite {
				if _, err := os.Stat(target); err == nil {
					return fmt.Errorf("settings file already exists at %s (use --overwrite to replace it)", target)
				} else if !os.IsNotExist(err) {
					return fmt.Errorf("check settings path: %w", err)
				}
			}

			if err := config.CreateSample(target); err != nil {
				return fmt.Errorf("create sample settings: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Wrote sample settings to %s\n", target)
			return nil
		},
	}

	cmd.Flags().StringVarP(&targetPath, "path", "p", "", "Destination for the settings file")
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Overwrite existing settings if present")
	return cmd
}
