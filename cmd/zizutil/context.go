package main

import (
	"log/slog"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"zizutil/internal/config"
	"zizutil/internal/jsonconfig"
	"zizutil/internal/logging"
)

type commandContext struct {
	configFlag    *string
	logLevelFlag  *string
	logFormatFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
	loggerErr  error
}

func newCommandContext(configFlag, logLevelFlag, logFormatFlag *string) *commandContext {
	return &commandContext{
		configFlag:    configFlag,
		logLevelFlag:  logLevelFlag,
		logFormatFlag: logFormatFlag,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.OverrideLogging(flagValue(c.logLevelFlag), flagValue(c.logFormatFlag)); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

// commandLogger returns the shared logger tagged with the command path and
// the invocation's correlation ID.
func (c *commandContext) commandLogger(cmd *cobra.Command) (*slog.Logger, error) {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.loggerErr = err
			return
		}
		c.logger, c.loggerErr = logging.NewFromConfig(cfg)
	})
	if c.loggerErr != nil {
		return nil, c.loggerErr
	}
	logger := logging.WithContext(cmd.Context(), c.logger)
	return logger.With(logging.String(logging.FieldCommand, cmd.CommandPath())), nil
}

// reconciler builds a Reconciler from the settings file, letting explicitly
// set flags win.
func (c *commandContext) reconciler(cmd *cobra.Command) (*jsonconfig.Reconciler, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	logger, err := c.commandLogger(cmd)
	if err != nil {
		return nil, err
	}
	opts := jsonconfig.Options{
		Logger:      logger,
		TypeSetOnly: cfg.Reconcile.TypeSetOnly,
		Backup:      cfg.Reconcile.Backup,
		Lock:        cfg.Reconcile.Lock,
	}
	flags := cmd.Flags()
	if flags.Lookup("type-set-only") != nil && flags.Changed("type-set-only") {
		opts.TypeSetOnly, _ = flags.GetBool("type-set-only")
	}
	if flags.Lookup("backup") != nil && flags.Changed("backup") {
		opts.Backup, _ = flags.GetBool("backup")
	}
	if flags.Lookup("lock") != nil && flags.Changed("lock") {
		opts.Lock, _ = flags.GetBool("lock")
	}
	return jsonconfig.New(opts), nil
}

func flagValue(flag *string) string {
	if flag == nil {
		return ""
	}
	return strings.TrimSpace(*flag)
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
