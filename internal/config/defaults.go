package config

const (
	defaultConfigPath = "~/.config/zizutil/config.toml"
	defaultLogFormat  = "console"
	defaultLogLevel   = "warn"
	defaultMenuStart  = 1
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
		Menu: Menu{
			Start: defaultMenuStart,
		},
	}
}
