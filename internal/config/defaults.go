package config

const (
	defaultWindow         = 2
	defaultMinTokenLength = 0
	defaultOutputFormat   = "table"
	defaultLogLevel       = "info"
	defaultLogFormat      = "console"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Analysis: Analysis{
			Window:         defaultWindow,
			MinTokenLength: defaultMinTokenLength,
		},
		Output: Output{
			Format: defaultOutputFormat,
		},
		Logging: Logging{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
	}
}
