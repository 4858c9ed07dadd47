package config

import "fmt"

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateAnalysis(); err != nil {
		return err
	}
	if err := c.validateOutput(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateAnalysis() error {
	if c.Analysis.Window < 1 {
		return fmt.Errorf("analysis.window must be a positive integer, got %d", c.Analysis.Window)
	}
	if c.Analysis.MinTokenLength < 0 {
		return fmt.Errorf("analysis.min_token_length must not be negative, got %d", c.Analysis.MinTokenLength)
	}
	return nil
}

func (c *Config) validateOutput() error {
	switch c.Output.Format {
	case "table", "plain", "json":
		return nil
	default:
		return fmt.Errorf("output.format must be one of table, plain, json; got %q", c.Output.Format)
	}
}

func (c *Config) validateLogging() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be one of debug, info, warn, error; got %q", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	return nil
}
