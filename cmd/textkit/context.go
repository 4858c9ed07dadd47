package main

import (
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"

	"textkit"
	"textkit/internal/config"
	"textkit/internal/logging"
)

// commandContext carries lazily-loaded configuration and the shared logger
// across subcommands.
type commandContext struct {
	configFlag   *string
	logLevelFlag *string
	jsonFlag     *bool
	fileFlag     *bool
	textFlag     *bool

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
}

func newCommandContext(configFlag, logLevelFlag *string, jsonFlag, fileFlag, textFlag *bool) *commandContext {
	return &commandContext{
		configFlag:   configFlag,
		logLevelFlag: logLevelFlag,
		jsonFlag:     jsonFlag,
		fileFlag:     fileFlag,
		textFlag:     textFlag,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		cfg, _, _, err := config.Load(flagValue(c.configFlag))
		if err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

// ensureLogger builds the shared logger once, tagging every record with a
// short run ID so multi-command sessions remain distinguishable in logs.
func (c *commandContext) ensureLogger() *slog.Logger {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.logger = logging.NewNop()
			return
		}
		var logger *slog.Logger
		if override := flagValue(c.logLevelFlag); override != "" {
			logger, err = logging.New(logging.Options{Level: override, Format: cfg.Logging.Format})
		} else {
			logger, err = logging.NewFromConfig(cfg)
		}
		if err != nil {
			c.logger = logging.NewNop()
			return
		}
		c.logger = logger.With("run_id", shortRunID())
	})
	return c.logger
}

func shortRunID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
}

func flagValue(flag *string) string {
	if flag == nil {
		return ""
	}
	return strings.TrimSpace(*flag)
}

// resolveSource turns the positional argument into a Source, honoring the
// --file/--text overrides. Without an override the path heuristic applies.
func (c *commandContext) resolveSource(arg string) textkit.Source {
	switch {
	case c.fileFlag != nil && *c.fileFlag:
		return textkit.File(arg)
	case c.textFlag != nil && *c.textFlag:
		return textkit.Text(arg)
	default:
		return textkit.Detect(arg)
	}
}

// outputFormat resolves the renderer for this invocation: --json wins, then
// the configured default.
func (c *commandContext) outputFormat() string {
	if c.jsonFlag != nil && *c.jsonFlag {
		return "json"
	}
	if cfg, err := c.ensureConfig(); err == nil {
		return cfg.Output.Format
	}
	return "table"
}
