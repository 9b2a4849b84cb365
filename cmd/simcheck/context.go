package main

import (
	"log/slog"
	"strings"
	"sync"

	"simcheck/internal/config"
	"simcheck/internal/logging"
	"simcheck/internal/scorecache"
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
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
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) newLogger() (*slog.Logger, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	return logging.NewFromConfig(cfg)
}

// openStore opens the score cache when enabled. Cache trouble degrades to an
// uncached run rather than failing the command.
func (c *commandContext) openStore(logger *slog.Logger) *scorecache.Store {
	cfg, err := c.ensureConfig()
	if err != nil || !cfg.Cache.Enabled {
		return nil
	}
	store, err := scorecache.Open(cfg)
	if err != nil {
		logger.Warn("score cache unavailable, continuing without it", slog.Any("error", err))
		return nil
	}
	return store
}
