package main

import (
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"certgen/internal/config"
	"certgen/internal/journal"
	"certgen/internal/logging"
	"certgen/internal/services/certapi"
	"certgen/internal/workflow"
)

type commandContext struct {
	configFlag *string
	apiURLFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	journalOnce sync.Once
	journal     *journal.Store
	journalErr  error
}

func newCommandContext(configFlag, apiURLFlag *string) *commandContext {
	return &commandContext{
		configFlag: configFlag,
		apiURLFlag: apiURLFlag,
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
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		if c.apiURLFlag != nil {
			if override := strings.TrimSpace(*c.apiURLFlag); override != "" {
				cfg.API.BaseURL = strings.TrimRight(override, "/")
			}
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) configValue() *config.Config {
	cfg, _ := c.ensureConfig()
	return cfg
}

func (c *commandContext) openJournal() (*journal.Store, error) {
	c.journalOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.journalErr = err
			return
		}
		store, err := journal.Open(filepath.Join(cfg.Paths.StateDir, "journal.db"))
		if err != nil {
			c.journalErr = fmt.Errorf("open journal: %w", err)
			return
		}
		c.journal = store
	})
	return c.journal, c.journalErr
}

func (c *commandContext) newOrchestrator() (*workflow.Orchestrator, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	logger, err := logging.NewFromConfig(cfg)
	if err != nil {
		return nil, fmt.Errorf("configure logging: %w", err)
	}
	store, err := c.openJournal()
	if err != nil {
		return nil, err
	}
	client := certapi.NewClient(cfg.API.BaseURL, time.Duration(cfg.API.TimeoutSeconds)*time.Second)
	return workflow.NewOrchestrator(client,
		workflow.WithLogger(logger),
		workflow.WithJournal(store),
		workflow.WithLockFile(filepath.Join(cfg.Paths.StateDir, "certgen.lock")),
	), nil
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
