// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"cloudeng.io/cmdutil"
	"cloudeng.io/cmdutil/cmdyaml"
	"cloudeng.io/logging/ctxlog"
	"cloudeng.io/priority/pqueue"
	"gopkg.in/yaml.v3"
)

// CommonFlags are shared by all commands.
type CommonFlags struct {
	cmdutil.LoggingFlags
	ConfigFile string `subcmd:"config,,'yaml configuration file, see the config command for its format'"`
}

type topkFlags struct {
	CommonFlags
	K     int    `subcmd:"k,0,'number of records to select, overrides the config file when non-zero'"`
	Order string `subcmd:"order,,'min or max, overrides the config file when set'"`
}

// Config represents the contents of the yaml configuration file.
type Config struct {
	K       int                    `yaml:"k" cmd:"number of records to select"`
	Order   string                 `yaml:"order" cmd:"min or max"`
	Logging *cmdutil.LoggingConfig `yaml:"logging,omitempty" cmd:"logging configuration, replaces the logging flags when present"`
}

func defaultConfig() *Config {
	return &Config{K: 10, Order: pqueue.Max.String()}
}

func loadConfig(ctx context.Context, filename string) (*Config, error) {
	cfg := defaultConfig()
	if len(filename) == 0 {
		return cfg, nil
	}
	if err := cmdyaml.ParseConfigFile(ctx, filename, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// apply overrides the configuration with any flags that were set and
// returns the resulting k and order.
func (c *Config) apply(k int, order string) (int, pqueue.Order, error) {
	if k != 0 {
		c.K = k
	}
	if len(order) > 0 {
		c.Order = order
	}
	o, err := pqueue.ParseOrder(c.Order)
	if err != nil {
		return 0, o, err
	}
	if c.K < 0 {
		return 0, o, fmt.Errorf("k must be non-negative: %v", c.K)
	}
	return c.K, o, nil
}

// setup reads the configuration file, if any, and creates the logger
// to be used. The returned function must be called to close the logger.
func setup(ctx context.Context, cf *CommonFlags, command string) (context.Context, *Config, func(), error) {
	cfg, err := loadConfig(ctx, cf.ConfigFile)
	if err != nil {
		return ctx, nil, nil, err
	}
	if cfg.Logging == nil {
		lc := cf.LoggingConfig()
		cfg.Logging = &lc
	}
	logger, err := cfg.Logging.NewLogger()
	if err != nil {
		return ctx, nil, nil, err
	}
	ctx = ctxlog.WithLogger(ctx, logger.Logger)
	ctx = ctxlog.WithAttributes(ctx, "command", command)
	return ctx, cfg, func() {
		if err := logger.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "failed to close log: %v\n", err)
		}
	}, nil
}

func configCmd(ctx context.Context, values interface{}, args []string) error {
	return runConfig(ctx, values.(*topkFlags), os.Stdout)
}

func runConfig(ctx context.Context, fv *topkFlags, out io.Writer) error {
	_, cfg, done, err := setup(ctx, &fv.CommonFlags, "config")
	if err != nil {
		return err
	}
	defer done()
	if _, _, err := cfg.apply(fv.K, fv.Order); err != nil {
		return err
	}
	buf, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = out.Write(buf)
	return err
}
