// Copyright 2022 Matrix Origin
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"context"
	"os"

	"github.com/BurntSushi/toml"
	"go.uber.org/zap/zapcore"

	"github.com/matrixorigin/numseq/pkg/common/moerr"
	"github.com/matrixorigin/numseq/pkg/logutil"
)

type ConfigurationKeyType int

const (
	ConfigKey ConfigurationKeyType = 1
)

const (
	defaultWorkers    = 4
	defaultLogLevel   = "warn"
	defaultLogFormat  = "console"
	defaultLogMaxSize = 512
)

// Config is the content of the configuration file of numseq-demo.
type Config struct {
	Log logutil.LogConfig `toml:"log"`

	Demo DemoParameters `toml:"demo"`
}

// DemoParameters of the scenario runner
type DemoParameters struct {
	//default is 4. The count of go routines running scenarios.
	Workers int `toml:"workers"`

	//default is empty, every scenario of the catalogue is run.
	Scenarios []string `toml:"scenarios"`

	//default is false. With true, scenarios not yet started are skipped after the first failure.
	FailFast bool `toml:"failFast"`
}

// SetDefaultValues fills in every parameter left unset.
func (c *Config) SetDefaultValues() {
	if c.Demo.Workers == 0 {
		c.Demo.Workers = defaultWorkers
	}
	if c.Log.Level == "" {
		c.Log.Level = defaultLogLevel
	}
	if c.Log.Format == "" {
		c.Log.Format = defaultLogFormat
	}
	if c.Log.MaxSize == 0 {
		c.Log.MaxSize = defaultLogMaxSize
	}
}

// Validate checks the parameters after defaults have been applied.
func (c *Config) Validate() error {
	if c.Demo.Workers < 0 {
		return moerr.NewBadConfigNoCtx("demo.workers must be positive, got %d", c.Demo.Workers)
	}
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return moerr.NewBadConfigNoCtx("unknown log level %q", c.Log.Level)
	}
	switch c.Log.Format {
	case "json", "console":
	default:
		return moerr.NewBadConfigNoCtx("unsupported log format %q", c.Log.Format)
	}
	if c.Log.MaxSize < 0 || c.Log.MaxDays < 0 || c.Log.MaxBackups < 0 {
		return moerr.NewBadConfigNoCtx("log rotation limits can't be negative")
	}
	seen := make(map[string]struct{}, len(c.Demo.Scenarios))
	for _, name := range c.Demo.Scenarios {
		if _, ok := seen[name]; ok {
			return moerr.NewBadConfigNoCtx("scenario %s listed twice", name)
		}
		seen[name] = struct{}{}
	}
	return nil
}

// Parse decodes a configuration from TOML text.
func Parse(data string) (*Config, error) {
	cfg := &Config{}
	meta, err := toml.Decode(data, cfg)
	if err != nil {
		return nil, moerr.NewBadConfigNoCtx("%v", err)
	}
	return finish(cfg, meta)
}

// ParseFile decodes the configuration file at path.
func ParseFile(path string) (*Config, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, moerr.NewFileNotFoundNoCtx(path)
		}
		return nil, moerr.ConvertGoError(moerr.Context(), err)
	}
	cfg := &Config{}
	meta, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, moerr.NewBadConfigNoCtx("%s: %v", path, err)
	}
	return finish(cfg, meta)
}

func finish(cfg *Config, meta toml.MetaData) (*Config, error) {
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, moerr.NewBadConfigNoCtx("unknown key %s", undecoded[0].String())
	}
	cfg.SetDefaultValues()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func WithConfig(ctx context.Context, cfg *Config) context.Context {
	return context.WithValue(ctx, ConfigKey, cfg)
}

// GetConfig returns the configuration stored in ctx, or nil.
func GetConfig(ctx context.Context) *Config {
	cfg, _ := ctx.Value(ConfigKey).(*Config)
	return cfg
}
