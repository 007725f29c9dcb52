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

package logutil

import (
	"context"
	"os"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/matrixorigin/numseq/pkg/common/moerr"
)

// LogConfig serves as the [log] section of the configuration file.
type LogConfig struct {
	Level      string `toml:"level"`
	Format     string `toml:"format"`
	Filename   string `toml:"filename"`
	MaxSize    int    `toml:"max-size"`
	MaxDays    int    `toml:"max-days"`
	MaxBackups int    `toml:"max-backups"`
	// DisableStore keeps the log on the console even when Filename is set.
	DisableStore bool `toml:"disable-store"`
	// StacktraceLevel is the lowest level that records a stack trace,
	// fatal when empty.
	StacktraceLevel string `toml:"stacktrace-level"`
}

var _globalLogger atomic.Value

func init() {
	SetupMOLogger(&LogConfig{
		Level:        zapcore.InfoLevel.String(),
		Format:       "console",
		DisableStore: true,
	})
}

// SetupMOLogger builds the global logger from conf. It panics on an
// unsupported format or when the log file is a directory.
func SetupMOLogger(conf *LogConfig) {
	logger, err := initMOLogger(conf)
	if err != nil {
		panic(err)
	}
	replaceGlobalLogger(logger)
	Debugf("logger init, level=%s, format=%s, log file=%s", conf.Level, conf.Format, conf.Filename)
}

func initMOLogger(cfg *LogConfig) (*zap.Logger, error) {
	return GetLoggerWithOptions(cfg.getLevel(), cfg.getEncoder(), cfg.getSyncer(), cfg.getOptions()...), nil
}

// GetLoggerWithOptions builds a logger writing to a single sink.
func GetLoggerWithOptions(level zapcore.LevelEnabler, encoder zapcore.Encoder, syncer zapcore.WriteSyncer, options ...zap.Option) *zap.Logger {
	if syncer == nil {
		syncer = getConsoleSyncer()
	}
	return zap.New(zapcore.NewCore(encoder, syncer, level), options...)
}

func replaceGlobalLogger(logger *zap.Logger) {
	_globalLogger.Store(logger)
}

func GetGlobalLogger() *zap.Logger {
	return _globalLogger.Load().(*zap.Logger)
}

func (cfg *LogConfig) getLevel() zap.AtomicLevel {
	level := zap.NewAtomicLevel()
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		panic(err)
	}
	return level
}

func (cfg *LogConfig) getEncoder() zapcore.Encoder {
	return getLoggerEncoder(cfg.Format)
}

func (cfg *LogConfig) getSyncer() zapcore.WriteSyncer {
	if cfg.Filename == "" || cfg.DisableStore {
		return getConsoleSyncer()
	}
	if stat, err := os.Stat(cfg.Filename); err == nil && stat.IsDir() {
		panic("log file can't be a directory")
	}
	return zapcore.AddSync(&lumberjack.Logger{
		Filename:   cfg.Filename,
		MaxSize:    cfg.MaxSize,
		MaxAge:     cfg.MaxDays,
		MaxBackups: cfg.MaxBackups,
		LocalTime:  true,
		Compress:   false,
	})
}

func (cfg *LogConfig) getOptions() []zap.Option {
	stackLevel := zap.FatalLevel
	if len(cfg.StacktraceLevel) > 0 {
		if err := stackLevel.Set(cfg.StacktraceLevel); err != nil {
			panic(err)
		}
	}
	return []zap.Option{
		zap.AddStacktrace(stackLevel),
		zap.AddCaller(),
	}
}

// The console log shares the terminal with program output, so it goes to
// stderr.
var consoleSyncer = zapcore.AddSync(os.Stderr)

func getConsoleSyncer() zapcore.WriteSyncer {
	return consoleSyncer
}

func getLoggerEncoder(format string) zapcore.Encoder {
	encoderConfig := zapcore.EncoderConfig{
		MessageKey:       "msg",
		LevelKey:         "level",
		TimeKey:          "time",
		NameKey:          "name",
		CallerKey:        "caller",
		StacktraceKey:    "stacktrace",
		LineEnding:       zapcore.DefaultLineEnding,
		EncodeLevel:      zapcore.CapitalLevelEncoder,
		EncodeTime:       zapcore.TimeEncoderOfLayout("2006/01/02 15:04:05.000000 -0700"),
		EncodeDuration:   zapcore.StringDurationEncoder,
		EncodeCaller:     zapcore.ShortCallerEncoder,
		ConsoleSeparator: " ",
	}

	switch format {
	case "json", "":
		return zapcore.NewJSONEncoder(encoderConfig)
	case "console":
		return zapcore.NewConsoleEncoder(encoderConfig)
	default:
		panic(moerr.NewInternalError(context.TODO(), "unsupported log format: %s", format))
	}
}
