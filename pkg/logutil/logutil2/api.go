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

// Package logutil2 logs through the global logger with the fields carried
// by a context attached.
package logutil2

import (
	"context"

	"go.uber.org/zap"

	"github.com/matrixorigin/numseq/pkg/logutil"
)

func Debug(ctx context.Context, msg string, fields ...zap.Field) {
	logutil.GetGlobalLogger().WithOptions(zap.AddCallerSkip(1), logutil.ContextFields()(ctx)).Debug(msg, fields...)
}

func Info(ctx context.Context, msg string, fields ...zap.Field) {
	logutil.GetGlobalLogger().WithOptions(zap.AddCallerSkip(1), logutil.ContextFields()(ctx)).Info(msg, fields...)
}

func Warn(ctx context.Context, msg string, fields ...zap.Field) {
	logutil.GetGlobalLogger().WithOptions(zap.AddCallerSkip(1), logutil.ContextFields()(ctx)).Warn(msg, fields...)
}

func Error(ctx context.Context, msg string, fields ...zap.Field) {
	logutil.GetGlobalLogger().WithOptions(zap.AddCallerSkip(1), logutil.ContextFields()(ctx)).Error(msg, fields...)
}

// Infof only use in develop mode
func Infof(ctx context.Context, msg string, fields ...interface{}) {
	logutil.GetGlobalLogger().WithOptions(zap.AddCallerSkip(1), logutil.ContextFields()(ctx)).Sugar().Infof(msg, fields...)
}

// Errorf only use in develop mode
func Errorf(ctx context.Context, msg string, fields ...interface{}) {
	logutil.GetGlobalLogger().WithOptions(zap.AddCallerSkip(1), logutil.ContextFields()(ctx), zap.AddStacktrace(zap.ErrorLevel)).Sugar().Errorf(msg, fields...)
}
