/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package logger provides a configurable logger that can be silenced for MCP integrations.
package logger

import (
	"io"
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	mu     sync.RWMutex
	level  = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	logger = build(os.Stderr)
)

func build(w io.Writer) *zap.Logger {
	ec := zap.NewDevelopmentEncoderConfig()
	ec.EncodeCaller = nil
	ec.TimeKey = zapcore.OmitKey
	ec.EncodeLevel = zapcore.LowercaseLevelEncoder
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(ec), zapcore.Lock(zapcore.AddSync(w)), level)
	return zap.New(core)
}

// SetOutput configures the logger output destination.
// Use io.Discard to silence all logging.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	if w == io.Discard {
		logger = zap.NewNop()
		return
	}
	logger = build(w)
}

// SetDebug enables or disables debug output.
func SetDebug(enabled bool) {
	if enabled {
		level.SetLevel(zapcore.DebugLevel)
		return
	}
	level.SetLevel(zapcore.InfoLevel)
}

// L returns the shared zap logger, for packages that take a *zap.Logger.
func L() *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

// Warn logs a warning message.
func Warn(format string, args ...any) {
	L().Sugar().Warnf(format, args...)
}

// Info logs an informational message.
func Info(format string, args ...any) {
	L().Sugar().Infof(format, args...)
}

// Debug logs a debug message.
func Debug(format string, args ...any) {
	L().Sugar().Debugf(format, args...)
}
