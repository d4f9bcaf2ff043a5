// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

// Package zap routes minisdp logging into a go.uber.org/zap logger.
package zap

import (
	"github.com/pion/logging"
	"go.uber.org/zap"
)

// LoggerFactory creates leveled loggers backed by a *zap.Logger. Each scope
// becomes a named child logger.
type LoggerFactory struct {
	logger *zap.Logger
}

// NewLoggerFactory creates a LoggerFactory from an zap.Logger.
func NewLoggerFactory(l *zap.Logger) *LoggerFactory {
	return &LoggerFactory{logger: l}
}

// NewLogger returns a logger for the given scope.
func (f *LoggerFactory) NewLogger(scope string) logging.LeveledLogger {
	return &Logger{sugar: f.logger.Named(scope).Sugar()}
}

// Logger implements logging.LeveledLogger. zap has no trace level, so trace
// messages are written at debug.
type Logger struct {
	sugar *zap.SugaredLogger
}

// Trace logs a trace message
func (l *Logger) Trace(msg string) {
	l.sugar.Debug(msg)
}

// Tracef formats and logs a trace message
func (l *Logger) Tracef(format string, args ...any) {
	l.sugar.Debugf(format, args...)
}

// Debug logs a debug message
func (l *Logger) Debug(msg string) {
	l.sugar.Debug(msg)
}

// Debugf formats and logs a debug message
func (l *Logger) Debugf(format string, args ...any) {
	l.sugar.Debugf(format, args...)
}

// Info logs an info message
func (l *Logger) Info(msg string) {
	l.sugar.Info(msg)
}

// Infof formats and logs an info message
func (l *Logger) Infof(format string, args ...any) {
	l.sugar.Infof(format, args...)
}

// Warn logs a warning message
func (l *Logger) Warn(msg string) {
	l.sugar.Warn(msg)
}

// Warnf formats and logs a warning message
func (l *Logger) Warnf(format string, args ...any) {
	l.sugar.Warnf(format, args...)
}

// Error logs an error message
func (l *Logger) Error(msg string) {
	l.sugar.Error(msg)
}

// Errorf formats and logs an error message
func (l *Logger) Errorf(format string, args ...any) {
	l.sugar.Errorf(format, args...)
}
