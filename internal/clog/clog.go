// Package clog provides the CLI driver's structured logging, a thin wrapper
// around go.uber.org/zap (grounded on rlch-scaf's lsp package, which logs
// through a *zap.Logger field this way). These logs are operational
// (e.g. stage-completion notes) and are distinct from the user-facing
// diag.Diagnostic values the compiler emits — a diagnostic is compiler
// output, a log line is operator telemetry.
package clog

import "go.uber.org/zap"

// Logger wraps a *zap.Logger scoped to one named stage (e.g. "lex", "parse").
type Logger struct {
	z *zap.Logger
}

// New builds a Logger. verbose selects development-mode zap config (colored,
// human-readable console output) over the default production JSON config.
func New(verbose bool) (*Logger, error) {
	var z *zap.Logger
	var err error
	if verbose {
		z, err = zap.NewDevelopment()
	} else {
		z, err = zap.NewProduction()
	}
	if err != nil {
		return nil, err
	}
	return &Logger{z: z}, nil
}

// Stage returns a Logger scoped to the named pipeline stage.
func (l *Logger) Stage(name string) *Logger {
	return &Logger{z: l.z.With(zap.String("stage", name))}
}

// Debug logs at debug level with structured fields.
func (l *Logger) Debug(msg string, fields ...zap.Field) { l.z.Debug(msg, fields...) }

// Info logs at info level with structured fields.
func (l *Logger) Info(msg string, fields ...zap.Field) { l.z.Info(msg, fields...) }

// Error logs at error level with structured fields.
func (l *Logger) Error(msg string, fields ...zap.Field) { l.z.Error(msg, fields...) }

// Sync flushes any buffered log entries; callers should defer it from main.
func (l *Logger) Sync() error { return l.z.Sync() }
