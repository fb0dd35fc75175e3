package log

import "go.uber.org/zap"

var logger, _ = zap.NewProduction()

// L returns the package-level logger, for callers that need to attach
// extra fields via With before logging.
func L() *zap.Logger { return logger }

// Init rebuilds the package-level logger with opts applied, e.g.
// Development() in a dev binary or AddCallerSkip(1) when logging is wrapped
// behind another helper.
func Init(opts ...Option) error {
	l, err := zap.NewProduction(opts...)
	if err != nil {
		return err
	}
	logger = l
	return nil
}

// ReplaceGlobal swaps the package-level logger, e.g. to install a
// development logger with caller info in tests.
func ReplaceGlobal(l *zap.Logger) { logger = l }

func Debug(msg string, fields ...zap.Field) { logger.Debug(msg, fields...) }
func Info(msg string, fields ...zap.Field)  { logger.Info(msg, fields...) }
func Warn(msg string, fields ...zap.Field)  { logger.Warn(msg, fields...) }
func Error(msg string, fields ...zap.Field) { logger.Error(msg, fields...) }
func Panic(msg string, fields ...zap.Field) { logger.Panic(msg, fields...) }

// Sync flushes any buffered log entries. Callers should defer it once at
// process startup.
func Sync() error { return logger.Sync() }

var (
	String = zap.String
	Int64  = zap.Int64
	Int    = zap.Int
	Bool   = zap.Bool
)
