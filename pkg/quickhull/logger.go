package quickhull

import "go.uber.org/zap"

// Logger - то, что нужно построителю от логгера.
// Подходят *zap.Logger и *logger.ZapLogger.
type Logger interface {
	Debug(msg string, fields ...zap.Field)
	Info(msg string, fields ...zap.Field)
	Warn(msg string, fields ...zap.Field)
	Error(msg string, fields ...zap.Field)
}
