package logger

import (
	"github.com/suchimauz/goodx-diary-web/internal/core/ports/out"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapLogger пишет события в JSON через zap, для окружений с агрегатором логов
type ZapLogger struct {
	logger *zap.Logger
}

func NewZapLogger(production bool, level out.LogLevel) (*ZapLogger, error) {
	var cfg zap.Config
	if production {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.Encoding = "json"
	}
	cfg.Level = zap.NewAtomicLevelAt(zapLevel(level))
	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return nil, err
	}

	return &ZapLogger{logger: logger}, nil
}

func NewZapLoggerFrom(logger *zap.Logger) *ZapLogger {
	return &ZapLogger{logger: logger}
}

func (l *ZapLogger) WithFields(fields out.LogFields) out.LoggerPort {
	return &ZapLogger{logger: l.logger.With(zapFields(fields)...)}
}

func (l *ZapLogger) WithModule(module string) out.LoggerPort {
	return &ZapLogger{logger: l.logger.Named(module)}
}

func (l *ZapLogger) Debug(event string, fields out.LogFields) {
	l.logger.Debug(event, zapFields(fields)...)
}

func (l *ZapLogger) Info(event string, fields out.LogFields) {
	l.logger.Info(event, zapFields(fields)...)
}

func (l *ZapLogger) Warn(event string, fields out.LogFields) {
	l.logger.Warn(event, zapFields(fields)...)
}

func (l *ZapLogger) Error(event string, fields out.LogFields) {
	l.logger.Error(event, zapFields(fields)...)
}

func (l *ZapLogger) Sync() error {
	return l.logger.Sync()
}

func zapFields(fields out.LogFields) []zap.Field {
	zf := make([]zap.Field, 0, len(fields))
	for k, v := range fields {
		zf = append(zf, zap.Any(k, v))
	}
	return zf
}

func zapLevel(level out.LogLevel) zapcore.Level {
	switch level {
	case out.LogLevelInfo:
		return zapcore.InfoLevel
	case out.LogLevelWarn:
		return zapcore.WarnLevel
	case out.LogLevelError:
		return zapcore.ErrorLevel
	default:
		return zapcore.DebugLevel
	}
}
