package log

import (
	"context"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the context-aware logging interface used across the service.
type Logger interface {
	Debug(ctx context.Context, args ...interface{})
	Debugf(ctx context.Context, format string, args ...interface{})
	Info(ctx context.Context, args ...interface{})
	Infof(ctx context.Context, format string, args ...interface{})
	Warn(ctx context.Context, args ...interface{})
	Warnf(ctx context.Context, format string, args ...interface{})
	Error(ctx context.Context, args ...interface{})
	Errorf(ctx context.Context, format string, args ...interface{})
	DPanic(ctx context.Context, args ...interface{})
	DPanicf(ctx context.Context, format string, args ...interface{})
	Panic(ctx context.Context, args ...interface{})
	Panicf(ctx context.Context, format string, args ...interface{})
	Fatal(ctx context.Context, args ...interface{})
	Fatalf(ctx context.Context, format string, args ...interface{})
}

// ZapConfig configures the zap-backed logger.
type ZapConfig struct {
	Level        string
	Mode         string
	Encoding     string // "console" or "json"
	ColorEnabled bool
}

type zapLogger struct {
	sugar *zap.SugaredLogger
}

// Init builds the process-wide logger from config.
func Init(cfg ZapConfig) Logger {
	level := zapcore.InfoLevel
	if err := level.Set(strings.ToLower(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "ts"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	if cfg.ColorEnabled && cfg.Encoding != "json" {
		encoderCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		encoderCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	}

	zapCfg := zap.Config{
		Level:            zap.NewAtomicLevelAt(level),
		Development:      cfg.Mode != "production",
		Encoding:         cfg.Encoding,
		EncoderConfig:    encoderCfg,
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}
	if zapCfg.Encoding == "" {
		zapCfg.Encoding = "console"
	}

	l, err := zapCfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		l = zap.NewNop()
	}

	return &zapLogger{sugar: l.Sugar()}
}

func (z *zapLogger) Debug(ctx context.Context, args ...interface{}) { z.sugar.Debug(args...) }
func (z *zapLogger) Debugf(ctx context.Context, format string, args ...interface{}) {
	z.sugar.Debugf(format, args...)
}
func (z *zapLogger) Info(ctx context.Context, args ...interface{}) { z.sugar.Info(args...) }
func (z *zapLogger) Infof(ctx context.Context, format string, args ...interface{}) {
	z.sugar.Infof(format, args...)
}
func (z *zapLogger) Warn(ctx context.Context, args ...interface{}) { z.sugar.Warn(args...) }
func (z *zapLogger) Warnf(ctx context.Context, format string, args ...interface{}) {
	z.sugar.Warnf(format, args...)
}
func (z *zapLogger) Error(ctx context.Context, args ...interface{}) { z.sugar.Error(args...) }
func (z *zapLogger) Errorf(ctx context.Context, format string, args ...interface{}) {
	z.sugar.Errorf(format, args...)
}
func (z *zapLogger) DPanic(ctx context.Context, args ...interface{}) { z.sugar.DPanic(args...) }
func (z *zapLogger) DPanicf(ctx context.Context, format string, args ...interface{}) {
	z.sugar.DPanicf(format, args...)
}
func (z *zapLogger) Panic(ctx context.Context, args ...interface{}) { z.sugar.Panic(args...) }
func (z *zapLogger) Panicf(ctx context.Context, format string, args ...interface{}) {
	z.sugar.Panicf(format, args...)
}
func (z *zapLogger) Fatal(ctx context.Context, args ...interface{}) { z.sugar.Fatal(args...) }
func (z *zapLogger) Fatalf(ctx context.Context, format string, args ...interface{}) {
	z.sugar.Fatalf(format, args...)
}
