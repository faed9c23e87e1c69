package logger

import (
	"context"
	"fmt"
	"sync"

	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	LevelDebug = zap.DebugLevel
	LevelInfo  = zap.InfoLevel
	LevelWarn  = zap.WarnLevel
	LevelError = zap.ErrorLevel
)

var (
	String   = zap.String
	Int      = zap.Int
	Float64  = zap.Float64
	Duration = zap.Duration
	Bool     = zap.Bool
	ErrorF   = zap.Error
	Any      = zap.Any
)

type (
	Field = zap.Field
)

var (
	mu     sync.RWMutex
	global = &Logger{z: zap.NewNop()}
)

// Logger decorates zap with the request id carried in the context.
type Logger struct {
	z *zap.Logger
}

// Init replaces the process logger. Until it is called every log call is a no-op.
func Init(level string, asJSON bool) error {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("logger.Init: %w", err)
	}

	cfg := zap.NewProductionConfig()
	if !asJSON {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	z, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return fmt.Errorf("logger.Init: %w", err)
	}
	Set(z)
	return nil
}

// Set swaps the underlying zap logger; tests use it with zaptest/observer.
func Set(z *zap.Logger) {
	mu.Lock()
	defer mu.Unlock()
	global = &Logger{z: z}
}

// L returns the raw zap logger.
func L() *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return global.z
}

func Sync() error { return L().Sync() }

func current() *Logger {
	mu.RLock()
	defer mu.RUnlock()
	return global
}

// With returns a child logger carrying fields.
func With(fields ...Field) *Logger {
	return &Logger{z: L().With(fields...)}
}

func (l *Logger) Debug(ctx context.Context, msg string, fields ...Field) {
	l.z.Debug(msg, withRequestID(ctx, fields)...)
}

func (l *Logger) Info(ctx context.Context, msg string, fields ...Field) {
	l.z.Info(msg, withRequestID(ctx, fields)...)
}

func (l *Logger) Warn(ctx context.Context, msg string, fields ...Field) {
	l.z.Warn(msg, withRequestID(ctx, fields)...)
}

func (l *Logger) Error(ctx context.Context, msg string, fields ...Field) {
	l.z.Error(msg, withRequestID(ctx, fields)...)
}

func Debug(ctx context.Context, msg string, fields ...Field) { current().Debug(ctx, msg, fields...) }
func Info(ctx context.Context, msg string, fields ...Field)  { current().Info(ctx, msg, fields...) }
func Warn(ctx context.Context, msg string, fields ...Field)  { current().Warn(ctx, msg, fields...) }
func Error(ctx context.Context, msg string, fields ...Field) { current().Error(ctx, msg, fields...) }

func withRequestID(ctx context.Context, fields []Field) []Field {
	if ctx == nil {
		return fields
	}
	if id := middleware.GetReqID(ctx); id != "" {
		return append(fields, String("request_id", id))
	}
	return fields
}
