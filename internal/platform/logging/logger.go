// Package logging emits Cloud Logging structured JSON through zap and carries
// a request-scoped logger in the request context.
package logging

import (
	"fmt"
	"os"
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// RFC3339Micros is RFC 3339 UTC with fixed microsecond precision, used for log timestamps.
const RFC3339Micros = "2006-01-02T15:04:05.000000Z"

var (
	processOnce   sync.Once
	processLogger *zap.Logger

	// level gates every logger built by newLogger, including request-scoped
	// children, so SetLevel applies after startup.
	level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
)

// severities names zap levels the way Cloud Logging's LogSeverity enum does.
var severities = map[zapcore.Level]string{
	zapcore.DebugLevel:  "DEBUG",
	zapcore.InfoLevel:   "INFO",
	zapcore.WarnLevel:   "WARNING",
	zapcore.ErrorLevel:  "ERROR",
	zapcore.DPanicLevel: "CRITICAL",
	zapcore.PanicLevel:  "ALERT",
	zapcore.FatalLevel:  "EMERGENCY",
}

func encodeSeverity(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	s, ok := severities[l]
	if !ok {
		s = "DEFAULT"
	}
	enc.AppendString(s)
}

func encodeTimeMicros(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(t.UTC().Format(RFC3339Micros))
}

func encoderConfig() zapcore.EncoderConfig {
	cfg := zap.NewProductionEncoderConfig()
	cfg.TimeKey = "timestamp"
	cfg.EncodeTime = encodeTimeMicros
	cfg.LevelKey = "severity"
	cfg.EncodeLevel = encodeSeverity
	cfg.MessageKey = "message"
	cfg.EncodeDuration = zapcore.StringDurationEncoder
	return cfg
}

// newLogger writes JSON entries to ws at the shared level.
func newLogger(ws zapcore.WriteSyncer) *zap.Logger {
	core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig()), ws, level)
	return zap.New(core, zap.AddCaller(), zap.ErrorOutput(ws))
}

// Logger returns the process logger, writing to stdout.
func Logger() *zap.Logger {
	processOnce.Do(func() {
		processLogger = newLogger(zapcore.Lock(os.Stdout))
	})
	return processLogger
}

// Sync flushes buffered log entries. Call during shutdown.
func Sync() error {
	return Logger().Sync()
}

// SetLevel changes the minimum enabled level ("debug", "info", "warn", "error", ...).
func SetLevel(text string) error {
	parsed, err := zapcore.ParseLevel(text)
	if err != nil {
		return fmt.Errorf("parse log level %q: %w", text, err)
	}
	level.SetLevel(parsed)
	return nil
}

// Level reports the currently enabled minimum level.
func Level() zapcore.Level {
	return level.Level()
}
