package config

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

var Logger = logrus.New()

var logFile *lumberjack.Logger

type ctxKey string

const runIDKey ctxKey = "run_id"

// InitLogger configures the shared logger. With a log file configured the
// output is rotated by lumberjack so stdout stays free for the terminal UI.
func InitLogger(cfg LogConfig) error {
	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}
	Logger.SetLevel(level)

	switch cfg.Format {
	case "text":
		Logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: time.RFC3339,
		})
	default:
		Logger.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: time.RFC3339,
		})
	}

	var out io.Writer = os.Stderr
	if cfg.File != "" {
		logFile = &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAgeDays,
			Compress:   cfg.Compress,
		}
		out = logFile
	}
	Logger.SetOutput(out)

	return nil
}

func CloseLogger() error {
	if logFile == nil {
		return nil
	}
	return logFile.Close()
}

func ContextWithRunID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, runIDKey, id)
}

func WithContext(ctx context.Context) *logrus.Entry {
	entry := logrus.NewEntry(Logger)
	if ctx == nil {
		return entry
	}
	if id, ok := ctx.Value(runIDKey).(string); ok && id != "" {
		entry = entry.WithField("run_id", id)
	}
	return entry
}
