package logger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

// SetupLogger builds the root slog logger for the given environment.
// Local gets human-readable text on stdout, dev and prod write JSON to both
// stdout and a log file under logPath.
func SetupLogger(env, logPath string) *slog.Logger {
	switch env {
	case envDev:
		return slog.New(slog.NewJSONHandler(
			logWriter(logPath), &slog.HandlerOptions{Level: slog.LevelDebug},
		))
	case envProd:
		return slog.New(slog.NewJSONHandler(
			logWriter(logPath), &slog.HandlerOptions{Level: slog.LevelInfo},
		))
	default:
		return slog.New(slog.NewTextHandler(
			os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug},
		))
	}
}

func logWriter(logPath string) io.Writer {
	file, err := os.OpenFile(
		filepath.Join(logPath, "shopbridge.log"),
		os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644,
	)
	if err != nil {
		return os.Stdout
	}
	return io.MultiWriter(os.Stdout, file)
}
