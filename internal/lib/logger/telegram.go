package logger

import (
	"context"
	"fmt"
	"log/slog"
)

// Alerter delivers a plain-text alert to an operator channel.
type Alerter interface {
	SendMessage(msg string)
}

// telegramHandler wraps an slog handler and mirrors records at or above
// alertLevel to an Alerter, so sync failures reach the admin chat.
type telegramHandler struct {
	next       slog.Handler
	alerter    Alerter
	alertLevel slog.Level
}

// SetupTelegramHandler returns a logger that forwards error-level records to
// the given alerter in addition to the original handler.
func SetupTelegramHandler(log *slog.Logger, alerter Alerter, alertLevel slog.Level) *slog.Logger {
	return slog.New(&telegramHandler{
		next:       log.Handler(),
		alerter:    alerter,
		alertLevel: alertLevel,
	})
}

func (h *telegramHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

func (h *telegramHandler) Handle(ctx context.Context, record slog.Record) error {
	if record.Level >= h.alertLevel && h.alerter != nil {
		msg := fmt.Sprintf("[%s] %s", record.Level, record.Message)
		record.Attrs(func(a slog.Attr) bool {
			msg += fmt.Sprintf("\n%s: %v", a.Key, a.Value)
			return true
		})
		h.alerter.SendMessage(msg)
	}
	return h.next.Handle(ctx, record)
}

func (h *telegramHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &telegramHandler{
		next:       h.next.WithAttrs(attrs),
		alerter:    h.alerter,
		alertLevel: h.alertLevel,
	}
}

func (h *telegramHandler) WithGroup(name string) slog.Handler {
	return &telegramHandler{
		next:       h.next.WithGroup(name),
		alerter:    h.alerter,
		alertLevel: h.alertLevel,
	}
}
