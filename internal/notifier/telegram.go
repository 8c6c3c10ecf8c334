// Package notifier delivers operator alerts to a Telegram admin chat.
package notifier

import (
	"ShopBridge/internal/lib/sl"
	"fmt"
	"log/slog"

	tgbotapi "github.com/PaulSonOfLars/gotgbot/v2"
)

type TgBot struct {
	log     *slog.Logger
	api     *tgbotapi.Bot
	adminId int64
}

func NewTgBot(apiKey string, adminId int64, log *slog.Logger) (*TgBot, error) {
	api, err := tgbotapi.NewBot(apiKey, nil)
	if err != nil {
		return nil, fmt.Errorf("creating api instance: %v", err)
	}

	return &TgBot{
		log:     log.With(sl.Module("tgbot")),
		api:     api,
		adminId: adminId,
	}, nil
}

// SendMessage pushes a plain-text alert to the admin chat. Delivery failures
// are logged and swallowed, alerting must never take the sync down.
func (t *TgBot) SendMessage(msg string) {
	if msg == "" {
		return
	}

	_, err := t.api.SendMessage(t.adminId, msg, nil)
	if err != nil {
		t.log.With(
			slog.Int64("id", t.adminId),
			sl.Err(err),
		).Error("send telegram alert")
	}
}
