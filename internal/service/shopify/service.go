package shopify

import (
	"ShopBridge/internal/config"
	"ShopBridge/internal/lib/sl"
	"log/slog"
)

// Service is a thin client for the Shopify Admin REST API.
type Service struct {
	ShopDomain    string
	AccessToken   string
	WebhookSecret string
	ApiVersion    string
	Log           *slog.Logger
}

func NewService(conf *config.Config, logger *slog.Logger) *Service {
	return &Service{
		ShopDomain:    conf.Shopify.ShopDomain,
		AccessToken:   conf.Shopify.AccessToken,
		WebhookSecret: conf.Shopify.WebhookSecret,
		ApiVersion:    conf.Shopify.ApiVersion,
		Log:           logger.With(sl.Module("shopify service")),
	}
}
