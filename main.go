package main

import (
	"ShopBridge/impl/core"
	"ShopBridge/internal/config"
	repository "ShopBridge/internal/database"
	"ShopBridge/internal/http-server/api"
	"ShopBridge/internal/lib/logger"
	"ShopBridge/internal/lib/sl"
	"ShopBridge/internal/notifier"
	"ShopBridge/internal/service/bitrix"
	"ShopBridge/internal/service/shopify"
	"ShopBridge/internal/ws"
	"flag"
	"log/slog"
)

func main() {

	configPath := flag.String("conf", "config.yml", "path to config file")
	logPath := flag.String("log", "/var/log/", "path to log file directory")
	flag.Parse()

	conf := config.MustLoad(*configPath)
	lg := logger.SetupLogger(conf.Env, *logPath)

	if conf.Telegram.Enabled {
		tgBot, err := notifier.NewTgBot(conf.Telegram.ApiKey, conf.Telegram.AdminId, lg)
		if err != nil {
			lg.Error("failed to initialize telegram bot", sl.Err(err))
		} else {
			lg = logger.SetupTelegramHandler(lg, tgBot, slog.LevelError)
			lg.With(
				slog.String("bot_name", conf.Telegram.BotName),
			).Info("telegram alerts initialized")
		}
	}

	lg.Info("starting shopbridge", slog.String("config", *configPath), slog.String("env", conf.Env))
	lg.Debug("debug messages enabled")

	handler := core.New(conf, lg)
	handler.SetAuthKey(conf.Listen.ApiKey)

	db, err := repository.NewMongoClient(conf, lg)
	if err != nil {
		lg.With(
			sl.Err(err),
		).Error("mongo client")
	}
	if db != nil {
		handler.SetRepository(db)
		lg.With(
			slog.String("host", conf.Mongo.Host),
			slog.String("port", conf.Mongo.Port),
			slog.String("user", conf.Mongo.User),
			slog.String("database", conf.Mongo.Database),
		).Info("mongo client initialized")
	}

	shopifyService := shopify.NewService(conf, lg)
	handler.SetShopifyService(shopifyService)
	lg.With(
		slog.String("shop", conf.Shopify.ShopDomain),
		sl.Secret("access_token", conf.Shopify.AccessToken),
	).Info("shopify service initialized")

	bitrixService := bitrix.NewService(conf, lg)
	handler.SetBitrixService(bitrixService)
	lg.With(
		slog.String("portal", conf.Bitrix.PortalURL),
		sl.Secret("client_id", conf.Bitrix.ClientID),
	).Info("bitrix service initialized")

	hub := ws.NewHub(lg)
	go hub.Run()
	handler.SetBroadcaster(hub)

	// *** blocking start with http server ***
	err = api.New(conf, lg, handler, hub)
	if err != nil {
		lg.Error("server start", sl.Err(err))
		return
	}
	lg.Error("service stopped")
}
