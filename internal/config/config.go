package config

import (
	"ShopBridge/internal/lib/validate"
	"fmt"
	"github.com/ilyakaznacheev/cleanenv"
	"log"
	"sync"
)

type Config struct {
	Env      string `yaml:"env" env-default:"local"`
	Telegram struct {
		ApiKey  string `yaml:"api_key" env-default:""`
		AdminId int64  `yaml:"admin_id" env-default:"0"`
		BotName string `yaml:"bot_name" env-default:"ShopBridgeBot"`
		Enabled bool   `yaml:"enabled" env-default:"false"`
	} `yaml:"telegram"`
	Shopify struct {
		ShopDomain    string `yaml:"shop_domain" env-default:"" validate:"required"`
		AccessToken   string `yaml:"access_token" env-default:"" validate:"required"`
		WebhookSecret string `yaml:"webhook_secret" env-default:""`
		ApiVersion    string `yaml:"api_version" env-default:"2024-01"`
	} `yaml:"shopify"`
	Bitrix struct {
		PortalURL    string `yaml:"portal_url" env-default:"" validate:"required,url"`
		ClientID     string `yaml:"client_id" env-default:"" validate:"required"`
		ClientSecret string `yaml:"client_secret" env-default:"" validate:"required"`
		RefreshToken string `yaml:"refresh_token" env-default:"" validate:"required"`
	} `yaml:"bitrix"`
	Sync struct {
		CategoryID        int64  `yaml:"category_id" env-default:"0"`
		DefaultStageID    string `yaml:"default_stage_id" env-default:"NEW"`
		ShippingProductID int64  `yaml:"shipping_product_id" env-default:"0"`
	} `yaml:"sync"`
	Mongo struct {
		Enabled  bool   `yaml:"enabled" env-default:"false"`
		Host     string `yaml:"host" env-default:"127.0.0.1"`
		Port     string `yaml:"port" env-default:"27017"`
		User     string `yaml:"user" env-default:"admin"`
		Password string `yaml:"password" env-default:"pass"`
		Database string `yaml:"database" env-default:""`
	} `yaml:"mongo"`
	Listen struct {
		BindIP string `yaml:"bind_ip" env-default:"127.0.0.1"`
		Port   string `yaml:"port" env-default:"9100"`
		ApiKey string `yaml:"key" env-default:""`
	} `yaml:"listen"`
}

var instance *Config
var once sync.Once

func MustLoad(path string) *Config {
	var err error
	once.Do(func() {
		instance = &Config{}
		if err = cleanenv.ReadConfig(path, instance); err != nil {
			desc, _ := cleanenv.GetDescription(instance, nil)
			err = fmt.Errorf("%s; %s", err, desc)
			instance = nil
			log.Fatal(err)
		}
		if err = validate.Struct(instance); err != nil {
			instance = nil
			log.Fatal(fmt.Errorf("config validation: %w", err))
		}
	})
	return instance
}
