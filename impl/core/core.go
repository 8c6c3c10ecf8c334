package core

import (
	"ShopBridge/entity"
	"ShopBridge/internal/config"
	"ShopBridge/internal/lib/sl"
	"fmt"
	"log/slog"
)

type Repository interface {
	CheckApiKey(key string) (string, error)
	GenerateApiKey(username string) (string, error)

	ProductIDBySKU() (map[string]int64, error)
	StageMappings() (map[string]string, error)
	SourceMappings() (map[string]string, error)

	ListSkuMappings() ([]entity.SkuMapping, error)
	UpsertSkuMapping(mapping *entity.SkuMapping) error
	DeleteSkuMapping(sku string) error

	SaveSyncRecord(record *entity.SyncRecord) error
	ListSyncRecords(limit int64) ([]entity.SyncRecord, error)
}

type ShopifyService interface {
	GetOrder(orderId string) (*entity.ShopifyOrder, error)
	VerifyWebhook(body []byte, signature string) bool
}

type BitrixService interface {
	FindDealByOrderID(orderId string) (int64, error)
	CreateDeal(fields *entity.DealFields) (int64, error)
	UpdateDeal(dealId int64, fields *entity.DealFields) error
	SetProductRows(dealId int64, rows []entity.ProductRow) error
}

// Broadcaster pushes sync events to connected dashboard clients.
type Broadcaster interface {
	BroadcastSyncEvent(event entity.SyncEvent)
}

// Core wires the repository and the two remote services together and backs
// every HTTP handler interface.
type Core struct {
	log     *slog.Logger
	conf    *config.Config
	authKey string

	repo    Repository
	shopify ShopifyService
	bitrix  BitrixService
	hub     Broadcaster
}

func New(conf *config.Config, log *slog.Logger) *Core {
	return &Core{
		conf: conf,
		log:  log.With(sl.Module("core")),
	}
}

func (c *Core) SetAuthKey(key string) {
	c.authKey = key
}

func (c *Core) SetRepository(repo Repository) {
	c.repo = repo
}

func (c *Core) SetShopifyService(service ShopifyService) {
	c.shopify = service
}

func (c *Core) SetBitrixService(service BitrixService) {
	c.bitrix = service
}

func (c *Core) SetBroadcaster(hub Broadcaster) {
	c.hub = hub
}

// AuthenticateByToken resolves a bearer token to an API user. The static
// listen key always works; other tokens are looked up in the repository.
func (c *Core) AuthenticateByToken(token string) (*entity.UserAuth, error) {
	if c.authKey != "" && token == c.authKey {
		return &entity.UserAuth{Username: "api", Token: token}, nil
	}

	if c.repo == nil {
		return nil, fmt.Errorf("no repository configured")
	}

	username, err := c.repo.CheckApiKey(token)
	if err != nil {
		return nil, fmt.Errorf("check api key: %w", err)
	}

	return &entity.UserAuth{Username: username, Token: token}, nil
}

func (c *Core) GenerateApiKey(username string) (string, error) {
	if c.repo == nil {
		return "", fmt.Errorf("no repository configured")
	}
	return c.repo.GenerateApiKey(username)
}
