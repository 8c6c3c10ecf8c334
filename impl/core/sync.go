package core

import (
	"ShopBridge/entity"
	"ShopBridge/internal/lib/sl"
	"ShopBridge/internal/mapper"
	"fmt"
	"log/slog"
	"time"
)

// SyncOrder fetches one order from Shopify and upserts it into Bitrix24.
func (c *Core) SyncOrder(orderId string) (*entity.SyncRecord, error) {
	if c.shopify == nil {
		return nil, fmt.Errorf("shopify service not configured")
	}

	order, err := c.shopify.GetOrder(orderId)
	if err != nil {
		c.broadcastFailure(orderId, err)
		return nil, fmt.Errorf("fetch order: %w", err)
	}

	return c.syncOrder(order)
}

// HandleOrderWebhook upserts an order delivered by a Shopify webhook.
func (c *Core) HandleOrderWebhook(order *entity.ShopifyOrder) (*entity.SyncRecord, error) {
	return c.syncOrder(order)
}

// VerifyWebhook exposes webhook signature verification to the HTTP layer.
func (c *Core) VerifyWebhook(body []byte, signature string) bool {
	if c.shopify == nil {
		return false
	}
	return c.shopify.VerifyWebhook(body, signature)
}

func (c *Core) syncOrder(order *entity.ShopifyOrder) (*entity.SyncRecord, error) {
	if c.bitrix == nil {
		return nil, fmt.Errorf("bitrix service not configured")
	}

	res := mapper.MapOrderToDeal(order, c.MapperConfig())
	orderId := res.Deal.ShopifyOrderID

	log := c.log.With(
		slog.String("order_id", orderId),
		slog.String("order_name", order.Name),
	)

	dealId, err := c.bitrix.FindDealByOrderID(orderId)
	if err != nil {
		c.broadcastFailure(orderId, err)
		return nil, fmt.Errorf("find deal: %w", err)
	}

	created := dealId == 0
	if created {
		dealId, err = c.bitrix.CreateDeal(&res.Deal)
		if err != nil {
			c.broadcastFailure(orderId, err)
			return nil, fmt.Errorf("create deal: %w", err)
		}
	} else {
		if err := c.bitrix.UpdateDeal(dealId, &res.Deal); err != nil {
			c.broadcastFailure(orderId, err)
			return nil, fmt.Errorf("update deal: %w", err)
		}
	}

	if err := c.bitrix.SetProductRows(dealId, res.ProductRows); err != nil {
		c.broadcastFailure(orderId, err)
		return nil, fmt.Errorf("set product rows: %w", err)
	}

	record := &entity.SyncRecord{
		OrderID:     orderId,
		OrderName:   order.Name,
		DealID:      dealId,
		Created:     created,
		SkippedSKUs: res.SkippedSKUs,
		SyncedAt:    time.Now().UTC(),
	}

	if c.repo != nil {
		if err := c.repo.SaveSyncRecord(record); err != nil {
			log.Error("save sync record", sl.Err(err))
		}
	}

	if c.hub != nil {
		c.hub.BroadcastSyncEvent(entity.SyncEvent{
			OrderID:     record.OrderID,
			OrderName:   record.OrderName,
			DealID:      record.DealID,
			SkippedSKUs: record.SkippedSKUs,
		})
	}

	log.With(
		slog.Int64("deal_id", dealId),
		slog.Bool("created", created),
		slog.Int("rows", len(res.ProductRows)),
		slog.Int("skipped", len(res.SkippedSKUs)),
	).Info("order synced")

	return record, nil
}

func (c *Core) broadcastFailure(orderId string, err error) {
	if c.hub == nil {
		return
	}
	c.hub.BroadcastSyncEvent(entity.SyncEvent{
		OrderID: orderId,
		Error:   err.Error(),
	})
}

// MapperConfig assembles the mapping configuration from the static config
// and the repository-backed lookup tables. Missing tables degrade to empty
// lookups rather than failing the sync.
func (c *Core) MapperConfig() mapper.Config {
	conf := mapper.Config{
		Warnf: func(format string, args ...any) {
			c.log.Warn(fmt.Sprintf(format, args...))
		},
	}
	if c.conf != nil {
		conf.CategoryID = c.conf.Sync.CategoryID
		conf.DefaultStageID = c.conf.Sync.DefaultStageID
		conf.ShippingProductID = c.conf.Sync.ShippingProductID
	}

	if c.repo == nil {
		return conf
	}

	skuTable, err := c.repo.ProductIDBySKU()
	if err != nil {
		c.log.Error("load sku mappings", sl.Err(err))
	}
	conf.ProductIDBySKU = skuTable

	stages, err := c.repo.StageMappings()
	if err != nil {
		c.log.Error("load stage mappings", sl.Err(err))
	}
	conf.StageForStatus = func(status string) string {
		return stages[status]
	}

	sources, err := c.repo.SourceMappings()
	if err != nil {
		c.log.Error("load source mappings", sl.Err(err))
	}
	conf.SourceForName = func(sourceName string) string {
		return sources[sourceName]
	}

	return conf
}
