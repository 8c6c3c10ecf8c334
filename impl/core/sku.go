package core

import (
	"ShopBridge/entity"
	"fmt"
)

func (c *Core) ListSkuMappings() ([]entity.SkuMapping, error) {
	if c.repo == nil {
		return nil, fmt.Errorf("no repository configured")
	}
	return c.repo.ListSkuMappings()
}

func (c *Core) UpsertSkuMapping(mapping *entity.SkuMapping) error {
	if c.repo == nil {
		return fmt.Errorf("no repository configured")
	}
	return c.repo.UpsertSkuMapping(mapping)
}

func (c *Core) DeleteSkuMapping(sku string) error {
	if c.repo == nil {
		return fmt.Errorf("no repository configured")
	}
	return c.repo.DeleteSkuMapping(sku)
}

func (c *Core) ListSyncRecords(limit int64) ([]entity.SyncRecord, error) {
	if c.repo == nil {
		return nil, fmt.Errorf("no repository configured")
	}
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	return c.repo.ListSyncRecords(limit)
}
