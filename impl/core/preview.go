package core

import (
	"ShopBridge/entity"
	"ShopBridge/internal/mapper"
)

// PreviewOrder maps an order without touching the CRM.
func (c *Core) PreviewOrder(order *entity.ShopifyOrder) (*entity.MappingPreview, error) {
	res := mapper.MapOrderToDeal(order, c.MapperConfig())
	return &entity.MappingPreview{
		Deal:        res.Deal,
		ProductRows: res.ProductRows,
		SkippedSKUs: res.SkippedSKUs,
	}, nil
}
