package mapping

import "ShopBridge/entity"

type Core interface {
	PreviewOrder(order *entity.ShopifyOrder) (*entity.MappingPreview, error)
}
