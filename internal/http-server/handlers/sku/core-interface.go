package sku

import "ShopBridge/entity"

type Core interface {
	ListSkuMappings() ([]entity.SkuMapping, error)
	UpsertSkuMapping(mapping *entity.SkuMapping) error
	DeleteSkuMapping(sku string) error
}
