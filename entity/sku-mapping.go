package entity

import (
	"ShopBridge/internal/lib/validate"
	"net/http"
)

// SkuMapping links a Shopify SKU to a Bitrix24 catalog product id.
// A product id of 0 means the SKU is deliberately unmapped and its line
// items are dropped during mapping.
type SkuMapping struct {
	SKU       string `json:"sku" bson:"sku" validate:"required"`
	ProductID int64  `json:"product_id" bson:"product_id"`
}

func (s *SkuMapping) Bind(_ *http.Request) error {
	return validate.Struct(s)
}

// StageMapping links a Shopify financial status to a Bitrix24 pipeline stage.
type StageMapping struct {
	FinancialStatus string `json:"financial_status" bson:"financial_status" validate:"required"`
	StageID         string `json:"stage_id" bson:"stage_id" validate:"required"`
}

func (s *StageMapping) Bind(_ *http.Request) error {
	return validate.Struct(s)
}

// SourceMapping links a Shopify source channel name to a Bitrix24 source id.
type SourceMapping struct {
	SourceName string `json:"source_name" bson:"source_name" validate:"required"`
	SourceID   string `json:"source_id" bson:"source_id" validate:"required"`
}

func (s *SourceMapping) Bind(_ *http.Request) error {
	return validate.Struct(s)
}
