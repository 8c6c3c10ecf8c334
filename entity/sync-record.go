package entity

import "time"

// SyncRecord journals one completed order sync.
type SyncRecord struct {
	OrderID     string    `json:"order_id" bson:"order_id"`
	OrderName   string    `json:"order_name" bson:"order_name"`
	DealID      int64     `json:"deal_id" bson:"deal_id"`
	Created     bool      `json:"created" bson:"created"`
	SkippedSKUs []string  `json:"skipped_skus,omitempty" bson:"skipped_skus,omitempty"`
	SyncedAt    time.Time `json:"synced_at" bson:"synced_at"`
}

// MappingPreview is a dry-run mapping result for one order; nothing is
// written to Bitrix24.
type MappingPreview struct {
	Deal        DealFields   `json:"deal"`
	ProductRows []ProductRow `json:"product_rows"`
	SkippedSKUs []string     `json:"skipped_skus,omitempty"`
}

// SyncEvent is broadcast to dashboard clients after each sync attempt.
type SyncEvent struct {
	OrderID     string   `json:"order_id"`
	OrderName   string   `json:"order_name,omitempty"`
	DealID      int64    `json:"deal_id,omitempty"`
	SkippedSKUs []string `json:"skipped_skus,omitempty"`
	Error       string   `json:"error,omitempty"`
}
