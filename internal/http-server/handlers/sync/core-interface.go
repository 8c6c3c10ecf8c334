package sync

import "ShopBridge/entity"

type Core interface {
	SyncOrder(orderId string) (*entity.SyncRecord, error)
	ListSyncRecords(limit int64) ([]entity.SyncRecord, error)
}
