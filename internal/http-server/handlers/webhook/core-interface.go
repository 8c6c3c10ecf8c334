package webhook

import "ShopBridge/entity"

type Core interface {
	VerifyWebhook(body []byte, signature string) bool
	HandleOrderWebhook(order *entity.ShopifyOrder) (*entity.SyncRecord, error)
}
