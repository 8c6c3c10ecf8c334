package webhook

import (
	"ShopBridge/entity"
	"ShopBridge/internal/lib/sl"
	"encoding/json"
	"github.com/go-chi/chi/v5/middleware"
	"io"
	"log/slog"
	"net/http"
)

const signatureHeader = "X-Shopify-Hmac-Sha256"

// ShopifyOrders receives order create/update webhooks from Shopify.
// The payload signature is verified before anything is parsed; Shopify
// retries on non-2xx, so mapping failures still answer 200 once the
// payload is proven authentic.
func ShopifyOrders(log *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mod := sl.Module("http.handlers.webhook")

		logger := log.With(
			mod,
			slog.String("request_id", middleware.GetReqID(r.Context())),
			slog.String("topic", r.Header.Get("X-Shopify-Topic")),
		)

		body, err := io.ReadAll(r.Body)
		if err != nil {
			logger.Error("failed to read webhook body", sl.Err(err))
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}

		if !handler.VerifyWebhook(body, r.Header.Get(signatureHeader)) {
			logger.Error("webhook signature mismatch")
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		var order entity.ShopifyOrder
		if err := json.Unmarshal(body, &order); err != nil {
			logger.Error("failed to decode webhook order", sl.Err(err))
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}

		logger = logger.With(
			slog.String("order_id", order.ID.String()),
			slog.String("order_name", order.Name),
		)

		record, err := handler.HandleOrderWebhook(&order)
		if err != nil {
			logger.Error("order webhook sync", sl.Err(err))
			w.WriteHeader(http.StatusOK)
			return
		}

		logger.With(
			slog.Int64("deal_id", record.DealID),
		).Debug("order webhook sync")

		w.WriteHeader(http.StatusOK)
	}
}
