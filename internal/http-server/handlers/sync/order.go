package sync

import (
	"ShopBridge/internal/lib/api/response"
	"ShopBridge/internal/lib/sl"
	"encoding/json"
	"fmt"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"log/slog"
	"net/http"
)

type OrderRequest struct {
	OrderID string `json:"order_id"`
}

// Order triggers a manual sync of one Shopify order into Bitrix24.
func Order(log *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mod := sl.Module("http.handlers.sync")

		logger := log.With(
			mod,
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		if handler == nil {
			logger.Error("sync not available")
			render.JSON(w, r, response.Error("Sync not available"))
			return
		}

		var req OrderRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Error("failed to decode request body", sl.Err(err))
			render.JSON(w, r, response.Error("Invalid request body"))
			return
		}

		if req.OrderID == "" {
			logger.Error("no order id provided")
			render.JSON(w, r, response.Error("No order id provided"))
			return
		}

		logger = logger.With(slog.String("order_id", req.OrderID))

		record, err := handler.SyncOrder(req.OrderID)
		if err != nil {
			logger.Error("order sync", sl.Err(err))
			render.JSON(w, r, response.Error(fmt.Sprintf("Sync failed: %v", err)))
			return
		}
		logger.Debug("order sync")

		render.JSON(w, r, response.Ok(record))
	}
}
