package mapping

import (
	"ShopBridge/entity"
	"ShopBridge/internal/lib/api/response"
	"ShopBridge/internal/lib/sl"
	"encoding/json"
	"fmt"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"log/slog"
	"net/http"
)

// Preview maps an order payload without writing anything to the CRM, so
// mapping tables can be checked against real orders before going live.
func Preview(log *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mod := sl.Module("http.handlers.mapping")

		logger := log.With(
			mod,
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		if handler == nil {
			logger.Error("mapping preview not available")
			render.JSON(w, r, response.Error("Mapping preview not available"))
			return
		}

		var order entity.ShopifyOrder
		if err := json.NewDecoder(r.Body).Decode(&order); err != nil {
			logger.Error("failed to decode request body", sl.Err(err))
			render.JSON(w, r, response.Error("Invalid request body"))
			return
		}

		logger = logger.With(slog.String("order_id", order.ID.String()))

		preview, err := handler.PreviewOrder(&order)
		if err != nil {
			logger.Error("mapping preview", sl.Err(err))
			render.JSON(w, r, response.Error(fmt.Sprintf("Preview failed: %v", err)))
			return
		}
		logger.Debug("mapping preview")

		render.JSON(w, r, response.Ok(preview))
	}
}
