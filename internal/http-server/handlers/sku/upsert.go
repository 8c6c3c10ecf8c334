package sku

import (
	"ShopBridge/entity"
	"ShopBridge/internal/lib/api/response"
	"ShopBridge/internal/lib/sl"
	"fmt"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"log/slog"
	"net/http"
)

// Upsert creates or replaces one SKU mapping. A product id of 0 keeps the
// SKU known but drops its line items during mapping.
func Upsert(log *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mod := sl.Module("http.handlers.sku")

		logger := log.With(
			mod,
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		if handler == nil {
			logger.Error("sku mappings not available")
			render.JSON(w, r, response.Error("SKU mappings not available"))
			return
		}

		var mapping entity.SkuMapping
		if err := render.Bind(r, &mapping); err != nil {
			logger.Error("failed to bind request body", sl.Err(err))
			render.JSON(w, r, response.Error("Invalid request body"))
			return
		}

		logger = logger.With(
			slog.String("sku", mapping.SKU),
			slog.Int64("product_id", mapping.ProductID),
		)

		if err := handler.UpsertSkuMapping(&mapping); err != nil {
			logger.Error("upsert sku mapping", sl.Err(err))
			render.JSON(w, r, response.Error(fmt.Sprintf("Upsert failed: %v", err)))
			return
		}
		logger.Debug("upsert sku mapping")

		render.JSON(w, r, response.Ok(mapping))
	}
}
