package sku

import (
	"ShopBridge/internal/lib/api/response"
	"ShopBridge/internal/lib/sl"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"log/slog"
	"net/http"
)

// List returns the full SKU to catalog product id table.
func List(log *slog.Logger, handler Core) http.HandlerFunc {
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

		mappings, err := handler.ListSkuMappings()
		if err != nil {
			logger.Error("list sku mappings", sl.Err(err))
			render.JSON(w, r, response.Error("Failed to load SKU mappings"))
			return
		}
		logger.With(slog.Int("size", len(mappings))).Debug("list sku mappings")

		render.JSON(w, r, response.Ok(mappings))
	}
}
