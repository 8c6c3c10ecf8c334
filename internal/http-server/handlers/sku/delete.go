package sku

import (
	"ShopBridge/internal/lib/api/response"
	"ShopBridge/internal/lib/sl"
	"fmt"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"log/slog"
	"net/http"
)

// Delete removes one SKU mapping entirely.
func Delete(log *slog.Logger, handler Core) http.HandlerFunc {
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

		sku := chi.URLParam(r, "sku")
		if sku == "" {
			logger.Error("no sku provided")
			render.JSON(w, r, response.Error("No SKU provided"))
			return
		}

		logger = logger.With(slog.String("sku", sku))

		if err := handler.DeleteSkuMapping(sku); err != nil {
			logger.Error("delete sku mapping", sl.Err(err))
			render.JSON(w, r, response.Error(fmt.Sprintf("Delete failed: %v", err)))
			return
		}
		logger.Debug("delete sku mapping")

		render.JSON(w, r, response.Ok(nil))
	}
}
