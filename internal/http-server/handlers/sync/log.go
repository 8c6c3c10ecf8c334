package sync

import (
	"ShopBridge/internal/lib/api/response"
	"ShopBridge/internal/lib/sl"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"log/slog"
	"net/http"
	"strconv"
)

// Log returns the most recent sync journal entries.
func Log(log *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mod := sl.Module("http.handlers.sync")

		logger := log.With(
			mod,
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		if handler == nil {
			logger.Error("sync log not available")
			render.JSON(w, r, response.Error("Sync log not available"))
			return
		}

		limit, _ := strconv.ParseInt(r.URL.Query().Get("limit"), 10, 64)

		records, err := handler.ListSyncRecords(limit)
		if err != nil {
			logger.Error("list sync records", sl.Err(err))
			render.JSON(w, r, response.Error("Failed to load sync log"))
			return
		}
		logger.With(slog.Int("size", len(records))).Debug("list sync records")

		render.JSON(w, r, response.Ok(records))
	}
}
