package key

import (
	"ShopBridge/internal/lib/api/response"
	"ShopBridge/internal/lib/sl"
	"encoding/json"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"log/slog"
	"net/http"
)

type GenerateRequest struct {
	Username string `json:"username"`
}

// Generate issues (or returns the existing) API key for a username.
func Generate(log *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mod := sl.Module("http.handlers.key")

		logger := log.With(
			mod,
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		var req GenerateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Error("failed to decode request body", sl.Err(err))
			render.JSON(w, r, response.Error("Invalid request body"))
			return
		}

		if req.Username == "" {
			logger.Error("no username provided")
			render.JSON(w, r, response.Error("No username provided"))
			return
		}

		logger = logger.With(slog.String("username", req.Username))

		apiKey, err := handler.GenerateApiKey(req.Username)
		if err != nil {
			logger.Error("generate api key", sl.Err(err))
			render.JSON(w, r, response.Error("Failed to generate key"))
			return
		}
		logger.Debug("generate api key")

		render.JSON(w, r, response.Ok(map[string]string{"key": apiKey}))
	}
}
