package api

import (
	"ShopBridge/internal/config"
	"ShopBridge/internal/http-server/handlers/errors"
	"ShopBridge/internal/http-server/handlers/key"
	"ShopBridge/internal/http-server/handlers/mapping"
	"ShopBridge/internal/http-server/handlers/sku"
	syncHandlers "ShopBridge/internal/http-server/handlers/sync"
	"ShopBridge/internal/http-server/handlers/webhook"
	"ShopBridge/internal/http-server/middleware/authenticate"
	"ShopBridge/internal/http-server/middleware/timeout"
	"ShopBridge/internal/lib/sl"
	"ShopBridge/internal/ws"
	"fmt"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"log/slog"
	"net"
	"net/http"
)

type Server struct {
	conf       *config.Config
	httpServer *http.Server
	log        *slog.Logger
}

type Handler interface {
	authenticate.Authenticate
	webhook.Core
	syncHandlers.Core
	mapping.Core
	sku.Core
	key.Core
}

func New(conf *config.Config, log *slog.Logger, handler Handler, hub *ws.Hub) error {

	server := Server{
		conf: conf,
		log:  log.With(sl.Module("api.server")),
	}

	router := chi.NewRouter()
	router.Use(timeout.Timeout(15))
	router.Use(middleware.RequestID)
	router.Use(middleware.Recoverer)
	router.Use(render.SetContentType(render.ContentTypeJSON))

	router.NotFound(errors.NotFound(log))
	router.MethodNotAllowed(errors.NotAllowed(log))

	// Shopify authenticates webhooks with its own HMAC signature, and the
	// dashboard socket carries its token as a query param. Both stay outside
	// the bearer-auth group.
	router.Post("/webhooks/shopify/orders", webhook.ShopifyOrders(log, handler))

	if hub != nil {
		router.Get("/ws/events", func(w http.ResponseWriter, r *http.Request) {
			ws.ServeWs(hub, wsAuth{handler}, log, w, r)
		})
	}

	router.Group(func(protected chi.Router) {
		protected.Use(authenticate.New(log, handler))

		protected.Route("/api/v1", func(v1 chi.Router) {
			v1.Route("/sync", func(r chi.Router) {
				r.Post("/order", syncHandlers.Order(log, handler))
				r.Get("/log", syncHandlers.Log(log, handler))
			})
			v1.Route("/mapping", func(r chi.Router) {
				r.Post("/preview", mapping.Preview(log, handler))
			})
			v1.Route("/sku", func(r chi.Router) {
				r.Get("/", sku.List(log, handler))
				r.Post("/", sku.Upsert(log, handler))
				r.Delete("/{sku}", sku.Delete(log, handler))
			})
			v1.Route("/key", func(r chi.Router) {
				r.Post("/new", key.Generate(log, handler))
			})
		})
	})

	httpLog := slog.NewLogLogger(log.Handler(), slog.LevelError)
	server.httpServer = &http.Server{
		Handler:  router,
		ErrorLog: httpLog,
	}

	serverAddress := fmt.Sprintf("%s:%s", conf.Listen.BindIP, conf.Listen.Port)
	listener, err := net.Listen("tcp", serverAddress)
	if err != nil {
		return err
	}

	server.log.Info("starting api server", slog.String("address", serverAddress))

	return server.httpServer.Serve(listener)
}

// wsAuth adapts the bearer-token authenticator to the websocket handshake.
type wsAuth struct {
	auth authenticate.Authenticate
}

func (a wsAuth) ValidateToken(token string) (string, error) {
	user, err := a.auth.AuthenticateByToken(token)
	if err != nil {
		return "", err
	}
	return user.Username, nil
}
