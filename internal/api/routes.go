package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/yegors/co-atis/pkg/logger"
)

// Router is the API router
type Router struct {
	handler    *Handler
	middleware *Middleware
}

// NewRouter creates a new API router
func NewRouter(handler *Handler, logger *logger.Logger) *Router {
	return &Router{
		handler:    handler,
		middleware: NewMiddleware(logger),
	}
}

// Routes returns the HTTP handler. /favicon.ico is the only path that
// does not serve the ATIS record; method is never checked.
func (r *Router) Routes() http.Handler {
	router := chi.NewRouter()

	router.Use(r.middleware.RequestID)
	router.Use(r.middleware.Logger)
	router.Use(r.middleware.Recoverer)

	router.HandleFunc("/favicon.ico", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	router.HandleFunc("/*", r.handler.GetATIS)

	return router
}
