package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	mw "github.com/amoghpatel/careerisk/internal/api/middleware"
	"github.com/amoghpatel/careerisk/internal/api/response"
)

// Dependencies holds all handler dependencies for the router.
type Dependencies struct {
	AssessHandler http.HandlerFunc
	ChatHandler   http.HandlerFunc
	HealthHandler http.HandlerFunc
}

// NewRouter builds the Chi router with the middleware stack and all routes.
func NewRouter(deps Dependencies) http.Handler {
	r := chi.NewRouter()

	r.Use(mw.RequestID)
	r.Use(mw.Logger)
	r.Use(mw.Recovery)

	r.Get("/api/v1/health", orNotImplemented(deps.HealthHandler))

	r.Post("/assess", orNotImplemented(deps.AssessHandler))
	r.Post("/chat", orNotImplemented(deps.ChatHandler))

	return r
}

// orNotImplemented returns the handler if non-nil, or a 501 placeholder.
func orNotImplemented(h http.HandlerFunc) http.HandlerFunc {
	if h != nil {
		return h
	}
	return func(w http.ResponseWriter, r *http.Request) {
		response.Error(w, http.StatusNotImplemented, "endpoint not implemented")
	}
}
