package handlers

import (
	"net/http"

	"zistino-dispatch/internal/logx"
)

// Handlers holds the service-level endpoints.
type Handlers struct {
	Logger logx.Logger
}

// New creates a Handlers instance with the given logger.
func New(logger logx.Logger) *Handlers {
	return &Handlers{Logger: logger}
}

// Ping handles GET /ping and returns 200 with {"message":"pong"}.
func (h *Handlers) Ping(w http.ResponseWriter, r *http.Request) {
	writeJSON(h.Logger, w, r, http.StatusOK, map[string]string{"message": "pong"})
}

// HealthcheckHead handles HEAD /healthcheck and returns 204 No Content.
func (h *Handlers) HealthcheckHead(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}

// NotFound returns a JSON 404 error for unknown routes.
func (h *Handlers) NotFound(w http.ResponseWriter, r *http.Request) {
	writeError(h.Logger, w, r, http.StatusNotFound, "route not found")
}

// MethodNotAllowed returns a JSON 405 error.
func (h *Handlers) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeError(h.Logger, w, r, http.StatusMethodNotAllowed, "method not allowed")
}
