package handlers

import (
	"errors"
	"net/http"

	"zistino-dispatch/internal/apperr"
	"zistino-dispatch/internal/logx"
)

// DriverHandler serves driver availability endpoints.
type DriverHandler struct {
	uc     driverUsecase
	logger logx.Logger
}

// NewDriverHandler wires a driver usecase into HTTP handlers.
func NewDriverHandler(logger logx.Logger, uc driverUsecase) *DriverHandler {
	return &DriverHandler{uc: uc, logger: logger}
}

// SetDriving handles PUT /driver/{id}/driving.
func (h *DriverHandler) SetDriving(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}
	var req setDrivingRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	err = h.uc.SetDriving(r.Context(), id, *req.Driving)
	switch {
	case err == nil:
		writeJSON(h.logger, w, r, http.StatusOK, map[string]any{"id": id, "is_driving": *req.Driving})
	case errors.Is(err, apperr.ErrInvalid):
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid input")
	case errors.Is(err, apperr.ErrNotFound):
		writeError(h.logger, w, r, http.StatusNotFound, "driver not found")
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}
