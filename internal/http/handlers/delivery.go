package handlers

import (
	"errors"
	"net/http"
	"time"

	"zistino-dispatch/internal/apperr"
	"zistino-dispatch/internal/domain"
	"zistino-dispatch/internal/logx"
)

// DeliveryHandler handles HTTP requests for delivery resources.
type DeliveryHandler struct {
	usecase deliveryUsecase
	logger  logx.Logger
}

// NewDeliveryHandler creates a new DeliveryHandler.
func NewDeliveryHandler(logger logx.Logger, uc deliveryUsecase) *DeliveryHandler {
	return &DeliveryHandler{usecase: uc, logger: logger}
}

// Assign handles POST /delivery/assign.
//
// An order that matches no zone, or whose zone has no available driver, is answered with
// 422 and the reason; the order stays unassigned.
func (h *DeliveryHandler) Assign(w http.ResponseWriter, r *http.Request) {
	var req assignDeliveryRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	res, err := h.usecase.Assign(r.Context(), req.toDomain())
	switch {
	case err == nil:
		writeJSON(h.logger, w, r, http.StatusOK, assignResultToResponse(res))
	case errors.Is(err, apperr.ErrInvalid):
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid input")
	case errors.Is(err, apperr.ErrConflict):
		writeError(h.logger, w, r, http.StatusConflict, "order already assigned")
	case errors.Is(err, apperr.ErrNoZone):
		writeError(h.logger, w, r, http.StatusUnprocessableEntity, apperr.ErrNoZone.Error())
	case errors.Is(err, apperr.ErrNoDriver):
		writeError(h.logger, w, r, http.StatusUnprocessableEntity, apperr.ErrNoDriver.Error())
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}

// UpdateStatus handles POST /delivery/status.
func (h *DeliveryHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req updateStatusRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	res, err := h.usecase.UpdateStatus(r.Context(), req.OrderID, domain.DeliveryStatus(req.Status))
	switch {
	case err == nil:
		writeJSON(h.logger, w, r, http.StatusOK, statusResultToResponse(res))
	case errors.Is(err, apperr.ErrInvalid):
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid input")
	case errors.Is(err, apperr.ErrNotFound):
		writeError(h.logger, w, r, http.StatusNotFound, "delivery not found")
	case errors.Is(err, apperr.ErrConflict):
		writeError(h.logger, w, r, http.StatusConflict, "status transition not allowed")
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}

// Slot handles GET /delivery/slot?date=YYYY-MM-DD and previews the window an order
// placed now would get.
func (h *DeliveryHandler) Slot(w http.ResponseWriter, r *http.Request) {
	var target *time.Time
	if s := r.URL.Query().Get("date"); s != "" {
		d, err := time.Parse(dateLayout, s)
		if err != nil {
			writeError(h.logger, w, r, http.StatusBadRequest, "invalid date")
			return
		}
		target = &d
	}

	sel := h.usecase.PreviewSlot(r.Context(), target)
	writeJSON(h.logger, w, r, http.StatusOK, selectionToResponse(sel))
}
