package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"zistino-dispatch/internal/apperr"
	"zistino-dispatch/internal/logx"
)

// ZoneHandler serves the zone administration endpoints.
type ZoneHandler struct {
	uc     zoneUsecase
	logger logx.Logger
}

// NewZoneHandler wires a zone usecase into HTTP handlers.
func NewZoneHandler(logger logx.Logger, uc zoneUsecase) *ZoneHandler {
	return &ZoneHandler{uc: uc, logger: logger}
}

// GetByID handles GET /zone/{id}.
func (h *ZoneHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}

	z, err := h.uc.Get(r.Context(), id)
	switch {
	case err == nil:
		writeJSON(h.logger, w, r, http.StatusOK, zoneToResponse(*z))
	case errors.Is(err, apperr.ErrNotFound):
		writeError(h.logger, w, r, http.StatusNotFound, "zone not found")
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}

// List handles GET /zones?limit=&offset=.
func (h *ZoneHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, err.Error())
		return
	}
	offset, err := queryInt(r, "offset")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, err.Error())
		return
	}

	list, err := h.uc.List(r.Context(), limit, offset)
	if err != nil {
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, zonesToResponse(list))
}

// Create handles POST /zone.
func (h *ZoneHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req zoneRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	id, err := h.uc.Create(r.Context(), req.toDomain())
	switch {
	case err == nil:
		w.Header().Set("Location", "/zone/"+strconv.FormatInt(id, 10))
		writeJSON(h.logger, w, r, http.StatusCreated, map[string]any{"id": id})
	case errors.Is(err, apperr.ErrInvalid):
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid input")
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}

// Update handles PUT /zone with a partial update body.
func (h *ZoneHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req zoneUpdateRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	_, err := h.uc.UpdatePartial(r.Context(), req.toDomain())
	switch {
	case err == nil:
		writeJSON(h.logger, w, r, http.StatusOK, map[string]string{"status": "ok"})
	case errors.Is(err, apperr.ErrInvalid):
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid input")
	case errors.Is(err, apperr.ErrNotFound):
		writeError(h.logger, w, r, http.StatusNotFound, "zone not found")
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}

// Match handles GET /zones/match?lat=&lng=.
func (h *ZoneHandler) Match(w http.ResponseWriter, r *http.Request) {
	lat, err := queryFloat(r, "lat")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, err.Error())
		return
	}
	lng, err := queryFloat(r, "lng")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, err.Error())
		return
	}

	m, err := h.uc.Find(r.Context(), lat, lng)
	switch {
	case err == nil:
		writeJSON(h.logger, w, r, http.StatusOK, matchToResponse(m))
	case errors.Is(err, apperr.ErrNoZone):
		writeError(h.logger, w, r, http.StatusNotFound, apperr.ErrNoZone.Error())
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}

// Drivers handles GET /zone/{id}/drivers.
func (h *ZoneHandler) Drivers(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}

	list, err := h.uc.Drivers(r.Context(), id)
	switch {
	case err == nil:
		writeJSON(h.logger, w, r, http.StatusOK, zoneDriversToResponse(list))
	case errors.Is(err, apperr.ErrInvalid):
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid input")
	case errors.Is(err, apperr.ErrNotFound):
		writeError(h.logger, w, r, http.StatusNotFound, "zone not found")
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}

// AttachDriver handles POST /zone/{id}/drivers.
func (h *ZoneHandler) AttachDriver(w http.ResponseWriter, r *http.Request) {
	zoneID, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}
	var req attachDriverRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	linkID, err := h.uc.AttachDriver(r.Context(), zoneID, req.UserID, req.Priority)
	switch {
	case err == nil:
		writeJSON(h.logger, w, r, http.StatusCreated, map[string]any{"id": linkID})
	case errors.Is(err, apperr.ErrInvalid):
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid input")
	case errors.Is(err, apperr.ErrNotFound):
		writeError(h.logger, w, r, http.StatusNotFound, "zone or driver not found")
	case errors.Is(err, apperr.ErrConflict):
		writeError(h.logger, w, r, http.StatusConflict, "driver already linked to zone")
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}

// DetachDriver handles DELETE /zone/{id}/drivers/{user_id}.
func (h *ZoneHandler) DetachDriver(w http.ResponseWriter, r *http.Request) {
	zoneID, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}
	userID, err := idFromURL(r, "user_id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid user id")
		return
	}

	err = h.uc.DetachDriver(r.Context(), zoneID, userID)
	switch {
	case err == nil:
		w.WriteHeader(http.StatusNoContent)
	case errors.Is(err, apperr.ErrInvalid):
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid input")
	case errors.Is(err, apperr.ErrNotFound):
		writeError(h.logger, w, r, http.StatusNotFound, "link not found")
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}
