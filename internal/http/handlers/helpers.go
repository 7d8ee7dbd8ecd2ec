package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"

	"zistino-dispatch/internal/logx"
)

const bodyLimit = 1 << 20

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

func reqID(ctx context.Context) string {
	if id := middleware.GetReqID(ctx); id != "" {
		return id
	}
	return "-"
}

func writeJSON(logger logx.Logger, w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil && logger != nil {
		logger.Error("json encode failed",
			logx.String("request_id", reqID(r.Context())),
			logx.Err(err),
		)
	}
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error string `json:"error"`
}

func writeError(logger logx.Logger, w http.ResponseWriter, r *http.Request, status int, msg string) {
	if logger != nil {
		fields := []logx.Field{
			logx.String("request_id", reqID(r.Context())),
			logx.Int("status", status),
			logx.String("msg", msg),
		}
		if status >= http.StatusInternalServerError {
			logger.Error("http error", fields...)
		} else {
			logger.Debug("http error", fields...)
		}
	}
	writeJSON(logger, w, r, status, ErrorResponse{Error: msg})
}

// decodeJSON reads a single JSON document into dst and runs struct validation on it.
// On failure the 400 response is already written.
func decodeJSON[T any](logger logx.Logger, w http.ResponseWriter, r *http.Request, dst *T) bool {
	r.Body = http.MaxBytesReader(w, r.Body, bodyLimit)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		writeError(logger, w, r, http.StatusBadRequest, "invalid json")
		return false
	}
	if err := dec.Decode(new(struct{})); !errors.Is(err, io.EOF) {
		writeError(logger, w, r, http.StatusBadRequest, "invalid json: trailing data")
		return false
	}
	if err := validate.Struct(dst); err != nil {
		writeError(logger, w, r, http.StatusBadRequest, validationMessage(err))
		return false
	}
	return true
}

func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "invalid input"
	}
	fe := verrs[0]
	return "invalid " + fe.Field() + ": " + fe.Tag()
}

func idFromURL(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.New("invalid id")
	}
	return id, nil
}

// queryInt parses an optional non-negative integer query parameter.
func queryInt(r *http.Request, name string) (*int, error) {
	s := r.URL.Query().Get(name)
	if s == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 {
		return nil, errors.New("invalid " + name)
	}
	return &v, nil
}

func queryFloat(r *http.Request, name string) (float64, error) {
	v, err := strconv.ParseFloat(r.URL.Query().Get(name), 64)
	if err != nil {
		return 0, errors.New("invalid " + name)
	}
	return v, nil
}
