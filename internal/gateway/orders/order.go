package order

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"zistino-dispatch/internal/domain"
)

const (
	dateLayout    = "2006-01-02"
	maxErrorBytes = 512
)

// StatusError is a non-2xx answer from the orders service.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("orders service: HTTP %d: %s", e.Code, e.Body)
}

type orderDTO struct {
	ID           string   `json:"id"`
	Status       string   `json:"status"`
	Address      string   `json:"address"`
	Phone        string   `json:"phone"`
	Latitude     *float64 `json:"latitude"`
	Longitude    *float64 `json:"longitude"`
	DeliveryDate string   `json:"delivery_date"`
}

func (d orderDTO) toDomain() (domain.Order, error) {
	o := domain.Order{
		ID:        d.ID,
		Address:   d.Address,
		Phone:     d.Phone,
		Latitude:  d.Latitude,
		Longitude: d.Longitude,
	}
	if d.DeliveryDate != "" {
		t, err := time.Parse(dateLayout, d.DeliveryDate)
		if err != nil {
			if t, err = time.Parse(time.RFC3339, d.DeliveryDate); err != nil {
				return domain.Order{}, fmt.Errorf("delivery_date %q: %w", d.DeliveryDate, err)
			}
		}
		o.DeliveryDate = &t
	}
	return o, nil
}

// HTTPGateway reads orders from the orders service REST API.
type HTTPGateway struct {
	base   *url.URL
	client *http.Client
}

// NewHTTPGateway creates an orders gateway. It returns nil, nil when baseURL is empty.
func NewHTTPGateway(baseURL string, timeout time.Duration) (*HTTPGateway, error) {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return nil, nil
	}
	u, err := url.Parse(baseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("orders gateway: invalid base url %q", baseURL)
	}
	return &HTTPGateway{base: u, client: &http.Client{Timeout: timeout}}, nil
}

// GetByID fetches one order. A missing order yields nil, nil.
func (g *HTTPGateway) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	u := g.base.JoinPath("orders", id)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("orders gateway: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("orders gateway: GetByID: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, nil
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBytes))
		return nil, &StatusError{Code: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}

	var dto orderDTO
	if err := json.NewDecoder(resp.Body).Decode(&dto); err != nil {
		return nil, fmt.Errorf("orders gateway: decode: %w", err)
	}
	if dto.ID == "" {
		dto.ID = id
	}
	o, err := dto.toDomain()
	if err != nil {
		return nil, fmt.Errorf("orders gateway: %w", err)
	}
	return &o, nil
}

func retryableStatus(code int) bool {
	switch code {
	case http.StatusTooManyRequests,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		return true
	default:
		return false
	}
}

// isRetryable reports whether a failed call may succeed if repeated.
func isRetryable(err error) bool {
	var se *StatusError
	if errors.As(err, &se) {
		return retryableStatus(se.Code)
	}
	if errors.Is(err, context.Canceled) {
		return false
	}
	var ue *url.Error
	return errors.As(err, &ue)
}
