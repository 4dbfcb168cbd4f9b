// Package location resolves a human-readable address for charging
// coordinates
package location

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/adipramono/chargelog/internal/apperr"
	"github.com/adipramono/chargelog/internal/session"
)

const (
	defaultEndpoint = "https://nominatim.openstreetmap.org/reverse"

	// lookupTimeout bounds the whole lookup; on expiry the caller gets a
	// typed failure and no session state changes.
	lookupTimeout = 30 * time.Second

	userAgent = "chargelog/1.0"
)

var (
	// ErrUnsupported signals that no coordinate source is available.
	ErrUnsupported = &apperr.Error{
		Message: "location detection is not supported here: pass --lat and --lon explicitly",
	}

	// ErrPermissionDenied signals that the geocoding service refused the
	// request.
	ErrPermissionDenied = &apperr.Error{
		Message: "the geocoding service denied the request",
	}

	// ErrUnavailable signals that the address lookup could not complete.
	ErrUnavailable = &apperr.Error{
		Message: "location information is unavailable",
	}

	// ErrTimeout signals that the lookup exceeded its time budget.
	ErrTimeout = &apperr.Error{
		Message: "the location request timed out",
	}
)

// Data is a resolved charging location.
type Data struct {
	Address     string
	Coordinates session.Coordinates
}

// Resolver looks up addresses through a reverse-geocoding endpoint.
type Resolver struct {
	client   *http.Client
	endpoint string
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithEndpoint overrides the reverse-geocoding URL.
func WithEndpoint(endpoint string) Option {
	return func(r *Resolver) {
		r.endpoint = endpoint
	}
}

// WithClient substitutes the HTTP client.
func WithClient(client *http.Client) Option {
	return func(r *Resolver) {
		r.client = client
	}
}

// NewResolver returns a Resolver backed by the public Nominatim endpoint
// unless overridden.
func NewResolver(opts ...Option) *Resolver {
	r := &Resolver{
		client:   &http.Client{},
		endpoint: defaultEndpoint,
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Resolve reverse-geocodes the coordinates into an address. A failed or
// empty lookup falls back to rendering the raw coordinates so the caller
// always gets a usable location string alongside a typed error where one
// applies.
func (r *Resolver) Resolve(
	ctx context.Context,
	lat, lon float64,
) (*Data, error) {
	ctx, cancel := context.WithTimeout(ctx, lookupTimeout)
	defer cancel()

	data := &Data{
		Address: FallbackAddress(lat, lon),
		Coordinates: session.Coordinates{
			Latitude:  lat,
			Longitude: lon,
		},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.endpoint, nil)
	if err != nil {
		return data, ErrUnavailable.Wrap(err)
	}

	q := url.Values{}
	q.Set("lat", strconv.FormatFloat(lat, 'f', 6, 64))
	q.Set("lon", strconv.FormatFloat(lon, 'f', 6, 64))
	q.Set("format", "jsonv2")
	q.Set("accept-language", "id")
	req.URL.RawQuery = q.Encode()

	req.Header.Set("User-Agent", userAgent)

	resp, err := r.client.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return data, ErrTimeout
		}

		return data, ErrUnavailable.Wrap(err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusForbidden ||
		resp.StatusCode == http.StatusUnauthorized:
		return data, ErrPermissionDenied
	case resp.StatusCode != http.StatusOK:
		return data, ErrUnavailable
	}

	var payload struct {
		DisplayName string `json:"display_name"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return data, ErrUnavailable.Wrap(err)
	}

	if payload.DisplayName != "" {
		data.Address = payload.DisplayName
	}

	return data, nil
}

// FallbackAddress renders coordinates as a plain string for when no address
// can be resolved.
func FallbackAddress(lat, lon float64) string {
	return fmt.Sprintf("%.6f, %.6f", lat, lon)
}
