package location

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestResolveReturnsAddress(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			if got := r.URL.Query().Get("format"); got != "jsonv2" {
				t.Errorf("format = %q, want jsonv2", got)
			}

			if r.Header.Get("User-Agent") == "" {
				t.Error("missing User-Agent header")
			}

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(
				`{"display_name": "Jalan Sudirman, Jakarta Pusat, Indonesia"}`,
			))
		},
	))
	defer srv.Close()

	r := NewResolver(WithEndpoint(srv.URL))

	data, err := r.Resolve(context.Background(), -6.2, 106.816666)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	if data.Address != "Jalan Sudirman, Jakarta Pusat, Indonesia" {
		t.Errorf("Address = %q", data.Address)
	}

	if data.Coordinates.Latitude != -6.2 {
		t.Errorf("Latitude = %v, want -6.2", data.Coordinates.Latitude)
	}
}

func TestResolvePermissionDenied(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		},
	))
	defer srv.Close()

	r := NewResolver(WithEndpoint(srv.URL))

	data, err := r.Resolve(context.Background(), -6.2, 106.816666)
	if !errors.Is(err, ErrPermissionDenied) {
		t.Errorf("error = %v, want ErrPermissionDenied", err)
	}

	// the caller still gets a usable coordinate string
	if data.Address != "-6.200000, 106.816666" {
		t.Errorf("fallback address = %q", data.Address)
	}
}

func TestResolveUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		},
	))
	defer srv.Close()

	r := NewResolver(WithEndpoint(srv.URL))

	if _, err := r.Resolve(context.Background(), 0, 0); !errors.Is(err, ErrUnavailable) {
		t.Errorf("error = %v, want ErrUnavailable", err)
	}
}

func TestResolveEmptyResponseFallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{}`))
		},
	))
	defer srv.Close()

	r := NewResolver(WithEndpoint(srv.URL))

	data, err := r.Resolve(context.Background(), 1.5, 124.84)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	if data.Address != "1.500000, 124.840000" {
		t.Errorf("fallback address = %q", data.Address)
	}
}

func TestResolveRespectsContextCancellation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			<-r.Context().Done()
		},
	))
	defer srv.Close()

	r := NewResolver(WithEndpoint(srv.URL))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	data, err := r.Resolve(ctx, -6.2, 106.816666)
	if err == nil {
		t.Fatal("expected an error from a cancelled context")
	}

	if data == nil || data.Address == "" {
		t.Error("expected a fallback address even on failure")
	}
}
