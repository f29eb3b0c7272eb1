package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestClient_GetJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("User-Agent") != "osuap" {
			t.Errorf("User-Agent = %q, want %q", r.Header.Get("User-Agent"), "osuap")
		}
		w.Write([]byte(`{"name":"catalog"}`))
	}))
	defer srv.Close()

	var got struct {
		Name string `json:"name"`
	}
	if err := NewClient().GetJSON(context.Background(), srv.URL, &got); err != nil {
		t.Fatalf("GetJSON failed: %v", err)
	}
	if got.Name != "catalog" {
		t.Errorf("Name = %q, want %q", got.Name, "catalog")
	}
}

func TestClient_StatusError(t *testing.T) {
	tests := []struct {
		code          int
		wantTemporary bool
	}{
		{http.StatusNotFound, false},
		{http.StatusTooManyRequests, true},
		{http.StatusBadGateway, true},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.code), func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.code)
			}))
			defer srv.Close()

			_, err := NewClient().Get(context.Background(), srv.URL)
			var status *StatusError
			if !errors.As(err, &status) {
				t.Fatalf("expected *StatusError, got %v", err)
			}
			if status.StatusCode != tt.code {
				t.Errorf("StatusCode = %d, want %d", status.StatusCode, tt.code)
			}
			if status.Temporary() != tt.wantTemporary {
				t.Errorf("Temporary() = %v, want %v", status.Temporary(), tt.wantTemporary)
			}
		})
	}
}
