package geoip

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestIPAPIServiceImpl_Resolve(t *testing.T) {
	tests := []struct {
		name     string
		handler  http.HandlerFunc
		addr     string
		expected string
	}{
		{
			name: "successful lookup",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"status":"success","city":"Hyderabad","country":"India"}`))
			},
			addr:     "203.0.113.9",
			expected: "Hyderabad, India",
		},
		{
			name: "provider reports failure",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"status":"fail","message":"private range"}`))
			},
			addr:     "192.168.0.1",
			expected: UnknownLocation,
		},
		{
			name: "http error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadGateway)
			},
			addr:     "203.0.113.9",
			expected: UnknownLocation,
		},
		{
			name: "garbage body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte("not json"))
			},
			addr:     "203.0.113.9",
			expected: UnknownLocation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			svc := NewIPAPIService(server.URL, time.Second)
			if got := svc.Resolve(context.Background(), tt.addr); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestIPAPIServiceImpl_Resolve_StripsPort(t *testing.T) {
	var requestedPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestedPath = r.URL.Path
		w.Write([]byte(`{"status":"success","city":"Paris","country":"France"}`))
	}))
	defer server.Close()

	svc := NewIPAPIService(server.URL, time.Second)
	if got := svc.Resolve(context.Background(), "203.0.113.9:54321"); got != "Paris, France" {
		t.Fatalf("unexpected result %q", got)
	}
	if requestedPath != "/203.0.113.9" {
		t.Errorf("expected port stripped from lookup, got %q", requestedPath)
	}
}

func TestIPAPIServiceImpl_Resolve_UnreachableEndpoint(t *testing.T) {
	svc := NewIPAPIService("http://127.0.0.1:1", 100*time.Millisecond)
	if got := svc.Resolve(context.Background(), "203.0.113.9"); got != UnknownLocation {
		t.Errorf("expected fallback, got %q", got)
	}
}
