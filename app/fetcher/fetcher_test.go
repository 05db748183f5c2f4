package fetcher

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/brasil-epg/grabber/app/config"
)

func TestFetchSendsConfiguredHeaders(t *testing.T) {
	var gotUserAgent, gotAuth string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserAgent = r.Header.Get("User-Agent")
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"ok": true}`))
	}))
	defer server.Close()

	svc := &config.Service{
		Name:    "Test",
		APIURL:  server.URL,
		Headers: map[string]string{"Authorization": "Bearer token"},
	}

	client := NewClient("Brasil-EPG/test", 5*time.Second)
	payload, err := client.Fetch(context.Background(), svc, 0, "")
	if err != nil {
		t.Fatal(err)
	}

	if gotUserAgent != "Brasil-EPG/test" {
		t.Errorf("Expected configured user agent, got %q", gotUserAgent)
	}
	if gotAuth != "Bearer token" {
		t.Errorf("Expected per-service header, got %q", gotAuth)
	}
	if m, ok := payload.(map[string]any); !ok || m["ok"] != true {
		t.Errorf("Expected decoded payload, got %v", payload)
	}
}

func TestFetchNonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	svc := &config.Service{Name: "Test", APIURL: server.URL}

	client := NewClient("Brasil-EPG/test", 5*time.Second)
	_, err := client.Fetch(context.Background(), svc, 0, "")

	var transportErr *TransportError
	if !errors.As(err, &transportErr) {
		t.Fatalf("Expected TransportError, got %v", err)
	}
	if transportErr.URL != server.URL {
		t.Errorf("Expected error to carry the URL, got %q", transportErr.URL)
	}
}

func TestDecodePreservesNumbers(t *testing.T) {
	payload, err := Decode([]byte(`{"start": 1700000000000}`))
	if err != nil {
		t.Fatal(err)
	}

	m, ok := payload.(map[string]any)
	if !ok {
		t.Fatalf("Expected map payload, got %T", payload)
	}

	number, ok := m["start"].(json.Number)
	if !ok {
		t.Fatalf("Expected json.Number, got %T", m["start"])
	}
	if number.String() != "1700000000000" {
		t.Errorf("Expected full precision, got %s", number.String())
	}
}
