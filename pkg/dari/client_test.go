package dari

import (
	"context"
	"net/http"
	"testing"
)

func TestNewRequiresAPIKey(t *testing.T) {
	_, err := New("")
	derr := asDariError(t, err)
	if derr.Kind != KindConfig {
		t.Fatalf("Kind = %q, want %q", derr.Kind, KindConfig)
	}
}

func TestNewDefaults(t *testing.T) {
	client, err := New("k")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if client.baseURL != DefaultBaseURL {
		t.Fatalf("baseURL = %q, want %q", client.baseURL, DefaultBaseURL)
	}
	if client.timeout != DefaultTimeout {
		t.Fatalf("timeout = %v, want %v", client.timeout, DefaultTimeout)
	}
}

func TestNewStripsTrailingSlash(t *testing.T) {
	client, err := New("k", WithBaseURL("https://api.example.com/"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if client.baseURL != "https://api.example.com" {
		t.Fatalf("baseURL = %q", client.baseURL)
	}
}

func TestClosedClientFailsFast(t *testing.T) {
	var hit bool
	client, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		hit = true
		w.WriteHeader(http.StatusNoContent)
	})

	if err := client.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	_, err := client.GetSession(context.Background(), "s1")
	derr := asDariError(t, err)
	if derr.Kind != KindConfig {
		t.Fatalf("Kind = %q, want %q", derr.Kind, KindConfig)
	}
	if hit {
		t.Fatalf("closed client reached the network")
	}
}
