package party

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestGetPartyID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/party/PRIVATE/196505018585/partyId" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte(`"a2c1fc2c-1f0a-4a43-9b5c-9f4d27a9f3a1"`))
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)

	partyID, found, err := client.GetPartyID(context.Background(), TypePrivate, "196505018585")
	if err != nil {
		t.Fatalf("lookup returned error: %v", err)
	}
	if !found || partyID != "a2c1fc2c-1f0a-4a43-9b5c-9f4d27a9f3a1" {
		t.Fatalf("unexpected result: %q (%v)", partyID, found)
	}
}

func TestGetPartyIDNoMatch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)

	partyID, found, err := client.GetPartyID(context.Background(), TypePrivate, "190001019999")
	if err != nil {
		t.Fatalf("expected no error for a missing party, got %v", err)
	}
	if found || partyID != "" {
		t.Fatalf("expected no match, got %q (%v)", partyID, found)
	}
}

func TestGetPartyIDServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)

	if _, _, err := client.GetPartyID(context.Background(), TypePrivate, "196505018585"); err == nil {
		t.Fatal("expected error for server failure")
	}
}
