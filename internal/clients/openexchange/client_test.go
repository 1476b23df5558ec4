package openexchange

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestGetLatestRates_ParsesSnapshot(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/latest.json" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.URL.Query().Get("app_id") != "test-app-id" {
			t.Errorf("app_id not forwarded, got %q", r.URL.Query().Get("app_id"))
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"timestamp":1756684800,"base":"USD","rates":{"EUR":0.86,"RUB":80.5,"USD":1}}`))
	}))
	defer srv.Close()

	client := NewClient("test-app-id", WithBaseURL(srv.URL))
	snapshot, err := client.GetLatestRates(context.Background())
	if err != nil {
		t.Fatalf("GetLatestRates returned error: %v", err)
	}

	if snapshot.Base != "USD" {
		t.Errorf("base = %q, want USD", snapshot.Base)
	}
	if len(snapshot.Rates) != 3 {
		t.Errorf("expected 3 rates, got %d", len(snapshot.Rates))
	}
	if rate := snapshot.Rates["EUR"]; rate != 0.86 {
		t.Errorf("EUR rate = %v, want 0.86", rate)
	}
	if snapshot.FetchedAt.Unix() != 1756684800 {
		t.Errorf("FetchedAt = %v, want feed timestamp", snapshot.FetchedAt)
	}
}

func TestGetLatestRates_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":true,"message":"invalid_app_id"}`))
	}))
	defer srv.Close()

	client := NewClient("bad-id", WithBaseURL(srv.URL))
	_, err := client.GetLatestRates(context.Background())

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %v", err)
	}
	if apiErr.StatusCode != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", apiErr.StatusCode)
	}
}

func TestGetLatestRates_EmptyFeedRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"timestamp":0,"base":"USD","rates":{}}`))
	}))
	defer srv.Close()

	client := NewClient("test-app-id", WithBaseURL(srv.URL))
	if _, err := client.GetLatestRates(context.Background()); err == nil {
		t.Fatal("expected error for empty rate feed")
	}
}
