package finnhub

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestGetQuote_ParsesQuote(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("token"); got != "test-key" {
			t.Errorf("token = %q, want test-key", got)
		}
		if got := r.URL.Query().Get("symbol"); got != "AAPL" {
			t.Errorf("symbol = %q, want AAPL", got)
		}
		w.Write([]byte(`{"c":227.52,"d":1.1,"dp":0.49,"h":229.87,"l":225.77,"o":226.5,"pc":226.42}`))
	}))
	defer srv.Close()

	client := NewClient("test-key", WithBaseURL(srv.URL))
	quote, err := client.GetQuote(context.Background(), "aapl")
	if err != nil {
		t.Fatalf("GetQuote returned error: %v", err)
	}

	if quote.Symbol != "AAPL" {
		t.Errorf("symbol = %q, want AAPL (uppercased)", quote.Symbol)
	}
	if quote.Price != 227.52 {
		t.Errorf("price = %v, want 227.52", quote.Price)
	}
	if quote.PreviousClose != 226.42 {
		t.Errorf("previous close = %v, want 226.42", quote.PreviousClose)
	}
}

func TestGetQuote_UnknownSymbolIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Finnhub answers 200 with zeroes for unknown symbols
		w.Write([]byte(`{"c":0,"d":null,"dp":null,"h":0,"l":0,"o":0,"pc":0}`))
	}))
	defer srv.Close()

	client := NewClient("test-key", WithBaseURL(srv.URL))
	if _, err := client.GetQuote(context.Background(), "ZZZZ"); err == nil {
		t.Fatal("expected error for unknown symbol")
	}
}
