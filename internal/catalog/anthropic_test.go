package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func newTestAnthropicFetcher(srv *httptest.Server) *anthropicFetcher {
	return &anthropicFetcher{
		baseURL: srv.URL,
		client:  srv.Client(),
		filter:  DefaultFilterConfig(),
	}
}

func TestAnthropicListingParsing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("x-api-key"); got != "ak" {
			t.Errorf("x-api-key header = %q, want ak", got)
		}
		if got := r.Header.Get("anthropic-version"); got != "2023-06-01" {
			t.Errorf("anthropic-version header = %q", got)
		}
		w.Write([]byte(`{
			"data": [
				{"id": "claude-sonnet-4-20250514", "display_name": "Claude Sonnet 4"},
				{"id": "claude-3-5-haiku-20241022", "display_name": ""},
				{"id": "gpt-4o", "display_name": "Not Ours"},
				{"id": "", "display_name": "Nameless"}
			]
		}`))
	}))
	defer srv.Close()

	defs, err := newTestAnthropicFetcher(srv).FetchModels(context.Background(), "ak")
	if err != nil {
		t.Fatalf("FetchModels: %v", err)
	}
	if len(defs) != 2 {
		t.Fatalf("expected 2 surviving models, got %d: %v", len(defs), defs)
	}
	// Keys come from the display name when the listing provides one, and
	// fall back to the raw identifier when it does not.
	if defs[0].Key != "anthropic/Claude Sonnet 4" {
		t.Errorf("key = %q, want anthropic/Claude Sonnet 4", defs[0].Key)
	}
	if defs[0].RawID != "claude-sonnet-4-20250514" {
		t.Errorf("raw id = %q, want the dated identifier", defs[0].RawID)
	}
	if defs[1].Key != "anthropic/claude-3-5-haiku-20241022" {
		t.Errorf("key = %q, want the raw id with provider prefix", defs[1].Key)
	}
}

func TestAnthropicListingHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": {"type": "authentication_error"}}`, http.StatusUnauthorized)
	}))
	defer srv.Close()

	_, err := newTestAnthropicFetcher(srv).FetchModels(context.Background(), "bad")
	if err == nil || !strings.Contains(err.Error(), "HTTP 401") {
		t.Errorf("expected an HTTP 401 error, got %v", err)
	}
}

func TestAnthropicMalformedListing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>gateway error</html>"))
	}))
	defer srv.Close()

	_, err := newTestAnthropicFetcher(srv).FetchModels(context.Background(), "ak")
	if err == nil || !strings.Contains(err.Error(), "malformed anthropic model listing") {
		t.Errorf("expected a malformed-listing error, got %v", err)
	}
}
