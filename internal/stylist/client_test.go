package stylist

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/straatfanaat/shop/internal/config"
)

func newTestClient(serverURL string) *Client {
	return New(&config.StylistConfig{
		Endpoint:  serverURL,
		APIKey:    "test-key",
		Model:     "test-model",
		TimeoutMS: 2000,
	})
}

func TestAdviceReturnsModelText(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/test-model:generateContent") {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if got := r.Header.Get("x-goog-api-key"); got != "test-key" {
			t.Errorf("api key header want test-key got %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"Layer the hoodie "},{"text":"over a longline tee."}]}}]}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	advice := client.Advice(context.Background(), "Straat Oversized Hoodie", "EN")
	if advice != "Layer the hoodie over a longline tee." {
		t.Fatalf("unexpected advice: %q", advice)
	}
}

func TestAdviceFallsBackOnBadStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	if got := client.Advice(context.Background(), "Tunnel Beanie", "NL"); got != fallbackError {
		t.Fatalf("want error fallback got %q", got)
	}
}

func TestAdviceFallsBackOnEmptyCandidates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"candidates":[]}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	if got := client.Advice(context.Background(), "Tunnel Beanie", "PL"); got != fallbackEmpty {
		t.Fatalf("want empty fallback got %q", got)
	}
}

func TestAdviceFallsBackWhenServerUnreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := newTestClient(server.URL)
	if got := client.Advice(context.Background(), "Asfalt Cargo Pants", "EN"); got != fallbackError {
		t.Fatalf("want error fallback got %q", got)
	}
}

func TestBuildPromptLanguageMapping(t *testing.T) {
	cases := []struct {
		lang string
		want string
	}{
		{"NL", "Dutch"},
		{"nl", "Dutch"},
		{"PL", "Polish"},
		{"EN", "English"},
		{"", "English"},
	}
	for _, tc := range cases {
		prompt := buildPrompt("Tunnel Beanie", tc.lang)
		if !strings.Contains(prompt, "Language to respond in: "+tc.want+".") {
			t.Fatalf("buildPrompt(%q) missing language %s", tc.lang, tc.want)
		}
	}
}
