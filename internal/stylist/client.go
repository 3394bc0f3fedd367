// Package stylist calls the generative styling-advice backend. Advice
// is decorative; the client degrades to canned copy on any failure.
package stylist

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/straatfanaat/shop/internal/config"
	"github.com/straatfanaat/shop/internal/constants"
	"github.com/straatfanaat/shop/internal/logger"
)

const (
	defaultEndpoint = "https://generativelanguage.googleapis.com/v1beta/models"
	defaultModel    = "gemini-3-flash-preview"

	// Fallbacks shown to shoppers when the model returns nothing or
	// the call fails.
	fallbackEmpty = "Keep it street. Keep it real."
	fallbackError = "Error connecting to the street matrix."
)

// Client talks to the advice backend.
type Client struct {
	endpoint   string
	apiKey     string
	model      string
	httpClient *http.Client
}

// New creates a stylist client from config.
func New(cfg *config.StylistConfig) *Client {
	endpoint := strings.TrimRight(strings.TrimSpace(cfg.Endpoint), "/")
	if endpoint == "" {
		endpoint = defaultEndpoint
	}
	model := strings.TrimSpace(cfg.Model)
	if model == "" {
		model = defaultModel
	}
	timeout := time.Duration(cfg.TimeoutMS) * time.Millisecond
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Client{
		endpoint:   endpoint,
		apiKey:     cfg.APIKey,
		model:      model,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type generateRequest struct {
	Contents []content `json:"contents"`
	Config   genConfig `json:"generationConfig"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type genConfig struct {
	Temperature float64 `json:"temperature"`
	TopP        float64 `json:"topP"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// Advice returns styling copy for a product. It never returns an
// error; failures collapse into the fallback lines.
func (c *Client) Advice(ctx context.Context, productName, language string) string {
	body, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: buildPrompt(productName, language)}}}},
		Config:   genConfig{Temperature: 0.9, TopP: 0.95},
	})
	if err != nil {
		logger.Warnw("stylist_request_marshal_failed", "error", err)
		return fallbackError
	}

	url := fmt.Sprintf("%s/%s:generateContent", c.endpoint, c.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		logger.Warnw("stylist_request_build_failed", "error", err)
		return fallbackError
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("x-goog-api-key", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Warnw("stylist_call_failed", "error", err)
		return fallbackError
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		logger.Warnw("stylist_call_bad_status", "status", resp.StatusCode)
		return fallbackError
	}

	var decoded generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		logger.Warnw("stylist_response_decode_failed", "error", err)
		return fallbackError
	}

	text := extractText(decoded)
	if strings.TrimSpace(text) == "" {
		return fallbackEmpty
	}
	return text
}

func extractText(resp generateResponse) string {
	var b strings.Builder
	for _, cand := range resp.Candidates {
		for _, p := range cand.Content.Parts {
			b.WriteString(p.Text)
		}
		break
	}
	return b.String()
}

func buildPrompt(productName, language string) string {
	lang := "English"
	switch strings.ToUpper(strings.TrimSpace(language)) {
	case constants.LanguageNL:
		lang = "Dutch"
	case constants.LanguagePL:
		lang = "Polish"
	}
	return fmt.Sprintf(`You are a professional streetwear stylist for the brand "STRAATFANAAT".
Provide a short, cool, and aggressive styling advice (max 3 sentences) for the product: %q.
The tone should be urban, bold, and authentic.
Language to respond in: %s.`, productName, lang)
}
