// Package classifier implements the grocery classification collaborator as
// an HTTP client against the classifier service.
package classifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/kirana-labs/kirana-backend/internal/config"
	"github.com/kirana-labs/kirana-backend/internal/provider"
)

// Provider extracts structured grocery items from free-form text via a
// remote classification service.
type Provider struct {
	baseURL    string
	httpClient *http.Client
	log        *slog.Logger
}

// NewProvider creates a Provider from configuration.
func NewProvider(cfg config.ClassifierConfig, logger *slog.Logger) *Provider {
	return &Provider{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{Timeout: cfg.Timeout},
		log:        logger.With("adapter", "classifier"),
	}
}

// Classify sends the utterance for item extraction and returns the parsed
// result. An empty item list is a valid result; the caller decides whether
// that means the utterance contained no groceries.
func (p *Provider) Classify(ctx context.Context, text string) (*provider.ClassificationResult, error) {
	payload, err := json.Marshal(classifyRequest{Text: text})
	if err != nil {
		return nil, fmt.Errorf("classifier: encode request: %w", err)
	}

	p.log.DebugContext(ctx, "classifier request", slog.Int("text_len", len(text)))

	resp, err := p.doWithRetry(ctx, payload)
	if err != nil {
		p.log.ErrorContext(ctx, "classifier request failed", slog.String("error", err.Error()))
		return nil, fmt.Errorf("classifier: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("classifier: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("classifier: read body: %w", err)
	}

	var out apiResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("classifier: decode json: %w", err)
	}

	result := mapAPIResponse(out)

	p.log.DebugContext(ctx, "classifier response",
		slog.Int("status", resp.StatusCode),
		slog.Int("items", len(result.Items)),
	)

	return result, nil
}

// doWithRetry executes the request with a single retry on 5xx or network
// errors. A fresh request is built per attempt so the body can be resent.
func (p *Provider) doWithRetry(ctx context.Context, payload []byte) (*http.Response, error) {
	resp, err := p.do(ctx, payload)

	shouldRetry := err != nil || (resp != nil && resp.StatusCode >= 500)
	if !shouldRetry {
		return resp, err
	}

	// Don't retry if context is already cancelled.
	if ctx.Err() != nil {
		return resp, err
	}

	reason := "network error"
	if err == nil && resp != nil {
		reason = fmt.Sprintf("status %d", resp.StatusCode)
	}
	p.log.WarnContext(ctx, "classifier retry", slog.String("reason", reason))

	// Close body from the failed attempt before retrying.
	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}

	time.Sleep(500 * time.Millisecond)

	return p.do(ctx, payload)
}

func (p *Provider) do(ctx context.Context, payload []byte) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/classify", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return p.httpClient.Do(req)
}

// mapAPIResponse converts the API items into a provider.ClassificationResult.
// Items with an empty name are dropped; a missing quantity defaults to "1".
func mapAPIResponse(out apiResponse) *provider.ClassificationResult {
	result := &provider.ClassificationResult{
		Items: []provider.ClassifiedItem{},
	}

	for _, it := range out.Items {
		name := strings.TrimSpace(it.Name)
		if name == "" {
			continue
		}
		qty := strings.TrimSpace(it.Quantity)
		if qty == "" {
			qty = "1"
		}
		result.Items = append(result.Items, provider.ClassifiedItem{
			Name:           name,
			Quantity:       qty,
			CategoryName:   strings.TrimSpace(it.CategoryName),
			CategoryNumber: it.CategoryNumber,
		})
	}

	return result
}
