// Package whisper implements the transcription collaborator as an HTTP
// client against a whisper-server style endpoint.
package whisper

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/kirana-labs/kirana-backend/internal/config"
)

// Provider transcribes audio via a remote speech-to-text service.
type Provider struct {
	baseURL    string
	httpClient *http.Client
	log        *slog.Logger
}

// NewProvider creates a Provider from configuration.
func NewProvider(cfg config.WhisperConfig, logger *slog.Logger) *Provider {
	return &Provider{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{Timeout: cfg.Timeout},
		log:        logger.With("adapter", "whisper"),
	}
}

// asrResponse is the transcription endpoint's JSON body.
type asrResponse struct {
	Text string `json:"text"`
}

// Transcribe sends raw audio bytes for transcription and returns the
// trimmed transcript. An empty transcript is returned as-is; the caller
// decides whether that is a failure.
func (p *Provider) Transcribe(ctx context.Context, audio []byte, language string) (string, error) {
	reqURL := p.baseURL + "/asr"
	if language != "" {
		reqURL += "?language=" + url.QueryEscape(language)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(audio))
	if err != nil {
		return "", fmt.Errorf("whisper: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/octet-stream")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		p.log.ErrorContext(ctx, "whisper request failed", slog.String("error", err.Error()))
		return "", fmt.Errorf("whisper: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("whisper: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("whisper: read body: %w", err)
	}

	var out asrResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return "", fmt.Errorf("whisper: decode json: %w", err)
	}

	text := strings.TrimSpace(out.Text)

	p.log.DebugContext(ctx, "transcription complete",
		slog.Int("audio_bytes", len(audio)),
		slog.Int("transcript_len", len(text)),
	)

	return text, nil
}
