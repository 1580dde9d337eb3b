// Package twilio implements the WhatsApp chat transport: outbound messages
// and inbound media downloads against the Twilio REST API.
package twilio

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/kirana-labs/kirana-backend/internal/config"
	"github.com/kirana-labs/kirana-backend/internal/domain"
)

// codeRateLimited is Twilio's error code for exceeding the daily message
// limit on a WhatsApp sender.
const codeRateLimited = 63038

// maxMediaBytes caps inbound media downloads (voice notes are well under this).
const maxMediaBytes = 16 << 20

// Client sends WhatsApp messages and downloads inbound media via Twilio.
type Client struct {
	baseURL        string
	accountSID     string
	authToken      string
	fromNumber     string
	sendClient     *http.Client
	downloadClient *http.Client
	log            *slog.Logger
}

// NewClient creates a Client from configuration.
func NewClient(cfg config.TwilioConfig, logger *slog.Logger) *Client {
	return &Client{
		baseURL:        strings.TrimRight(cfg.BaseURL, "/"),
		accountSID:     cfg.AccountSID,
		authToken:      cfg.AuthToken,
		fromNumber:     cfg.FromNumber,
		sendClient:     &http.Client{Timeout: cfg.SendTimeout},
		downloadClient: &http.Client{Timeout: cfg.DownloadTimeout},
		log:            logger.With("adapter", "twilio"),
	}
}

// apiError mirrors Twilio's JSON error envelope.
type apiError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Send delivers one WhatsApp message. Rate-limit rejections (Twilio error
// code 63038) are returned as domain.ErrRateLimited so callers can treat
// them differently from hard failures.
func (c *Client) Send(ctx context.Context, to, body string) error {
	form := url.Values{}
	form.Set("To", to)
	form.Set("From", c.fromNumber)
	form.Set("Body", body)

	endpoint := fmt.Sprintf("%s/2010-04-01/Accounts/%s/Messages.json", c.baseURL, c.accountSID)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("twilio: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetBasicAuth(c.accountSID, c.authToken)

	resp, err := c.sendClient.Do(req)
	if err != nil {
		c.log.ErrorContext(ctx, "send request failed", slog.String("to", to), slog.String("error", err.Error()))
		return fmt.Errorf("twilio: send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		c.log.DebugContext(ctx, "message sent", slog.String("to", to), slog.Int("body_len", len(body)))
		return nil
	}

	respBody, readErr := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if readErr != nil {
		return fmt.Errorf("twilio: status %d, read error body: %w", resp.StatusCode, readErr)
	}

	var apiErr apiError
	if err := json.Unmarshal(respBody, &apiErr); err == nil && apiErr.Code == codeRateLimited {
		return fmt.Errorf("twilio: send to %s: %w", to, domain.ErrRateLimited)
	}

	c.log.ErrorContext(ctx, "send rejected",
		slog.String("to", to),
		slog.Int("status", resp.StatusCode),
		slog.Int("code", apiErr.Code),
	)
	return fmt.Errorf("twilio: send failed with status %d (code %d): %s", resp.StatusCode, apiErr.Code, apiErr.Message)
}

// DownloadMedia fetches inbound media content (a voice note) from the URL
// Twilio posted in the webhook. Media URLs require account basic auth.
func (c *Client) DownloadMedia(ctx context.Context, mediaURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, mediaURL, nil)
	if err != nil {
		return nil, fmt.Errorf("twilio: create media request: %w", err)
	}
	req.SetBasicAuth(c.accountSID, c.authToken)

	resp, err := c.downloadClient.Do(req)
	if err != nil {
		c.log.ErrorContext(ctx, "media download failed", slog.String("error", err.Error()))
		return nil, fmt.Errorf("twilio: media download: %w: %v", domain.ErrDownloadFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("twilio: media download status %d: %w", resp.StatusCode, domain.ErrDownloadFailed)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxMediaBytes+1))
	if err != nil {
		return nil, fmt.Errorf("twilio: read media body: %w: %v", domain.ErrDownloadFailed, err)
	}
	if len(data) > maxMediaBytes {
		return nil, fmt.Errorf("twilio: media exceeds %d bytes: %w", maxMediaBytes, domain.ErrDownloadFailed)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("twilio: empty media body: %w", domain.ErrDownloadFailed)
	}

	c.log.DebugContext(ctx, "media downloaded", slog.Int("bytes", len(data)))
	return data, nil
}

// IsRateLimited reports whether err is a rate-limit rejection from Send.
func IsRateLimited(err error) bool {
	return errors.Is(err, domain.ErrRateLimited)
}
