package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Twilio.AccountSID == "" || c.Twilio.AuthToken == "" {
		return fmt.Errorf("twilio credentials are required")
	}
	if !strings.HasPrefix(c.Twilio.FromNumber, "whatsapp:") {
		return fmt.Errorf("twilio.from_number must use the whatsapp: prefix (got %q)", c.Twilio.FromNumber)
	}

	if c.Audio.CacheDir == "" {
		return fmt.Errorf("audio.cache_dir must not be empty")
	}
	if c.Audio.RetentionDays <= 0 {
		return fmt.Errorf("audio.retention_days must be > 0 (got %d)", c.Audio.RetentionDays)
	}

	if c.Server.WebhookPerMin <= 0 {
		return fmt.Errorf("server.webhook_per_min must be > 0 (got %d)", c.Server.WebhookPerMin)
	}

	recipients, err := ParseRecipients(c.Notify.TestRecipientsRaw)
	if err != nil {
		return fmt.Errorf("notify.test_recipients: %w", err)
	}
	c.Notify.TestRecipients = recipients

	return nil
}

// ParseRecipients parses a comma-separated list of whatsapp-prefixed phone
// numbers. An empty string returns a nil slice.
func ParseRecipients(raw string) ([]string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	parts := strings.Split(raw, ",")
	recipients := make([]string, 0, len(parts))

	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if !strings.HasPrefix(p, "whatsapp:") {
			return nil, fmt.Errorf("recipient %q must use the whatsapp: prefix", p)
		}
		recipients = append(recipients, p)
	}

	return recipients, nil
}
