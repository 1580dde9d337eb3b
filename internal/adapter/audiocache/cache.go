// Package audiocache stores inbound voice notes on local disk so they can
// be replayed or inspected after processing.
package audiocache

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Store writes voice notes under a single cache directory.
type Store struct {
	dir string
}

// New creates the cache directory if needed and returns a Store.
func New(dir string) (*Store, error) {
	if dir == "" {
		return nil, fmt.Errorf("audiocache: empty cache dir")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("audiocache: create dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the cache directory path.
func (s *Store) Dir() string {
	return s.dir
}

// Save writes one voice note to disk and returns its path. The filename
// embeds the sender identity and a timestamp so files sort chronologically.
func (s *Store) Save(identity string, data []byte) (string, error) {
	name := fmt.Sprintf("voice_%s_%s.ogg", sanitizeIdentity(identity), time.Now().UTC().Format("20060102T150405.000"))
	path := filepath.Join(s.dir, name)

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("audiocache: write %s: %w", name, err)
	}
	return path, nil
}

// Prune removes cached files older than the given age and returns how many
// were deleted. Unreadable entries are skipped rather than aborting the sweep.
func (s *Store) Prune(olderThan time.Duration) (int, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return 0, fmt.Errorf("audiocache: read dir: %w", err)
	}

	cutoff := time.Now().Add(-olderThan)
	removed := 0

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasPrefix(entry.Name(), "voice_") {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if info.ModTime().After(cutoff) {
			continue
		}
		if err := os.Remove(filepath.Join(s.dir, entry.Name())); err != nil {
			continue
		}
		removed++
	}

	return removed, nil
}

// sanitizeIdentity strips the channel prefix and any characters unsafe in a
// filename from a sender identity like "whatsapp:+919876500001".
func sanitizeIdentity(identity string) string {
	identity = strings.TrimPrefix(identity, "whatsapp:")
	var b strings.Builder
	for _, r := range identity {
		if (r >= '0' && r <= '9') || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return "unknown"
	}
	return b.String()
}
