// Command cleanup-audio removes cached voice notes older than the configured
// retention period. It is intended to be invoked by an external cron job, not
// as an in-process goroutine.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/kirana-labs/kirana-backend/internal/adapter/audiocache"
	"github.com/kirana-labs/kirana-backend/internal/app"
	"github.com/kirana-labs/kirana-backend/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	store, err := audiocache.New(cfg.Audio.CacheDir)
	if err != nil {
		logger.Error("open audio cache", slog.String("error", err.Error()))
		os.Exit(1)
	}

	retention := time.Duration(cfg.Audio.RetentionDays) * 24 * time.Hour

	removed, err := store.Prune(retention)
	if err != nil {
		logger.Error("prune failed",
			slog.String("error", err.Error()),
			slog.String("dir", store.Dir()),
		)
		os.Exit(1)
	}

	logger.Info("prune completed",
		slog.Int("removed", removed),
		slog.String("dir", store.Dir()),
		slog.Int("retention_days", cfg.Audio.RetentionDays),
	)
}
