// Command server runs the WhatsApp grocery-order backend: the Twilio
// webhook, the admin REST surface, and health probes.
package main

import (
	"context"
	"log"

	"github.com/kirana-labs/kirana-backend/internal/app"
)

func main() {
	if err := app.Run(context.Background()); err != nil {
		log.Fatalf("server: %v", err)
	}
}
