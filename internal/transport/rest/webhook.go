package rest

import (
	"context"
	"encoding/xml"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/kirana-labs/kirana-backend/internal/service/router"
	"github.com/kirana-labs/kirana-backend/pkg/ctxutil"
)

type messageRouter interface {
	Handle(ctx context.Context, ev router.Event) string
}

// WebhookHandler receives inbound WhatsApp messages from the Twilio webhook
// and answers with TwiML so the reply rides back on the same HTTP exchange.
type WebhookHandler struct {
	router messageRouter
	log    *slog.Logger
}

// NewWebhookHandler creates a WebhookHandler.
func NewWebhookHandler(r messageRouter, logger *slog.Logger) *WebhookHandler {
	return &WebhookHandler{
		router: r,
		log:    logger.With("handler", "webhook"),
	}
}

// twimlResponse is the minimal TwiML document Twilio expects back.
// xml.Marshal escapes the message body, so emojis and user text are safe.
type twimlResponse struct {
	XMLName xml.Name `xml:"Response"`
	Message string   `xml:"Message"`
}

// Handle processes one webhook POST.
// POST /whatsapp (application/x-www-form-urlencoded)
func (h *WebhookHandler) Handle(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.log.WarnContext(r.Context(), "malformed webhook form", slog.String("error", err.Error()))
		writeError(w, http.StatusBadRequest, "malformed form payload")
		return
	}

	ev := eventFromForm(r)
	if ev.From == "" {
		writeError(w, http.StatusBadRequest, "missing From")
		return
	}

	ctx := ctxutil.WithIdentity(r.Context(), ev.From)
	reply := h.router.Handle(ctx, ev)

	writeTwiML(w, reply)
}

func eventFromForm(r *http.Request) router.Event {
	ev := router.Event{
		From:             r.PostFormValue("From"),
		Body:             r.PostFormValue("Body"),
		MediaURL:         r.PostFormValue("MediaUrl0"),
		MediaContentType: r.PostFormValue("MediaContentType0"),
		MessageSID:       r.PostFormValue("MessageSid"),
	}

	if n, err := strconv.Atoi(r.PostFormValue("NumMedia")); err == nil {
		ev.NumMedia = n
	}

	// Location pins carry both coordinates; a lone value is ignored.
	lat, latErr := strconv.ParseFloat(r.PostFormValue("Latitude"), 64)
	lon, lonErr := strconv.ParseFloat(r.PostFormValue("Longitude"), 64)
	if latErr == nil && lonErr == nil {
		ev.Latitude = &lat
		ev.Longitude = &lon
	}

	return ev
}

func writeTwiML(w http.ResponseWriter, message string) {
	body, err := xml.Marshal(twimlResponse{Message: message})
	if err != nil {
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/xml")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(xml.Header)) //nolint:errcheck
	w.Write(body)               //nolint:errcheck
}
