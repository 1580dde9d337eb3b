//go:build e2e

package e2e_test

import (
	"encoding/json"
	"encoding/xml"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/kirana-labs/kirana-backend/internal/adapter/audiocache"
	"github.com/kirana-labs/kirana-backend/internal/adapter/postgres"
	orderrepo "github.com/kirana-labs/kirana-backend/internal/adapter/postgres/order"
	profilerepo "github.com/kirana-labs/kirana-backend/internal/adapter/postgres/profile"
	"github.com/kirana-labs/kirana-backend/internal/adapter/postgres/testhelper"
	"github.com/kirana-labs/kirana-backend/internal/adapter/provider/classifier"
	"github.com/kirana-labs/kirana-backend/internal/adapter/provider/whisper"
	"github.com/kirana-labs/kirana-backend/internal/adapter/twilio"
	"github.com/kirana-labs/kirana-backend/internal/config"
	"github.com/kirana-labs/kirana-backend/internal/service/notify"
	"github.com/kirana-labs/kirana-backend/internal/service/onboarding"
	"github.com/kirana-labs/kirana-backend/internal/service/order"
	"github.com/kirana-labs/kirana-backend/internal/service/router"
	"github.com/kirana-labs/kirana-backend/internal/session"
	"github.com/kirana-labs/kirana-backend/internal/transport/middleware"
	"github.com/kirana-labs/kirana-backend/internal/transport/rest"
	"github.com/jackc/pgx/v5/pgxpool"
)

const testAccountSID = "ACtest"

// sentMessage is one outbound WhatsApp message captured by the Twilio stub.
type sentMessage struct {
	To   string
	Body string
}

// twilioStub fakes the Twilio REST API: it records sends and serves a canned
// voice note under /media/ME123.
type twilioStub struct {
	mu   sync.Mutex
	sent []sentMessage
}

func (s *twilioStub) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /2010-04-01/Accounts/"+testAccountSID+"/Messages.json", func(w http.ResponseWriter, r *http.Request) {
		r.ParseForm() //nolint:errcheck
		s.mu.Lock()
		s.sent = append(s.sent, sentMessage{To: r.PostFormValue("To"), Body: r.PostFormValue("Body")})
		s.mu.Unlock()
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"sid":"SM_stub"}`)) //nolint:errcheck
	})
	mux.HandleFunc("GET /media/ME123", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "audio/ogg")
		w.Write([]byte("OggS fake voice note")) //nolint:errcheck
	})
	return mux
}

func (s *twilioStub) messages() []sentMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]sentMessage(nil), s.sent...)
}

// testServer wraps the full-stack HTTP server for E2E tests.
type testServer struct {
	URL       string
	Client    *http.Client
	Pool      *pgxpool.Pool
	Twilio    *twilioStub
	twilioURL string
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// setupTestServer bootstraps the full application stack backed by a real
// PostgreSQL container (shared via testhelper). The external collaborators
// are httptest stubs: Twilio records sends, the transcriber returns a fixed
// transcript, the classifier returns two grocery items.
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))

	tw := &twilioStub{}
	twilioSrv := httptest.NewServer(tw.handler())
	t.Cleanup(twilioSrv.Close)

	whisperSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"text": "2kg rice and 1 packet dal"}) //nolint:errcheck
	}))
	t.Cleanup(whisperSrv.Close)

	classifierSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{ //nolint:errcheck
			"items": []map[string]any{
				{"name": "rice", "quantity": "2kg", "category_name": "Consumables/Perishables", "category_number": 1},
				{"name": "dal", "quantity": "1 packet", "category_name": "Consumables/Perishables", "category_number": 1},
			},
		})
	}))
	t.Cleanup(classifierSrv.Close)

	profiles := profilerepo.New(pool)
	orders := orderrepo.New(pool)
	txm := postgres.NewTxManager(pool)

	twilioClient := twilio.NewClient(config.TwilioConfig{
		AccountSID:      testAccountSID,
		AuthToken:       "test-token",
		FromNumber:      "whatsapp:+1000000000",
		BaseURL:         twilioSrv.URL,
		SendTimeout:     5 * time.Second,
		DownloadTimeout: 5 * time.Second,
	}, logger)

	transcriber := whisper.NewProvider(config.WhisperConfig{
		BaseURL:  whisperSrv.URL,
		Language: "en",
		Timeout:  5 * time.Second,
	}, logger)

	grocery := classifier.NewProvider(config.ClassifierConfig{
		BaseURL: classifierSrv.URL,
		Timeout: 5 * time.Second,
	}, logger)

	audioStore, err := audiocache.New(t.TempDir())
	require.NoError(t, err)

	sessions := session.NewStore()
	onboard := onboarding.NewService(logger, sessions, profiles)
	builder := order.NewService(logger, grocery, orders, profiles, txm)
	dispatcher := notify.NewService(logger, profiles, orders, twilioClient, nil)
	msgRouter := router.NewService(router.Deps{
		Logger:      logger,
		Sessions:    sessions,
		Profiles:    profiles,
		Onboarding:  onboard,
		Builder:     builder,
		Dispatcher:  dispatcher,
		Transcriber: transcriber,
		Media:       twilioClient,
		Audio:       audioStore,
		Language:    "en",
	})

	webhook := rest.NewWebhookHandler(msgRouter, logger)
	admin := rest.NewAdminHandler(orders, profiles, logger)
	health := rest.NewHealthHandler(pool, "e2e")

	mux := http.NewServeMux()
	mux.HandleFunc("POST /whatsapp", webhook.Handle)
	mux.HandleFunc("GET /health", health.Health)
	mux.HandleFunc("GET /health/live", health.Live)
	mux.HandleFunc("GET /health/ready", health.Ready)
	admin.Register(mux)

	handler := middleware.Chain(
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.Recovery(logger),
	)(mux)

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return &testServer{
		URL:       srv.URL,
		Client:    srv.Client(),
		Pool:      pool,
		Twilio:    tw,
		twilioURL: twilioSrv.URL,
	}
}

// mediaURL returns the Twilio stub's canned voice note URL.
func (ts *testServer) mediaURL() string {
	return ts.twilioURL + "/media/ME123"
}

// postWebhook sends one webhook form and returns the TwiML message text.
func (ts *testServer) postWebhook(t *testing.T, form url.Values) string {
	t.Helper()

	resp, err := ts.Client.PostForm(ts.URL+"/whatsapp", form)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var twiml struct {
		Message string `xml:"Message"`
	}
	require.NoError(t, xml.Unmarshal(raw, &twiml), "response is not TwiML: %s", raw)
	return twiml.Message
}

// sendText posts a plain text message from the given identity.
func (ts *testServer) sendText(t *testing.T, from, body string) string {
	t.Helper()
	return ts.postWebhook(t, url.Values{"From": {from}, "Body": {body}})
}

// sendLocation posts a location pin from the given identity.
func (ts *testServer) sendLocation(t *testing.T, from string, lat, lon string) string {
	t.Helper()
	return ts.postWebhook(t, url.Values{"From": {from}, "Latitude": {lat}, "Longitude": {lon}})
}

// onboardCustomer walks an identity through the full customer onboarding flow.
func (ts *testServer) onboardCustomer(t *testing.T, phone, name string) {
	t.Helper()

	reply := ts.sendText(t, phone, "hi")
	require.Contains(t, reply, "Welcome")

	reply = ts.sendText(t, phone, name)
	require.Contains(t, reply, "Are you a")

	reply = ts.sendText(t, phone, "1")
	require.Contains(t, reply, "share your location")

	reply = ts.sendLocation(t, phone, "12.97", "77.59")
	require.Contains(t, reply, "Welcome "+name)
}

// onboardShopkeeper walks an identity through the full shopkeeper flow.
func (ts *testServer) onboardShopkeeper(t *testing.T, phone, name, shop string) {
	t.Helper()

	ts.sendText(t, phone, "hi")
	ts.sendText(t, phone, name)

	reply := ts.sendText(t, phone, "2")
	require.Contains(t, reply, "shop name")

	ts.sendText(t, phone, shop)
	ts.sendText(t, phone, "skip")

	reply = ts.sendLocation(t, phone, "12.98", "77.60")
	require.Contains(t, reply, "Welcome "+shop)
}

// getJSON fetches an admin endpoint into out.
func (ts *testServer) getJSON(t *testing.T, path string, out any) {
	t.Helper()

	resp, err := ts.Client.Get(ts.URL + path)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}
