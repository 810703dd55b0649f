// console/service/helpers_test.go
package service_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/dev-mohitbeniwal/aptmgr/console/db"
	"github.com/dev-mohitbeniwal/aptmgr/console/gateway"
	"github.com/dev-mohitbeniwal/aptmgr/console/middleware"
	"github.com/dev-mohitbeniwal/aptmgr/console/model"
	"github.com/dev-mohitbeniwal/aptmgr/console/service"
	"github.com/dev-mohitbeniwal/aptmgr/console/util"
)

// fakeBackend is a routed httptest server that counts calls per route and
// remembers the last request of each.
type fakeBackend struct {
	t   *testing.T
	mux *http.ServeMux
	srv *httptest.Server

	mu    sync.Mutex
	calls map[string]int
	last  map[string]*http.Request
	body  map[string][]byte
}

func newFakeBackend(t *testing.T) *fakeBackend {
	t.Helper()
	b := &fakeBackend{
		t:     t,
		mux:   http.NewServeMux(),
		calls: make(map[string]int),
		last:  make(map[string]*http.Request),
		body:  make(map[string][]byte),
	}
	b.srv = httptest.NewServer(b.mux)
	t.Cleanup(b.srv.Close)
	return b
}

// handle registers pattern (e.g. "GET /api/apartment-buildings") answering
// with status and the JSON encoding of payload.
func (b *fakeBackend) handle(pattern string, status int, payload interface{}) {
	b.handleFunc(pattern, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, status, payload)
	})
}

func (b *fakeBackend) handleFunc(pattern string, fn http.HandlerFunc) {
	b.mux.HandleFunc(pattern, func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		r.Body = io.NopCloser(bytes.NewReader(raw))
		b.mu.Lock()
		b.calls[pattern]++
		b.last[pattern] = r
		b.body[pattern] = raw
		b.mu.Unlock()
		fn(w, r)
	})
}

func (b *fakeBackend) count(pattern string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.calls[pattern]
}

func (b *fakeBackend) lastRequest(pattern string) *http.Request {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.last[pattern]
}

func (b *fakeBackend) lastBody(pattern string) []byte {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.body[pattern]
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		_ = json.NewEncoder(w).Encode(payload)
	}
}

type testEnv struct {
	backend       *fakeBackend
	client        *gateway.Client
	services      *service.Services
	notifications *util.NotificationService
	loading       *util.LoadingService
	navigator     *util.Navigator
	eventBus      *util.EventBus
	cacheService  *util.CacheService
	store         *db.MemorySessionStore
}

type envOption func(*service.Dependencies)

func withLocker(l service.Locker) envOption {
	return func(d *service.Dependencies) {
		d.Locker = l
	}
}

func withPollInterval(interval time.Duration) envOption {
	return func(d *service.Dependencies) {
		d.Settings.PollInterval = interval
	}
}

// newTestEnv wires the services to a fake backend through the same
// interceptor chain the console uses.
func newTestEnv(t *testing.T, opts ...envOption) *testEnv {
	t.Helper()
	backend := newFakeBackend(t)

	client := gateway.NewClient(gateway.Config{
		BaseURL:    backend.srv.URL + "/api",
		Timeout:    2 * time.Second,
		Retries:    0,
		RetryDelay: time.Millisecond,
	})

	env := &testEnv{
		backend:       backend,
		client:        client,
		notifications: util.NewNotificationService(),
		loading:       util.NewLoadingService(),
		eventBus:      util.NewEventBus(),
		cacheService:  util.NewCacheService(),
		store:         db.NewMemorySessionStore(),
	}
	env.navigator = util.NewNavigator(env.eventBus)

	deps := service.Dependencies{
		Client:          client,
		Store:           env.store,
		Settings:        service.DefaultCacheSettings(),
		ValidationUtil:  util.NewValidationUtil(),
		CacheService:    env.cacheService,
		NotificationSvc: env.notifications,
		Navigator:       env.navigator,
		EventBus:        env.eventBus,
	}
	for _, opt := range opts {
		opt(&deps)
	}

	services, err := service.InitializeServices(deps)
	if err != nil {
		t.Fatalf("failed to initialize services: %v", err)
	}
	env.services = services

	client.Use(
		middleware.Loading(env.loading),
		middleware.Auth(services.Auth, env.navigator),
		middleware.HTTPError(env.notifications),
	)

	t.Cleanup(func() {
		services.Auth.StopAllPolling()
		env.eventBus.Wait()
	})
	return env
}

// titles returns the titles of the active notifications of type typ.
func (e *testEnv) titles(typ model.NotificationType) []string {
	var out []string
	for _, n := range e.notifications.Active() {
		if n.Type == typ {
			out = append(out, n.Title)
		}
	}
	return out
}
