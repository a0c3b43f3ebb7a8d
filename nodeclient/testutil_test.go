package nodeclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/rahilmansuri1/iris-wallet-desktop-sub004/pkg/log"
)

// nodeStub is a fake node daemon. Handlers are registered per path;
// every hit is counted so tests can assert on upstream traffic.
type nodeStub struct {
	mu       sync.Mutex
	handlers map[string]http.HandlerFunc
	hits     map[string]int
	server   *httptest.Server
}

func newNodeStub(t *testing.T) *nodeStub {
	t.Helper()
	stub := &nodeStub{
		handlers: make(map[string]http.HandlerFunc),
		hits:     make(map[string]int),
	}
	stub.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		stub.mu.Lock()
		handler, ok := stub.handlers[r.URL.Path]
		stub.hits[r.URL.Path]++
		stub.mu.Unlock()
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		handler(w, r)
	}))
	t.Cleanup(stub.server.Close)
	return stub
}

// respond registers a handler that writes the given value as JSON.
func (s *nodeStub) respond(path string, value any) {
	s.handle(path, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(value)
	})
}

// fail registers a handler that answers with a node error payload.
func (s *nodeStub) fail(path string, status int, message string) {
	s.handle(path, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(map[string]any{"error": message, "code": status})
	})
}

func (s *nodeStub) handle(path string, handler http.HandlerFunc) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.handlers[path] = handler
}

func (s *nodeStub) hitCount(path string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hits[path]
}

// colorableAlways satisfies the colorable gate without touching the
// unspent list.
type colorableAlways struct{}

func (colorableAlways) ColorableAvailable(context.Context) (bool, error) { return true, nil }

// newTestClient wires a client against the stub with caching disabled
// and the wallet unlocked, which is what most tests want.
func newTestClient(t *testing.T, stub *nodeStub, opts ...Option) *Client {
	t.Helper()
	cfg := Config{
		NodeURL:        stub.server.URL,
		RequestTimeout: 5 * time.Second,
		Network:        NetworkRegtest,
		WalletType:     WalletTypeEmbedded,
	}
	opts = append([]Option{WithColorablePolicy(colorableAlways{})}, opts...)
	client, err := New(cfg, opts...)
	require.NoError(t, err)
	client.SetUnlocked(true)
	return client
}

func testLogger() log.Logger { return log.NewLogger("test") }

// stubSettings is a fixed Settings implementation for service tests.
type stubSettings struct {
	walletType    WalletType
	network       Network
	hideExhausted bool
	feeRate       uint64
}

func (s stubSettings) WalletType() WalletType    { return s.walletType }
func (s stubSettings) Network() Network          { return s.network }
func (s stubSettings) HideExhaustedAssets() bool { return s.hideExhausted }
func (s stubSettings) DefaultFeeRate() uint64    { return s.feeRate }

// displayDate formats a unix timestamp the way the display fields do,
// keeping the tests independent of the local timezone.
func displayDate(ts int64) string { return time.Unix(ts, 0).Format(displayDateFormat) }

func displayTime(ts int64) string { return time.Unix(ts, 0).Format(displayTimeFormat) }
