package backend

import (
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/clinivet/gateway/internal/api/metrics"
	"github.com/clinivet/gateway/internal/core/domain"
)

const defaultTimeout = 15 * time.Second

// Config captures the settings for the shared backend client.
type Config struct {
	// BaseURL is the clinic backend root, e.g. "http://localhost:3000/api".
	BaseURL string
	// Timeout bounds every request end to end. Defaults to 15s.
	Timeout time.Duration
}

var (
	instance    *http.Client
	baseURL     string
	once        sync.Once
	initialized bool
)

// Init builds the process-wide HTTP client on first call; later calls are
// no-ops. The client attaches the session's bearer token to every outgoing
// request and reports transport failures without classifying them.
func Init(cfg Config, log zerolog.Logger) *http.Client {
	once.Do(func() {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		baseURL = strings.TrimRight(cfg.BaseURL, "/")
		instance = &http.Client{
			Timeout:   timeout,
			Transport: &authTransport{base: http.DefaultTransport, log: log},
		}
		initialized = true
	})
	return instance
}

// Client returns the shared client. Panics if Init has not been called yet.
func Client() *http.Client {
	if !initialized {
		panic("backend: Client() called before Init()")
	}
	return instance
}

// BaseURL returns the configured backend root. Panics before Init.
func BaseURL() string {
	if !initialized {
		panic("backend: BaseURL() called before Init()")
	}
	return baseURL
}

// Reset tears down the singleton so the next Init call rebuilds it.
// Intended for use in tests only.
func Reset() {
	once = sync.Once{}
	instance = nil
	baseURL = ""
	initialized = false
}

// authTransport is the outbound/inbound interceptor pair of the shared
// client. Outbound it reads the session from the request context at send
// time. An in-flight request keeps the token it captured even if the
// session store is mutated mid-flight. Inbound it records transport
// failures and propagates them unchanged: no retry, no logout-on-401.
type authTransport struct {
	base http.RoundTripper
	log  zerolog.Logger
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// RoundTrippers must not mutate the caller's request.
	req = req.Clone(req.Context())

	if req.Header.Get("Content-Type") == "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if sess := domain.SessionFromContext(req.Context()); sess.Valid() {
		req.Header.Set("Authorization", "Bearer "+sess.Token)
	}

	start := time.Now()
	resp, err := t.base.RoundTrip(req)
	metrics.BackendRequestDuration.WithLabelValues(req.Method).Observe(time.Since(start).Seconds())

	if err != nil {
		metrics.BackendRequestsTotal.WithLabelValues(req.Method, "network_error").Inc()
		t.log.Error().Err(err).
			Str("method", req.Method).
			Str("url", req.URL.String()).
			Msg("backend request failed")
		return nil, err
	}

	outcome := "ok"
	if resp.StatusCode >= 300 {
		outcome = "http_error"
	}
	metrics.BackendRequestsTotal.WithLabelValues(req.Method, outcome).Inc()
	return resp, nil
}
