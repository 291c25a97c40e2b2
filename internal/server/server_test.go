package server

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jjanuszczak/Genetic-Insights/internal/config"
	"github.com/jjanuszczak/Genetic-Insights/internal/handlers"
	"github.com/jjanuszczak/Genetic-Insights/internal/registration"
)

type countingForwarder struct {
	calls atomic.Int32
}

func (f *countingForwarder) Forward(ctx context.Context, sub registration.Submission) error {
	f.calls.Add(1)
	return nil
}

func newTestRouter(t *testing.T, cfg *config.Config) (http.Handler, *countingForwarder) {
	t.Helper()
	return newTestRouterWithQueue(t, cfg, nil)
}

func newTestRouterWithQueue(t *testing.T, cfg *config.Config, q *registration.ConfirmationQueue) (http.Handler, *countingForwarder) {
	t.Helper()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	fwd := &countingForwarder{}
	h := handlers.NewHandler(registration.New(fwd, q, log), log)
	return NewRouter(RouterParams{Config: cfg, Log: log, Handler: h}), fwd
}

func registerRequest() *http.Request {
	form := url.Values{"name": {"Juan dela Cruz"}, "email": {"juan@example.com"}}
	req := httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")
	return req
}

func serve(r http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestRouter_Pages(t *testing.T) {
	r, _ := newTestRouter(t, &config.Config{})

	tests := []struct {
		path        string
		status      int
		contentType string
	}{
		{"/", http.StatusOK, "text/html"},
		{"/health", http.StatusOK, "application/json"},
		{"/static/css/styles.css", http.StatusOK, "text/css"},
		{"/static/js/register.js", http.StatusOK, "javascript"},
		{"/static/js/toast.js", http.StatusOK, "javascript"},
		{"/static/js/reveal.js", http.StatusOK, "javascript"},
		{"/static/images/favicon.png", http.StatusOK, "image/png"},
		{"/static/missing.css", http.StatusNotFound, ""},
		{"/nope", http.StatusNotFound, ""},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := serve(r, httptest.NewRequest(http.MethodGet, tt.path, nil))
			assert.Equal(t, tt.status, rec.Code)
			if tt.contentType != "" {
				assert.Contains(t, rec.Header().Get("Content-Type"), tt.contentType)
			}
		})
	}
}

func TestRouter_Metrics(t *testing.T) {
	r, _ := newTestRouter(t, &config.Config{})

	rec := serve(r, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "registration_forward_duration_seconds")
}

func TestRouter_RegisterMethodNotAllowed(t *testing.T) {
	r, _ := newTestRouter(t, &config.Config{})

	rec := serve(r, httptest.NewRequest(http.MethodGet, "/register", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestRouter_RegisterRateLimited(t *testing.T) {
	r, fwd := newTestRouter(t, &config.Config{
		RateLimit: config.RateLimitConfig{PerMinute: 1, Burst: 1},
	})

	rec := serve(r, registerRequest())
	require.Equal(t, http.StatusOK, rec.Code)

	rec = serve(r, registerRequest())
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Contains(t, rec.Body.String(), "rate_limited")
	assert.Equal(t, int32(1), fwd.calls.Load())
}

func TestRouter_RegisterUnlimitedWhenDisabled(t *testing.T) {
	r, fwd := newTestRouter(t, &config.Config{})

	for i := 0; i < 20; i++ {
		rec := serve(r, registerRequest())
		require.Equal(t, http.StatusOK, rec.Code)
	}
	assert.Equal(t, int32(20), fwd.calls.Load())
}

func TestRouter_CORS(t *testing.T) {
	r, _ := newTestRouter(t, &config.Config{
		CORS: config.CORSConfig{AllowedOrigins: []string{"https://partner.example"}},
	})

	req := httptest.NewRequest(http.MethodOptions, "/register", nil)
	req.Header.Set("Origin", "https://partner.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := serve(r, req)
	assert.Equal(t, "https://partner.example", rec.Header().Get("Access-Control-Allow-Origin"))

	req = registerRequest()
	req.Header.Set("Origin", "https://partner.example")
	rec = serve(r, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "https://partner.example", rec.Header().Get("Access-Control-Allow-Origin"))

	req = registerRequest()
	req.Header.Set("Origin", "https://elsewhere.example")
	rec = serve(r, req)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRecoverer(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := recoverer(log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rec := serve(h, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestRouter_ProxyHeadersIgnoredByDefault(t *testing.T) {
	r, fwd := newTestRouter(t, &config.Config{
		RateLimit: config.RateLimitConfig{PerMinute: 1, Burst: 1},
	})

	for i, ip := range []string{"203.0.113.1", "203.0.113.2", "203.0.113.3"} {
		req := registerRequest()
		req.Header.Set("X-Forwarded-For", ip)
		req.Header.Set("X-Real-IP", ip)
		rec := serve(r, req)
		if i == 0 {
			assert.Equal(t, http.StatusOK, rec.Code)
		} else {
			assert.Equal(t, http.StatusTooManyRequests, rec.Code, "forwarded IP %s must not get its own bucket", ip)
		}
	}
	assert.Equal(t, int32(1), fwd.calls.Load())
}

func TestRouter_ProxyHeadersTrustedWhenEnabled(t *testing.T) {
	r, fwd := newTestRouter(t, &config.Config{
		TrustProxyHeaders: true,
		RateLimit:         config.RateLimitConfig{PerMinute: 1, Burst: 1},
	})

	for _, ip := range []string{"203.0.113.1", "203.0.113.2"} {
		req := registerRequest()
		req.Header.Set("X-Forwarded-For", ip)
		rec := serve(r, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	}

	req := registerRequest()
	req.Header.Set("X-Forwarded-For", "203.0.113.1")
	rec := serve(r, req)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, int32(2), fwd.calls.Load())
}

func TestRouter_NotFound(t *testing.T) {
	r, _ := newTestRouter(t, &config.Config{})

	req := httptest.NewRequest(http.MethodGet, "/api/unknown", nil)
	req.Header.Set("Accept", "application/json")
	rec := serve(r, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), `"not_found"`)
}

type sleepyConfirmer struct {
	delay time.Duration
	sent  atomic.Int32
}

func (c *sleepyConfirmer) SendConfirmation(ctx context.Context, name, email string) error {
	select {
	case <-time.After(c.delay):
		c.sent.Add(1)
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func TestServer_SlowConfirmationWithinWriteTimeout(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	confirmer := &sleepyConfirmer{delay: 500 * time.Millisecond}
	q := registration.NewConfirmationQueue(confirmer, log, 10, 5*time.Second)
	require.NoError(t, q.Start(context.Background()))

	r, fwd := newTestRouterWithQueue(t, &config.Config{}, q)
	ts := httptest.NewUnstartedServer(r)
	ts.Config.WriteTimeout = 200 * time.Millisecond
	ts.Start()
	defer ts.Close()

	form := url.Values{"name": {"Juan dela Cruz"}, "email": {"juan@example.com"}}
	req, err := http.NewRequest(http.MethodPost, ts.URL+"/register", strings.NewReader(form.Encode()))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := ts.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, int32(1), fwd.calls.Load())

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, q.Stop(ctx))
	assert.Equal(t, int32(1), confirmer.sent.Load())
}
