package httpmiddleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

// hit sends a GET from remote with the given headers set.
func hit(h http.Handler, path, remote string, headers ...string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.RemoteAddr = remote
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestRateLimit_CountsDown(t *testing.T) {
	h := RateLimit(RateLimitConfig{Max: 5, Window: time.Minute})(okHandler())

	for i := range 5 {
		w := hit(h, "/api/orders", "192.168.1.1:12345")
		assert.Equal(t, http.StatusOK, w.Code, "request %d", i+1)
		assert.Equal(t, "5", w.Header().Get("X-RateLimit-Limit"))
		assert.Equal(t, strconv.Itoa(4-i), w.Header().Get("X-RateLimit-Remaining"))
	}
}

func TestRateLimit_Rejects(t *testing.T) {
	h := RateLimit(RateLimitConfig{Max: 2, Window: time.Minute})(okHandler())
	for range 2 {
		require.Equal(t, http.StatusOK, hit(h, "/", "10.0.0.1:9999").Code)
	}

	w := hit(h, "/", "10.0.0.1:9999")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))
	// One token per 30s refill.
	assert.Equal(t, "30", w.Header().Get("Retry-After"))

	var body struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, http.StatusTooManyRequests, body.Code)
	assert.Equal(t, "rate limit exceeded", body.Message)
}

func TestRateLimit_Keys(t *testing.T) {
	byToken := func(r *http.Request) string { return r.Header.Get("Authorization") }

	for _, tt := range []struct {
		name    string
		keyFunc func(*http.Request) string
		first   []string // remote, then header pairs
		second  []string
		limited bool
	}{
		{
			name:    "same ip different port",
			first:   []string{"10.0.0.1:1234"},
			second:  []string{"10.0.0.1:5678"},
			limited: true,
		},
		{
			name:   "different ip",
			first:  []string{"10.0.0.1:1234"},
			second: []string{"10.0.0.2:1234"},
		},
		{
			name:    "forwarded for wins over remote addr",
			first:   []string{"192.168.1.1:4444", "X-Forwarded-For", "203.0.113.50, 70.41.3.18"},
			second:  []string{"192.168.1.2:5555", "X-Forwarded-For", "203.0.113.50"},
			limited: true,
		},
		{
			name:    "real ip",
			first:   []string{"192.168.1.1:4444", "X-Real-IP", "198.51.100.7"},
			second:  []string{"192.168.1.9:4444", "X-Real-IP", "198.51.100.7"},
			limited: true,
		},
		{
			name:    "same bearer token",
			keyFunc: byToken,
			first:   []string{"10.0.0.1:1", "Authorization", "Bearer a"},
			second:  []string{"10.0.0.2:1", "Authorization", "Bearer a"},
			limited: true,
		},
		{
			name:    "different bearer token",
			keyFunc: byToken,
			first:   []string{"10.0.0.1:1", "Authorization", "Bearer a"},
			second:  []string{"10.0.0.1:1", "Authorization", "Bearer b"},
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			h := RateLimit(RateLimitConfig{Max: 1, Window: time.Minute, KeyFunc: tt.keyFunc})(okHandler())

			require.Equal(t, http.StatusOK, hit(h, "/", tt.first[0], tt.first[1:]...).Code)
			w := hit(h, "/", tt.second[0], tt.second[1:]...)
			if tt.limited {
				assert.Equal(t, http.StatusTooManyRequests, w.Code)
			} else {
				assert.Equal(t, http.StatusOK, w.Code)
			}
		})
	}
}

func TestRateLimit_Skip(t *testing.T) {
	h := RateLimit(RateLimitConfig{
		Max:    1,
		Window: time.Minute,
		Skip:   SkipPrefix("/webhooks/", "/livez"),
	})(okHandler())

	for range 3 {
		w := hit(h, "/webhooks/stripe", "54.187.174.169:443")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, w.Header().Get("X-RateLimit-Limit"))
	}
	assert.Equal(t, http.StatusOK, hit(h, "/api/orders", "54.187.174.169:443").Code)
	assert.Equal(t, http.StatusTooManyRequests, hit(h, "/api/orders", "54.187.174.169:443").Code)
}

func TestRateLimit_Cleanup(t *testing.T) {
	rl := newRateLimiter(RateLimitConfig{Max: 1, Window: time.Minute})
	now := time.Now()
	rl.limiter("a", now)
	rl.limiter("b", now.Add(90*time.Second))

	rl.cleanup(now.Add(2 * time.Minute))

	assert.NotContains(t, rl.clients, "a")
	assert.Contains(t, rl.clients, "b")
}
