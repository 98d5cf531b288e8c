package health

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/go-faster/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type response struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

func serve(t *testing.T, fn http.HandlerFunc) (int, response) {
	t.Helper()
	w := httptest.NewRecorder()
	fn(w, httptest.NewRequest(http.MethodGet, "/", nil))

	var body response
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	return w.Code, body
}

func passing(context.Context) error { return nil }

func failing(msg string) CheckFunc {
	return func(context.Context) error { return errors.New(msg) }
}

func TestReadyEndpoint(t *testing.T) {
	tests := []struct {
		name       string
		checks     map[string]CheckFunc
		drain      bool
		wantStatus int
		wantChecks map[string]string
	}{
		{
			name:       "NoChecks",
			wantStatus: http.StatusOK,
		},
		{
			name:       "AllPassing",
			checks:     map[string]CheckFunc{"postgres": passing, "redis": passing},
			wantStatus: http.StatusOK,
		},
		{
			name:       "OneFailing",
			checks:     map[string]CheckFunc{"postgres": passing, "redis": failing("dial tcp: connection refused")},
			wantStatus: http.StatusServiceUnavailable,
			wantChecks: map[string]string{"redis": "dial tcp: connection refused"},
		},
		{
			name:       "Draining",
			checks:     map[string]CheckFunc{"postgres": passing},
			drain:      true,
			wantStatus: http.StatusServiceUnavailable,
			wantChecks: map[string]string{"_draining": "service is shutting down"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := New(0)
			for name, fn := range tt.checks {
				h.AddReadinessCheck(name, time.Second, fn)
			}
			if tt.drain {
				h.Drain()
			}

			code, body := serve(t, h.ReadyEndpoint)
			assert.Equal(t, tt.wantStatus, code)
			if tt.wantChecks == nil {
				assert.Equal(t, "ok", body.Status)
				assert.Empty(t, body.Checks)
				return
			}
			assert.Equal(t, "unhealthy", body.Status)
			assert.Equal(t, tt.wantChecks, body.Checks)
		})
	}
}

func TestLiveEndpoint_IgnoresReadiness(t *testing.T) {
	h := New(0)
	h.AddReadinessCheck("postgres", time.Second, failing("down"))
	h.AddLivenessCheck("goroutines", time.Second, GoroutineCountCheck(1_000_000))
	h.Drain()

	code, body := serve(t, h.LiveEndpoint)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "ok", body.Status)
}

func TestCheckTimeout(t *testing.T) {
	h := New(0)
	h.AddReadinessCheck("slow", 10*time.Millisecond, func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	})

	start := time.Now()
	rep := h.Ready(context.Background())
	assert.Less(t, time.Since(start), time.Second)
	assert.Equal(t, context.DeadlineExceeded.Error(), rep.Failures["slow"])
}

func TestResultsCached(t *testing.T) {
	var calls atomic.Int32
	h := New(time.Minute)
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	h.now = func() time.Time { return now }
	h.AddReadinessCheck("postgres", time.Second, func(context.Context) error {
		calls.Add(1)
		return nil
	})

	h.Ready(context.Background())
	h.Ready(context.Background())
	assert.Equal(t, int32(1), calls.Load())

	now = now.Add(2 * time.Minute)
	h.Ready(context.Background())
	assert.Equal(t, int32(2), calls.Load())
}

func TestChecksRunConcurrently(t *testing.T) {
	h := New(0)
	release := make(chan struct{})
	var started atomic.Int32
	for _, name := range []string{"a", "b", "c"} {
		h.AddReadinessCheck(name, time.Second, func(ctx context.Context) error {
			if started.Add(1) == 3 {
				close(release)
			}
			select {
			case <-release:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		})
	}

	assert.True(t, h.Ready(context.Background()).OK())
}

func TestGoroutineCountCheck(t *testing.T) {
	require.NoError(t, GoroutineCountCheck(1_000_000)(context.Background()))
	err := GoroutineCountCheck(0)(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exceeds threshold 0")
}
