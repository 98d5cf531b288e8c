// Package health serves liveness and readiness probes.
//
// Probes run on demand, concurrently, each under its own timeout. Results are
// cached for a short TTL so a busy load balancer does not hammer Postgres or
// Redis. Readiness also fails while the service is draining.
package health

import (
	"context"
	"net/http"
	"runtime"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
	"golang.org/x/sync/errgroup"
)

// CheckFunc reports nil when the component is healthy.
type CheckFunc func(ctx context.Context) error

type check struct {
	name    string
	timeout time.Duration
	fn      CheckFunc
}

// Report is the outcome of one probe run. Failures maps check name to error
// text.
type Report struct {
	Failures map[string]string
	At       time.Time
}

// OK reports whether every check passed.
func (r Report) OK() bool { return len(r.Failures) == 0 }

type probe struct {
	checks []check

	mu     sync.Mutex
	cached *Report
}

func (p *probe) run(ctx context.Context, ttl time.Duration, now func() time.Time) Report {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.cached != nil && now().Sub(p.cached.At) < ttl {
		return *p.cached
	}

	var (
		mu       sync.Mutex
		failures = make(map[string]string)
	)
	// Checks never return errors to the group, so one failure does not
	// cancel the others.
	var g errgroup.Group
	for _, c := range p.checks {
		g.Go(func() error {
			cctx, cancel := context.WithTimeout(ctx, c.timeout)
			defer cancel()
			if err := c.fn(cctx); err != nil {
				mu.Lock()
				failures[c.name] = err.Error()
				mu.Unlock()
			}
			return nil
		})
	}
	_ = g.Wait()

	r := Report{Failures: failures, At: now()}
	p.cached = &r
	return r
}

// Health holds the registered probes. Register checks before serving.
type Health struct {
	ttl      time.Duration
	now      func() time.Time
	draining atomic.Bool

	live  probe
	ready probe
}

// New returns a Health whose results are cached for ttl. A zero ttl
// disables caching.
func New(ttl time.Duration) *Health {
	return &Health{ttl: ttl, now: time.Now}
}

// AddLivenessCheck registers a check that fails /livez. Use it only for
// in-process conditions; a dead database is a readiness problem.
func (h *Health) AddLivenessCheck(name string, timeout time.Duration, fn CheckFunc) {
	h.live.checks = append(h.live.checks, check{name: name, timeout: timeout, fn: fn})
}

// AddReadinessCheck registers a check that fails /readyz.
func (h *Health) AddReadinessCheck(name string, timeout time.Duration, fn CheckFunc) {
	h.ready.checks = append(h.ready.checks, check{name: name, timeout: timeout, fn: fn})
}

// Drain makes readiness fail so the load balancer stops routing new
// requests before shutdown.
func (h *Health) Drain() { h.draining.Store(true) }

// Live runs the liveness checks.
func (h *Health) Live(ctx context.Context) Report {
	return h.live.run(ctx, h.ttl, h.now)
}

// Ready runs the readiness checks.
func (h *Health) Ready(ctx context.Context) Report {
	r := h.ready.run(ctx, h.ttl, h.now)
	if h.draining.Load() {
		failures := make(map[string]string, len(r.Failures)+1)
		for k, v := range r.Failures {
			failures[k] = v
		}
		failures["_draining"] = "service is shutting down"
		r.Failures = failures
	}
	return r
}

// LiveEndpoint serves /livez.
func (h *Health) LiveEndpoint(w http.ResponseWriter, r *http.Request) {
	writeReport(w, h.Live(r.Context()))
}

// ReadyEndpoint serves /readyz.
func (h *Health) ReadyEndpoint(w http.ResponseWriter, r *http.Request) {
	writeReport(w, h.Ready(r.Context()))
}

func writeReport(w http.ResponseWriter, rep Report) {
	status := http.StatusOK
	var e jx.Encoder
	e.ObjStart()
	e.FieldStart("status")
	if rep.OK() {
		e.Str("ok")
	} else {
		status = http.StatusServiceUnavailable
		e.Str("unhealthy")

		names := make([]string, 0, len(rep.Failures))
		for name := range rep.Failures {
			names = append(names, name)
		}
		sort.Strings(names)

		e.FieldStart("checks")
		e.ObjStart()
		for _, name := range names {
			e.FieldStart(name)
			e.Str(rep.Failures[name])
		}
		e.ObjEnd()
	}
	e.ObjEnd()

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	_, _ = w.Write(e.Bytes())
}

// GoroutineCountCheck fails when more than threshold goroutines are running,
// which usually means a leak.
func GoroutineCountCheck(threshold int) CheckFunc {
	return func(context.Context) error {
		if n := runtime.NumGoroutine(); n > threshold {
			return errors.Errorf("goroutine count %d exceeds threshold %d", n, threshold)
		}
		return nil
	}
}
