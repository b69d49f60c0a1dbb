package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
)

type endpointStats struct {
	count       int
	totalTime   time.Duration
	maxTime     time.Duration
	lastPrinted time.Time
}

// statsLogger periodically logs request count and latency per route.
type statsLogger struct {
	stats         map[string]*endpointStats
	mu            sync.Mutex
	flushInterval time.Duration
}

func newStatsLogger(flushInterval time.Duration) *statsLogger {
	sl := &statsLogger{
		stats:         make(map[string]*endpointStats),
		flushInterval: flushInterval,
	}
	go sl.periodicFlush()
	return sl
}

func (sl *statsLogger) periodicFlush() {
	ticker := time.NewTicker(sl.flushInterval)
	for range ticker.C {
		sl.flushStats()
	}
}

func (sl *statsLogger) flushStats() {
	sl.mu.Lock()
	defer sl.mu.Unlock()

	now := time.Now()
	for endpoint, stats := range sl.stats {
		if stats.count > 0 && now.Sub(stats.lastPrinted) >= sl.flushInterval {
			avgTimeMs := float64(stats.totalTime.Microseconds()) / float64(stats.count) / 1000.0

			slog.Info("endpoint stats",
				"endpoint", endpoint,
				"count", stats.count,
				"avg_time_ms", fmt.Sprintf("%.2f", avgTimeMs),
				"max_time_ms", stats.maxTime.Milliseconds(),
				"period", sl.flushInterval,
			)
			stats.count = 0
			stats.totalTime = 0
			stats.maxTime = 0
			stats.lastPrinted = now
		}
	}
}

func (sl *statsLogger) record(endpoint string, duration time.Duration) {
	sl.mu.Lock()
	defer sl.mu.Unlock()
	if _, exists := sl.stats[endpoint]; !exists {
		sl.stats[endpoint] = &endpointStats{}
	}
	s := sl.stats[endpoint]
	s.count++
	s.totalTime += duration
	s.maxTime = max(s.maxTime, duration)
}

func (sl *statsLogger) middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		next.ServeHTTP(w, r)

		// route pattern is only known once chi has routed the request
		pattern := r.URL.Path
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			pattern = rctx.RoutePattern()
		}
		sl.record(fmt.Sprintf("%s %s", r.Method, pattern), time.Since(start))
	})
}
