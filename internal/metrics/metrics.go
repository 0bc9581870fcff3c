package metrics

import (
	"sync"
	"time"
)

type providerStats struct {
	calls           int
	errors          int
	rateLimitHits   int
	lastRetryAfter  time.Duration
	lastCallLatency time.Duration
}

type cacheStats struct {
	hits   int
	misses int
}

// Recorder captures in-memory counters for provider calls and cache lookups and
// forwards them to OpenTelemetry instruments when configured.
type Recorder struct {
	mu    sync.Mutex
	stats map[string]*providerStats
	cache map[string]*cacheStats
	otel  *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats: make(map[string]*providerStats),
		cache: make(map[string]*cacheStats),
		otel:  otel,
	}
}

// RecordProviderAttempt increments counters for one upstream endpoint call and stores the last observed latency.
func (r *Recorder) RecordProviderAttempt(provider, endpoint string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := r.ensureStats(providerKey(provider, endpoint))
	stats.calls++
	stats.lastCallLatency = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordProviderAttempt(provider, endpoint, duration, err)
	}
}

// RecordRateLimit tracks that an upstream response hit a rate limit and stores the last Retry-After.
func (r *Recorder) RecordRateLimit(provider, endpoint string, retryAfter time.Duration) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := r.ensureStats(providerKey(provider, endpoint))
	stats.rateLimitHits++
	if retryAfter > 0 {
		stats.lastRetryAfter = retryAfter
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordRateLimit(provider, endpoint, retryAfter)
	}
}

// RecordCacheLookup counts a memoized lookup as a hit or miss for the operation.
func (r *Recorder) RecordCacheLookup(operation string, hit bool) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats, ok := r.cache[operation]
	if !ok {
		stats = &cacheStats{}
		r.cache[operation] = stats
	}
	if hit {
		stats.hits++
	} else {
		stats.misses++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordCacheLookup(operation, hit)
	}
}

// CacheHits returns recorded cache hits for an operation.
func (r *Recorder) CacheHits(operation string) int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if stats, ok := r.cache[operation]; ok {
		return stats.hits
	}
	return 0
}

// CacheMisses returns recorded cache misses for an operation.
func (r *Recorder) CacheMisses(operation string) int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if stats, ok := r.cache[operation]; ok {
		return stats.misses
	}
	return 0
}

// Snapshot is a copy of the current stats for a provider endpoint.
type Snapshot struct {
	Calls           int
	Errors          int
	RateLimitHits   int
	LastRetryAfter  time.Duration
	LastCallLatency time.Duration
}

func (r *Recorder) Snapshot(provider, endpoint string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.stats[providerKey(provider, endpoint)]
	if !ok || stats == nil {
		return Snapshot{}
	}
	return Snapshot{
		Calls:           stats.calls,
		Errors:          stats.errors,
		RateLimitHits:   stats.rateLimitHits,
		LastRetryAfter:  stats.lastRetryAfter,
		LastCallLatency: stats.lastCallLatency,
	}
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

// RecordWarmerCycle tracks cache warmer cycles and errors.
func (r *Recorder) RecordWarmerCycle(duration time.Duration, err error) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordWarmer(duration, err)
}

// ensureStats must be called with r.mu held.
func (r *Recorder) ensureStats(key string) *providerStats {
	stats, ok := r.stats[key]
	if !ok {
		stats = &providerStats{}
		r.stats[key] = stats
	}
	return stats
}

func providerKey(provider, endpoint string) string {
	return provider + "/" + endpoint
}
