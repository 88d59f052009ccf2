// Package metrics tracks model call counters for the health endpoint.
package metrics

import (
	"sort"
	"sync"
	"sync/atomic"
	"time"
)

type counters struct {
	calls   int64
	errors  int64
	latency int64 // nanoseconds
}

var (
	mu  sync.RWMutex
	ops = map[string]*counters{}
)

// OpSnapshot is a point-in-time view of one operation's counters.
type OpSnapshot struct {
	Operation        string  `json:"operation"`
	Calls            int64   `json:"calls"`
	Errors           int64   `json:"errors"`
	AverageLatencyMs float64 `json:"avg_latency_ms"`
	ErrorRate        float64 `json:"error_rate"`
}

func get(op string) *counters {
	mu.RLock()
	c, ok := ops[op]
	mu.RUnlock()
	if ok {
		return c
	}

	mu.Lock()
	defer mu.Unlock()
	if c, ok = ops[op]; !ok {
		c = &counters{}
		ops[op] = c
	}
	return c
}

// RecordCall records one model call for op.
func RecordCall(op string, duration time.Duration, err error) {
	c := get(op)
	atomic.AddInt64(&c.calls, 1)
	atomic.AddInt64(&c.latency, duration.Nanoseconds())
	if err != nil {
		atomic.AddInt64(&c.errors, 1)
	}
}

// Snapshot returns the counters of every operation seen so far, sorted by name.
func Snapshot() []OpSnapshot {
	mu.RLock()
	defer mu.RUnlock()

	out := make([]OpSnapshot, 0, len(ops))
	for name, c := range ops {
		s := OpSnapshot{
			Operation: name,
			Calls:     atomic.LoadInt64(&c.calls),
			Errors:    atomic.LoadInt64(&c.errors),
		}
		if s.Calls > 0 {
			s.AverageLatencyMs = float64(atomic.LoadInt64(&c.latency)) / float64(s.Calls) / 1e6
			s.ErrorRate = float64(s.Errors) / float64(s.Calls) * 100
		}
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Operation < out[j].Operation })
	return out
}

// Reset clears all counters (useful for testing)
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	ops = map[string]*counters{}
}
