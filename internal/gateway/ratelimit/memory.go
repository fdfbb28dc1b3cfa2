package ratelimit

import (
	"context"
	"slices"
	"sync"
	"time"
)

// MemoryStore keeps windows in process memory. Limits therefore apply per
// instance.
type MemoryStore struct {
	mu      sync.Mutex
	windows map[string]*window
}

type window struct {
	mu    sync.Mutex
	times []time.Time
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{windows: make(map[string]*window)}
}

func (s *MemoryStore) window(key string) *window {
	s.mu.Lock()
	defer s.mu.Unlock()
	w, ok := s.windows[key]
	if !ok {
		w = &window{}
		s.windows[key] = w
	}
	return w
}

// Hit implements Store.
func (s *MemoryStore) Hit(_ context.Context, key string, now time.Time, l Limits) (Decision, error) {
	w := s.window(key)
	w.mu.Lock()
	defer w.mu.Unlock()

	w.prune(now)

	minute := 0
	for _, t := range w.times {
		if now.Sub(t) < Minute {
			minute++
		}
	}

	d := evaluate(minute, len(w.times), l)
	if d.Allowed {
		w.times = append(w.times, now)
	}
	return d, nil
}

// prune drops timestamps an hour old or older. Concurrent callers sample
// now before taking the window lock, so times is not necessarily sorted.
func (w *window) prune(now time.Time) {
	w.times = slices.DeleteFunc(w.times, func(t time.Time) bool {
		return now.Sub(t) >= Hour
	})
}

// Sweep removes windows with no request in the last hour and returns how
// many were dropped.
func (s *MemoryStore) Sweep(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for key, w := range s.windows {
		w.mu.Lock()
		w.prune(now)
		empty := len(w.times) == 0
		w.mu.Unlock()
		if empty {
			delete(s.windows, key)
			n++
		}
	}
	return n
}

// Len returns the number of tracked keys.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.windows)
}
