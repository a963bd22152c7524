package control

import (
	"sync"
	"time"
)

// FrameTap records the last N frame evaluation times into a ring buffer so
// the HUD can draw a timing sparkline.
type FrameTap struct {
	buffer    []time.Duration
	nextIndex int
	count     int
	mu        sync.RWMutex
}

func NewFrameTap(ringSize int) *FrameTap {
	if ringSize < 1 {
		ringSize = 1
	}
	return &FrameTap{
		buffer: make([]time.Duration, ringSize),
	}
}

// Record stores one frame time, overwriting the oldest when full.
func (t *FrameTap) Record(d time.Duration) {
	t.mu.Lock()
	t.buffer[t.nextIndex] = d
	t.nextIndex++
	if t.nextIndex >= len(t.buffer) {
		t.nextIndex = 0
	}
	if t.count < len(t.buffer) {
		t.count++
	}
	t.mu.Unlock()
}

// Snapshot returns up to the last n recorded times (most recent last).
func (t *FrameTap) Snapshot(n int) []time.Duration {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if n > t.count {
		n = t.count
	}
	if n <= 0 {
		return nil
	}
	out := make([]time.Duration, n)
	// Walk backwards from nextIndex - 1
	idx := t.nextIndex
	for i := n - 1; i >= 0; i-- {
		idx--
		if idx < 0 {
			idx = len(t.buffer) - 1
		}
		out[i] = t.buffer[idx]
	}
	return out
}

// Average returns the mean of the last n recorded times, or zero if none.
func (t *FrameTap) Average(n int) time.Duration {
	snap := t.Snapshot(n)
	if len(snap) == 0 {
		return 0
	}
	var sum time.Duration
	for _, d := range snap {
		sum += d
	}
	return sum / time.Duration(len(snap))
}

// Peak returns the largest of the last n recorded times.
func (t *FrameTap) Peak(n int) time.Duration {
	var peak time.Duration
	for _, d := range t.Snapshot(n) {
		peak = max(peak, d)
	}
	return peak
}
