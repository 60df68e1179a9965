// Package stats records per-tick scene measurements for charts.
package stats

import "sync"

// History keeps the last N samples in a ring buffer so viewers can chart
// recent population without the scene holding on to it.
type History struct {
	buffer    []float64
	nextIndex int
	count     int
	mu        sync.RWMutex
}

func NewHistory(size int) *History {
	if size <= 0 {
		size = 1
	}
	return &History{buffer: make([]float64, size)}
}

// Record appends a sample, overwriting the oldest once the ring is full.
func (h *History) Record(v float64) {
	h.mu.Lock()
	h.buffer[h.nextIndex] = v
	h.nextIndex++
	if h.nextIndex >= len(h.buffer) {
		h.nextIndex = 0
	}
	if h.count < len(h.buffer) {
		h.count++
	}
	h.mu.Unlock()
}

// Len is the number of samples held, at most the ring size.
func (h *History) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.count
}

// Snapshot returns up to the last n samples, oldest first.
func (h *History) Snapshot(n int) []float64 {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if n > h.count {
		n = h.count
	}
	if n <= 0 {
		return nil
	}
	out := make([]float64, n)
	// Walk backwards from nextIndex - 1, filling from the end.
	idx := h.nextIndex - 1
	for i := n - 1; i >= 0; i-- {
		if idx < 0 {
			idx = len(h.buffer) - 1
		}
		out[i] = h.buffer[idx]
		idx--
	}
	return out
}

// Max returns the largest sample held, or 0 when empty.
func (h *History) Max() float64 {
	h.mu.RLock()
	defer h.mu.RUnlock()
	var m float64
	for i := 0; i < h.count; i++ {
		if i == 0 || h.buffer[i] > m {
			m = h.buffer[i]
		}
	}
	return m
}
