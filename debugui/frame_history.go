package debugui

import "time"

// FrameHistory is a fixed-size ring of frame times in milliseconds, laid out
// for ImGui's plot widgets.
type FrameHistory struct {
	samples []float32
	next    int
	filled  int
}

func NewFrameHistory(size int) *FrameHistory {
	return &FrameHistory{samples: make([]float32, max(size, 1))}
}

// Push records one frame duration, overwriting the oldest sample when full.
func (h *FrameHistory) Push(d time.Duration) {
	h.samples[h.next] = float32(d.Seconds() * 1000)
	h.next = (h.next + 1) % len(h.samples)
	h.filled = min(h.filled+1, len(h.samples))
}

// Average returns the mean of the recorded samples in milliseconds.
func (h *FrameHistory) Average() float32 {
	if h.filled == 0 {
		return 0
	}
	var sum float32
	for _, s := range h.samples[:h.filled] {
		sum += s
	}
	return sum / float32(h.filled)
}

// Max returns the largest recorded sample in milliseconds.
func (h *FrameHistory) Max() float32 {
	var m float32
	for _, s := range h.samples[:h.filled] {
		m = max(m, s)
	}
	return m
}

// Samples exposes the raw ring. Its order follows insertion modulo the ring
// size; plots do not care.
func (h *FrameHistory) Samples() []float32 {
	return h.samples
}

// Len reports how many samples have been recorded, up to the ring size.
func (h *FrameHistory) Len() int {
	return h.filled
}
