package models

import "sync"

// YearBounds accumulates the smallest and largest year seen across every
// country built against it. Min only decreases and max only increases.
type YearBounds struct {
	mu   sync.RWMutex
	min  int
	max  int
	seen bool
}

// NewYearBounds returns an empty accumulator.
func NewYearBounds() *YearBounds {
	return &YearBounds{}
}

// Observe widens the bounds to include year.
func (b *YearBounds) Observe(year int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.seen {
		b.min, b.max, b.seen = year, year, true
		return
	}
	if year < b.min {
		b.min = year
	}
	if year > b.max {
		b.max = year
	}
}

// Range returns the current bounds. ok is false until a year has been observed.
func (b *YearBounds) Range() (min, max int, ok bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.min, b.max, b.seen
}
