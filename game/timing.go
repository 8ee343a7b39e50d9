package game

import "time"

// Ticker turns wall-clock polls into discrete steps. It is not a fixed-rate
// scheduler: a late poll yields one step and the timer restarts from that
// poll, so missed steps are never replayed.
type Ticker struct {
	last time.Time
}

// Restart forgets the baseline; the next Due call only records it.
func (t *Ticker) Restart() {
	t.last = time.Time{}
}

// Due reports whether a step should run at now.
func (t *Ticker) Due(now time.Time, interval time.Duration) bool {
	if t.last.IsZero() {
		t.last = now
		return false
	}
	if now.Sub(t.last) < interval {
		return false
	}
	t.last = now
	return true
}
