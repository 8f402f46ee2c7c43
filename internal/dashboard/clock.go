package dashboard

import "time"

// TickClock remembers when the current tick started.
type TickClock struct {
	Last     time.Time
	Interval time.Duration
}

// Due reports whether a full interval has passed since Last.
func (c TickClock) Due(now time.Time) bool {
	return now.Sub(c.Last) >= c.Interval
}

// Wait is how long to sleep before the next tick. Never negative: a tick
// that overran the interval schedules the next one immediately.
func (c TickClock) Wait(now time.Time) time.Duration {
	d := c.Interval - now.Sub(c.Last)
	if d < 0 {
		return 0
	}
	return d
}

// Reset marks now as the start of a tick.
func (c *TickClock) Reset(now time.Time) {
	c.Last = now
}
