// Package limiter enforces a fixed minimum delay between requests to the
// site, per its acceptable-use expectations. Reads served from the local
// response cache bypass the limiter entirely.
package limiter

import (
	"log"
	"time"
)

func New(delay time.Duration) *Limiter {
	return &Limiter{delay: delay}
}

type Limiter struct {
	delay  time.Duration
	nextAt time.Time
}

// Wait blocks until the earliest time the next request is allowed.
func (lim *Limiter) Wait() {
	if lim.nextAt.IsZero() {
		return
	}
	dur := time.Until(lim.nextAt)
	if dur <= 0 {
		return
	}
	if dur > time.Second {
		log.Printf("waiting %s until %s",
			dur.Truncate(time.Second),
			lim.nextAt.Format(time.StampMilli))
	}
	time.Sleep(dur)
}

// Bump records that a request just went out, pushing the next allowed
// request time forward by the configured delay.
func (lim *Limiter) Bump() {
	lim.nextAt = time.Now().Add(lim.delay)
}

// BumpBy pushes the next allowed request out by an explicit duration, for
// when the site asks for a longer pause than the configured delay.
func (lim *Limiter) BumpBy(d time.Duration) {
	lim.nextAt = time.Now().Add(d)
}
