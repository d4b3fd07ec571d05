// Package countdown derives the time remaining until a fixed launch instant.
package countdown

import (
	"context"
	"time"
)

type TimeLeft struct {
	Days    int `json:"days"`
	Hours   int `json:"hours"`
	Minutes int `json:"minutes"`
	Seconds int `json:"seconds"`
}

// Breakdown splits target-now into whole days/hours/minutes/seconds.
// Once now reaches the target every component is zero, never negative.
func Breakdown(target, now time.Time) TimeLeft {
	remaining := target.Sub(now)
	if remaining <= 0 {
		return TimeLeft{}
	}

	total := int(remaining / time.Second)
	return TimeLeft{
		Days:    total / 86400,
		Hours:   total / 3600 % 24,
		Minutes: total / 60 % 60,
		Seconds: total % 60,
	}
}

// Tick recomputes the breakdown once per second and passes it to fn,
// starting with an immediate computation. It returns when ctx is
// cancelled, so the ticker never outlives its caller.
func Tick(ctx context.Context, target time.Time, fn func(TimeLeft)) {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	fn(Breakdown(target, time.Now()))
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			fn(Breakdown(target, now))
		}
	}
}
