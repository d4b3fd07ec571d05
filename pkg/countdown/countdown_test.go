package countdown

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBreakdown(t *testing.T) {
	target := time.Date(2026, 3, 1, 19, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		now      time.Time
		expected TimeLeft
	}{
		{
			name:     "More than a day left",
			now:      target.Add(-(26*time.Hour + 3*time.Minute + 5*time.Second)),
			expected: TimeLeft{Days: 1, Hours: 2, Minutes: 3, Seconds: 5},
		},
		{
			name:     "Under a minute left",
			now:      target.Add(-42 * time.Second),
			expected: TimeLeft{Seconds: 42},
		},
		{
			name:     "Exactly at target",
			now:      target,
			expected: TimeLeft{},
		},
		{
			name:     "Past the target clamps to zero",
			now:      target.Add(3 * time.Hour),
			expected: TimeLeft{},
		},
		{
			name:     "Sub-second remainder truncates",
			now:      target.Add(-1500 * time.Millisecond),
			expected: TimeLeft{Seconds: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Breakdown(target, tt.now))
		})
	}
}

func TestBreakdownDecomposition(t *testing.T) {
	target := time.Date(2026, 3, 1, 19, 0, 0, 0, time.UTC)

	for _, offset := range []time.Duration{
		time.Second,
		59 * time.Second,
		61 * time.Minute,
		25 * time.Hour,
		9*24*time.Hour + 13*time.Hour + 37*time.Minute + 21*time.Second,
	} {
		now := target.Add(-offset)
		left := Breakdown(target, now)

		assert.GreaterOrEqual(t, left.Days, 0)
		assert.GreaterOrEqual(t, left.Hours, 0)
		assert.GreaterOrEqual(t, left.Minutes, 0)
		assert.GreaterOrEqual(t, left.Seconds, 0)

		total := left.Days*86400 + left.Hours*3600 + left.Minutes*60 + left.Seconds
		assert.Equal(t, int(offset/time.Second), total)
	}
}

func TestTickStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	target := time.Now().Add(time.Hour)

	done := make(chan struct{})
	calls := 0
	go func() {
		defer close(done)
		Tick(ctx, target, func(TimeLeft) {
			calls++
			cancel()
		})
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("ticker did not stop after cancellation")
	}

	assert.GreaterOrEqual(t, calls, 1)
}
