package elapsed

import (
	"context"
	"fmt"
	"time"
)

const (
	// Interval at which a watched elapsed display is recomputed
	Interval = time.Second

	dateLayout = "January 2, 2006"
)

// Now Clock used by Format and Watch, replaceable in tests
var Now = time.Now

// Format Time elapsed since lastOnline (Unix seconds) as "{h}h {mm}m {ss}s"
func Format(lastOnline int64) string {
	return FormatAt(lastOnline, Now())
}

// FormatAt Hours are not padded and may exceed 23. A lastOnline in the future yields negative components.
func FormatAt(lastOnline int64, now time.Time) string {
	elapsed := now.Unix() - lastOnline

	hours := floorDiv(elapsed, 3600)
	minutes := floorDiv(elapsed%3600, 60)
	seconds := elapsed % 60

	return fmt.Sprintf("%dh %02dm %02ds", hours, minutes, seconds)
}

// FormatDate The single date format used for displaying timestamps (e.g. "June 2, 2010")
func FormatDate(ts int64) string {
	return time.Unix(ts, 0).UTC().Format(dateLayout)
}

// Watch Call fn with the formatted elapsed time right away and then once per interval,
// until ctx is done or the returned stop func is called.
// fn is never called after stop has returned.
func Watch(ctx context.Context, lastOnline int64, interval time.Duration, fn func(string)) (stop func()) {
	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})

	go func() {
		defer close(done)

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		fn(Format(lastOnline))
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				// Ticker and cancellation may be ready at the same time
				if ctx.Err() != nil {
					return
				}
				fn(Format(lastOnline))
			}
		}
	}()

	return func() {
		cancel()
		<-done
	}
}

// floorDiv Integer division rounding towards negative infinity
func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
