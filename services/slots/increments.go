package slots

import "time"

const incrementLayout = "15:04:05"

// FilterIncrements returns the increments that fall inside the slot's window
// once combined with its calendar date: an increment t is kept iff
// windowStart <= t < windowEnd. The input is assumed sorted ascending and the
// output is a plain order-preserving filter — no resampling. A window
// narrower than one increment step yields an empty result, which is valid.
func FilterIncrements(increments []string, windowStart, windowEnd time.Time) []string {
	if len(increments) == 0 {
		return nil
	}

	var active []string
	for _, inc := range increments {
		tod, err := time.Parse(incrementLayout, inc)
		if err != nil {
			continue
		}
		t := time.Date(
			windowStart.Year(), windowStart.Month(), windowStart.Day(),
			tod.Hour(), tod.Minute(), tod.Second(), 0,
			windowStart.Location(),
		)
		if !t.Before(windowStart) && t.Before(windowEnd) {
			active = append(active, inc)
		}
	}
	return active
}
