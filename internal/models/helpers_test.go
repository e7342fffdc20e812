package models

import "time"

// freezeClock pins Now to t and returns a restore func.
func freezeClock(t time.Time) func() {
	old := Now
	Now = func() time.Time { return t }
	return func() { Now = old }
}
