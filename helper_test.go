package budget

import "time"

// fixedClock returns a clock starting at start and advancing by one second on each call.
func fixedClock(start time.Time) func() time.Time {
	next := start
	return func() time.Time {
		now := next
		next = next.Add(time.Second)
		return now
	}
}

// testLedger returns an empty ledger whose clock starts at 2025-08-01 09:00 local time.
func testLedger() *Ledger {
	return NewLedger().WithClock(fixedClock(time.Date(2025, time.August, 1, 9, 0, 0, 0, time.Local)))
}
