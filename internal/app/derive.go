package app

import "math"

// Derived view values are pure functions of a state snapshot, so screens
// never recompute against live store fields.

// TawafProgress returns the completed fraction of the lap counter, 0..1.
func TawafProgress(s State) float64 {
	return float64(s.TawafCount) / float64(TawafLaps)
}

// TawafComplete reports whether all laps are done.
func TawafComplete(s State) bool {
	return s.TawafCount >= TawafLaps
}

// TawafRemaining returns the laps left.
func TawafRemaining(s State) int {
	if s.TawafCount >= TawafLaps {
		return 0
	}
	return TawafLaps - s.TawafCount
}

// OriginalBalance converts the SAR wallet balance to the pilgrim's
// original currency at the fixed mock exchange rate.
func OriginalBalance(p PilgrimData) int64 {
	return int64(math.Round(float64(p.WalletBalance) * p.ExchangeRate))
}

// TaskProgress counts how many of taskIDs are in the completed set.
func TaskProgress(s State, taskIDs []string) (done, total int) {
	for _, id := range taskIDs {
		if s.TaskDone(id) {
			done++
		}
	}
	return done, len(taskIDs)
}

// HajjDayProgress positions the day 8..13 on the home screen progress
// bar, 0..1.
func HajjDayProgress(s State) float64 {
	return float64(s.HajjDay-7) / 6
}
