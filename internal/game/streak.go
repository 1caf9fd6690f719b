package game

// NextStreak folds a pass/fail outcome into the current streak counters.
// A pass increments the streak, a fail resets it to zero; maxStreak is the
// running high-water mark and never decreases.
func NextStreak(streak, maxStreak int, passed bool) (newStreak, newMax int) {
	if passed {
		newStreak = streak + 1
	}
	newMax = maxStreak
	if newStreak > newMax {
		newMax = newStreak
	}
	return newStreak, newMax
}
