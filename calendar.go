package aocenv

import "time"

// firstPuzzleYear is the first Advent of Code calendar.
const firstPuzzleYear = 2015

// Puzzles unlock at midnight US Eastern (UTC-5, no DST in December).
var estZone = time.FixedZone("EST", -5*60*60)

// latestPuzzle returns the most recent (year, day) unlocked by the annual
// calendar at the given instant. Outside December the latest puzzle is day
// 25 of the previous event; during December the day tracks the calendar up
// to the 25th.
func latestPuzzle(now time.Time) (year, day int) {
	est := now.In(estZone)
	if est.Month() < time.December {
		return est.Year() - 1, 25
	}
	day = est.Day()
	if day > 25 {
		day = 25
	}
	return est.Year(), day
}
