package engine

import "sort"

// UpdateStreak derives the live streak from history as seen on today.
// A run is live if it ends today or yesterday. longest never drops below prevLongest.
func UpdateStreak(history []DailyCheckIn, today string, prevLongest int) (current int, longest int) {
	days := dateSet(history)

	switch {
	case days[today]:
		current = runEndingAt(days, today)
	case days[addDays(today, -1)]:
		current = runEndingAt(days, addDays(today, -1))
	}

	longest = prevLongest
	if run := LongestRun(history); run > longest {
		longest = run
	}
	if current > longest {
		longest = current
	}
	return current, longest
}

// StreakAt returns the length of the consecutive run ending exactly on date.
func StreakAt(history []DailyCheckIn, date string) int {
	return runEndingAt(dateSet(history), date)
}

// LongestRun returns the longest run of consecutive dates anywhere in history.
func LongestRun(history []DailyCheckIn) int {
	if len(history) == 0 {
		return 0
	}
	dates := make([]string, 0, len(history))
	for d := range dateSet(history) {
		dates = append(dates, d)
	}
	sort.Strings(dates)

	best, run := 1, 1
	for i := 1; i < len(dates); i++ {
		if daysBetween(dates[i-1], dates[i]) == 1 {
			run++
		} else {
			run = 1
		}
		if run > best {
			best = run
		}
	}
	return best
}

func runEndingAt(days map[string]bool, date string) int {
	n := 0
	for d := date; days[d]; d = addDays(d, -1) {
		n++
	}
	return n
}

func dateSet(history []DailyCheckIn) map[string]bool {
	days := make(map[string]bool, len(history))
	for _, c := range history {
		days[c.Date] = true
	}
	return days
}
