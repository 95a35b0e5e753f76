package engine

import (
	"math"
	"sort"
)

// DeriveStats averages each dimension over the last window check-ins.
// A dimension with no data in the window reports neutral.
func DeriveStats(history []DailyCheckIn, window int, neutral int) Stats {
	recent := lastN(sortedByDate(history), window)

	var out Stats
	for _, d := range dimensions {
		sum, n := 0, 0
		for _, c := range recent {
			r := c.Rating(d.Key)
			if r < MinRating || r > MaxRating {
				continue
			}
			sum += r
			n++
		}
		v := neutral
		if n > 0 {
			v = int(math.Round(float64(sum) / float64(n)))
		}
		out.set(d.Stat, v)
	}
	return out
}

func lastN(sorted []DailyCheckIn, n int) []DailyCheckIn {
	if n <= 0 {
		return nil
	}
	if len(sorted) > n {
		return sorted[len(sorted)-n:]
	}
	return sorted
}

// sortedByDate returns history ordered by ascending date without modifying it.
func sortedByDate(history []DailyCheckIn) []DailyCheckIn {
	if sort.SliceIsSorted(history, func(i, j int) bool { return history[i].Date < history[j].Date }) {
		return history
	}
	out := make([]DailyCheckIn, len(history))
	copy(out, history)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}
