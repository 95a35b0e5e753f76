package engine

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDailyScoreBounds(t *testing.T) {
	require.Equal(t, 0, CalculateDailyScore(uniform("2026-01-01", 1).Ratings()))
	require.Equal(t, 100, CalculateDailyScore(uniform("2026-01-01", 10).Ratings()))
	require.Equal(t, 67, CalculateDailyScore(uniform("2026-01-01", 7).Ratings()))

	// Every reachable sum of six ratings stays within [0,100] and is monotone.
	prev := -1
	for sum := NumDimensions * MinRating; sum <= NumDimensions*MaxRating; sum++ {
		var r [NumDimensions]int
		rest := sum
		for i := range r {
			left := NumDimensions - i - 1
			v := rest - left*MinRating
			if v > MaxRating {
				v = MaxRating
			}
			r[i] = v
			rest -= v
		}
		s := CalculateDailyScore(r)
		require.GreaterOrEqual(t, s, 0)
		require.LessOrEqual(t, s, 100)
		require.GreaterOrEqual(t, s, prev, "sum %d", sum)
		prev = s
	}
}

func TestDailyScoreIsUnweighted(t *testing.T) {
	a := uniform("2026-01-01", 5)
	a.Fitness = 10
	b := uniform("2026-01-01", 5)
	b.Safety = 10
	require.Equal(t, a.Score(), b.Score())
}

func TestLetterGradeBandsAreExhaustive(t *testing.T) {
	for score := 0; score <= 100; score++ {
		matches := 0
		for i, g := range grades {
			upper := 101
			if i > 0 {
				upper = grades[i-1].Min
			}
			if score >= g.Min && score < upper {
				matches++
				require.Equal(t, g, LetterGrade(score))
			}
		}
		require.Equal(t, 1, matches, "score %d", score)
	}
}

func TestLetterGradeEdges(t *testing.T) {
	cases := []struct {
		score int
		rank  Rank
		title string
	}{
		{0, RankE, "Civilian"},
		{39, RankE, "Civilian"},
		{40, RankD, "Trainee"},
		{55, RankC, "Warrior"},
		{69, RankC, "Warrior"},
		{70, RankB, "Hunter"},
		{85, RankA, "Elite"},
		{94, RankA, "Elite"},
		{95, RankS, "Monarch"},
		{100, RankS, "Monarch"},
	}
	for _, tc := range cases {
		g := LetterGrade(tc.score)
		require.Equal(t, tc.rank, g.Rank, "score %d", tc.score)
		require.Equal(t, tc.title, g.Title, "score %d", tc.score)
	}
}
