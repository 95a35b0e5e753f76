package engine

import "math"

// CalculateDailyScore rescales the unweighted mean of six 1-10 ratings to 0-100.
// Ratings are expected to be validated; out-of-range values are clamped.
func CalculateDailyScore(ratings [NumDimensions]int) int {
	sum := 0
	for _, r := range ratings {
		sum += clamp(r, MinRating, MaxRating)
	}
	span := float64(NumDimensions * (MaxRating - MinRating))
	score := math.Round(float64(sum-NumDimensions*MinRating) / span * 100)
	return clamp(int(score), 0, 100)
}

type Rank string

const (
	RankS Rank = "S"
	RankA Rank = "A"
	RankB Rank = "B"
	RankC Rank = "C"
	RankD Rank = "D"
	RankE Rank = "E"
)

type Grade struct {
	Rank  Rank
	Title string
	Min   int
}

// grades is ordered by descending Min; the last band starts at 0.
var grades = []Grade{
	{Rank: RankS, Title: "Monarch", Min: 95},
	{Rank: RankA, Title: "Elite", Min: 85},
	{Rank: RankB, Title: "Hunter", Min: 70},
	{Rank: RankC, Title: "Warrior", Min: 55},
	{Rank: RankD, Title: "Trainee", Min: 40},
	{Rank: RankE, Title: "Civilian", Min: 0},
}

// LetterGrade maps a composite score to its rank band.
func LetterGrade(score int) Grade {
	score = clamp(score, 0, 100)
	for _, g := range grades {
		if score >= g.Min {
			return g
		}
	}
	return grades[len(grades)-1]
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
