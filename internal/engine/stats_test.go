package engine

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDeriveStatsNeutralWithoutData(t *testing.T) {
	s := DeriveStats(nil, 14, 5)
	require.Equal(t, Stats{STR: 5, VIT: 5, INT: 5, CHA: 5, DEF: 5, STA: 5}, s)
}

func TestDeriveStatsUsesTrailingWindow(t *testing.T) {
	var h []DailyCheckIn
	for day := 1; day <= 20; day++ {
		c := uniform(fmt.Sprintf("2026-03-%02d", day), 4)
		if day > 6 {
			c.Fitness = 10
		} else {
			c.Fitness = 1
		}
		h = append(h, c)
	}

	s := DeriveStats(h, 14, 5)
	require.Equal(t, 10, s.STR)
	require.Equal(t, 4, s.VIT)

	// A wider window pulls the early low days back in.
	require.Less(t, DeriveStats(h, 20, 5).STR, 10)
}

func TestDeriveStatsRoundsAndMapsDimensions(t *testing.T) {
	a := uniform("2026-03-01", 7)
	b := uniform("2026-03-02", 8)
	a.Work, b.Work = 2, 3
	a.Nutrition, b.Nutrition = 9, 9

	s := DeriveStats([]DailyCheckIn{b, a}, 14, 5)
	require.Equal(t, 8, s.STR)
	require.Equal(t, 3, s.INT)
	require.Equal(t, 9, s.STA)
	for _, d := range Dimensions() {
		require.NotZero(t, s.Get(d.Stat), d.Key)
	}
}
