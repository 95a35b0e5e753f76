package engine

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDimensionCatalog(t *testing.T) {
	dims := Dimensions()
	require.Len(t, dims, 6)

	seenStat := map[StatKey]bool{}
	for _, d := range dims {
		require.True(t, d.Key.IsValid(), d.Key)
		require.NotEmpty(t, d.Label)
		require.NotEmpty(t, d.Icon)
		require.False(t, seenStat[d.Stat], "stat %s mapped twice", d.Stat)
		seenStat[d.Stat] = true

		info, ok := d.Key.Info()
		require.True(t, ok)
		require.Equal(t, d, info)
	}

	// Callers get a copy.
	dims[0].Label = "changed"
	require.Equal(t, "Nutrition", Dimensions()[0].Label)
}

func TestParseDimension(t *testing.T) {
	cases := map[string]DimensionKey{
		"fitness":   DimensionFitness,
		" Health ":  DimensionHealth,
		"str":       DimensionFitness,
		"VIT":       DimensionHealth,
		"int":       DimensionWork,
		"cha":       DimensionSocial,
		"def":       DimensionSafety,
		"sta":       DimensionNutrition,
		"nutrition": DimensionNutrition,
	}
	for in, want := range cases {
		got, err := ParseDimension(in)
		require.NoError(t, err, in)
		require.Equal(t, want, got, in)
	}

	_, err := ParseDimension("sleep")
	require.Error(t, err)
	require.False(t, DimensionKey("sleep").IsValid())
}
