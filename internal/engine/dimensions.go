package engine

import (
	"fmt"
	"strings"
)

type DimensionKey string

const (
	DimensionNutrition DimensionKey = "nutrition"
	DimensionFitness   DimensionKey = "fitness"
	DimensionWork      DimensionKey = "work"
	DimensionSocial    DimensionKey = "social"
	DimensionSafety    DimensionKey = "safety"
	DimensionHealth    DimensionKey = "health"
)

// StatKey is the RPG attribute a dimension is displayed as.
type StatKey string

const (
	StatSTR StatKey = "str"
	StatVIT StatKey = "vit"
	StatINT StatKey = "int"
	StatCHA StatKey = "cha"
	StatDEF StatKey = "def"
	StatSTA StatKey = "sta"
)

const (
	MinRating = 1
	MaxRating = 10
)

// Dimension describes one of the six rated life areas.
type Dimension struct {
	Key         DimensionKey
	Label       string
	FullLabel   string
	Icon        string
	Description string
	Stat        StatKey
}

var dimensions = [...]Dimension{
	{Key: DimensionNutrition, Label: "Nutrition", FullLabel: "Nutrition & Diet", Icon: "🥗", Description: "Ate well and stayed within your plan", Stat: StatSTA},
	{Key: DimensionFitness, Label: "Fitness", FullLabel: "Fitness & Movement", Icon: "💪", Description: "Trained, walked, or moved your body", Stat: StatSTR},
	{Key: DimensionWork, Label: "Work", FullLabel: "Work & Focus", Icon: "🧠", Description: "Made progress on what matters", Stat: StatINT},
	{Key: DimensionSocial, Label: "Social", FullLabel: "Social & Relationships", Icon: "🤝", Description: "Connected with people you care about", Stat: StatCHA},
	{Key: DimensionSafety, Label: "Safety", FullLabel: "Safety & Stability", Icon: "🛡️", Description: "Felt secure with money, home and routine", Stat: StatDEF},
	{Key: DimensionHealth, Label: "Health", FullLabel: "Health & Recovery", Icon: "❤️", Description: "Slept, rested and looked after yourself", Stat: StatVIT},
}

// NumDimensions is the fixed size of the catalog; all scoring math assumes it.
const NumDimensions = len(dimensions)

// Dimensions returns the catalog in display order.
func Dimensions() []Dimension {
	out := make([]Dimension, len(dimensions))
	copy(out, dimensions[:])
	return out
}

func (k DimensionKey) IsValid() bool {
	switch k {
	case DimensionNutrition, DimensionFitness, DimensionWork, DimensionSocial, DimensionSafety, DimensionHealth:
		return true
	default:
		return false
	}
}

// Info returns the catalog entry for k.
func (k DimensionKey) Info() (Dimension, bool) {
	for _, d := range dimensions {
		if d.Key == k {
			return d, true
		}
	}
	return Dimension{}, false
}

// ParseDimension accepts a dimension key or its stat alias (e.g. "str").
func ParseDimension(input string) (DimensionKey, error) {
	s := strings.TrimSpace(strings.ToLower(input))
	for _, d := range dimensions {
		if string(d.Key) == s || string(d.Stat) == s {
			return d.Key, nil
		}
	}
	return "", fmt.Errorf("unknown dimension: %q", input)
}
