package engine

import (
	"time"
)

// DailyCheckIn is one submission for one calendar date. Date is the unique key.
type DailyCheckIn struct {
	Date      string    `json:"date"`
	Nutrition int       `json:"nutrition"`
	Fitness   int       `json:"fitness"`
	Work      int       `json:"work"`
	Social    int       `json:"social"`
	Safety    int       `json:"safety"`
	Health    int       `json:"health"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	// XPAwarded is the XP banked for this date so far. Resubmissions only top it up.
	XPAwarded int `json:"xpAwarded"`
	// Streak is the run ending on Date when it was first submitted; XP for the
	// date is always computed with it.
	Streak int `json:"streak,omitempty"`
}

// Rating returns the rating for k, or 0 for an unknown key.
func (c DailyCheckIn) Rating(k DimensionKey) int {
	switch k {
	case DimensionNutrition:
		return c.Nutrition
	case DimensionFitness:
		return c.Fitness
	case DimensionWork:
		return c.Work
	case DimensionSocial:
		return c.Social
	case DimensionSafety:
		return c.Safety
	case DimensionHealth:
		return c.Health
	default:
		return 0
	}
}

// SetRating sets the rating for k. Unknown keys are ignored.
func (c *DailyCheckIn) SetRating(k DimensionKey, v int) {
	switch k {
	case DimensionNutrition:
		c.Nutrition = v
	case DimensionFitness:
		c.Fitness = v
	case DimensionWork:
		c.Work = v
	case DimensionSocial:
		c.Social = v
	case DimensionSafety:
		c.Safety = v
	case DimensionHealth:
		c.Health = v
	}
}

// Ratings returns the six ratings in catalog order.
func (c DailyCheckIn) Ratings() [NumDimensions]int {
	var out [NumDimensions]int
	for i, d := range dimensions {
		out[i] = c.Rating(d.Key)
	}
	return out
}

// Score is the composite score of this check-in.
func (c DailyCheckIn) Score() int {
	return CalculateDailyScore(c.Ratings())
}

type TitleColor string

const (
	TitleGray   TitleColor = "gray"
	TitleGreen  TitleColor = "green"
	TitleBlue   TitleColor = "blue"
	TitlePurple TitleColor = "purple"
	TitleOrange TitleColor = "orange"
	TitleGold   TitleColor = "gold"
)

type Progress struct {
	Level         int        `json:"level"`
	CurrentXP     int        `json:"currentXP"`
	XPToNextLevel int        `json:"xpToNextLevel"`
	Title         string     `json:"title"`
	TitleColor    TitleColor `json:"titleColor"`
	ClassModifier string     `json:"classModifier,omitempty"`
}

// Stats are trailing-window averages, one per dimension.
type Stats struct {
	STR int `json:"str"`
	VIT int `json:"vit"`
	INT int `json:"int"`
	CHA int `json:"cha"`
	DEF int `json:"def"`
	STA int `json:"sta"`
}

// Get returns the value of stat k.
func (s Stats) Get(k StatKey) int {
	switch k {
	case StatSTR:
		return s.STR
	case StatVIT:
		return s.VIT
	case StatINT:
		return s.INT
	case StatCHA:
		return s.CHA
	case StatDEF:
		return s.DEF
	case StatSTA:
		return s.STA
	default:
		return 0
	}
}

func (s *Stats) set(k StatKey, v int) {
	switch k {
	case StatSTR:
		s.STR = v
	case StatVIT:
		s.VIT = v
	case StatINT:
		s.INT = v
	case StatCHA:
		s.CHA = v
	case StatDEF:
		s.DEF = v
	case StatSTA:
		s.STA = v
	}
}

type Vital struct {
	Current int `json:"current"`
	Max     int `json:"max"`
}

type Bars struct {
	HP      Vital `json:"hp"`
	MP      Vital `json:"mp"`
	Fatigue int   `json:"fatigue"`
}

// PlayerData is the single persisted aggregate for one player.
type PlayerData struct {
	CheckIns      []DailyCheckIn `json:"checkIns"`
	Progress      Progress       `json:"progress"`
	Stats         Stats          `json:"stats"`
	Bars          Bars           `json:"bars"`
	CurrentStreak int            `json:"currentStreak"`
	LongestStreak int            `json:"longestStreak"`
}

// CheckIn returns the check-in for date, if any.
func (p *PlayerData) CheckIn(date string) (DailyCheckIn, bool) {
	for _, c := range p.CheckIns {
		if c.Date == date {
			return c, true
		}
	}
	return DailyCheckIn{}, false
}

// Clone returns a deep copy so callers can compute on it without touching p.
func (p *PlayerData) Clone() *PlayerData {
	out := *p
	if p.CheckIns != nil {
		out.CheckIns = make([]DailyCheckIn, len(p.CheckIns))
		copy(out.CheckIns, p.CheckIns)
	}
	return &out
}

// NewPlayerData returns the state of a player that has never checked in.
func NewPlayerData(cfg Config) *PlayerData {
	p := &PlayerData{
		CheckIns: []DailyCheckIn{},
		Progress: progressForLevel(cfg, 1, 0),
		Stats:    DeriveStats(nil, cfg.StatWindow, cfg.NeutralStat),
	}
	p.Bars = DeriveBars(cfg, nil, p.Progress.Level, 0)
	return p
}
