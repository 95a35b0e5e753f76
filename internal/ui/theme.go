package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// lifescore theme (CLI + TUI).
// Kept intentionally small: reusable styles and a few emojis.

const (
	IconSparkle = "✨"
	IconCheck   = "✅"
	IconTrophy  = "🏆"
	IconBolt    = "⚡"
	IconFire    = "🔥"
	IconHeart   = "❤️"
	IconMana    = "🔷"
	IconSleep   = "💤"
	IconChart   = "📈"
	IconWarn    = "⚠️"
	IconError   = "🧨"
	IconScroll  = "📜"
)

var (
	cPrimary = lipgloss.Color("63")  // blue
	cAccent  = lipgloss.Color("205") // magenta
	cGood    = lipgloss.Color("42")  // green
	cWarn    = lipgloss.Color("214") // orange
	cBad     = lipgloss.Color("196") // red
	cMuted   = lipgloss.Color("244") // gray
	cGold    = lipgloss.Color("220") // gold
	cPurple  = lipgloss.Color("135") // purple
)

var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(cAccent)
	H2    = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Muted = lipgloss.NewStyle().Foreground(cMuted)
	Key   = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Good  = lipgloss.NewStyle().Bold(true).Foreground(cGood)
	Warn  = lipgloss.NewStyle().Bold(true).Foreground(cWarn)
	Bad   = lipgloss.NewStyle().Bold(true).Foreground(cBad)
	Gold  = lipgloss.NewStyle().Bold(true).Foreground(cGold)

	Panel       = lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(cMuted).Padding(0, 1)
	PanelTitle  = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	SelectedRow = lipgloss.NewStyle().Bold(true).Foreground(cGold).Background(cPrimary)

	BadgeLevelUp = lipgloss.NewStyle().Bold(true).Foreground(cGold).Render("LEVEL UP")
)

func Heading(icon string, title string) string {
	icon = strings.TrimSpace(icon)
	if icon != "" {
		icon += " "
	}
	return Title.Render(icon + title)
}

func LabelValue(label string, value any) string {
	return fmt.Sprintf("%s %v", Key.Render(label+":"), value)
}

// TitleStyle maps a title color tag to a style.
func TitleStyle(color string) lipgloss.Style {
	switch color {
	case "gold":
		return Gold
	case "orange":
		return Warn
	case "purple":
		return lipgloss.NewStyle().Bold(true).Foreground(cPurple)
	case "blue":
		return H2
	case "green":
		return Good
	default:
		return Muted
	}
}

// RankStyle colors a letter rank, S brightest.
func RankStyle(rank string) lipgloss.Style {
	switch rank {
	case "S":
		return Gold
	case "A":
		return lipgloss.NewStyle().Bold(true).Foreground(cPurple)
	case "B":
		return H2
	case "C":
		return Good
	case "D":
		return Warn
	default:
		return Bad
	}
}

// Bar renders value/total as a fixed-width text meter.
func Bar(value int, total int, width int) string {
	if total <= 0 {
		total = 1
	}
	if width <= 3 {
		width = 3
	}
	if value < 0 {
		value = 0
	}
	if value > total {
		value = total
	}
	filled := int(float64(value) / float64(total) * float64(width))
	if filled > width {
		filled = width
	}
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}

// FatigueText colors fatigue by severity.
func FatigueText(fatigue int) string {
	s := fmt.Sprintf("%d/100", fatigue)
	switch {
	case fatigue >= 60:
		return Bad.Render(s)
	case fatigue >= 30:
		return Warn.Render(s)
	default:
		return Good.Render(s)
	}
}
