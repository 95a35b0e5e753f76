package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"lifescore/internal/engine"
	"lifescore/internal/ui"
)

// trendLen is the number of check-ins shown in the trend panel.
const trendLen = 7

type boardModel struct {
	ctx context.Context
	svc *engine.Service

	width  int
	height int

	player *engine.PlayerData

	// Check-in form state; active while editing.
	editing   bool
	cursor    int
	draft     [engine.NumDimensions]int
	celebrate bool

	lastLog string
	loading bool
	err     error
}

type loadedMsg struct {
	player *engine.PlayerData
	err    error
}

type checkedInMsg struct {
	res *engine.CheckInResult
	err error
}

func newBoardModel(ctx context.Context, svc *engine.Service) boardModel {
	return boardModel{
		ctx:     ctx,
		svc:     svc,
		loading: true,
		lastLog: "Loaded.",
	}
}

func (m boardModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m boardModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		p, err := m.svc.Load(m.ctx)
		return loadedMsg{player: p, err: err}
	}
}

func (m boardModel) checkInCmd(ratings [engine.NumDimensions]int) tea.Cmd {
	return func() tea.Msg {
		in := engine.DailyCheckIn{Date: m.svc.Today()}
		for i, d := range engine.Dimensions() {
			in.SetRating(d.Key, ratings[i])
		}
		res, err := m.svc.CheckIn(m.ctx, in)
		return checkedInMsg{res: res, err: err}
	}
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case loadedMsg:
		m.loading = false
		m.err = msg.err
		if msg.err != nil {
			m.lastLog = "Load failed: " + msg.err.Error()
			return m, nil
		}
		m.player = msg.player
		m.lastLog = fmt.Sprintf("Refreshed at %s.", time.Now().Format("15:04:05"))
		return m, nil
	case checkedInMsg:
		if msg.err != nil {
			// Nothing was saved; keep showing the committed state.
			m.celebrate = false
			m.lastLog = "Check-in failed: " + msg.err.Error()
			return m, nil
		}
		m.player = msg.res.Player
		m.celebrate = msg.res.LeveledUp
		m.lastLog = fmt.Sprintf("Checked in %s: %d (%s) +%d XP", msg.res.Date, msg.res.Score, msg.res.Grade.Rank, msg.res.XPGained)
		return m, nil
	case tea.KeyMsg:
		if m.editing {
			return m.updateForm(msg)
		}
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "r":
			m.loading = true
			m.lastLog = "Refreshing…"
			return m, m.loadCmd()
		case "c", " ":
			if m.player == nil {
				return m, nil
			}
			m.editing = true
			m.cursor = 0
			m.draft = m.initialDraft()
			m.lastLog = "Rate today: ↑/↓ pick, ←/→ adjust, enter save, esc cancel."
			return m, nil
		}
	}
	return m, nil
}

func (m boardModel) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.editing = false
		m.lastLog = "Check-in cancelled."
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < engine.NumDimensions-1 {
			m.cursor++
		}
	case "left", "h", "-":
		if m.draft[m.cursor] > engine.MinRating {
			m.draft[m.cursor]--
		}
	case "right", "l", "+":
		if m.draft[m.cursor] < engine.MaxRating {
			m.draft[m.cursor]++
		}
	case "enter":
		m.editing = false
		m.lastLog = "Saving…"
		return m, m.checkInCmd(m.draft)
	}
	return m, nil
}

// initialDraft starts from today's check-in if one exists, else the neutral stat.
func (m boardModel) initialDraft() [engine.NumDimensions]int {
	var out [engine.NumDimensions]int
	if c, ok := m.player.CheckIn(m.svc.Today()); ok {
		return c.Ratings()
	}
	for i := range out {
		out[i] = m.svc.Config().NeutralStat
	}
	return out
}

func (m boardModel) View() string {
	if m.err != nil {
		return "Error: " + m.err.Error() + "\n\nPress q to quit.\n"
	}

	header := m.renderHeader()
	sidebar := m.renderSidebar()
	main := m.renderMain()
	footer := m.renderFooter()

	// Simple 2-column layout.
	leftW := 30
	if m.width > 0 {
		maxLeft := m.width / 2
		if maxLeft < leftW {
			leftW = maxLeft
		}
		if leftW < 18 {
			leftW = 18
		}
	}

	linesLeft := strings.Split(sidebar, "\n")
	linesRight := strings.Split(main, "\n")
	max := len(linesLeft)
	if len(linesRight) > max {
		max = len(linesRight)
	}

	var body strings.Builder
	for i := 0; i < max; i++ {
		l := ""
		r := ""
		if i < len(linesLeft) {
			l = linesLeft[i]
		}
		if i < len(linesRight) {
			r = linesRight[i]
		}
		body.WriteString(padRight(l, leftW))
		body.WriteString("  ")
		body.WriteString(r)
		body.WriteString("\n")
	}

	return header + "\n" + body.String() + footer
}

func (m boardModel) renderHeader() string {
	if m.player == nil {
		return "Life Score — loading…"
	}
	pr := m.player.Progress
	title := pr.Title
	if pr.ClassModifier != "" {
		title = pr.ClassModifier + " " + title
	}
	return fmt.Sprintf("Life Score | Level %d %s | XP %d/%d %s | Streak %d (best %d)",
		pr.Level, title, pr.CurrentXP, pr.XPToNextLevel, ui.Bar(pr.CurrentXP, pr.XPToNextLevel, 20),
		m.player.CurrentStreak, m.player.LongestStreak)
}

func (m boardModel) renderSidebar() string {
	if m.player == nil {
		return "Stats\n\nLoading…"
	}
	lines := []string{"Stats"}
	for _, d := range engine.Dimensions() {
		v := m.player.Stats.Get(d.Stat)
		lines = append(lines, fmt.Sprintf("- %-3s %2d %s", strings.ToUpper(string(d.Stat)), v, ui.Bar(v, engine.MaxRating, 10)))
	}
	b := m.player.Bars
	lines = append(lines, "")
	lines = append(lines, "Vitals")
	lines = append(lines, fmt.Sprintf("- HP %s %d/%d", ui.Bar(b.HP.Current, b.HP.Max, 10), b.HP.Current, b.HP.Max))
	lines = append(lines, fmt.Sprintf("- MP %s %d/%d", ui.Bar(b.MP.Current, b.MP.Max, 10), b.MP.Current, b.MP.Max))
	lines = append(lines, fmt.Sprintf("- Fatigue %d/100", b.Fatigue))
	lines = append(lines, "")
	lines = append(lines, "Keys")
	lines = append(lines, "- c/space: check in")
	lines = append(lines, "- r: refresh")
	lines = append(lines, "- q: quit")
	return strings.Join(lines, "\n")
}

func (m boardModel) renderMain() string {
	if m.loading {
		return "Loading…"
	}
	if m.editing {
		return m.renderForm()
	}

	var out []string
	if m.celebrate {
		out = append(out, ui.BadgeLevelUp+" "+m.player.Progress.Title, "")
	}
	out = append(out, "Trend (last 7)")
	trend := engine.Trend(m.player, trendLen)
	if len(trend) == 0 {
		out = append(out, "(no check-ins yet, press c)")
		return strings.Join(out, "\n")
	}
	for _, tp := range trend {
		out = append(out, fmt.Sprintf("%s %3d %s %s", tp.Date, tp.Score, tp.Grade.Rank, ui.Bar(tp.Score, 100, 20)))
	}
	return strings.Join(out, "\n")
}

func (m boardModel) renderForm() string {
	out := []string{"Check-in " + m.svc.Today()}
	for i, d := range engine.Dimensions() {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		out = append(out, fmt.Sprintf("%s%-10s %2d %s", cursor, d.Label, m.draft[i], ui.Bar(m.draft[i], engine.MaxRating, 10)))
	}
	score := engine.CalculateDailyScore(m.draft)
	out = append(out, "", fmt.Sprintf("Score %d (%s)", score, engine.LetterGrade(score).Rank))
	return strings.Join(out, "\n")
}

func (m boardModel) renderFooter() string {
	return "\n" + m.lastLog
}

func padRight(s string, width int) string {
	if width <= 0 {
		return s
	}
	r := []rune(s)
	if len(r) >= width {
		return string(r[:width])
	}
	return s + strings.Repeat(" ", width-len(r))
}
