package root

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"lifescore/internal/engine"
	"lifescore/internal/ui"
)

// recentDays is the audit-log window shown by status.
const recentDays = 7

func newStatusCmd() *cobra.Command {
	var showBadges bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show level, vitals, stats and streaks",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			p, err := svc.Load(ctx)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			pr := p.Progress

			title := pr.Title
			if pr.ClassModifier != "" {
				title = pr.ClassModifier + " " + title
			}
			fmt.Fprintln(out, ui.Heading(ui.IconSparkle, "Player Status"))
			fmt.Fprintln(out, ui.LabelValue("Level", fmt.Sprintf("%d %s", pr.Level, ui.TitleStyle(string(pr.TitleColor)).Render(title))))
			fmt.Fprintln(out, ui.LabelValue("XP", fmt.Sprintf("%d/%d %s", pr.CurrentXP, pr.XPToNextLevel, ui.Bar(pr.CurrentXP, pr.XPToNextLevel, 20))))
			fmt.Fprintln(out, ui.LabelValue("Streak", fmt.Sprintf("%s %d (best %d)", ui.IconFire, p.CurrentStreak, p.LongestStreak)))
			fmt.Fprintln(out, "")

			b := p.Bars
			fmt.Fprintln(out, ui.H2.Render("🩺 Vitals"))
			fmt.Fprintf(out, "- %s HP %s %d/%d\n", ui.IconHeart, ui.Bar(b.HP.Current, b.HP.Max, 20), b.HP.Current, b.HP.Max)
			fmt.Fprintf(out, "- %s MP %s %d/%d\n", ui.IconMana, ui.Bar(b.MP.Current, b.MP.Max, 20), b.MP.Current, b.MP.Max)
			fmt.Fprintf(out, "- %s Fatigue %s\n", ui.IconSleep, ui.FatigueText(b.Fatigue))
			fmt.Fprintln(out, "")

			fmt.Fprintln(out, ui.H2.Render("📊 Stats"))
			for _, d := range engine.Dimensions() {
				v := p.Stats.Get(d.Stat)
				fmt.Fprintf(out, "- %s %s: %2d %s %s\n", d.Icon, strings.ToUpper(string(d.Stat)), v, ui.Bar(v, engine.MaxRating, 10), ui.Muted.Render(d.Label))
			}

			if today, ok := p.CheckIn(svc.Today()); ok {
				s := today.Score()
				g := engine.LetterGrade(s)
				fmt.Fprintln(out, "")
				fmt.Fprintln(out, ui.LabelValue("Today", fmt.Sprintf("%d %s", s, ui.RankStyle(string(g.Rank)).Render(string(g.Rank)+" · "+g.Title))))
			} else {
				fmt.Fprintln(out, "")
				fmt.Fprintln(out, ui.Warn.Render(ui.IconWarn+" No check-in yet today"))
			}

			recent, err := svc.RecentCheckIns(ctx, recentDays)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, ui.LabelValue(fmt.Sprintf("Submissions (%dd)", recentDays), recent))

			if showBadges {
				badges, err := svc.Badges(ctx)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, "")
				fmt.Fprintln(out, ui.H2.Render(fmt.Sprintf("%s Badges (%d/%d)", ui.IconTrophy, engine.CountEarned(badges), len(badges))))
				for _, bd := range badges {
					if bd.Earned {
						fmt.Fprintf(out, "- %s %s %s\n", bd.Icon, ui.Good.Render(bd.Name), ui.Muted.Render(bd.Description))
					} else {
						fmt.Fprintf(out, "- %s %s\n", ui.Muted.Render("🔒 "+bd.Name), ui.Muted.Render(bd.Description))
					}
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&showBadges, "badges", "b", false, "Also list badges")
	return cmd
}
