package root

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"lifescore/internal/engine"
	"lifescore/internal/ui"
)

func newCheckInCmd() *cobra.Command {
	ratings := map[engine.DimensionKey]*int{}
	var date string
	var notes string
	var fromFile string

	cmd := &cobra.Command{
		Use:   "checkin",
		Short: "Rate today (1-10 per dimension) and earn XP",
		Long: `Submit a daily check-in. Every dimension needs a rating from 1 to 10.

Submitting again for the same date replaces that day's ratings; XP for the
date is only topped up, never awarded twice.

Ratings can also be read from a JSON object with --file (use - for stdin):
  {"date":"2026-03-10","nutrition":7,"fitness":6,"work":8,"social":5,"safety":7,"health":6}`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			var in engine.DailyCheckIn
			if fromFile != "" {
				if err := readCheckIn(cmd.InOrStdin(), fromFile, &in); err != nil {
					return err
				}
			}
			for k, v := range ratings {
				if cmd.Flags().Changed(string(k)) {
					in.SetRating(k, *v)
				}
			}
			if cmd.Flags().Changed("date") || in.Date == "" {
				in.Date = date
			}
			if in.Date == "" {
				in.Date = svc.Today()
			}
			if cmd.Flags().Changed("notes") {
				in.Notes = notes
			}

			res, err := svc.CheckIn(ctx, in)
			if err != nil {
				return err
			}
			printCheckInResult(cmd.OutOrStdout(), res)
			return nil
		},
	}

	for _, d := range engine.Dimensions() {
		v := new(int)
		ratings[d.Key] = v
		cmd.Flags().IntVar(v, string(d.Key), 0, fmt.Sprintf("%s %s rating (1-10)", d.Icon, d.Label))
	}
	cmd.Flags().StringVar(&date, "date", "", "Date YYYY-MM-DD (default today)")
	cmd.Flags().StringVar(&notes, "notes", "", "Optional notes")
	cmd.Flags().StringVarP(&fromFile, "file", "f", "", "Read the check-in as JSON from a file (- for stdin)")

	return cmd
}

func readCheckIn(stdin io.Reader, path string, in *engine.DailyCheckIn) error {
	var r io.Reader = stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("open check-in file: %w", err)
		}
		defer f.Close()
		r = f
	}
	if err := json.NewDecoder(r).Decode(in); err != nil {
		return fmt.Errorf("decode check-in: %w", err)
	}
	return nil
}

func printCheckInResult(w io.Writer, res *engine.CheckInResult) {
	verb := "Checked in"
	if res.Replaced {
		verb = "Updated"
	}
	rank := ui.RankStyle(string(res.Grade.Rank)).Render(string(res.Grade.Rank) + " · " + res.Grade.Title)
	fmt.Fprintf(w, "%s %s %s %s\n", ui.Good.Render(ui.IconCheck+" "+verb), ui.Muted.Render(res.Date), ui.LabelValue("Score", res.Score), rank)
	fmt.Fprintln(w, ui.LabelValue("XP", fmt.Sprintf("+%d", res.XPGained)))

	p := res.Player
	fmt.Fprintln(w, ui.LabelValue("Streak", fmt.Sprintf("%s %d (best %d)", ui.IconFire, p.CurrentStreak, p.LongestStreak)))
	fmt.Fprintln(w, ui.LabelValue("Fatigue", ui.FatigueText(p.Bars.Fatigue)))
	if res.LeveledUp {
		fmt.Fprintf(w, "%s %s %s\n", ui.BadgeLevelUp, ui.Gold.Render(fmt.Sprintf("%d → %d", res.LevelBefore, res.LevelAfter)), ui.TitleStyle(string(p.Progress.TitleColor)).Render(p.Progress.Title))
	}
}
