package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"lifescore/internal/engine"
	"lifescore/internal/ui"
)

func newHistoryCmd() *cobra.Command {
	var days int
	var showLog bool

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show the recent score trend",
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

			fmt.Fprintln(out, ui.Heading(ui.IconChart, fmt.Sprintf("Trend (last %d)", days)))
			trend := engine.Trend(p, days)
			if len(trend) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("(no check-ins yet)"))
			}
			for _, tp := range trend {
				rank := ui.RankStyle(string(tp.Grade.Rank)).Render(string(tp.Grade.Rank))
				fmt.Fprintf(out, "%s %3d %s %s\n", ui.Muted.Render(tp.Date), tp.Score, rank, ui.Bar(tp.Score, 100, 25))
			}

			if !showLog {
				return nil
			}
			entries, err := svc.History(ctx, days)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, "")
			fmt.Fprintln(out, ui.H2.Render(ui.IconScroll+" Submissions"))
			for _, e := range entries {
				id := e.SubmissionID
				if len(id) > 8 {
					id = id[:8]
				}
				fmt.Fprintf(out, "- %s %s %s score %d (%s) xp %d level %d\n",
					ui.Muted.Render(e.RecordedAt.Local().Format("2006-01-02 15:04")), ui.Muted.Render(id), e.Date, e.Score, e.Grade, e.XPAwarded, e.Level)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&days, "days", "n", 7, "Number of check-ins to show")
	cmd.Flags().BoolVar(&showLog, "log", false, "Also list raw submissions, including resubmissions")
	return cmd
}
