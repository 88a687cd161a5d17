package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/priyankc/wordup/internal/lesson"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show challenge progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := cmd.Context()
		repo := st.ProgressRepo()

		scores, err := repo.Scores(ctx)
		if err != nil {
			return fmt.Errorf("load scores: %w", err)
		}
		streakState, err := repo.Streak(ctx)
		if err != nil {
			return fmt.Errorf("load streak: %w", err)
		}
		lastDay, err := repo.LastCompletedDay(ctx)
		if err != nil {
			return fmt.Errorf("load last completed day: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Days completed:  %d/%d\n", len(scores), lesson.MaxDay)
		fmt.Fprintf(out, "Current streak:  %d\n", streakState.Count)
		if lastDay > 0 {
			fmt.Fprintf(out, "Last completed:  day %d\n", lastDay)
		}

		if len(scores) == 0 {
			fmt.Fprintln(out, "\nNo lessons completed yet. Run `wordup play` to start day 1.")
			return nil
		}

		days := make([]int, 0, len(scores))
		for day := range scores {
			days = append(days, day)
		}
		sort.Ints(days)

		fmt.Fprintf(out, "\n%-6s %-8s %-5s %s\n", "Day", "Score", "Pct", "Completed")
		for _, day := range days {
			rec := scores[day]
			fmt.Fprintf(out, "%-6d %d/%-6d %3d%%  %s\n",
				rec.Day, rec.Correct, rec.Total, rec.Pct,
				rec.Timestamp.Format("Jan 02, 2006 15:04"))
		}
		return nil
	},
}
