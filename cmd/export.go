package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/priyankc/wordup/internal/store"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export progress as CSV",
	Long:  "Export all day scores, the streak, and the last completed day as CSV, to stdout or to a file with --out.",
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

		csv := store.ExportCSV(scores, streakState, lastDay)

		outPath, _ := cmd.Flags().GetString("out")
		if outPath == "" {
			fmt.Fprintln(cmd.OutOrStdout(), csv)
			return nil
		}
		if err := os.WriteFile(outPath, []byte(csv+"\n"), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", outPath, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Exported progress to %s\n", outPath)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringP("out", "o", "", "Write CSV to this file instead of stdout")
}
