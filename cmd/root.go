package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/priyankc/wordup/internal/app"
	"github.com/priyankc/wordup/internal/lesson"
	"github.com/priyankc/wordup/internal/speech"
	"github.com/priyankc/wordup/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "wordup",
	Short: "30-day vocabulary power-up for the terminal",
	Long:  "WordUp — a terminal app that builds vocabulary over a 30-day challenge of daily lessons, quizzes, and pronunciation drills.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, 0)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides WORDUP_DB env var)")
	rootCmd.PersistentFlags().String("data", "", "Directory with custom lesson files (overrides WORDUP_DATA env var)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(sayCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(versionCmd)
}

// runApp opens the store and starts the TUI, optionally jumping straight
// into a day's lesson.
func runApp(cmd *cobra.Command, startDay int) error {
	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	return app.Run(app.Options{
		Repo:        st.ProgressRepo(),
		Lessons:     lesson.NewStore(resolveDataDir(cmd)),
		Synthesizer: newSynthesizer(),
		Recognizer:  speech.NewCommandRecognizer(),
		StartDay:    startDay,
	})
}

// openStore opens the SQLite store at the resolved path.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return st, nil
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then WORDUP_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// resolveDataDir returns the lesson override directory: --data flag first,
// then WORDUP_DATA. Empty means builtin lessons only.
func resolveDataDir(cmd *cobra.Command) string {
	if p, _ := cmd.Flags().GetString("data"); p != "" {
		return p
	}
	return os.Getenv("WORDUP_DATA")
}

// newSynthesizer builds the production text-to-speech synthesizer with its
// audio cache under the user cache directory.
func newSynthesizer() speech.Synthesizer {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		cacheDir = os.TempDir()
	}
	return speech.NewTTSSynthesizer(filepath.Join(cacheDir, "wordup", "tts"))
}
