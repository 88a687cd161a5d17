package store

import (
	"fmt"
	"sort"
	"strings"

	"github.com/priyankc/wordup/internal/streak"
)

// ExportCSV renders the stored scores as a deterministic CSV export:
// a `_meta` line carrying the streak and last-completed day, the column
// header, then one row per day sorted ascending by numeric day value.
// Timestamps are Unix milliseconds. Downstream imports depend on the exact
// field order.
func ExportCSV(scores map[int]ScoreRecord, st streak.State, lastCompletedDay int) string {
	lastDay := ""
	if lastCompletedDay > 0 {
		lastDay = fmt.Sprintf("%d", lastCompletedDay)
	}

	lines := []string{
		fmt.Sprintf("_meta,streak,%d,last_completed_day,%s", st.Count, lastDay),
		"day,correct,total,pct,timestamp",
	}

	days := make([]int, 0, len(scores))
	for day := range scores {
		days = append(days, day)
	}
	sort.Ints(days)

	for _, day := range days {
		rec := scores[day]
		lines = append(lines, fmt.Sprintf("%d,%d,%d,%d,%d",
			rec.Day, rec.Correct, rec.Total, rec.Pct, rec.Timestamp.UnixMilli()))
	}
	return strings.Join(lines, "\n")
}
