package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/priyankc/wordup/internal/lesson"
)

var playCmd = &cobra.Command{
	Use:   "play [day]",
	Short: "Start a lesson",
	Long:  "Start the next lesson, or a specific day's lesson when a day number (1-30) is given.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		startDay := 0
		if len(args) == 1 {
			day, err := strconv.Atoi(args[0])
			if err != nil || day < 1 || day > lesson.MaxDay {
				return fmt.Errorf("day must be a number between 1 and %d", lesson.MaxDay)
			}
			startDay = day
		}
		return runApp(cmd, startDay)
	},
}
