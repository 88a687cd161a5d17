package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var sayCmd = &cobra.Command{
	Use:   "say <word>...",
	Short: "Pronounce a word aloud",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		synth := newSynthesizer()
		if err := synth.Speak(cmd.Context(), strings.Join(args, " ")); err != nil {
			return fmt.Errorf("speak: %w", err)
		}
		return nil
	},
}
