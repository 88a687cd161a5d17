package speech

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// CommandRecognizer runs an external transcription command (for example a
// whisper.cpp wrapper that records a few seconds of microphone audio) and
// treats its stdout as the transcript. Configured via WORDUP_LISTEN_CMD;
// with no command configured, recognition is unsupported.
type CommandRecognizer struct {
	command string
}

var _ Recognizer = (*CommandRecognizer)(nil)

// NewCommandRecognizer builds a recognizer from the environment.
func NewCommandRecognizer() *CommandRecognizer {
	return &CommandRecognizer{command: os.Getenv("WORDUP_LISTEN_CMD")}
}

// Listen runs the transcription command once and returns its trimmed stdout.
// An empty transcript means nothing was recognized; the caller reports
// "no input" and records no outcome.
func (r *CommandRecognizer) Listen(ctx context.Context) (string, error) {
	if r.command == "" {
		return "", ErrUnsupported
	}

	parts := strings.Fields(r.command)
	out, err := exec.CommandContext(ctx, parts[0], parts[1:]...).Output()
	if err != nil {
		return "", fmt.Errorf("recognition command: %w", err)
	}
	return strings.TrimSpace(string(out)), nil
}
