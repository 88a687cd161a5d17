// Package speech wraps the optional text-to-speech and speech-recognition
// capabilities used by pronunciation drills. Both are external
// collaborators: when a capability is missing the caller gets
// ErrUnsupported and degrades to a notice, never a crash.
package speech

import (
	"context"
	"errors"
)

// ErrUnsupported is returned when the host has no usable speech capability.
var ErrUnsupported = errors.New("speech capability not available on this system")

// Synthesizer speaks text aloud. Fire-and-forget from the caller's point of
// view; Speak returns once playback has been handed off or failed.
type Synthesizer interface {
	Speak(ctx context.Context, text string) error
}

// Recognizer captures one utterance and returns the recognized transcript.
// An empty transcript with a nil error means nothing was heard.
// Only one recognition session should be active at a time.
type Recognizer interface {
	Listen(ctx context.Context) (string, error)
}

// NullSynthesizer reports speech synthesis as unsupported.
type NullSynthesizer struct{}

func (NullSynthesizer) Speak(ctx context.Context, text string) error {
	return ErrUnsupported
}

// NullRecognizer reports speech recognition as unsupported.
type NullRecognizer struct{}

func (NullRecognizer) Listen(ctx context.Context) (string, error) {
	return "", ErrUnsupported
}
