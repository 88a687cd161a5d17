package speech

import (
	"context"
	"errors"
	"testing"
)

func TestNullImplementations(t *testing.T) {
	ctx := context.Background()

	if err := (NullSynthesizer{}).Speak(ctx, "hello"); !errors.Is(err, ErrUnsupported) {
		t.Errorf("NullSynthesizer.Speak err = %v, want ErrUnsupported", err)
	}

	_, err := (NullRecognizer{}).Listen(ctx)
	if !errors.Is(err, ErrUnsupported) {
		t.Errorf("NullRecognizer.Listen err = %v, want ErrUnsupported", err)
	}
}

func TestCommandRecognizer_NoCommandUnsupported(t *testing.T) {
	t.Setenv("WORDUP_LISTEN_CMD", "")
	r := NewCommandRecognizer()

	_, err := r.Listen(context.Background())
	if !errors.Is(err, ErrUnsupported) {
		t.Errorf("Listen err = %v, want ErrUnsupported", err)
	}
}

func TestCommandRecognizer_TrimsOutput(t *testing.T) {
	t.Setenv("WORDUP_LISTEN_CMD", "echo  the irate customer ")
	r := NewCommandRecognizer()

	got, err := r.Listen(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if got != "the irate customer" {
		t.Errorf("Listen = %q", got)
	}
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Hello World", "hello_world"},
		{"  Ephemeral  ", "ephemeral"},
		{"don't stop", "dont_stop"},
		{"???", "phrase"},
	}
	for _, tc := range tests {
		if got := sanitizeFilename(tc.in); got != tc.want {
			t.Errorf("sanitizeFilename(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
