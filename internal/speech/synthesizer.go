package speech

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

const ttsRequestTimeout = 10 * time.Second

// ttsEndpoint is the free translate text-to-speech endpoint. No API key.
const ttsEndpoint = "https://translate.google.com/translate_tts"

// players are tried in order to play a fetched MP3.
var players = [][]string{
	{"afplay"},
	{"mpg123", "-q"},
	{"mpv", "--really-quiet"},
	{"ffplay", "-nodisp", "-autoexit", "-loglevel", "quiet"},
}

// TTSSynthesizer fetches MP3 audio for a phrase, caches it on disk, and
// plays it through the first available local audio player. A command set in
// WORDUP_SAY_CMD (e.g. "say" on macOS, "espeak" elsewhere) bypasses the
// network path entirely and receives the text as its final argument.
type TTSSynthesizer struct {
	cacheDir string
	client   *http.Client
}

var _ Synthesizer = (*TTSSynthesizer)(nil)

// NewTTSSynthesizer creates a synthesizer caching audio under cacheDir.
func NewTTSSynthesizer(cacheDir string) *TTSSynthesizer {
	return &TTSSynthesizer{
		cacheDir: cacheDir,
		client:   &http.Client{Timeout: ttsRequestTimeout},
	}
}

// Speak pronounces text. Exactly one attempt; any failure is returned to the
// caller, which surfaces it as a notice.
func (s *TTSSynthesizer) Speak(ctx context.Context, text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	if cmd := os.Getenv("WORDUP_SAY_CMD"); cmd != "" {
		parts := strings.Fields(cmd)
		parts = append(parts, text)
		return exec.CommandContext(ctx, parts[0], parts[1:]...).Run()
	}

	player, err := findPlayer()
	if err != nil {
		return err
	}

	path, err := s.fetchAudio(ctx, text)
	if err != nil {
		return fmt.Errorf("fetch audio: %w", err)
	}

	args := append(player[1:], path)
	if err := exec.CommandContext(ctx, player[0], args...).Run(); err != nil {
		return fmt.Errorf("play audio: %w", err)
	}
	return nil
}

// fetchAudio downloads the MP3 for text, reusing a cached copy when present.
func (s *TTSSynthesizer) fetchAudio(ctx context.Context, text string) (string, error) {
	name := sanitizeFilename(text) + ".mp3"
	path := filepath.Join(s.cacheDir, name)

	if _, err := os.Stat(path); err == nil {
		return path, nil
	}

	if err := os.MkdirAll(s.cacheDir, 0o755); err != nil {
		return "", fmt.Errorf("create cache dir: %w", err)
	}

	reqURL := fmt.Sprintf("%s?ie=UTF-8&tl=en&client=tw-ob&q=%s", ttsEndpoint, url.QueryEscape(text))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("HTTP %d from TTS endpoint", resp.StatusCode)
	}

	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(f, resp.Body); err != nil {
		f.Close()
		os.Remove(path)
		return "", fmt.Errorf("write audio file: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", err
	}
	return path, nil
}

// findPlayer returns the first installed audio player command.
func findPlayer() ([]string, error) {
	for _, p := range players {
		if _, err := exec.LookPath(p[0]); err == nil {
			return p, nil
		}
	}
	return nil, ErrUnsupported
}

// sanitizeFilename turns a phrase into a safe cache file name.
func sanitizeFilename(text string) string {
	s := strings.ToLower(strings.TrimSpace(text))
	s = strings.ReplaceAll(s, " ", "_")
	var b strings.Builder
	for _, r := range s {
		if r == '_' || r == '-' || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return "phrase"
	}
	return b.String()
}
