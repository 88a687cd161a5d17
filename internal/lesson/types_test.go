package lesson

import (
	"encoding/json"
	"testing"
)

func TestParseKind_RoundTrip(t *testing.T) {
	tags := []string{
		"antonym_test", "synonym_test", "multiple_choice",
		"roots_match", "pronunciation", "match_pairs", "progress_quiz",
	}
	for _, tag := range tags {
		k := ParseKind(tag)
		if k == KindUnknown {
			t.Errorf("ParseKind(%q) = KindUnknown", tag)
		}
		if k.Tag() != tag {
			t.Errorf("Tag() = %q, want %q", k.Tag(), tag)
		}
	}
	if ParseKind("crossword") != KindUnknown {
		t.Error("unknown tag should map to KindUnknown")
	}
}

func TestKind_DisplayName(t *testing.T) {
	if got := KindAntonymTest.DisplayName(); got != "Antonym Test" {
		t.Errorf("DisplayName = %q, want %q", got, "Antonym Test")
	}
	if got := KindMatchPairs.DisplayName(); got != "Match Pairs" {
		t.Errorf("DisplayName = %q, want %q", got, "Match Pairs")
	}
}

func TestActivity_UnmarshalVariants(t *testing.T) {
	var mc Activity
	err := json.Unmarshal([]byte(`{
		"type": "multiple_choice",
		"questions": [{"prompt": "p", "options": ["a", "b"], "answer": "b"}]
	}`), &mc)
	if err != nil {
		t.Fatal(err)
	}
	if mc.Kind != KindMultipleChoice || len(mc.Questions) != 1 {
		t.Errorf("got %+v", mc)
	}

	var roots Activity
	err = json.Unmarshal([]byte(`{
		"type": "roots_match",
		"pairs": [{"root": "bene", "meaning": "good", "examples": ["benefit"]}]
	}`), &roots)
	if err != nil {
		t.Fatal(err)
	}
	if roots.Kind != KindRootsMatch || len(roots.Roots) != 1 || roots.Roots[0].Root != "bene" {
		t.Errorf("got %+v", roots)
	}

	var match Activity
	err = json.Unmarshal([]byte(`{
		"type": "match_pairs",
		"pairs": [{"left": "l", "right": "r"}]
	}`), &match)
	if err != nil {
		t.Fatal(err)
	}
	if match.Kind != KindMatchPairs || len(match.Pairs) != 1 || match.Pairs[0].Right != "r" {
		t.Errorf("got %+v", match)
	}

	var pron Activity
	err = json.Unmarshal([]byte(`{
		"type": "pronunciation",
		"items": [{"word": "irate", "say": "irate", "sentence": "s"}]
	}`), &pron)
	if err != nil {
		t.Fatal(err)
	}
	if pron.Kind != KindPronunciation || len(pron.Items) != 1 {
		t.Errorf("got %+v", pron)
	}
}
