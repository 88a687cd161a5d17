package activity

import (
	"strings"

	"github.com/priyankc/wordup/internal/lesson"
)

// Outcome kind tags recorded in the gradebook, one per gradeable variant.
const (
	OutcomeAntonym       = "antonym"
	OutcomeSynonym       = "synonym"
	OutcomeChoice        = "mc"
	OutcomeProgress      = "progress"
	OutcomePronunciation = "pronunciation"
	OutcomeMatch         = "match"
)

// OutcomeKind returns the gradebook tag for an activity kind, or "" for
// variants that never record outcomes (roots_match, unknown).
func OutcomeKind(k lesson.Kind) string {
	switch k {
	case lesson.KindAntonymTest:
		return OutcomeAntonym
	case lesson.KindSynonymTest:
		return OutcomeSynonym
	case lesson.KindMultipleChoice:
		return OutcomeChoice
	case lesson.KindProgressQuiz:
		return OutcomeProgress
	case lesson.KindPronunciation:
		return OutcomePronunciation
	case lesson.KindMatchPairs:
		return OutcomeMatch
	default:
		return ""
	}
}

// CheckAntonym grades a free-text antonym answer: trimmed, case-insensitive,
// exact match.
func CheckAntonym(q lesson.Question, response string) bool {
	return strings.EqualFold(strings.TrimSpace(response), strings.TrimSpace(q.Answer))
}

// MinSynonymMatches is how many of the reference synonyms a response must
// contain to count as correct, regardless of how many the question lists.
const MinSynonymMatches = 2

// CheckSynonyms grades a comma-separated synonym list. The response is
// split, trimmed, lowercased, and deduped; it is correct when at least
// MinSynonymMatches of the reference answers appear, regardless of extras.
func CheckSynonyms(q lesson.Question, response string) bool {
	given := make(map[string]bool)
	for _, part := range strings.Split(response, ",") {
		part = strings.ToLower(strings.TrimSpace(part))
		if part != "" {
			given[part] = true
		}
	}

	matches := 0
	for _, ref := range q.Answers {
		if given[strings.ToLower(ref)] {
			matches++
		}
	}
	return matches >= MinSynonymMatches
}

// CheckChoice grades a single-selection answer for the multiple-choice and
// progress-quiz variants. An empty selection is incorrect, not an error.
func CheckChoice(q lesson.Question, selected string) bool {
	return selected != "" && selected == q.Answer
}

// CheckMatch grades one matching row: the chosen right-side value must equal
// the paired right value. An empty selection is incorrect.
func CheckMatch(p lesson.MatchPair, selected string) bool {
	return selected != "" && selected == p.Right
}

// CheckPronunciation grades a recognition transcript against the target
// word using lowercased substring containment. Returns graded=false when
// the transcript is empty; an empty transcript records no outcome.
func CheckPronunciation(item lesson.SpeakItem, heard string) (correct, graded bool) {
	heard = strings.TrimSpace(heard)
	if heard == "" {
		return false, false
	}
	return strings.Contains(strings.ToLower(heard), strings.ToLower(item.Word)), true
}
