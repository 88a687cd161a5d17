package activity

import (
	"math/rand"

	"github.com/priyankc/wordup/internal/lesson"
)

// ShuffleFunc returns a permutation of [0, n). Injectable so match-pair
// option ordering is deterministic in tests.
type ShuffleFunc func(n int) []int

// RandomShuffle is the production ShuffleFunc.
func RandomShuffle(n int) []int {
	return rand.Perm(n)
}

// IdentityShuffle keeps options in document order. For tests.
func IdentityShuffle(n int) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	return idx
}

// ShuffledRights returns the right-side values of pairs in the order given
// by shuffle. Each rendering of a match_pairs activity gets a fresh order.
func ShuffledRights(pairs []lesson.MatchPair, shuffle ShuffleFunc) []string {
	if shuffle == nil {
		shuffle = RandomShuffle
	}
	out := make([]string, 0, len(pairs))
	for _, i := range shuffle(len(pairs)) {
		out = append(out, pairs[i].Right)
	}
	return out
}
