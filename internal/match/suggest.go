package match

import (
	"slices"
	"sort"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// MinSimilarity is the lowest Similarity score a candidate needs to be
// suggested when it is not a fuzzy subsequence match.
const MinSimilarity = 0.5

// Suggest returns up to limit candidates that resemble target, best first.
// Exact matches are never suggested.
func Suggest(target string, candidates []string, limit int) []string {
	if target == "" || len(candidates) == 0 || limit <= 0 {
		return nil
	}

	var out []string

	ranks := fuzzy.RankFindFold(target, candidates)
	sort.Sort(ranks)

	for _, r := range ranks {
		if r.Target == target || slices.Contains(out, r.Target) {
			continue
		}

		out = append(out, r.Target)
	}

	type scored struct {
		name  string
		score float64
	}

	var rest []scored

	for _, c := range candidates {
		if c == target || slices.Contains(out, c) {
			continue
		}

		if s := Similarity(target, c); s >= MinSimilarity {
			rest = append(rest, scored{name: c, score: s})
		}
	}

	sort.SliceStable(rest, func(i, j int) bool {
		return rest[i].score > rest[j].score
	})

	for _, s := range rest {
		if slices.Contains(out, s.name) {
			continue
		}

		out = append(out, s.name)
	}

	if len(out) > limit {
		out = out[:limit]
	}

	return out
}
