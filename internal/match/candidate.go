package match

import (
	"sort"

	"dto2zod/internal/common"
)

// Suggestion limits.
const (
	// DefaultMinScore is the minimum similarity for a name to be suggested.
	DefaultMinScore = 0.75
	// DefaultMaxSuggestions caps how many names are suggested.
	DefaultMaxSuggestions = 3
)

// Candidate is a declared name scored against an unresolved one.
type Candidate struct {
	Name  string
	Score float64
}

// CandidateList is a list of candidates with ranking functionality.
type CandidateList []Candidate

// RankCandidates scores every declared name against target and returns them
// sorted by score (descending). Exact matches are excluded.
func RankCandidates(target string, names []string) CandidateList {
	candidates := make(CandidateList, 0, len(names))

	for _, name := range names {
		if name == target {
			continue
		}

		candidates = append(candidates, Candidate{Name: name, Score: Similarity(target, name)})
	}

	sort.Sort(candidates)

	return candidates
}

// Suggest returns up to DefaultMaxSuggestions declared names whose
// similarity to target is at least DefaultMinScore, best first.
func Suggest(target string, names []string) []string {
	ranked := RankCandidates(target, names).AboveThreshold(DefaultMinScore).Top(DefaultMaxSuggestions)
	if common.IsEmpty(ranked) {
		return nil
	}

	out := make([]string, len(ranked))
	for i, c := range ranked {
		out[i] = c.Name
	}

	return out
}

// Len implements sort.Interface.
func (c CandidateList) Len() int { return len(c) }

// Swap implements sort.Interface.
func (c CandidateList) Swap(i, j int) { c[i], c[j] = c[j], c[i] }

// Less implements sort.Interface.
// Sorts by score descending, then by name for determinism.
func (c CandidateList) Less(i, j int) bool {
	if c[i].Score != c[j].Score {
		return c[i].Score > c[j].Score
	}

	return c[i].Name < c[j].Name
}

// Top returns the top n candidates.
func (c CandidateList) Top(n int) CandidateList {
	if n >= len(c) {
		return c
	}

	return c[:n]
}

// AboveThreshold returns candidates with a score at or above the threshold.
func (c CandidateList) AboveThreshold(threshold float64) CandidateList {
	var result CandidateList

	for _, cand := range c {
		if cand.Score >= threshold {
			result = append(result, cand)
		}
	}

	return result
}
