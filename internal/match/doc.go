// Package match provides type-name normalization, Levenshtein distance
// calculation and candidate ranking for "did you mean" suggestions on
// unresolved type names.
//
// Key functions:
//   - NormalizeIdent: normalizes identifiers for fuzzy matching
//   - Levenshtein: computes edit distance between strings
//   - RankCandidates: ranks declared names against an unresolved one
//   - Suggest: the few declared names close enough to show to a user
package match
