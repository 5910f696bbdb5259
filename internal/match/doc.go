// Package match ranks candidate names against a misspelled one so that
// diagnostics can offer "did you mean" suggestions.
//
// Ranking runs in two passes:
//   - fuzzy subsequence matching (case-insensitive), best rank first
//   - normalized Levenshtein similarity for typos that are not subsequences
package match
