// Package diagnostic provides structured warnings, errors and informational
// notes collected while converting CSV-with-paths documents.
//
// Key capabilities:
//   - Dropped child rows whose join value matched no parent record
//   - Unknown parent blocks with "did you mean" suggestions
//   - Values the block format cannot carry (nested objects, non-object items)
//   - Promotion of warnings to a hard failure in strict mode
package diagnostic
