// Package fileio opens command inputs and outputs. "-" or an empty path
// means stdin/stdout, and paths ending in ".zst" are transparently
// zstd-compressed.
package fileio
