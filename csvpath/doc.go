// Package csvpath converts between nested JSON values and CSV-with-paths text.
//
// # Format
//
// A document is a sequence of blocks separated by one or more blank lines.
// The first line of a block is its header; the remaining lines are data rows.
//
//	users[1],id,name
//	1,Alice
//	2,Bob
//
//	users[1].orders[1],users_id,item
//	1,Widget
//	2,Gadget
//
// The first header cell is a path (dot-separated keys, each optionally
// followed by a 1-based [N] index). The remaining header cells name the fields
// of each row; row cells line up with them positionally.
//
// # Parent and child blocks
//
// A block is a child block when its second header cell is "id" or ends in
// "_id" and its path has more than one segment with an array leaf. Child rows
// are appended to the array field named by the path leaf of the parent record
// (registered earlier under the path root) whose "id" equals the row's first
// cell. Every other block appends records to the top-level array named by the
// path root.
//
// # Leniency
//
// Child rows with no matching parent, non-array top-level values and values the
// format cannot carry are skipped and reported as diagnostics. With
// Options.Strict any warning fails the conversion with a *StrictError.
// Malformed paths and non-container encode input always fail with a
// *FormatError.
package csvpath
