// Package diag defines the diagnostic record shared by the lexer and the parser.
//
// # Data model
//
// A Diagnostic is one error record: a short category Message ("invalid
// syntax", "invalid expression", "duplicated object name"), the file it
// belongs to, and an ordered list of Entries. Every entry carries its own
// severity (error or note), a Code, a byte Span and the annotation shown next
// to the underline.
//
// # Merge rule
//
// Bag.Add merges a new record into an already queued one when both share
// file and Message. The spans are not part of the key, so two unrelated
// "invalid syntax" problems in one file render as one record with two
// underlined lines.
//
// # Flood guard
//
// Bag counts every Add. After FloodLimit adds the bag refuses further
// records and reports Flooded; the driver drains and aborts at that point.
//
// Rendering lives in internal/diagfmt.
package diag
