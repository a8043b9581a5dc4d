package ast

import "corec/internal/source"

// TopLevel is the program root. The three lists keep declaration order;
// Order interleaves them as they appeared in the source.
type TopLevel struct {
	Span      source.Span
	Imports   []ItemID
	Variables []ItemID
	Functions []ItemID
	Order     []ItemID
}
