package ast

import "fmt"

// Arena stores nodes of one kind; ids are 1-based so 0 means "none".
type Arena[T any] struct {
	data []T
}

func NewArena[T any](capHint uint) *Arena[T] {
	return &Arena[T]{data: make([]T, 0, capHint)}
}

// Allocate appends value and returns its 1-based index.
func (a *Arena[T]) Allocate(value T) uint32 {
	a.data = append(a.data, value)
	if uint64(len(a.data)) > uint64(^uint32(0)) {
		panic(fmt.Sprintf("arena overflow: %d nodes", len(a.data)))
	}
	return uint32(len(a.data)) // #nosec G115 -- checked above
}

func (a *Arena[T]) Get(index uint32) *T {
	if index == 0 || int(index) > len(a.data) {
		return nil
	}
	return &a.data[index-1]
}

// Slice is read-only.
func (a *Arena[T]) Slice() []T {
	return a.data
}

func (a *Arena[T]) Len() uint32 {
	return uint32(len(a.data)) // #nosec G115
}
