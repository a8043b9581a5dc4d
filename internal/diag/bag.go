package diag

import (
	"sort"
)

// FloodLimit is how many records a Bag accepts over its lifetime.
const FloodLimit = 200

type mergeKey struct {
	file    uint32
	message string
}

// Bag is the per-run diagnostics queue.
type Bag struct {
	items   []*Diagnostic
	index   map[mergeKey]int
	raised  int
	flooded bool
}

func NewBag() *Bag {
	return &Bag{index: make(map[mergeKey]int)}
}

// Add queues d or merges its entries into the record with the same
// file and message. Returns false once the flood guard has tripped;
// the refused record is dropped.
func (b *Bag) Add(d Diagnostic) bool {
	if b.flooded {
		return false
	}
	b.raised++
	if b.raised > FloodLimit {
		b.flooded = true
		return false
	}
	key := mergeKey{file: uint32(d.File), message: d.Message}
	if i, ok := b.index[key]; ok {
		b.items[i].Entries = append(b.items[i].Entries, d.Entries...)
		return true
	}
	cp := d
	cp.Entries = append([]Entry(nil), d.Entries...)
	b.index[key] = len(b.items)
	b.items = append(b.items, &cp)
	return true
}

// Flooded reports whether the flood guard has tripped.
func (b *Bag) Flooded() bool {
	return b.flooded
}

// Raised counts every Add since the bag was created, Reset included.
func (b *Bag) Raised() int {
	return b.raised
}

func (b *Bag) HasErrors() bool {
	for _, d := range b.items {
		if d.HasErrors() {
			return true
		}
	}
	return false
}

func (b *Bag) Len() int {
	return len(b.items)
}

// Items returns queued records in raise order. Do not modify.
func (b *Bag) Items() []*Diagnostic {
	return b.items
}

// Reset empties the queue after a drain. The raise counter survives.
func (b *Bag) Reset() {
	b.items = b.items[:0]
	clear(b.index)
}

// Sort orders records by file then by the earliest entry offset.
func (b *Bag) Sort() {
	sort.SliceStable(b.items, func(i, j int) bool {
		di, dj := b.items[i], b.items[j]
		if di.File != dj.File {
			return di.File < dj.File
		}
		return firstOffset(di) < firstOffset(dj)
	})
	for i, d := range b.items {
		b.index[mergeKey{file: uint32(d.File), message: d.Message}] = i
	}
}

func firstOffset(d *Diagnostic) uint32 {
	if len(d.Entries) == 0 {
		return 0
	}
	m := d.Entries[0].Span.Start
	for _, e := range d.Entries[1:] {
		if e.Span.Start < m {
			m = e.Span.Start
		}
	}
	return m
}
