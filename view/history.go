package view

import (
	"github.com/gfx-labs/sszview/merkle"
	"github.com/gfx-labs/sszview/schema"
)

// HistoryRecord is one entry in a History: the backing a root-level
// view held before and after a single mutation reached it.
type HistoryRecord struct {
	GIndex   uint64
	Old, New merkle.Node
}

// History is the append-only log of backings a root-level view has
// held, spec.md §9's optional history feature. Every top-level
// mutation — however deep the field/element it actually touched —
// eventually rebinds the root, so History records exactly one entry
// per root-level change, each carrying the whole-tree old and new
// backing.
type History struct {
	records []HistoryRecord
}

// Records returns the history so far, oldest first.
func (h *History) Records() []HistoryRecord {
	return h.records
}

// Len is the number of recorded mutations.
func (h *History) Len() int { return len(h.records) }

// NewTrackedRoot builds a root-level view exactly like NewRoot, except
// every mutation that reaches the root is appended to the returned
// History.
func NewTrackedRoot(typ schema.Descriptor) (View, *History) {
	h := &History{}
	initial := typ.DefaultNode()
	current := initial
	hook := Hook(func(newBacking merkle.Node) {
		h.records = append(h.records, HistoryRecord{GIndex: 1, Old: current, New: newBacking})
		current = newBacking
	})
	return New(typ, initial, hook), h
}
