// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package rank provides a value-ordered view over a block of float64 cells,
// excluding NaN, with O(1) window-membership updates and median extraction
// via bitset.Window's rank-select, whose cost grows with how far its pivot
// has to move from the previous query.
//
// Usage within one block:
//
//	w := rank.New(blockArea)
//	w.InitStart()
//	for slot, v := range cellValues {
//	    w.InitFeed(v, slot)
//	}
//	w.InitFinish()
//	w.Clear()
//	w.Update(+1, someSlot)
//	med := w.GetMed()
package rank

import (
	"math"
	"sort"

	"github.com/vectorlane/medfilt/bitset"
)

// nanMarker is the sentinel rank recorded for slots holding NaN; it is never
// a valid index into the sorted buffer and is never passed to bitset.Window.
const nanMarker = -1

type entry struct {
	value float64
	slot  int
}

// Window is a RankedWindow: a per-block sort of the finite cell values into
// dense ranks, paired with a bitset.Window tracking which ranks are
// currently inside the sliding window.
type Window struct {
	bits *bitset.Window

	rank   []int   // slot -> rank, or nanMarker
	buffer []entry // rank -> (value, slot), length k <= capacity

	capacity int
}

// New allocates a Window sized for blocks of up to capacity cells. The
// Window is reused across blocks via InitStart/InitFinish.
func New(capacity int) *Window {
	return &Window{
		bits:     bitset.New(capacity),
		rank:     make([]int, capacity),
		buffer:   make([]entry, 0, capacity),
		capacity: capacity,
	}
}

// InitStart begins building the rank table for a new block.
func (w *Window) InitStart() {
	w.buffer = w.buffer[:0]
}

// InitFeed records one block cell. NaN values are excluded from the rank
// space entirely; all other values are appended to the sort buffer.
func (w *Window) InitFeed(value float64, slot int) {
	if math.IsNaN(value) {
		w.rank[slot] = nanMarker
		return
	}
	w.buffer = append(w.buffer, entry{value: value, slot: slot})
}

// InitFinish stably sorts the fed values by (value, slot) and assigns dense
// ranks 0..k-1 to the finite cells. It does not touch the sliding window;
// Clear empties that separately, once per block, before sliding.
func (w *Window) InitFinish() {
	sort.Slice(w.buffer, func(i, j int) bool {
		a, b := w.buffer[i], w.buffer[j]
		if a.value != b.value {
			return a.value < b.value
		}
		return a.slot < b.slot
	})
	for i, e := range w.buffer {
		w.rank[e.slot] = i
	}
}

// Clear empties the sliding window (but keeps the rank table built by
// InitFinish).
func (w *Window) Clear() {
	w.bits.Clear()
}

// Update adds (op=+1) or removes (op=-1) the cell at slot from the sliding
// window. NaN slots are no-ops: they were never mapped into the rank space.
func (w *Window) Update(op, slot int) {
	r := w.rank[slot]
	if r == nanMarker {
		return
	}
	w.bits.Update(op, r)
}

// GetMed returns the median of the cells currently in the window, or NaN if
// the window is empty (all-NaN or zero-size).
func (w *Window) GetMed() float64 {
	total := w.bits.Size()
	if total == 0 {
		return math.NaN()
	}

	g1 := (total - 1) / 2
	g2 := total / 2

	v := w.buffer[w.bits.Find(g1)].value
	if g2 != g1 {
		v = (v + w.buffer[w.bits.Find(g2)].value) / 2
	}
	return v
}
