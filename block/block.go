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

// Package block computes the overlapping-block tiling of one array
// dimension for a given window half-radius and block size, and the
// per-block view (location, interior emission range, window-clipping
// helpers) used while sliding a window across a block.
//
// A Dim is computed once per filter invocation; a View is recomputed (via
// Set) once per block index.
package block

import "github.com/samber/lo"

// Dim partitions a dimension of size N, with window half-radius h, into
// overlapping blocks of edge length B.
type Dim struct {
	N, H, B  int
	Step     int
	Count    int
}

// NewDim computes the step and block count for a dimension. The caller must
// have already validated 2*h+1 <= b.
func NewDim(n, h, b int) Dim {
	step := b - 2*h
	count := 1
	if n > b {
		count = (n - 2*h + step - 1) / step
	}
	return Dim{N: n, H: h, B: b, Step: step, Count: count}
}

// View describes one block of a Dim: its placement in the full array and
// the sub-range of output positions whose medians are emitted from it.
type View struct {
	dim Dim

	Start int // offset of the block's first cell in the full array
	Size  int // number of cells covered by the block
	B0    int // first block-local position emitted from this block
	B1    int // one past the last block-local position emitted
}

// Set moves the view to block index i (0 <= i < dim.Count).
func (bv *View) Set(dim Dim, i int) {
	bv.dim = dim
	bv.Start = i * dim.Step

	if i == dim.Count-1 {
		bv.Size = dim.N - bv.Start
	} else {
		bv.Size = 2*dim.H + dim.Step
	}

	if i == 0 {
		bv.B0 = 0
	} else {
		bv.B0 = dim.H
	}
	if i == dim.Count-1 {
		bv.B1 = bv.Size
	} else {
		bv.B1 = bv.Size - dim.H
	}
}

// Coord maps a block-local position to its position in the full array.
func (bv *View) Coord(x int) int {
	return x + bv.Start
}

// W0 returns the block-local start of the window covering local position v
// (inclusive), clipped to the block.
func (bv *View) W0(v int) int {
	return lo.Clamp(v-bv.dim.H, 0, bv.Size)
}

// W1 returns the block-local end of the window covering local position v
// (exclusive), clipped to the block.
func (bv *View) W1(v int) int {
	return lo.Clamp(v+1+bv.dim.H, 0, bv.Size)
}
