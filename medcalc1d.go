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

package medfilt

import (
	"github.com/vectorlane/medfilt/block"
	"github.com/vectorlane/medfilt/rank"
)

// medCalc1D orchestrates per-block median computation for Filter1D: build
// the rank table once per block, then slide the window one position at a
// time, adding/removing only the cell that entered or left.
type medCalc1D struct {
	dim  block.Dim
	h    int
	view block.View
	win  *rank.Window
}

func newMedCalc1D(dim block.Dim, h int) *medCalc1D {
	return &medCalc1D{
		dim: dim,
		h:   h,
		win: rank.New(dim.B),
	}
}

func (c *medCalc1D) run(input, output []float64) {
	for bx := 0; bx < c.dim.Count; bx++ {
		c.view.Set(c.dim, bx)
		c.runBlock(input, output)
	}
}

func (c *medCalc1D) runBlock(input, output []float64) {
	v := &c.view
	if v.B1 <= v.B0 {
		return
	}

	c.win.InitStart()
	for x := 0; x < v.Size; x++ {
		c.win.InitFeed(input[v.Coord(x)], x)
	}
	c.win.InitFinish()
	c.win.Clear()

	x := v.B0
	for s := v.W0(x); s < v.W1(x); s++ {
		c.win.Update(1, s)
	}
	output[v.Coord(x)] = c.win.GetMed()

	for x = v.B0 + 1; x < v.B1; x++ {
		if x-1 >= c.h {
			c.win.Update(-1, x-1-c.h)
		}
		if x+c.h < v.Size {
			c.win.Update(1, x+c.h)
		}
		output[v.Coord(x)] = c.win.GetMed()
	}
}
