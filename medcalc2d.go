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

// medCalc2D orchestrates per-block median computation for Filter2D: build
// the rank table once per block, then walk output positions in snake
// order, updating the window by the single coordinate strip that entered
// or left at each step.
type medCalc2D struct {
	dimx, dimy block.Dim
	hx, hy     int

	viewx, viewy block.View
	win          *rank.Window
}

func newMedCalc2D(dimx, dimy block.Dim, hx, hy int) *medCalc2D {
	return &medCalc2D{
		dimx: dimx,
		dimy: dimy,
		hx:   hx,
		hy:   hy,
		win:  rank.New(dimx.B * dimy.B),
	}
}

func (c *medCalc2D) run(width int, input, output []float64) {
	for by := 0; by < c.dimy.Count; by++ {
		c.viewy.Set(c.dimy, by)
		for bx := 0; bx < c.dimx.Count; bx++ {
			c.viewx.Set(c.dimx, bx)
			c.runBlock(width, input, output)
		}
	}
}

func (c *medCalc2D) runBlock(width int, input, output []float64) {
	vx := &c.viewx
	vy := &c.viewy
	if vx.B1 <= vx.B0 || vy.B1 <= vy.B0 {
		return
	}
	sizex := vx.Size

	pack := func(x, y int) int { return y*sizex + x }
	coord := func(x, y int) int { return vy.Coord(y)*width + vx.Coord(x) }

	c.win.InitStart()
	for y := 0; y < vy.Size; y++ {
		for x := 0; x < vx.Size; x++ {
			c.win.InitFeed(input[coord(x, y)], pack(x, y))
		}
	}
	c.win.InitFinish()
	c.win.Clear()

	addRect := func(x0, x1, y0, y1 int) {
		for yy := y0; yy < y1; yy++ {
			for xx := x0; xx < x1; xx++ {
				c.win.Update(1, pack(xx, yy))
			}
		}
	}
	removeRect := func(x0, x1, y0, y1 int) {
		for yy := y0; yy < y1; yy++ {
			for xx := x0; xx < x1; xx++ {
				c.win.Update(-1, pack(xx, yy))
			}
		}
	}

	x, y := vx.B0, vy.B0
	addRect(vx.W0(x), vx.W1(x), vy.W0(y), vy.W1(y))
	output[coord(x, y)] = c.win.GetMed()

	sweepDown := func() {
		for y+1 < vy.B1 {
			ny := y + 1
			removeRect(vx.W0(x), vx.W1(x), vy.W0(y), vy.W0(ny))
			addRect(vx.W0(x), vx.W1(x), vy.W1(y), vy.W1(ny))
			y = ny
			output[coord(x, y)] = c.win.GetMed()
		}
	}
	sweepUp := func() {
		for y-1 >= vy.B0 {
			ny := y - 1
			removeRect(vx.W0(x), vx.W1(x), vy.W1(ny), vy.W1(y))
			addRect(vx.W0(x), vx.W1(x), vy.W0(ny), vy.W0(y))
			y = ny
			output[coord(x, y)] = c.win.GetMed()
		}
	}

	down := true
	for x < vx.B1-1 {
		if down {
			sweepDown()
		} else {
			sweepUp()
		}

		nx := x + 1
		removeRect(vx.W0(x), vx.W0(nx), vy.W0(y), vy.W1(y))
		addRect(vx.W1(x), vx.W1(nx), vy.W0(y), vy.W1(y))
		x = nx
		output[coord(x, y)] = c.win.GetMed()

		down = !down
	}
	if down {
		sweepDown()
	} else {
		sweepUp()
	}
}
