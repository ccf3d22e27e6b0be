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

// Package medfilt implements a sliding-window median filter over dense
// float64 arrays, in one and two dimensions.
//
// The filter tiles the input into overlapping blocks sized to the window
// half-radius, builds a per-block rank table once, and then walks output
// positions within the block incrementally updating a popcount-indexed
// bitset (see the bitset and rank sub-packages) rather than resorting the
// window at every position.
//
// NaN values are excluded from the window; a position whose window
// contains only NaN (or none at all) yields NaN.
//
// Example:
//
//	out := make([]float64, len(in))
//	if err := medfilt.Filter1D(len(in), 2, 0, in, out); err != nil {
//	    log.Fatal(err)
//	}
package medfilt

import (
	"fmt"
	"unsafe"

	"github.com/samber/lo"

	"github.com/vectorlane/medfilt/block"
)

// choose1DBlockSize is the default block-size heuristic for Filter1D,
// preserved for benchmark comparability (see spec's open question on the
// heuristic not being part of the contract).
func choose1DBlockSize(h int) int {
	return 8 * (h + 2)
}

// choose2DBlockSize is the default block-size heuristic for Filter2D.
func choose2DBlockSize(h int) int {
	return 4 * (h + 2)
}

// Filter1D writes to output[i] the median of input[max(0,i-hx) : min(length,i+hx+1)],
// excluding NaN. blockHint overrides the default block-size heuristic when
// positive; pass 0 to use the default.
func Filter1D(length, hx, blockHint int, input, output []float64) error {
	if err := validateArgs1D(length, hx, input, output); err != nil {
		return err
	}

	b := blockHint
	if b <= 0 {
		b = choose1DBlockSize(hx)
	}
	if 2*hx+1 > b {
		return fmt.Errorf("%w: dimension x (h=%d, block=%d)", ErrBlockTooSmall, hx, b)
	}

	dim := block.NewDim(length, hx, b)
	calc := newMedCalc1D(dim, hx)
	calc.run(input, output)
	return nil
}

// Filter2D writes to output[y*width+x] the median of the clipped
// (2*hx+1)-by-(2*hy+1) rectangular window around (x, y), excluding NaN. blockHint overrides the
// default block-size heuristic when positive; pass 0 to use the default.
// Layout is row-major: index(x, y) = y*width + x.
func Filter2D(width, height, hx, hy, blockHint int, input, output []float64) error {
	if err := validateArgs2D(width, height, hx, hy, input, output); err != nil {
		return err
	}

	h := lo.Max([]int{hx, hy})
	b := blockHint
	if b <= 0 {
		b = choose2DBlockSize(h)
	}
	if 2*hx+1 > b {
		return fmt.Errorf("%w: dimension x (h=%d, block=%d)", ErrBlockTooSmall, hx, b)
	}
	if 2*hy+1 > b {
		return fmt.Errorf("%w: dimension y (h=%d, block=%d)", ErrBlockTooSmall, hy, b)
	}

	dimx := block.NewDim(width, hx, b)
	dimy := block.NewDim(height, hy, b)
	calc := newMedCalc2D(dimx, dimy, hx, hy)
	calc.run(width, input, output)
	return nil
}

func validateArgs1D(length, hx int, input, output []float64) error {
	if length < 0 {
		return fmt.Errorf("%w: negative length %d", ErrInvalidArgument, length)
	}
	if hx < 0 {
		return fmt.Errorf("%w: negative radius hx=%d", ErrInvalidArgument, hx)
	}
	if len(input) != length || len(output) != length {
		return fmt.Errorf("%w: input/output length must equal %d, got %d and %d", ErrInvalidArgument, length, len(input), len(output))
	}
	if slicesOverlap(input, output) {
		return fmt.Errorf("%w: input and output must not alias", ErrInvalidArgument)
	}
	return nil
}

func validateArgs2D(width, height, hx, hy int, input, output []float64) error {
	if width < 0 || height < 0 {
		return fmt.Errorf("%w: negative dimension (width=%d, height=%d)", ErrInvalidArgument, width, height)
	}
	if hx < 0 || hy < 0 {
		return fmt.Errorf("%w: negative radius (hx=%d, hy=%d)", ErrInvalidArgument, hx, hy)
	}
	n := width * height
	if len(input) != n || len(output) != n {
		return fmt.Errorf("%w: input/output length must equal %d, got %d and %d", ErrInvalidArgument, n, len(input), len(output))
	}
	if slicesOverlap(input, output) {
		return fmt.Errorf("%w: input and output must not alias", ErrInvalidArgument)
	}
	return nil
}

// slicesOverlap reports whether the backing arrays of a and b share any
// byte range. Two empty slices never overlap.
func slicesOverlap(a, b []float64) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}
	const sz = unsafe.Sizeof(float64(0))
	aStart := uintptr(unsafe.Pointer(&a[0]))
	aEnd := aStart + uintptr(len(a))*sz
	bStart := uintptr(unsafe.Pointer(&b[0]))
	bEnd := bStart + uintptr(len(b))*sz
	return aStart < bEnd && bStart < aEnd
}
