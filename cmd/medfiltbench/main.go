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

// Command medfiltbench generates a random grid and runs medfilt.Filter2D
// over it once, reporting timing and the fraction of NaN-salted input.
//
// Usage:
//
//	medfiltbench -width 1024 -height 1024 -radius 3 -nan 0.01
package main

import (
	"flag"
	"fmt"
	"math"
	"math/rand"
	"os"
	"time"

	"github.com/vectorlane/medfilt"
)

var (
	width   = flag.Int("width", 1024, "grid width")
	height  = flag.Int("height", 1024, "grid height")
	radius  = flag.Int("radius", 3, "window half-radius (used for both axes)")
	nanFrac = flag.Float64("nan", 0.0, "fraction of input cells set to NaN")
	seed    = flag.Int64("seed", 1, "random seed")
)

func main() {
	flag.Parse()

	if *width <= 0 || *height <= 0 {
		fmt.Fprintf(os.Stderr, "Error: -width and -height must be positive\n")
		os.Exit(1)
	}

	rng := rand.New(rand.NewSource(*seed))
	in := make([]float64, *width**height)
	for i := range in {
		if rng.Float64() < *nanFrac {
			in[i] = math.NaN()
			continue
		}
		in[i] = rng.Float64()
	}
	out := make([]float64, len(in))

	start := time.Now()
	if err := medfilt.Filter2D(*width, *height, *radius, *radius, 0, in, out); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	elapsed := time.Since(start)

	fmt.Printf("medfiltbench: %dx%d grid, radius=%d, nan=%.2f%%, elapsed=%s (%.1f Mcells/s)\n",
		*width, *height, *radius, *nanFrac*100, elapsed,
		float64(len(in))/1e6/elapsed.Seconds())
}
