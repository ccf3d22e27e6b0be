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

package rank

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func feedAll(w *Window, values []float64) {
	w.InitStart()
	for slot, v := range values {
		w.InitFeed(v, slot)
	}
	w.InitFinish()
	w.Clear()
}

func TestEmptyWindowIsNaN(t *testing.T) {
	w := New(4)
	feedAll(w, []float64{1, 2, 3, 4})
	require.True(t, math.IsNaN(w.GetMed()))
}

func TestOddCountMedian(t *testing.T) {
	w := New(5)
	feedAll(w, []float64{5, 3, 1, 4, 2})
	for i := 0; i < 5; i++ {
		w.Update(1, i)
	}
	assert.Equal(t, 3.0, w.GetMed())
}

func TestEvenCountMedianAverages(t *testing.T) {
	w := New(4)
	feedAll(w, []float64{1, 2, 3, 4})
	for i := 0; i < 4; i++ {
		w.Update(1, i)
	}
	assert.Equal(t, 2.5, w.GetMed())
}

func TestNaNExcludedFromMedian(t *testing.T) {
	w := New(5)
	feedAll(w, []float64{1, math.NaN(), 3, math.NaN(), 5})
	for i := 0; i < 5; i++ {
		w.Update(1, i)
	}
	// Only {1, 3, 5} are members; NaN slots are no-ops.
	assert.Equal(t, 3.0, w.GetMed())
}

func TestAllNaNWindowIsNaN(t *testing.T) {
	w := New(3)
	feedAll(w, []float64{math.NaN(), math.NaN(), math.NaN()})
	for i := 0; i < 3; i++ {
		w.Update(1, i) // no-op for every slot
	}
	assert.True(t, math.IsNaN(w.GetMed()))
}

func TestTiesBrokenBySlotDeterministic(t *testing.T) {
	w := New(4)
	feedAll(w, []float64{2, 2, 2, 2})
	for i := 0; i < 4; i++ {
		w.Update(1, i)
	}
	assert.Equal(t, 2.0, w.GetMed())
}

func TestSlidingUpdateTracksMedian(t *testing.T) {
	w := New(6)
	feedAll(w, []float64{10, 20, 30, 40, 50, 60})
	w.Update(1, 0)
	w.Update(1, 1)
	w.Update(1, 2)
	assert.Equal(t, 20.0, w.GetMed())

	w.Update(-1, 0)
	w.Update(1, 3)
	assert.Equal(t, 30.0, w.GetMed())
}

func TestReusedAcrossBlocks(t *testing.T) {
	w := New(4)
	feedAll(w, []float64{1, 2, 3, 4})
	for i := 0; i < 4; i++ {
		w.Update(1, i)
	}
	assert.Equal(t, 2.5, w.GetMed())

	feedAll(w, []float64{100, 200, 300, math.NaN()})
	w.Update(1, 0)
	w.Update(1, 1)
	w.Update(1, 2)
	assert.Equal(t, 200.0, w.GetMed())
}
