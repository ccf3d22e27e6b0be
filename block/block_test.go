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

package block

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSingleBlockWhenNFitsInB(t *testing.T) {
	dim := NewDim(10, 1, 32)
	require.Equal(t, 1, dim.Count)

	var v View
	v.Set(dim, 0)
	assert.Equal(t, 0, v.Start)
	assert.Equal(t, 10, v.Size)
	assert.Equal(t, 0, v.B0)
	assert.Equal(t, 10, v.B1)
}

func TestEveryPositionCoveredExactlyOnce(t *testing.T) {
	n, h, b := 97, 3, 16
	dim := NewDim(n, h, b)

	covered := make([]int, n)
	var v View
	for i := 0; i < dim.Count; i++ {
		v.Set(dim, i)
		for x := v.B0; x < v.B1; x++ {
			covered[v.Coord(x)]++
		}
	}
	for i, c := range covered {
		require.Equal(t, 1, c, "position %d covered %d times", i, c)
	}
}

func TestBlockDimInvariants(t *testing.T) {
	for _, tc := range []struct{ n, h, b int }{
		{100, 2, 16}, {100, 0, 8}, {1, 0, 8}, {5, 5, 16}, {1000, 7, 40},
	} {
		dim := NewDim(tc.n, tc.h, tc.b)
		require.GreaterOrEqual(t, dim.Count, 1)
		require.Less(t, 2*tc.h+1, tc.b)
		require.GreaterOrEqual(t, 2*tc.h+dim.Count*dim.Step, tc.n)
		if dim.Count > 1 {
			require.Less(t, 2*tc.h+(dim.Count-1)*dim.Step, tc.n)
		}
	}
}

func TestWindowClipHelpers(t *testing.T) {
	dim := NewDim(10, 2, 16)
	var v View
	v.Set(dim, 0)

	assert.Equal(t, 0, v.W0(0))
	assert.Equal(t, 3, v.W1(0))
	assert.Equal(t, 2, v.W0(4))
	assert.Equal(t, 7, v.W1(4))
	assert.Equal(t, 7, v.W0(9))
	assert.Equal(t, 10, v.W1(9))
}
