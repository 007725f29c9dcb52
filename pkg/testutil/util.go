// Copyright 2022 Matrix Origin
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package testutil

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/matrixorigin/numseq/pkg/container/sequence"
	"github.com/matrixorigin/numseq/pkg/container/types"
)

// NewSequence returns 0, 1, ..., n-1 in T, or n random values when random
// is set.
func NewSequence[T types.Number](n int, random bool) *sequence.Sequence[T] {
	return sequence.Generate(n, func(i int) T {
		v := i
		if random {
			v = rand.Int()
		}
		return T(v)
	})
}

// NewMask returns a mask of length n selecting every step-th position,
// starting at the first one.
func NewMask(n int, step int) *sequence.Mask {
	return sequence.Generate(n, func(i int) bool {
		return step > 0 && i%step == 0
	})
}

func MustRange[T types.Number](t testing.TB, a, b, step T) *sequence.Sequence[T] {
	s, err := sequence.RangeStep(a, b, step)
	require.NoError(t, err)
	return s
}

// RequireSequence checks that s holds exactly want.
func RequireSequence[T comparable](t testing.TB, want []T, s *sequence.Sequence[T]) {
	require.Equal(t, len(want), s.Len())
	for i, v := range want {
		require.Equal(t, v, s.MustAt(i), "element %d", i)
	}
}
