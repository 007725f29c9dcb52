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

package sequence

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/matrixorigin/numseq/pkg/common/moerr"
)

func TestTake(t *testing.T) {
	s := Of(1, 2, 3, 4, 5)
	r, err := s.Take(Of(false, false, false, true, true))
	require.NoError(t, err)
	require.Equal(t, "<4, 5>", r.String())

	r, err = s.Take(Of(true, false, true, false, true))
	require.NoError(t, err)
	require.Equal(t, "<1, 3, 5>", r.String())

	r, err = s.Take(New[bool](5))
	require.NoError(t, err)
	require.Equal(t, "<>", r.String())

	_, err = s.Take(Of(true))
	require.True(t, moerr.IsMoErrCode(err, moerr.ErrSizeNotMatch))

	r, err = New[int](0).Take(New[bool](0))
	require.NoError(t, err)
	require.Equal(t, 0, r.Len())
}

func TestApply(t *testing.T) {
	s := Of(1, 2, 3)
	s.Apply(func(i int) int { return 2 * i })
	require.Equal(t, "<2, 4, 6>", s.String())

	square := func(i int) int { return i * i }
	require.Equal(t, "<4, 16, 36>", s.Apply(square).String())
	require.Equal(t, "<4, 16, 36>", s.String())
}

func TestApplyTo(t *testing.T) {
	s, err := Range(10)
	require.NoError(t, err)
	evens := Map(s, func(i int) bool { return i%2 == 0 })
	r, err := s.ApplyTo(evens, func(i int) int { return i * i })
	require.NoError(t, err)
	require.Same(t, s, r)
	require.Equal(t, "<0, 1, 4, 3, 16, 5, 36, 7, 64, 9>", s.String())

	before := s.String()
	_, err = s.ApplyTo(Of(true, true), func(i int) int { return -i })
	require.True(t, moerr.IsMoErrCode(err, moerr.ErrSizeNotMatch))
	require.Equal(t, before, s.String())
}

func TestGather(t *testing.T) {
	s := Of(10, 20, 30)
	r, err := s.Gather([]int64{2, 0, -1})
	require.NoError(t, err)
	require.Equal(t, "<30, 10, 30>", r.String())
	_, err = s.Gather([]int64{3})
	require.True(t, moerr.IsMoErrCode(err, moerr.ErrOutOfRange))
}

func TestHeadTail(t *testing.T) {
	vf := Of[float32](1.2, 3.3, 4.5)
	h, err := vf.Head()
	require.NoError(t, err)
	require.Equal(t, float32(1.2), h)

	r, err := vf.HeadN(2)
	require.NoError(t, err)
	require.Equal(t, "<1.2, 3.3>", r.String())
	r, err = vf.HeadN(4)
	require.NoError(t, err)
	require.Equal(t, "<1.2, 3.3, 4.5, 0>", r.String())
	r, err = vf.HeadFill(4, 1.0)
	require.NoError(t, err)
	require.Equal(t, "<1.2, 3.3, 4.5, 1>", r.String())

	vi, err := Range(3)
	require.NoError(t, err)
	tl, err := vi.Tail()
	require.NoError(t, err)
	require.Equal(t, 2, tl)

	tests := []struct {
		n        int
		overtake int
		want     string
	}{
		{n: 0, want: "<>"},
		{n: 1, want: "<2>"},
		{n: 3, want: "<0, 1, 2>"},
		{n: 5, want: "<0, 0, 0, 1, 2>"},
		{n: 5, overtake: 99, want: "<99, 99, 0, 1, 2>"},
	}
	for _, tt := range tests {
		r, err := vi.TailFill(tt.n, tt.overtake)
		require.NoError(t, err)
		require.Equal(t, tt.want, r.String())
		require.Equal(t, tt.n, r.Len())

		r, err = vi.HeadFill(tt.n, tt.overtake)
		require.NoError(t, err)
		require.Equal(t, tt.n, r.Len())
	}

	_, err = New[int](0).Head()
	require.True(t, moerr.IsMoErrCode(err, moerr.ErrEmptyVector))
	_, err = New[int](0).Tail()
	require.True(t, moerr.IsMoErrCode(err, moerr.ErrEmptyVector))
	_, err = vi.HeadN(-1)
	require.True(t, moerr.IsMoErrCode(err, moerr.ErrInvalidArg))
	_, err = vi.TailN(-1)
	require.True(t, moerr.IsMoErrCode(err, moerr.ErrInvalidArg))
}

func TestPop(t *testing.T) {
	s := Of(1, 2, 3, 4)
	require.NoError(t, s.Pop())
	require.Equal(t, "<1, 2, 3>", s.String())
	require.Equal(t, 4, s.Cap())
	checkInvariants(t, s)

	s.PopN(2)
	require.Equal(t, "<1>", s.String())
	s.PopN(-3)
	require.Equal(t, "<1>", s.String())
	s.PopN(10)
	require.Equal(t, "<>", s.String())
	checkInvariants(t, s)

	err := s.Pop()
	require.True(t, moerr.IsMoErrCode(err, moerr.ErrEmptyVector))
	require.Equal(t, 0, s.Len())
}

func TestFibonacciEvenSum(t *testing.T) {
	fib := Of(0, 1)
	for fib.MustAt(-1) < 4000000 {
		fib.Append(fib.MustAt(-1) + fib.MustAt(-2))
	}
	require.NoError(t, fib.Pop())
	evens, err := fib.Take(Map(fib, func(i int) bool { return i%2 == 0 }))
	require.NoError(t, err)
	require.Equal(t, 4613732, Fold(evens, 0, func(a, x int) int { return a + x }))
}
