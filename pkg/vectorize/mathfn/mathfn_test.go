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

package mathfn

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/matrixorigin/numseq/pkg/common/moerr"
	"github.com/matrixorigin/numseq/pkg/container/sequence"
)

func TestAbs(t *testing.T) {
	require.Equal(t, "<1, 0, 1>", Abs(sequence.Of(-1, 0, 1)).String())
	require.Equal(t, "<1.5, 0, 2>", Abs(sequence.Of(-1.5, 0, 2)).String())
	require.Equal(t, "<3, 7>", Abs(sequence.Of[uint8](3, 7)).String())
	require.Equal(t, "<9007199254740993>", Abs(sequence.Of[int64](-9007199254740993)).String())
}

func TestUnary(t *testing.T) {
	kases := []struct {
		name string
		in   *sequence.Sequence[float64]
		want string
	}{
		{"floor", sequence.Of(1.5, -1.5), "<1, -2>"},
		{"ceil", sequence.Of(1.5, -1.5), "<2, -1>"},
		{"round", sequence.Of(2.5, -2.5, 0.4), "<3, -3, 0>"},
		{"trunc", sequence.Of(2.7, -2.7), "<2, -2>"},
		{"sqrt", sequence.Of(4.0, 2.25), "<2, 1.5>"},
		{"cbrt", sequence.Of(27.0, -8), "<3, -2>"},
		{"exp", sequence.Of(0.0), "<1>"},
		{"log", sequence.Of(1.0), "<0>"},
		{"log10", sequence.Of(1.0), "<0>"},
		{"log2", sequence.Of(8.0, 0.5), "<3, -1>"},
		{"sin", sequence.Of(0.0), "<0>"},
		{"cos", sequence.Of(0.0), "<1>"},
		{"tanh", sequence.Of(0.0), "<0>"},
	}
	for _, k := range kases {
		t.Run(k.name, func(t *testing.T) {
			r, err := Apply(k.name, k.in)
			require.NoError(t, err)
			require.Equal(t, k.want, r.String())
		})
	}
}

func TestIntegerResultTruncates(t *testing.T) {
	require.Equal(t, "<2, 3, 0>", Sqrt(sequence.Of(4, 10, 0)).String())
	require.Equal(t, "<2, 2>", Log2(sequence.Of[uint16](4, 7)).String())
}

func TestCatalogue(t *testing.T) {
	for _, name := range Names() {
		fn, ok := Lookup[float32](name)
		require.True(t, ok, name)
		require.Equal(t, 0, fn(sequence.New[float32](0)).Len(), name)
	}
	require.Len(t, Names(), 23)

	_, ok := Lookup[int]("gamma")
	require.False(t, ok)
	_, err := Apply("gamma", sequence.Of(1))
	require.True(t, moerr.IsMoErrCode(err, moerr.ErrInvalidArg))
}

func TestPow(t *testing.T) {
	r5, err := sequence.Range(5)
	require.NoError(t, err)
	require.Equal(t, "<0, 1, 4, 9, 16>", PowScalar(r5, 2).String())
	require.Equal(t, "<1, 2, 4, 8, 16>", ScalarPow(2, r5).String())

	r4, err := sequence.Range(4)
	require.NoError(t, err)
	r, err := Pow(r4, r4)
	require.NoError(t, err)
	require.Equal(t, "<1, 1, 4, 27>", r.String())

	require.Equal(t, "<2, 3>", PowScalar(sequence.Of(4.0, 9), 0.5).String())

	_, err = Pow(r4, r5)
	require.True(t, moerr.IsMoErrCode(err, moerr.ErrSizeNotMatch))
}

func TestAtan2(t *testing.T) {
	r := Atan2Scalar(sequence.Of(1.0, -1), 1)
	require.InDelta(t, math.Pi/4, r.MustAt(0), 1e-12)
	require.InDelta(t, -math.Pi/4, r.MustAt(1), 1e-12)

	r = ScalarAtan2(1, sequence.Of(0.0))
	require.InDelta(t, math.Pi/2, r.MustAt(0), 1e-12)

	r, err := Atan2(sequence.Of(0.0, 1), sequence.Of(-1.0, 0))
	require.NoError(t, err)
	require.InDelta(t, math.Pi, r.MustAt(0), 1e-12)
	require.InDelta(t, math.Pi/2, r.MustAt(1), 1e-12)
}
