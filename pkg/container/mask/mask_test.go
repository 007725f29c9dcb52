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

package mask

import (
	"testing"

	"github.com/RoaringBitmap/roaring"
	"github.com/stretchr/testify/require"

	"github.com/matrixorigin/numseq/pkg/common/moerr"
	"github.com/matrixorigin/numseq/pkg/container/sequence"
	"github.com/matrixorigin/numseq/pkg/testutil"
)

func TestCountAndSels(t *testing.T) {
	m := sequence.Of(false, true, true, false, true)
	require.Equal(t, 3, Count(m))
	require.True(t, Any(m))
	require.Equal(t, []int64{1, 2, 4}, Sels(m))
	require.False(t, Any(sequence.New[bool](3)))
	require.Equal(t, []int64{}, Sels(sequence.New[bool](0)))

	back, err := FromSels(5, Sels(m))
	require.NoError(t, err)
	require.Equal(t, m.Values(), back.Values())

	_, err = FromSels(2, []int64{2})
	require.True(t, moerr.IsMoErrCode(err, moerr.ErrOutOfRange))
}

func TestBitmap(t *testing.T) {
	m := sequence.Of(true, false, false, true)
	bm := ToBitmap(m)
	require.Equal(t, uint64(2), bm.GetCardinality())
	require.True(t, bm.Contains(0))
	require.True(t, bm.Contains(3))

	back, err := FromBitmap(4, bm)
	require.NoError(t, err)
	require.Equal(t, "<1, 0, 0, 1>", back.String())

	_, err = FromBitmap(3, bm)
	require.True(t, moerr.IsMoErrCode(err, moerr.ErrOutOfRange))

	empty, err := FromBitmap(2, roaring.New())
	require.NoError(t, err)
	require.Equal(t, "<0, 0>", empty.String())
}

func TestTakeBitmap(t *testing.T) {
	s := sequence.Of(1, 2, 3, 4, 5)
	r, err := TakeBitmap(s, roaring.BitmapOf(0, 2, 4))
	require.NoError(t, err)
	require.Equal(t, "<1, 3, 5>", r.String())

	_, err = TakeBitmap(s, roaring.BitmapOf(9))
	require.Error(t, err)
}

func TestOrAnd(t *testing.T) {
	a := sequence.Of(true, false, true)
	b := sequence.Of(false, false, true)
	r, err := Or(a, b)
	require.NoError(t, err)
	require.Equal(t, "<1, 0, 1>", r.String())
	r, err = And(a, b)
	require.NoError(t, err)
	require.Equal(t, "<0, 0, 1>", r.String())

	_, err = Or(a, sequence.Of(true))
	require.True(t, moerr.IsMoErrCode(err, moerr.ErrSizeNotMatch))
}

func TestBitmapRoundTripLarge(t *testing.T) {
	m := testutil.NewMask(10000, 7)
	require.Equal(t, 1429, Count(m))

	bm := ToBitmap(m)
	require.Equal(t, uint64(1429), bm.GetCardinality())
	back, err := FromBitmap(m.Len(), bm)
	require.NoError(t, err)
	testutil.RequireSequence(t, m.Values(), back)

	require.False(t, Any(testutil.NewMask(5, 0)))
}
