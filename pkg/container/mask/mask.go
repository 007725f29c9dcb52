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

// Package mask converts boolean sequences to and from the positional forms
// used elsewhere: selection vectors of row numbers and roaring bitmaps.
// A mask of length n selects position i when element i is true.
package mask

import (
	"github.com/RoaringBitmap/roaring"

	"github.com/matrixorigin/numseq/pkg/common/moerr"
	"github.com/matrixorigin/numseq/pkg/container/sequence"
)

// Count returns the number of true entries in m.
func Count(m *sequence.Mask) int {
	return sequence.Fold(m, 0, func(n int, ok bool) int {
		if ok {
			return n + 1
		}
		return n
	})
}

// Any reports whether at least one entry of m is true.
func Any(m *sequence.Mask) bool {
	return Count(m) > 0
}

// Sels returns the selected positions of m in ascending order.
func Sels(m *sequence.Mask) []int64 {
	sels := make([]int64, 0, Count(m))
	for i, ok := range m.Values() {
		if ok {
			sels = append(sels, int64(i))
		}
	}
	return sels
}

// FromSels builds a mask of length n selecting the given positions.
func FromSels(n int, sels []int64) (*sequence.Mask, error) {
	m := sequence.New[bool](n)
	for _, sel := range sels {
		if sel < 0 || sel >= int64(n) {
			return nil, moerr.NewOutOfRangeNoCtx("selection", "%d not in [0, %d)", sel, n)
		}
		_ = m.Set(int(sel), true)
	}
	return m, nil
}

// ToBitmap returns a bitmap holding the selected positions of m.
func ToBitmap(m *sequence.Mask) *roaring.Bitmap {
	bm := roaring.New()
	for i, ok := range m.Values() {
		if ok {
			bm.Add(uint32(i))
		}
	}
	return bm
}

// FromBitmap builds a mask of length n from bm. Every position in bm must
// be below n.
func FromBitmap(n int, bm *roaring.Bitmap) (*sequence.Mask, error) {
	if !bm.IsEmpty() && int64(bm.Maximum()) >= int64(n) {
		return nil, moerr.NewOutOfRangeNoCtx("bitmap", "position %d not in [0, %d)", bm.Maximum(), n)
	}
	m := sequence.New[bool](n)
	it := bm.Iterator()
	for it.HasNext() {
		_ = m.Set(int(it.Next()), true)
	}
	return m, nil
}

// TakeBitmap is Take with the selection given as a bitmap over the
// positions of s.
func TakeBitmap[T any](s *sequence.Sequence[T], bm *roaring.Bitmap) (*sequence.Sequence[T], error) {
	m, err := FromBitmap(s.Len(), bm)
	if err != nil {
		return nil, err
	}
	return s.Take(m)
}

// Or returns the union of two masks of the same length.
func Or(a, b *sequence.Mask) (*sequence.Mask, error) {
	return sequence.ZipWith(a, b, func(x, y bool) bool { return x || y })
}

// And returns the intersection of two masks of the same length.
func And(a, b *sequence.Mask) (*sequence.Mask, error) {
	return sequence.ZipWith(a, b, func(x, y bool) bool { return x && y })
}
