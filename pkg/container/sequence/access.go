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
	"github.com/matrixorigin/numseq/pkg/common/moerr"
)

// index translates a possibly negative index and checks it against the
// length.
func (s *Sequence[T]) index(i int) (int, error) {
	j := i
	if j < 0 {
		j += s.length
	}
	if j < 0 || j >= s.length {
		return 0, moerr.NewOutOfRangeNoCtx("index", "%d not in [-%d, %d)", i, s.length, s.length)
	}
	return j, nil
}

// At returns element i. Negative i counts from the end, -1 being the last
// element.
func (s *Sequence[T]) At(i int) (T, error) {
	j, err := s.index(i)
	if err != nil {
		var zero T
		return zero, err
	}
	return s.data[j], nil
}

// MustAt is At for indexes already known to be valid. It panics otherwise.
func (s *Sequence[T]) MustAt(i int) T {
	v, err := s.At(i)
	if err != nil {
		panic(err)
	}
	return v
}

// Set replaces element i, with the same index rules as At.
func (s *Sequence[T]) Set(i int, v T) error {
	j, err := s.index(i)
	if err != nil {
		return err
	}
	s.data[j] = v
	return nil
}

// Swap exchanges elements i and j. Both must lie in [0, Len()).
func (s *Sequence[T]) Swap(i, j int) error {
	if i < 0 || i >= s.length || j < 0 || j >= s.length {
		return moerr.NewOutOfRangeNoCtx("index", "swap(%d, %d) with length %d", i, j, s.length)
	}
	s.data[i], s.data[j] = s.data[j], s.data[i]
	return nil
}

// Reverse reverses the elements in place.
func (s *Sequence[T]) Reverse() {
	for i, j := 0, s.length-1; i < j; i, j = i+1, j-1 {
		s.data[i], s.data[j] = s.data[j], s.data[i]
	}
}
