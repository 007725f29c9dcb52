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

func (s *Sequence[T]) checkMask(mask *Mask) error {
	if mask.length != s.length {
		return moerr.NewSizeNotMatchNoCtxf("mask length %d != %d", mask.length, s.length)
	}
	return nil
}

// Take returns the elements whose mask entry is true, in their original
// order.
func (s *Sequence[T]) Take(mask *Mask) (*Sequence[T], error) {
	if err := s.checkMask(mask); err != nil {
		return nil, err
	}
	sel := mask.data[:mask.length]
	n := 0
	for _, ok := range sel {
		if ok {
			n++
		}
	}
	r := New[T](n)
	k := 0
	for i, ok := range sel {
		if ok {
			r.data[k] = s.data[i]
			k++
		}
	}
	return r, nil
}

// Apply replaces every element e with fn(e) and returns s.
func (s *Sequence[T]) Apply(fn func(T) T) *Sequence[T] {
	for i := 0; i < s.length; i++ {
		s.data[i] = fn(s.data[i])
	}
	return s
}

// ApplyTo replaces element i with fn(e_i) wherever mask[i] is true and
// returns s.
func (s *Sequence[T]) ApplyTo(mask *Mask, fn func(T) T) (*Sequence[T], error) {
	if err := s.checkMask(mask); err != nil {
		return nil, err
	}
	for i, ok := range mask.data[:mask.length] {
		if ok {
			s.data[i] = fn(s.data[i])
		}
	}
	return s, nil
}

// Gather returns the elements at the given positions, in that order.
// Positions follow the same rules as At.
func (s *Sequence[T]) Gather(sels []int64) (*Sequence[T], error) {
	r := New[T](len(sels))
	for k, sel := range sels {
		j, err := s.index(int(sel))
		if err != nil {
			return nil, err
		}
		r.data[k] = s.data[j]
	}
	return r, nil
}
