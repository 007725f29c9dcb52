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

// Head returns the first element.
func (s *Sequence[T]) Head() (T, error) {
	if s.length == 0 {
		var zero T
		return zero, moerr.NewEmptyVectorNoCtx()
	}
	return s.data[0], nil
}

// Tail returns the last element.
func (s *Sequence[T]) Tail() (T, error) {
	if s.length == 0 {
		var zero T
		return zero, moerr.NewEmptyVectorNoCtx()
	}
	return s.data[s.length-1], nil
}

// HeadN is HeadFill with the zero value as padding.
func (s *Sequence[T]) HeadN(n int) (*Sequence[T], error) {
	var zero T
	return s.HeadFill(n, zero)
}

// HeadFill returns the first n elements. When n exceeds the length the
// result is padded at the end with copies of overtake.
func (s *Sequence[T]) HeadFill(n int, overtake T) (*Sequence[T], error) {
	if n < 0 {
		return nil, moerr.NewInvalidArgNoCtx("head length", n)
	}
	r := New[T](n)
	k := copy(r.data, s.data[:s.length])
	for ; k < n; k++ {
		r.data[k] = overtake
	}
	return r, nil
}

// TailN is TailFill with the zero value as padding.
func (s *Sequence[T]) TailN(n int) (*Sequence[T], error) {
	var zero T
	return s.TailFill(n, zero)
}

// TailFill returns the last n elements. When n exceeds the length the
// result is padded at the front with copies of overtake.
func (s *Sequence[T]) TailFill(n int, overtake T) (*Sequence[T], error) {
	if n < 0 {
		return nil, moerr.NewInvalidArgNoCtx("tail length", n)
	}
	r := New[T](n)
	if n > s.length {
		pad := n - s.length
		for k := 0; k < pad; k++ {
			r.data[k] = overtake
		}
		copy(r.data[pad:], s.data[:s.length])
		return r, nil
	}
	copy(r.data, s.data[s.length-n:s.length])
	return r, nil
}

// Pop removes the last element. The capacity is unchanged.
func (s *Sequence[T]) Pop() error {
	if s.length == 0 {
		return moerr.NewEmptyVectorNoCtx()
	}
	s.truncate(s.length - 1)
	return nil
}

// PopN removes up to n elements from the end, stopping at an empty
// sequence. A negative n removes nothing.
func (s *Sequence[T]) PopN(n int) {
	if n <= 0 {
		return
	}
	if n > s.length {
		n = s.length
	}
	s.truncate(s.length - n)
}

// truncate lowers the length to n and zeroes the vacated slots.
func (s *Sequence[T]) truncate(n int) {
	var zero T
	for i := n; i < s.length; i++ {
		s.data[i] = zero
	}
	s.length = n
}
