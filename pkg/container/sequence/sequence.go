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

// Sequence is a resizable sequence of T. The zero value is an empty
// sequence with no capacity, ready to use.
//
// A Sequence must not be copied by value; use Clone or Move.
type Sequence[T any] struct {
	// data holds every allocated slot, len(data) is the capacity.
	data []T
	// length is the number of valid elements, data[length:] is zeroed.
	length int
}

// Mask selects positions of another sequence of the same length.
type Mask = Sequence[bool]

// alloc returns n zeroed slots, nil when n is zero.
func alloc[T any](n int) []T {
	if n == 0 {
		return nil
	}
	return make([]T, n)
}

// New returns a sequence of size zero-valued elements.
func New[T any](size int) *Sequence[T] {
	if size < 0 {
		size = 0
	}
	return &Sequence[T]{data: alloc[T](size), length: size}
}

// WithCapacity returns an empty sequence with n slots allocated.
func WithCapacity[T any](n int) *Sequence[T] {
	if n < 0 {
		n = 0
	}
	return &Sequence[T]{data: alloc[T](n)}
}

// Of returns a sequence holding vals in order.
func Of[T any](vals ...T) *Sequence[T] {
	s := &Sequence[T]{data: alloc[T](len(vals)), length: len(vals)}
	copy(s.data, vals)
	return s
}

// Generate returns a sequence of n elements where element i is fn(i).
func Generate[T any](n int, fn func(i int) T) *Sequence[T] {
	s := New[T](n)
	for i := 0; i < s.length; i++ {
		s.data[i] = fn(i)
	}
	return s
}

// Len returns the number of valid elements.
func (s *Sequence[T]) Len() int {
	return s.length
}

// Cap returns the number of allocated slots.
func (s *Sequence[T]) Cap() int {
	return len(s.data)
}

// IsEmpty reports whether the sequence has no valid elements.
func (s *Sequence[T]) IsEmpty() bool {
	return s.length == 0
}

// Values returns a copy of the valid elements.
func (s *Sequence[T]) Values() []T {
	vs := make([]T, s.length)
	copy(vs, s.data[:s.length])
	return vs
}

// Clone returns a deep copy with the same length and capacity.
func (s *Sequence[T]) Clone() *Sequence[T] {
	c := &Sequence[T]{data: alloc[T](len(s.data)), length: s.length}
	copy(c.data, s.data[:s.length])
	return c
}

// Move transfers the storage of s to a new sequence and leaves s empty
// with zero capacity.
func (s *Sequence[T]) Move() *Sequence[T] {
	m := &Sequence[T]{data: s.data, length: s.length}
	s.data = nil
	s.length = 0
	return m
}

// Realloc sets the capacity to n. Shrinking below the length truncates the
// sequence; growing keeps every element and zeroes the new slots.
func (s *Sequence[T]) Realloc(n int) error {
	if n < 0 {
		return moerr.NewInvalidArgNoCtx("capacity", n)
	}
	if n == len(s.data) {
		return nil
	}
	data := alloc[T](n)
	copy(data, s.data)
	s.data = data
	if s.length > n {
		s.length = n
	}
	return nil
}

// Reserve grows the capacity to at least n. It never shrinks.
func (s *Sequence[T]) Reserve(n int) error {
	if n <= len(s.data) {
		return nil
	}
	return s.Realloc(n)
}

// Resize sets the length to n, filling new elements with the zero value.
func (s *Sequence[T]) Resize(n int) error {
	var zero T
	return s.ResizeFill(n, zero)
}

// ResizeFill sets the length to n. A shorter length also shrinks the
// capacity to n; a longer one reallocates to exactly n and sets every new
// element to fill.
func (s *Sequence[T]) ResizeFill(n int, fill T) error {
	if n < 0 {
		return moerr.NewInvalidArgNoCtx("length", n)
	}
	if n == s.length {
		return nil
	}
	if n < s.length {
		return s.Realloc(n)
	}
	old := s.length
	if err := s.Realloc(n); err != nil {
		return err
	}
	for i := old; i < n; i++ {
		s.data[i] = fill
	}
	s.length = n
	return nil
}

// Clear releases the storage, leaving length and capacity at zero.
func (s *Sequence[T]) Clear() {
	_ = s.Realloc(0)
}

// Append adds x at the end. When the sequence is full the capacity grows
// by exactly one slot, so n appends to a full sequence copy O(n^2)
// elements; Reserve first when the final size is known.
func (s *Sequence[T]) Append(x T) {
	if s.length+1 > len(s.data) {
		_ = s.Realloc(s.length + 1)
	}
	s.data[s.length] = x
	s.length++
}

// AppendSeq adds the elements of other at the end. other may be s itself.
func (s *Sequence[T]) AppendSeq(other *Sequence[T]) {
	src := other.data[:other.length]
	n := s.length + len(src)
	if n > len(s.data) {
		_ = s.Realloc(n)
	}
	copy(s.data[s.length:n], src)
	s.length = n
}
