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

// Map returns a new sequence holding fn applied to every element of s.
func Map[T, R any](s *Sequence[T], fn func(T) R) *Sequence[R] {
	r := New[R](s.length)
	for i, x := range s.data[:s.length] {
		r.data[i] = fn(x)
	}
	return r
}

// ZipWith combines a and b position by position. Both must have the same
// length.
func ZipWith[T, U, R any](a *Sequence[T], b *Sequence[U], fn func(T, U) R) (*Sequence[R], error) {
	if a.length != b.length {
		return nil, moerr.NewSizeNotMatchNoCtxf("%d != %d", a.length, b.length)
	}
	r := New[R](a.length)
	ys := b.data[:b.length]
	for i, x := range a.data[:a.length] {
		r.data[i] = fn(x, ys[i])
	}
	return r, nil
}

// TryZipWith is ZipWith for kernels that can fail on a single element.
// The first failure is returned and no result is produced.
func TryZipWith[T, U, R any](a *Sequence[T], b *Sequence[U], fn func(T, U) (R, error)) (*Sequence[R], error) {
	if a.length != b.length {
		return nil, moerr.NewSizeNotMatchNoCtxf("%d != %d", a.length, b.length)
	}
	r := New[R](a.length)
	ys := b.data[:b.length]
	for i, x := range a.data[:a.length] {
		v, err := fn(x, ys[i])
		if err != nil {
			return nil, err
		}
		r.data[i] = v
	}
	return r, nil
}

// BroadcastLeft combines the scalar x with every element of s, x being
// the left operand.
func BroadcastLeft[T, U, R any](x U, s *Sequence[T], fn func(U, T) R) *Sequence[R] {
	r := New[R](s.length)
	for i, y := range s.data[:s.length] {
		r.data[i] = fn(x, y)
	}
	return r
}

// BroadcastRight combines every element of s with the scalar x, x being
// the right operand.
func BroadcastRight[T, U, R any](s *Sequence[T], x U, fn func(T, U) R) *Sequence[R] {
	r := New[R](s.length)
	for i, y := range s.data[:s.length] {
		r.data[i] = fn(y, x)
	}
	return r
}

// TryMap is Map for kernels that can fail on a single element.
func TryMap[T, R any](s *Sequence[T], fn func(T) (R, error)) (*Sequence[R], error) {
	r := New[R](s.length)
	for i, x := range s.data[:s.length] {
		v, err := fn(x)
		if err != nil {
			return nil, err
		}
		r.data[i] = v
	}
	return r, nil
}

// Fold reduces the elements of s from left to right starting at init.
func Fold[T, A any](s *Sequence[T], init A, fn func(A, T) A) A {
	acc := init
	for _, x := range s.data[:s.length] {
		acc = fn(acc, x)
	}
	return acc
}
