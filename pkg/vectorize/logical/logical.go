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

// Package logical implements && and || over numeric and bool sequences.
// Operands are read through types.Truth; the result keeps the element
// type of the (left) vector and holds 1 or 0 (true or false for masks).
package logical

import (
	"github.com/matrixorigin/numseq/pkg/container/sequence"
	"github.com/matrixorigin/numseq/pkg/container/types"
)

func and(x, y bool) bool { return x && y }
func or(x, y bool) bool  { return x || y }

func vectorVector[T, U types.Element](a *sequence.Sequence[T], b *sequence.Sequence[U], fn func(x, y bool) bool) (*sequence.Sequence[T], error) {
	return sequence.ZipWith(a, b, func(x T, y U) T {
		return types.FromBool[T](fn(types.Truth(x), types.Truth(y)))
	})
}

func vectorScalar[T, U types.Element](a *sequence.Sequence[T], y U, fn func(x, y bool) bool) *sequence.Sequence[T] {
	yb := types.Truth(y)
	return sequence.Map(a, func(x T) T {
		return types.FromBool[T](fn(types.Truth(x), yb))
	})
}

func scalarVector[T, U types.Element](x U, a *sequence.Sequence[T], fn func(x, y bool) bool) *sequence.Sequence[T] {
	xb := types.Truth(x)
	return sequence.Map(a, func(y T) T {
		return types.FromBool[T](fn(xb, types.Truth(y)))
	})
}

func And[T, U types.Element](a *sequence.Sequence[T], b *sequence.Sequence[U]) (*sequence.Sequence[T], error) {
	return vectorVector(a, b, and)
}

func AndScalar[T, U types.Element](a *sequence.Sequence[T], y U) *sequence.Sequence[T] {
	return vectorScalar(a, y, and)
}

func ScalarAnd[T, U types.Element](x U, a *sequence.Sequence[T]) *sequence.Sequence[T] {
	return scalarVector(x, a, and)
}

func Or[T, U types.Element](a *sequence.Sequence[T], b *sequence.Sequence[U]) (*sequence.Sequence[T], error) {
	return vectorVector(a, b, or)
}

func OrScalar[T, U types.Element](a *sequence.Sequence[T], y U) *sequence.Sequence[T] {
	return vectorScalar(a, y, or)
}

func ScalarOr[T, U types.Element](x U, a *sequence.Sequence[T]) *sequence.Sequence[T] {
	return scalarVector(x, a, or)
}

// Not negates every element of a mask.
func Not(m *sequence.Mask) *sequence.Mask {
	return sequence.Map(m, func(b bool) bool { return !b })
}

// Truth converts any sequence to a mask, non-zero elements being true.
func Truth[T types.Element](s *sequence.Sequence[T]) *sequence.Mask {
	return sequence.Map(s, types.Truth[T])
}
