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

// Package arith implements the elementwise arithmetic operators over
// sequences. Every operator comes in three shapes:
//
//	Op(a, b)       vector OP vector, lengths must match
//	OpScalar(a, y) vector OP scalar
//	ScalarOp(x, a) scalar OP vector
//
// Scalars and right-hand vector elements are converted to the element type
// of the (left) vector before combining, so the result always has that
// element type. The conversion may narrow: adding a float64 sequence to an
// int sequence truncates each float64 toward zero first.
//
// Integer results wrap on overflow.
package arith

import (
	"github.com/matrixorigin/numseq/pkg/container/sequence"
	"github.com/matrixorigin/numseq/pkg/container/types"
)

func vectorVector[T, U types.Number](a *sequence.Sequence[T], b *sequence.Sequence[U], fn func(x, y T) T) (*sequence.Sequence[T], error) {
	return sequence.ZipWith(a, b, func(x T, y U) T {
		return fn(x, T(y))
	})
}

func vectorScalar[T, U types.Number](a *sequence.Sequence[T], y U, fn func(x, y T) T) *sequence.Sequence[T] {
	return sequence.BroadcastRight(a, T(y), fn)
}

func scalarVector[T, U types.Number](x U, a *sequence.Sequence[T], fn func(x, y T) T) *sequence.Sequence[T] {
	return sequence.BroadcastLeft(T(x), a, fn)
}

func checkedVectorVector[T, U types.Number](a *sequence.Sequence[T], b *sequence.Sequence[U], fn func(x, y T) (T, error)) (*sequence.Sequence[T], error) {
	return sequence.TryZipWith(a, b, func(x T, y U) (T, error) {
		return fn(x, T(y))
	})
}

func checkedVectorScalar[T, U types.Number](a *sequence.Sequence[T], y U, fn func(x, y T) (T, error)) (*sequence.Sequence[T], error) {
	yt := T(y)
	return sequence.TryMap(a, func(x T) (T, error) {
		return fn(x, yt)
	})
}

func checkedScalarVector[T, U types.Number](x U, a *sequence.Sequence[T], fn func(x, y T) (T, error)) (*sequence.Sequence[T], error) {
	xt := T(x)
	return sequence.TryMap(a, func(y T) (T, error) {
		return fn(xt, y)
	})
}
