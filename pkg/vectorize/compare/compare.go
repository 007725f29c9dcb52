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

// Package compare implements the elementwise comparison operators. The
// right-hand operand is converted to the element type of the (left)
// vector first; the result is always a mask.
package compare

import (
	"github.com/matrixorigin/numseq/pkg/container/sequence"
	"github.com/matrixorigin/numseq/pkg/container/types"
)

func gt[T types.Number](x, y T) bool { return x > y }
func lt[T types.Number](x, y T) bool { return x < y }
func le[T types.Number](x, y T) bool { return x <= y }
func ge[T types.Number](x, y T) bool { return x >= y }
func eq[T types.Number](x, y T) bool { return x == y }
func ne[T types.Number](x, y T) bool { return x != y }

func vectorVector[T, U types.Number](a *sequence.Sequence[T], b *sequence.Sequence[U], fn func(x, y T) bool) (*sequence.Mask, error) {
	return sequence.ZipWith(a, b, func(x T, y U) bool {
		return fn(x, T(y))
	})
}

func vectorScalar[T, U types.Number](a *sequence.Sequence[T], y U, fn func(x, y T) bool) *sequence.Mask {
	yt := T(y)
	return sequence.Map(a, func(x T) bool {
		return fn(x, yt)
	})
}

func scalarVector[T, U types.Number](x U, a *sequence.Sequence[T], fn func(x, y T) bool) *sequence.Mask {
	xt := T(x)
	return sequence.Map(a, func(y T) bool {
		return fn(xt, y)
	})
}

func Gt[T, U types.Number](a *sequence.Sequence[T], b *sequence.Sequence[U]) (*sequence.Mask, error) {
	return vectorVector(a, b, gt[T])
}

func GtScalar[T, U types.Number](a *sequence.Sequence[T], y U) *sequence.Mask {
	return vectorScalar(a, y, gt[T])
}

func ScalarGt[T, U types.Number](x U, a *sequence.Sequence[T]) *sequence.Mask {
	return scalarVector(x, a, gt[T])
}

func Lt[T, U types.Number](a *sequence.Sequence[T], b *sequence.Sequence[U]) (*sequence.Mask, error) {
	return vectorVector(a, b, lt[T])
}

func LtScalar[T, U types.Number](a *sequence.Sequence[T], y U) *sequence.Mask {
	return vectorScalar(a, y, lt[T])
}

func ScalarLt[T, U types.Number](x U, a *sequence.Sequence[T]) *sequence.Mask {
	return scalarVector(x, a, lt[T])
}

func Le[T, U types.Number](a *sequence.Sequence[T], b *sequence.Sequence[U]) (*sequence.Mask, error) {
	return vectorVector(a, b, le[T])
}

func LeScalar[T, U types.Number](a *sequence.Sequence[T], y U) *sequence.Mask {
	return vectorScalar(a, y, le[T])
}

func ScalarLe[T, U types.Number](x U, a *sequence.Sequence[T]) *sequence.Mask {
	return scalarVector(x, a, le[T])
}

func Ge[T, U types.Number](a *sequence.Sequence[T], b *sequence.Sequence[U]) (*sequence.Mask, error) {
	return vectorVector(a, b, ge[T])
}

func GeScalar[T, U types.Number](a *sequence.Sequence[T], y U) *sequence.Mask {
	return vectorScalar(a, y, ge[T])
}

func ScalarGe[T, U types.Number](x U, a *sequence.Sequence[T]) *sequence.Mask {
	return scalarVector(x, a, ge[T])
}

func Eq[T, U types.Number](a *sequence.Sequence[T], b *sequence.Sequence[U]) (*sequence.Mask, error) {
	return vectorVector(a, b, eq[T])
}

func EqScalar[T, U types.Number](a *sequence.Sequence[T], y U) *sequence.Mask {
	return vectorScalar(a, y, eq[T])
}

func ScalarEq[T, U types.Number](x U, a *sequence.Sequence[T]) *sequence.Mask {
	return scalarVector(x, a, eq[T])
}

func Ne[T, U types.Number](a *sequence.Sequence[T], b *sequence.Sequence[U]) (*sequence.Mask, error) {
	return vectorVector(a, b, ne[T])
}

func NeScalar[T, U types.Number](a *sequence.Sequence[T], y U) *sequence.Mask {
	return vectorScalar(a, y, ne[T])
}

func ScalarNe[T, U types.Number](x U, a *sequence.Sequence[T]) *sequence.Mask {
	return scalarVector(x, a, ne[T])
}
