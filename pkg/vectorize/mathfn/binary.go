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

package mathfn

import (
	"math"

	"github.com/matrixorigin/numseq/pkg/container/sequence"
	"github.com/matrixorigin/numseq/pkg/container/types"
)

func binary[T, U types.Number](a *sequence.Sequence[T], b *sequence.Sequence[U], fn func(x, y float64) float64) (*sequence.Sequence[T], error) {
	return sequence.ZipWith(a, b, func(x T, y U) T {
		return T(fn(float64(x), float64(T(y))))
	})
}

func binaryScalar[T, U types.Number](a *sequence.Sequence[T], y U, fn func(x, y float64) float64) *sequence.Sequence[T] {
	yf := float64(T(y))
	return sequence.Map(a, func(x T) T {
		return T(fn(float64(x), yf))
	})
}

func scalarBinary[T, U types.Number](x U, a *sequence.Sequence[T], fn func(x, y float64) float64) *sequence.Sequence[T] {
	xf := float64(T(x))
	return sequence.Map(a, func(y T) T {
		return T(fn(xf, float64(y)))
	})
}

// Pow raises each element of a to the matching element of b.
func Pow[T, U types.Number](a *sequence.Sequence[T], b *sequence.Sequence[U]) (*sequence.Sequence[T], error) {
	return binary(a, b, math.Pow)
}

func PowScalar[T, U types.Number](a *sequence.Sequence[T], y U) *sequence.Sequence[T] {
	return binaryScalar(a, y, math.Pow)
}

func ScalarPow[T, U types.Number](x U, a *sequence.Sequence[T]) *sequence.Sequence[T] {
	return scalarBinary(x, a, math.Pow)
}

// Atan2 computes atan2(a[i], b[i]).
func Atan2[T, U types.Number](a *sequence.Sequence[T], b *sequence.Sequence[U]) (*sequence.Sequence[T], error) {
	return binary(a, b, math.Atan2)
}

func Atan2Scalar[T, U types.Number](a *sequence.Sequence[T], x U) *sequence.Sequence[T] {
	return binaryScalar(a, x, math.Atan2)
}

func ScalarAtan2[T, U types.Number](y U, a *sequence.Sequence[T]) *sequence.Sequence[T] {
	return scalarBinary(y, a, math.Atan2)
}
