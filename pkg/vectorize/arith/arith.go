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

package arith

import (
	"github.com/matrixorigin/numseq/pkg/container/sequence"
	"github.com/matrixorigin/numseq/pkg/container/types"
)

func add[T types.Number](x, y T) T { return x + y }
func sub[T types.Number](x, y T) T { return x - y }
func mul[T types.Number](x, y T) T { return x * y }

func Add[T, U types.Number](a *sequence.Sequence[T], b *sequence.Sequence[U]) (*sequence.Sequence[T], error) {
	return vectorVector(a, b, add[T])
}

func AddScalar[T, U types.Number](a *sequence.Sequence[T], y U) *sequence.Sequence[T] {
	return vectorScalar(a, y, add[T])
}

func ScalarAdd[T, U types.Number](x U, a *sequence.Sequence[T]) *sequence.Sequence[T] {
	return scalarVector(x, a, add[T])
}

func Sub[T, U types.Number](a *sequence.Sequence[T], b *sequence.Sequence[U]) (*sequence.Sequence[T], error) {
	return vectorVector(a, b, sub[T])
}

func SubScalar[T, U types.Number](a *sequence.Sequence[T], y U) *sequence.Sequence[T] {
	return vectorScalar(a, y, sub[T])
}

func ScalarSub[T, U types.Number](x U, a *sequence.Sequence[T]) *sequence.Sequence[T] {
	return scalarVector(x, a, sub[T])
}

func Mul[T, U types.Number](a *sequence.Sequence[T], b *sequence.Sequence[U]) (*sequence.Sequence[T], error) {
	return vectorVector(a, b, mul[T])
}

func MulScalar[T, U types.Number](a *sequence.Sequence[T], y U) *sequence.Sequence[T] {
	return vectorScalar(a, y, mul[T])
}

func ScalarMul[T, U types.Number](x U, a *sequence.Sequence[T]) *sequence.Sequence[T] {
	return scalarVector(x, a, mul[T])
}
