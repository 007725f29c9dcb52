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
	"golang.org/x/exp/constraints"
)

func bitAnd[T constraints.Integer](x, y T) T { return x & y }
func bitOr[T constraints.Integer](x, y T) T  { return x | y }

func BitAnd[T, U constraints.Integer](a *sequence.Sequence[T], b *sequence.Sequence[U]) (*sequence.Sequence[T], error) {
	return vectorVector(a, b, bitAnd[T])
}

func BitAndScalar[T, U constraints.Integer](a *sequence.Sequence[T], y U) *sequence.Sequence[T] {
	return vectorScalar(a, y, bitAnd[T])
}

func ScalarBitAnd[T, U constraints.Integer](x U, a *sequence.Sequence[T]) *sequence.Sequence[T] {
	return scalarVector(x, a, bitAnd[T])
}

func BitOr[T, U constraints.Integer](a *sequence.Sequence[T], b *sequence.Sequence[U]) (*sequence.Sequence[T], error) {
	return vectorVector(a, b, bitOr[T])
}

func BitOrScalar[T, U constraints.Integer](a *sequence.Sequence[T], y U) *sequence.Sequence[T] {
	return vectorScalar(a, y, bitOr[T])
}

func ScalarBitOr[T, U constraints.Integer](x U, a *sequence.Sequence[T]) *sequence.Sequence[T] {
	return scalarVector(x, a, bitOr[T])
}
