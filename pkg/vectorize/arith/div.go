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
	"github.com/matrixorigin/numseq/pkg/common/moerr"
	"github.com/matrixorigin/numseq/pkg/container/sequence"
	"github.com/matrixorigin/numseq/pkg/container/types"
	"golang.org/x/exp/constraints"
)

// div divides x by y. Integer division by zero is an error; float division
// follows IEEE-754 and yields an infinity or NaN.
func div[T types.Number](x, y T) (T, error) {
	var zero T
	if y == zero && !types.IsFloat[T]() {
		return zero, moerr.NewDivByZeroNoCtx()
	}
	return x / y, nil
}

func mod[T constraints.Integer](x, y T) (T, error) {
	var zero T
	if y == zero {
		return zero, moerr.NewDivByZeroNoCtx()
	}
	return x % y, nil
}

// Div divides a by b elementwise. Integer sequences truncate toward zero.
func Div[T, U types.Number](a *sequence.Sequence[T], b *sequence.Sequence[U]) (*sequence.Sequence[T], error) {
	return checkedVectorVector(a, b, div[T])
}

func DivScalar[T, U types.Number](a *sequence.Sequence[T], y U) (*sequence.Sequence[T], error) {
	return checkedVectorScalar(a, y, div[T])
}

func ScalarDiv[T, U types.Number](x U, a *sequence.Sequence[T]) (*sequence.Sequence[T], error) {
	return checkedScalarVector(x, a, div[T])
}

// Mod is the integer remainder, with the sign of the dividend.
func Mod[T, U constraints.Integer](a *sequence.Sequence[T], b *sequence.Sequence[U]) (*sequence.Sequence[T], error) {
	return checkedVectorVector(a, b, mod[T])
}

func ModScalar[T, U constraints.Integer](a *sequence.Sequence[T], y U) (*sequence.Sequence[T], error) {
	return checkedVectorScalar(a, y, mod[T])
}

func ScalarMod[T, U constraints.Integer](x U, a *sequence.Sequence[T]) (*sequence.Sequence[T], error) {
	return checkedScalarVector(x, a, mod[T])
}
