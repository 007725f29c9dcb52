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

// Package mathfn applies math functions elementwise. Every function is
// evaluated in float64 and the result converted back to the element type
// of its input, so sqrt of an int sequence truncates.
package mathfn

import (
	"math"
	"sort"

	"github.com/matrixorigin/numseq/pkg/common/moerr"
	"github.com/matrixorigin/numseq/pkg/container/sequence"
	"github.com/matrixorigin/numseq/pkg/container/types"
)

func unary[T types.Number](s *sequence.Sequence[T], fn func(float64) float64) *sequence.Sequence[T] {
	return sequence.Map(s, func(x T) T {
		return T(fn(float64(x)))
	})
}

func Sin[T types.Number](s *sequence.Sequence[T]) *sequence.Sequence[T]   { return unary(s, math.Sin) }
func Cos[T types.Number](s *sequence.Sequence[T]) *sequence.Sequence[T]   { return unary(s, math.Cos) }
func Tan[T types.Number](s *sequence.Sequence[T]) *sequence.Sequence[T]   { return unary(s, math.Tan) }
func Asin[T types.Number](s *sequence.Sequence[T]) *sequence.Sequence[T]  { return unary(s, math.Asin) }
func Acos[T types.Number](s *sequence.Sequence[T]) *sequence.Sequence[T]  { return unary(s, math.Acos) }
func Atan[T types.Number](s *sequence.Sequence[T]) *sequence.Sequence[T]  { return unary(s, math.Atan) }
func Sinh[T types.Number](s *sequence.Sequence[T]) *sequence.Sequence[T]  { return unary(s, math.Sinh) }
func Cosh[T types.Number](s *sequence.Sequence[T]) *sequence.Sequence[T]  { return unary(s, math.Cosh) }
func Tanh[T types.Number](s *sequence.Sequence[T]) *sequence.Sequence[T]  { return unary(s, math.Tanh) }
func Asinh[T types.Number](s *sequence.Sequence[T]) *sequence.Sequence[T] { return unary(s, math.Asinh) }
func Acosh[T types.Number](s *sequence.Sequence[T]) *sequence.Sequence[T] { return unary(s, math.Acosh) }
func Atanh[T types.Number](s *sequence.Sequence[T]) *sequence.Sequence[T] { return unary(s, math.Atanh) }
func Exp[T types.Number](s *sequence.Sequence[T]) *sequence.Sequence[T]   { return unary(s, math.Exp) }
func Log[T types.Number](s *sequence.Sequence[T]) *sequence.Sequence[T]   { return unary(s, math.Log) }
func Log10[T types.Number](s *sequence.Sequence[T]) *sequence.Sequence[T] { return unary(s, math.Log10) }
func Log2[T types.Number](s *sequence.Sequence[T]) *sequence.Sequence[T]  { return unary(s, math.Log2) }
func Sqrt[T types.Number](s *sequence.Sequence[T]) *sequence.Sequence[T]  { return unary(s, math.Sqrt) }
func Cbrt[T types.Number](s *sequence.Sequence[T]) *sequence.Sequence[T]  { return unary(s, math.Cbrt) }
func Ceil[T types.Number](s *sequence.Sequence[T]) *sequence.Sequence[T]  { return unary(s, math.Ceil) }
func Floor[T types.Number](s *sequence.Sequence[T]) *sequence.Sequence[T] { return unary(s, math.Floor) }
func Round[T types.Number](s *sequence.Sequence[T]) *sequence.Sequence[T] { return unary(s, math.Round) }
func Trunc[T types.Number](s *sequence.Sequence[T]) *sequence.Sequence[T] { return unary(s, math.Trunc) }

// Abs is exact on integers; the most negative value of a signed type wraps
// to itself.
func Abs[T types.Number](s *sequence.Sequence[T]) *sequence.Sequence[T] {
	var zero T
	return sequence.Map(s, func(x T) T {
		if x < zero {
			return -x
		}
		return x
	})
}

// Func is a catalogue entry for element type T.
type Func[T types.Number] func(*sequence.Sequence[T]) *sequence.Sequence[T]

// Lookup returns the function registered under name.
func Lookup[T types.Number](name string) (Func[T], bool) {
	var fn Func[T]
	switch name {
	case "sin":
		fn = Sin[T]
	case "cos":
		fn = Cos[T]
	case "tan":
		fn = Tan[T]
	case "asin":
		fn = Asin[T]
	case "acos":
		fn = Acos[T]
	case "atan":
		fn = Atan[T]
	case "sinh":
		fn = Sinh[T]
	case "cosh":
		fn = Cosh[T]
	case "tanh":
		fn = Tanh[T]
	case "asinh":
		fn = Asinh[T]
	case "acosh":
		fn = Acosh[T]
	case "atanh":
		fn = Atanh[T]
	case "exp":
		fn = Exp[T]
	case "log":
		fn = Log[T]
	case "log10":
		fn = Log10[T]
	case "log2":
		fn = Log2[T]
	case "sqrt":
		fn = Sqrt[T]
	case "cbrt":
		fn = Cbrt[T]
	case "ceil":
		fn = Ceil[T]
	case "floor":
		fn = Floor[T]
	case "round":
		fn = Round[T]
	case "trunc":
		fn = Trunc[T]
	case "abs":
		fn = Abs[T]
	default:
		return nil, false
	}
	return fn, true
}

var names = []string{
	"sin", "cos", "tan", "asin", "acos", "atan",
	"sinh", "cosh", "tanh", "asinh", "acosh", "atanh",
	"exp", "log", "log10", "log2", "sqrt", "cbrt",
	"ceil", "floor", "round", "trunc", "abs",
}

// Names lists the catalogue in sorted order.
func Names() []string {
	r := make([]string, len(names))
	copy(r, names)
	sort.Strings(r)
	return r
}

// Apply runs the function registered under name on s.
func Apply[T types.Number](name string, s *sequence.Sequence[T]) (*sequence.Sequence[T], error) {
	fn, ok := Lookup[T](name)
	if !ok {
		return nil, moerr.NewInvalidArgNoCtx("math function", name)
	}
	return fn(s), nil
}
