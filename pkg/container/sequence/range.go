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
	"math"

	"github.com/matrixorigin/numseq/pkg/common/moerr"
	"github.com/matrixorigin/numseq/pkg/container/types"
)

// maxRangeHint bounds the capacity reserved up front by RangeStep. Float
// steps that stop advancing the accumulator can make the estimate
// arbitrarily large.
const maxRangeHint = 1 << 24

// Range returns 0, 1, ..., n-1 for positive n, 0, -1, ..., n+1 for
// negative n and an empty sequence for zero.
func Range[T types.Number](n T) (*Sequence[T], error) {
	var zero T
	one := types.One[T]()
	switch {
	case n > zero:
		return RangeStep(zero, n-one, one)
	case n < zero:
		return RangeStep(zero, n+one, zero-one)
	default:
		return New[T](0), nil
	}
}

// RangeTo returns the inclusive range from a to b, stepping by 1 when
// a < b and by -1 otherwise.
func RangeTo[T types.Number](a, b T) (*Sequence[T], error) {
	var zero T
	one := types.One[T]()
	step := one
	if !(a < b) {
		// wraps to a positive step for unsigned types, which makes a
		// descending unsigned range invalid
		step = zero - one
	}
	return RangeStep(a, b, step)
}

// RangeStep returns a, a+step, a+2*step, ... for as long as the values do
// not pass b. b itself is included only when the stepping lands on it.
// The step must move a toward b; a == b yields the single element a.
func RangeStep[T types.Number](a, b, step T) (*Sequence[T], error) {
	var zero T
	if a != a || b != b || step != step {
		return nil, invalidRange(a, b, step)
	}
	if (a < b && step <= zero) || (a > b && step >= zero) {
		return nil, invalidRange(a, b, step)
	}
	if a == b {
		return Of(a), nil
	}

	s := WithCapacity[T](rangeHint(a, b, step))
	cur := a
	if a < b {
		for cur <= b {
			s.Append(cur)
			next := cur + step
			if next <= cur {
				// the next value is not representable in T
				break
			}
			cur = next
		}
	} else {
		for cur >= b {
			s.Append(cur)
			next := cur + step
			if next >= cur {
				break
			}
			cur = next
		}
	}
	return s, nil
}

func rangeHint[T types.Number](a, b, step T) int {
	h := math.Abs(float64(a)-float64(b)) / math.Abs(float64(step))
	if math.IsNaN(h) || h >= maxRangeHint {
		return maxRangeHint
	}
	return int(h) + 1
}

func invalidRange[T types.Number](a, b, step T) error {
	return moerr.NewInvalidArgNoCtx("range",
		types.FormatValue(a)+", "+types.FormatValue(b)+", "+types.FormatValue(step))
}
