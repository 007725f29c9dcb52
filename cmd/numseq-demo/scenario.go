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

package main

import (
	"github.com/RoaringBitmap/roaring"

	"github.com/matrixorigin/numseq/pkg/common/moerr"
	"github.com/matrixorigin/numseq/pkg/container/mask"
	"github.com/matrixorigin/numseq/pkg/container/sequence"
	"github.com/matrixorigin/numseq/pkg/container/types"
	"github.com/matrixorigin/numseq/pkg/vectorize/aggregate"
	"github.com/matrixorigin/numseq/pkg/vectorize/arith"
	"github.com/matrixorigin/numseq/pkg/vectorize/compare"
	"github.com/matrixorigin/numseq/pkg/vectorize/logical"
	"github.com/matrixorigin/numseq/pkg/vectorize/mathfn"
)

type scenario struct {
	name string
	run  func() (string, error)
}

// catalogue lists every scenario in the order results are printed.
var catalogue = []scenario{
	{"realloc", reallocScenario},
	{"resize", resizeScenario},
	{"take", takeScenario},
	{"range-step", rangeStepScenario},
	{"head-fill", headFillScenario},
	{"pe1", pe1Scenario},
	{"pe1-bitmap", pe1BitmapScenario},
	{"pe2", pe2Scenario},
	{"pe6", pe6Scenario},
	{"pow", powScenario},
	{"bool-or", boolOrScenario},
	{"matrix", matrixScenario},
	{"text", textScenario},
}

func lookupScenarios(names []string) ([]scenario, error) {
	if len(names) == 0 {
		return catalogue, nil
	}
	want := make(map[string]struct{}, len(names))
	for _, name := range names {
		want[name] = struct{}{}
	}
	picked := make([]scenario, 0, len(names))
	for _, sc := range catalogue {
		if _, ok := want[sc.name]; ok {
			picked = append(picked, sc)
			delete(want, sc.name)
		}
	}
	for _, name := range names {
		if _, ok := want[name]; ok {
			return nil, moerr.NewInvalidInputNoCtx("unknown scenario %s", name)
		}
	}
	return picked, nil
}

func reallocScenario() (string, error) {
	s := sequence.Of(1, 2, 3)
	out := s.String()
	if err := s.Realloc(2); err != nil {
		return "", err
	}
	out += " " + s.String()
	if err := s.Realloc(3); err != nil {
		return "", err
	}
	return out + " " + s.String(), nil
}

func resizeScenario() (string, error) {
	s := sequence.Of(4, 4)
	if err := s.Resize(3); err != nil {
		return "", err
	}
	out := s.String()
	if err := s.Resize(2); err != nil {
		return "", err
	}
	return out + " " + s.String(), nil
}

func takeScenario() (string, error) {
	s := sequence.Of(1, 2, 3, 4, 5)
	r, err := s.Take(compare.GtScalar(s, 3))
	if err != nil {
		return "", err
	}
	return r.String(), nil
}

func rangeStepScenario() (string, error) {
	r, err := sequence.RangeStep(1, -9, -10)
	if err != nil {
		return "", err
	}
	return r.String(), nil
}

func headFillScenario() (string, error) {
	r, err := sequence.Of[float32](1.2, 3.3, 4.5).HeadFill(4, 1.0)
	if err != nil {
		return "", err
	}
	return r.String(), nil
}

func pe1Scenario() (string, error) {
	r, err := sequence.Range(1000)
	if err != nil {
		return "", err
	}
	by3, err := arith.ModScalar(r, 3)
	if err != nil {
		return "", err
	}
	by5, err := arith.ModScalar(r, 5)
	if err != nil {
		return "", err
	}
	m, err := logical.Or(compare.EqScalar(by3, 0), compare.EqScalar(by5, 0))
	if err != nil {
		return "", err
	}
	picked, err := r.Take(m)
	if err != nil {
		return "", err
	}
	return types.FormatValue(aggregate.Sum(picked)), nil
}

// pe1BitmapScenario answers pe1 by collecting the multiples of 3 and of 5
// as two bitmaps and taking their union.
func pe1BitmapScenario() (string, error) {
	r, err := sequence.Range(1000)
	if err != nil {
		return "", err
	}
	bm := roaring.New()
	for _, k := range []int{3, 5} {
		rem, err := arith.ModScalar(r, k)
		if err != nil {
			return "", err
		}
		bm.Or(mask.ToBitmap(compare.EqScalar(rem, 0)))
	}
	picked, err := mask.TakeBitmap(r, bm)
	if err != nil {
		return "", err
	}
	return types.FormatValue(aggregate.Sum(picked)), nil
}

// pe2 sums the even Fibonacci numbers below four million.
func pe2Scenario() (string, error) {
	fib := sequence.Of(0, 1)
	for fib.MustAt(-1) < 4000000 {
		fib.Append(fib.MustAt(-1) + fib.MustAt(-2))
	}
	if err := fib.Pop(); err != nil {
		return "", err
	}
	odd, err := arith.ModScalar(fib, 2)
	if err != nil {
		return "", err
	}
	evens, err := fib.Take(compare.EqScalar(odd, 0))
	if err != nil {
		return "", err
	}
	return types.FormatValue(aggregate.Sum(evens)), nil
}

func pe6Scenario() (string, error) {
	r, err := sequence.RangeStep(1, 100, 1)
	if err != nil {
		return "", err
	}
	sum := aggregate.Sum(r)
	return types.FormatValue(sum*sum - aggregate.Sum(mathfn.PowScalar(r, 2))), nil
}

func powScenario() (string, error) {
	r, err := sequence.Range(5)
	if err != nil {
		return "", err
	}
	r4, err := sequence.Range(4)
	if err != nil {
		return "", err
	}
	both, err := mathfn.Pow(r4, r4)
	if err != nil {
		return "", err
	}
	return mathfn.PowScalar(r, 2).String() + " " + mathfn.ScalarPow(2, r).String() + " " + both.String(), nil
}

func boolOrScenario() (string, error) {
	return logical.OrScalar(sequence.Of(true, false), false).String(), nil
}

func matrixScenario() (string, error) {
	mat := sequence.Of(sequence.Of(1, 2, 3), sequence.Of(4, 5, 6))
	sq, err := sequence.TryZipWith(mat, mat, arith.Mul[int, int])
	if err != nil {
		return "", err
	}
	shifted, err := sequence.TryZipWith(mat, sequence.Of(1, 2), func(row *sequence.Sequence[int], x int) (*sequence.Sequence[int], error) {
		return arith.AddScalar(row, x), nil
	})
	if err != nil {
		return "", err
	}
	return sq.String() + " " + shifted.String(), nil
}

func textScenario() (string, error) {
	s := sequence.FromText("hello")
	s.Reverse()
	return sequence.AsText(s), nil
}
