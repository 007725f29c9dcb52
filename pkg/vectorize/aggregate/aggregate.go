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

// Package aggregate folds a sequence down to a single value.
package aggregate

import (
	"github.com/matrixorigin/numseq/pkg/common/moerr"
	"github.com/matrixorigin/numseq/pkg/container/sequence"
	"github.com/matrixorigin/numseq/pkg/container/types"
)

// Sum adds the elements starting from zero; integer sums wrap.
func Sum[T types.Number](s *sequence.Sequence[T]) T {
	var zero T
	return sequence.Fold(s, zero, func(acc, x T) T {
		return acc + x
	})
}

// Prod multiplies the elements starting from one.
func Prod[T types.Number](s *sequence.Sequence[T]) T {
	return sequence.Fold(s, types.One[T](), func(acc, x T) T {
		return acc * x
	})
}

// Max returns the largest element. Among equal maxima the first one wins.
func Max[T types.Number](s *sequence.Sequence[T]) (T, error) {
	return extremum(s, func(x, cur T) bool { return x > cur })
}

// Min returns the smallest element. Among equal minima the first one wins.
func Min[T types.Number](s *sequence.Sequence[T]) (T, error) {
	return extremum(s, func(x, cur T) bool { return x < cur })
}

func extremum[T types.Number](s *sequence.Sequence[T], better func(x, cur T) bool) (T, error) {
	res, err := s.Head()
	if err != nil {
		return res, err
	}
	return sequence.Fold(s, res, func(cur, x T) T {
		if better(x, cur) {
			return x
		}
		return cur
	}), nil
}

// Dot returns the sum of the pairwise products of a and b, the elements of
// b being converted to the element type of a.
func Dot[T, U types.Number](a *sequence.Sequence[T], b *sequence.Sequence[U]) (T, error) {
	var zero T
	prods, err := sequence.ZipWith(a, b, func(x T, y U) T {
		return x * T(y)
	})
	if err != nil {
		return zero, err
	}
	return Sum(prods), nil
}

// SumSels sums the elements at the selected positions.
func SumSels[T types.Number](s *sequence.Sequence[T], sels []int64) (T, error) {
	var zero T
	g, err := s.Gather(sels)
	if err != nil {
		return zero, err
	}
	return Sum(g), nil
}

// MaxSels returns the largest selected element.
func MaxSels[T types.Number](s *sequence.Sequence[T], sels []int64) (T, error) {
	var zero T
	if len(sels) == 0 {
		return zero, moerr.NewEmptyVectorNoCtx()
	}
	g, err := s.Gather(sels)
	if err != nil {
		return zero, err
	}
	return Max(g)
}

// MinSels returns the smallest selected element.
func MinSels[T types.Number](s *sequence.Sequence[T], sels []int64) (T, error) {
	var zero T
	if len(sels) == 0 {
		return zero, moerr.NewEmptyVectorNoCtx()
	}
	g, err := s.Gather(sels)
	if err != nil {
		return zero, err
	}
	return Min(g)
}
