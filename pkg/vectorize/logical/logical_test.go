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

package logical

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/matrixorigin/numseq/pkg/common/moerr"
	"github.com/matrixorigin/numseq/pkg/container/sequence"
	"github.com/matrixorigin/numseq/pkg/vectorize/arith"
	"github.com/matrixorigin/numseq/pkg/vectorize/compare"
)

func TestMaskCombination(t *testing.T) {
	vi := sequence.Of(1, 2, 3, 4, 5)

	m, err := Or(compare.LtScalar(vi, 3), compare.EqScalar(vi, 4))
	require.NoError(t, err)
	r, err := vi.Take(m)
	require.NoError(t, err)
	require.Equal(t, "<1, 2, 4>", r.String())

	m, err = And(compare.LeScalar(vi, 3), compare.NeScalar(vi, 2))
	require.NoError(t, err)
	r, err = vi.Take(m)
	require.NoError(t, err)
	require.Equal(t, "<1, 3>", r.String())
}

func TestNumericOperands(t *testing.T) {
	vb := sequence.Of(2, 0, 3)

	// numbers keep their type and hold 1 or 0
	require.Equal(t, "<1, 0, 1>", AndScalar(vb, 1).String())
	require.Equal(t, "<0, 0, 0>", AndScalar(vb, 0).String())
	require.Equal(t, "<1, 1, 1>", OrScalar(vb, 7.5).String())
	require.Equal(t, "<1, 0, 1>", ScalarAnd(true, vb).String())
	require.Equal(t, "<1, 0, 1>", ScalarOr(0, vb).String())

	m := Truth(AndScalar(vb, 1))
	r, err := vb.Take(m)
	require.NoError(t, err)
	require.Equal(t, "<2, 3>", r.String())

	r2, err := Or(vb, sequence.Of(false, true, false))
	require.NoError(t, err)
	require.Equal(t, "<1, 1, 1>", r2.String())

	_, err = And(vb, sequence.Of(1))
	require.True(t, moerr.IsMoErrCode(err, moerr.ErrSizeNotMatch))
}

func TestBoolOperands(t *testing.T) {
	bools := sequence.Of(true, false)
	require.Equal(t, "<1, 0>", OrScalar(bools, false).String())
	require.Equal(t, "<0, 0>", AndScalar(bools, false).String())
	require.Equal(t, "<1, 1>", ScalarOr(true, bools).String())
	require.Equal(t, "<1, 0>", AndScalar(bools, 0.5).String())
}

func TestNot(t *testing.T) {
	vi := sequence.Of(2, 3, 4, 5)
	odd, err := arith.ModScalar(vi, 2)
	require.NoError(t, err)
	m := Not(compare.GtScalar(odd, 0))
	r, err := vi.Take(m)
	require.NoError(t, err)
	require.Equal(t, "<2, 4>", r.String())

	r, err = vi.Take(Not(m))
	require.NoError(t, err)
	require.Equal(t, "<3, 5>", r.String())
}

func TestTruth(t *testing.T) {
	require.Equal(t, "<0, 1, 1>", Truth(sequence.Of(0.0, -0.5, 2)).String())
	require.Equal(t, "<1, 0, 0>", Truth(arith.AddScalar(sequence.Of(0, -1, -1), 1)).String())
	require.Equal(t, "<>", Truth(sequence.New[int8](0)).String())
}
