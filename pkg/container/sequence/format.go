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
	"strings"

	"github.com/matrixorigin/numseq/pkg/container/types"
)

// String renders the sequence as "<e0, e1, ...>", or "<>" when empty.
func (s *Sequence[T]) String() string {
	var b strings.Builder
	b.WriteByte('<')
	for i, x := range s.data[:s.length] {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(types.FormatValue(x))
	}
	b.WriteByte('>')
	return b.String()
}

// FromText returns the code points of str, one element per rune.
func FromText(str string) *Sequence[int32] {
	return Of([]rune(str)...)
}

// AsText is the inverse of FromText.
func AsText[T types.Number](s *Sequence[T]) string {
	rs := make([]rune, s.length)
	for i, x := range s.data[:s.length] {
		rs[i] = rune(x)
	}
	return string(rs)
}
