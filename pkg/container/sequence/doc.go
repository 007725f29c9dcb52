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

/*
Package sequence implements Sequence, a resizable numeric container with
value semantics and explicit capacity management.

A Sequence keeps its allocated capacity separate from its logical length.
Realloc, Resize, Clear, Append and Pop move the two independently, and
slots between the length and the capacity always hold the element type's
zero value. Indexes may be negative: -1 addresses the last element.

Elementwise arithmetic, comparison and math live in the vectorize packages
and are built on the combinators Map, ZipWith, BroadcastLeft and
BroadcastRight defined here. A Sequence[bool] serves as a mask for Take and
ApplyTo.

Every operation either succeeds completely or returns an error before
anything observable changed.

A Sequence is not safe for concurrent use. Callers that share one across
goroutines must synchronize access themselves. Distinct sequences never
share storage: Clone copies, Move transfers and empties the source.
*/
package sequence
