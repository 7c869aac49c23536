// Copyright 2026 dynseq Project Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package sequence

import (
	"sort"

	"golang.org/x/exp/constraints"
)

// NotFound is returned by IndexOf and LastIndexOf when no element
// matches.
const NotFound = -1

// IndexOf returns the position of the first element equal to item, or
// NotFound.
func IndexOf[T comparable](s *Sequence[T], item T) int {
	for i, v := range s.data {
		if v == item {
			return i
		}
	}
	return NotFound
}

// LastIndexOf returns the position of the last element equal to item, or
// NotFound.
func LastIndexOf[T comparable](s *Sequence[T], item T) int {
	for i := len(s.data) - 1; i >= 0; i-- {
		if s.data[i] == item {
			return i
		}
	}
	return NotFound
}

// SortFunc sorts the sequence in place using the less comparator, which
// must define a strict weak ordering. The sort is stable: elements that
// compare equal keep their relative order.
func (s *Sequence[T]) SortFunc(less func(a, b T) bool) {
	sort.SliceStable(s.data, func(i, j int) bool {
		return less(s.data[i], s.data[j])
	})
}

// Sort sorts the sequence in place into ascending natural order.
func Sort[T constraints.Ordered](s *Sequence[T]) {
	s.SortFunc(func(a, b T) bool { return a < b })
}
