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

import "github.com/juju/errors"

// ForEach invokes visitor once per element, in order. The visitor
// receives a pointer so it may modify elements in place.
func (s *Sequence[T]) ForEach(visitor func(*T)) {
	for i := range s.data {
		visitor(&s.data[i])
	}
}

// Map returns a new sequence of the same length where position i holds
// transform applied to element i. The source is unmodified and the
// result inherits its mode. Map is a package-level function because Go
// methods cannot introduce the result type parameter.
func Map[T, R any](s *Sequence[T], transform func(T) R) *Sequence[R] {
	data := make([]R, len(s.data))
	for i, v := range s.data {
		data[i] = transform(v)
	}
	return &Sequence[R]{data: data, mode: s.mode}
}

// Filter returns a new sequence containing, in original order, exactly
// the elements for which predicate returns true.
func (s *Sequence[T]) Filter(predicate func(T) bool) *Sequence[T] {
	result := &Sequence[T]{mode: s.mode}
	for _, v := range s.data {
		if predicate(v) {
			result.data = append(result.data, v)
		}
	}
	return result
}

// Every reports whether predicate holds for all elements. It is
// vacuously true on an empty sequence and stops at the first failure.
func (s *Sequence[T]) Every(predicate func(T) bool) bool {
	for _, v := range s.data {
		if !predicate(v) {
			return false
		}
	}
	return true
}

// Some reports whether predicate holds for at least one element. It is
// false on an empty sequence and stops at the first success.
func (s *Sequence[T]) Some(predicate func(T) bool) bool {
	for _, v := range s.data {
		if predicate(v) {
			return true
		}
	}
	return false
}

// Reduce folds the sequence left to right with combine, seeding the
// accumulator with the first element and folding from index 1. It
// returns ErrEmptySequence on a zero-length sequence.
func (s *Sequence[T]) Reduce(combine func(acc, item T) T) (T, error) {
	if len(s.data) == 0 {
		var zero T
		return zero, errors.Annotatef(ErrEmptySequence, "reduce without initial value")
	}
	return s.ReduceFrom(combine, s.data[0], 1)
}

// ReduceFrom folds combine left to right over [startFrom, Len()) with an
// explicit initial accumulator. A startFrom equal to Len() returns the
// initial value unchanged; a negative startFrom or one past Len() is an
// error.
func (s *Sequence[T]) ReduceFrom(combine func(acc, item T) T, initial T, startFrom int) (T, error) {
	if startFrom < 0 || startFrom > len(s.data) {
		var zero T
		return zero, errors.Annotatef(ErrOutOfBounds, "start index %d, length %d", startFrom, len(s.data))
	}
	acc := initial
	for _, v := range s.data[startFrom:] {
		acc = combine(acc, v)
	}
	return acc, nil
}
