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

// Package sequence implements a generic dynamic sequence container with
// JavaScript-array semantics: out-of-range assignment grows the sequence,
// slicing accepts negative offsets, and traversal helpers follow the
// forEach/map/filter/every/some/reduce family.
//
// A Sequence is not safe for concurrent mutation; callers must serialize
// access externally.
package sequence

import (
	"fmt"
	"strings"

	"github.com/juju/errors"
)

// Mode selects the indexing policy of a sequence. It is fixed at
// construction time.
type Mode int

const (
	// AutoExtend grows the sequence on out-of-range access, filling new
	// slots with the zero value. This is the default and matches
	// JavaScript array behavior.
	AutoExtend Mode = iota
	// Strict rejects out-of-range access with ErrOutOfBounds.
	Strict
)

// Sequence is an ordered, contiguous container of elements of type T.
// The zero value is an empty sequence in AutoExtend mode.
type Sequence[T any] struct {
	data []T
	mode Mode
}

// New creates a sequence of the given length in AutoExtend mode. All
// slots hold the zero value of T. Negative lengths are treated as zero.
func New[T any](length int) *Sequence[T] {
	if length < 0 {
		length = 0
	}
	return &Sequence[T]{data: make([]T, length)}
}

// NewStrict creates a sequence of the given length in Strict mode.
func NewStrict[T any](length int) *Sequence[T] {
	s := New[T](length)
	s.mode = Strict
	return s
}

// From creates a sequence in AutoExtend mode holding a copy of values.
// The sequence never aliases the argument slice.
func From[T any](values []T) *Sequence[T] {
	data := make([]T, len(values))
	copy(data, values)
	return &Sequence[T]{data: data}
}

// Len returns the logical length of the sequence.
func (s *Sequence[T]) Len() int {
	return len(s.data)
}

// Cap returns the allocated capacity of the backing buffer.
func (s *Sequence[T]) Cap() int {
	return cap(s.data)
}

// Mode returns the indexing policy the sequence was constructed with.
func (s *Sequence[T]) Mode() Mode {
	return s.mode
}

// extend grows the logical length to n, zero-filling the new slots.
func (s *Sequence[T]) extend(n int) {
	if n <= len(s.data) {
		return
	}
	s.data = append(s.data, make([]T, n-len(s.data))...)
}

// Get returns the element at index i. A negative index is an error in
// both modes. In Strict mode i must be less than Len. In AutoExtend mode
// an index at or past the end grows the sequence to i+1 and returns the
// zero value, like a subscript read past the end of a JavaScript array.
func (s *Sequence[T]) Get(i int) (T, error) {
	var zero T
	if i < 0 {
		return zero, errors.Annotatef(ErrOutOfBounds, "index %d, length %d", i, len(s.data))
	}
	if i >= len(s.data) {
		if s.mode == Strict {
			return zero, errors.Annotatef(ErrOutOfBounds, "index %d, length %d", i, len(s.data))
		}
		s.extend(i + 1)
	}
	return s.data[i], nil
}

// Set stores value at index i. A negative index is an error in both
// modes. In Strict mode i must be less than Len. In AutoExtend mode an
// index at or past the end grows the sequence to i+1 first, zero-filling
// the gap.
func (s *Sequence[T]) Set(i int, value T) error {
	if i < 0 {
		return errors.Annotatef(ErrOutOfBounds, "index %d, length %d", i, len(s.data))
	}
	if i >= len(s.data) {
		if s.mode == Strict {
			return errors.Annotatef(ErrOutOfBounds, "index %d, length %d", i, len(s.data))
		}
		s.extend(i + 1)
	}
	s.data[i] = value
	return nil
}

// Push appends value at the back.
func (s *Sequence[T]) Push(value T) {
	s.data = append(s.data, value)
}

// Pop removes and returns the last element. It returns ErrEmptySequence
// on a zero-length sequence.
func (s *Sequence[T]) Pop() (T, error) {
	var zero T
	if len(s.data) == 0 {
		return zero, errors.Annotatef(ErrEmptySequence, "pop")
	}
	last := s.data[len(s.data)-1]
	s.data[len(s.data)-1] = zero
	s.data = s.data[:len(s.data)-1]
	return last, nil
}

// Unshift inserts value at the front, shifting existing elements right.
func (s *Sequence[T]) Unshift(value T) {
	var zero T
	s.data = append(s.data, zero)
	copy(s.data[1:], s.data)
	s.data[0] = value
}

// Shift removes and returns the first element, shifting the remainder
// left. It returns ErrEmptySequence on a zero-length sequence.
func (s *Sequence[T]) Shift() (T, error) {
	var zero T
	if len(s.data) == 0 {
		return zero, errors.Annotatef(ErrEmptySequence, "shift")
	}
	first := s.data[0]
	copy(s.data, s.data[1:])
	s.data[len(s.data)-1] = zero
	s.data = s.data[:len(s.data)-1]
	return first, nil
}

// Reverse reverses the element order in place without allocating.
func (s *Sequence[T]) Reverse() {
	for i, j := 0, len(s.data)-1; i < j; i, j = i+1, j-1 {
		s.data[i], s.data[j] = s.data[j], s.data[i]
	}
}

// Slice returns a new sequence holding the half-open range [begin, end).
// Both offsets are signed: a negative offset k denotes position Len()+k.
// If end is omitted the range extends through the last element. An
// explicit offset outside [-Len(), Len()] yields an empty sequence, as
// does a normalized range with end at or before begin. The result owns
// its storage and inherits the source mode.
func (s *Sequence[T]) Slice(begin int, end ...int) *Sequence[T] {
	length := len(s.data)
	stop := length
	if len(end) > 0 {
		stop = end[0]
	}
	if begin > length || begin < -length || stop > length || stop < -length {
		return &Sequence[T]{mode: s.mode}
	}
	if begin < 0 {
		begin += length
	}
	if stop < 0 {
		stop += length
	}
	if stop <= begin {
		return &Sequence[T]{mode: s.mode}
	}
	data := make([]T, stop-begin)
	copy(data, s.data[begin:stop])
	return &Sequence[T]{data: data, mode: s.mode}
}

// ToSlice returns an independent copy of the contents.
func (s *Sequence[T]) ToSlice() []T {
	out := make([]T, len(s.data))
	copy(out, s.data)
	return out
}

// String renders the sequence like a JavaScript array literal.
func (s *Sequence[T]) String() string {
	var builder strings.Builder
	builder.WriteByte('[')
	for i, v := range s.data {
		if i > 0 {
			builder.WriteString(", ")
		}
		fmt.Fprintf(&builder, "%v", v)
	}
	builder.WriteByte(']')
	return builder.String()
}
