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
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
)

// newCounting returns a sequence of n elements holding 0..n-1.
func newCounting(n int) *Sequence[int] {
	s := New[int](n)
	count := 0
	s.ForEach(func(item *int) {
		*item = count
		count++
	})
	return s
}

func TestNew(t *testing.T) {
	s := New[int](10)
	assert.Equal(t, 10, s.Len())
	assert.GreaterOrEqual(t, s.Cap(), s.Len())
	assert.True(t, s.Every(func(v int) bool { return v == 0 }))
	assert.Equal(t, AutoExtend, s.Mode())

	empty := New[string](0)
	assert.Zero(t, empty.Len())
	negative := New[string](-3)
	assert.Zero(t, negative.Len())
}

func TestFrom(t *testing.T) {
	values := lo.Range(5)
	s := From(values)
	assert.Equal(t, values, s.ToSlice())
	// the sequence must not alias the argument
	values[0] = 42
	v, err := s.Get(0)
	assert.NoError(t, err)
	assert.Equal(t, 0, v)
}

func TestGetSetStrict(t *testing.T) {
	s := NewStrict[int](3)
	assert.Equal(t, Strict, s.Mode())
	assert.NoError(t, s.Set(2, 7))
	v, err := s.Get(2)
	assert.NoError(t, err)
	assert.Equal(t, 7, v)

	assert.ErrorIs(t, s.Set(3, 1), ErrOutOfBounds)
	_, err = s.Get(3)
	assert.ErrorIs(t, err, ErrOutOfBounds)
	_, err = s.Get(-1)
	assert.ErrorIs(t, err, ErrOutOfBounds)
	assert.ErrorIs(t, s.Set(-1, 1), ErrOutOfBounds)
	assert.Equal(t, 3, s.Len())
}

func TestSetAutoExtend(t *testing.T) {
	s := New[int](2)
	assert.NoError(t, s.Set(9, 1))
	assert.Equal(t, 10, s.Len())
	for i := 0; i < 9; i++ {
		v, err := s.Get(i)
		assert.NoError(t, err)
		assert.Zero(t, v)
	}
	v, err := s.Get(9)
	assert.NoError(t, err)
	assert.Equal(t, 1, v)

	// negative indices stay invalid in AutoExtend mode
	assert.ErrorIs(t, s.Set(-1, 1), ErrOutOfBounds)
}

func TestGetAutoExtend(t *testing.T) {
	s := New[int](0)
	v, err := s.Get(4)
	assert.NoError(t, err)
	assert.Zero(t, v)
	assert.Equal(t, 5, s.Len())
}

func TestPushPop(t *testing.T) {
	s := newCounting(10)
	v, err := s.Pop()
	assert.NoError(t, err)
	assert.Equal(t, 9, v)
	assert.Equal(t, 9, s.Len())

	s.Push(10)
	assert.Equal(t, 10, s.Len())
	v, err = s.Get(s.Len() - 1)
	assert.NoError(t, err)
	assert.Equal(t, 10, v)

	// push then pop is the identity
	v, err = s.Pop()
	assert.NoError(t, err)
	assert.Equal(t, 10, v)
	assert.Equal(t, 9, s.Len())

	_, err = New[int](0).Pop()
	assert.ErrorIs(t, err, ErrEmptySequence)
}

func TestShiftUnshift(t *testing.T) {
	s := newCounting(10)
	v, err := s.Shift()
	assert.NoError(t, err)
	assert.Equal(t, 0, v)
	assert.Equal(t, 9, s.Len())

	s.Unshift(10)
	assert.Equal(t, 10, s.Len())
	v, err = s.Get(0)
	assert.NoError(t, err)
	assert.Equal(t, 10, v)
	v, err = s.Get(1)
	assert.NoError(t, err)
	assert.Equal(t, 1, v)

	// unshift then shift is the identity
	v, err = s.Shift()
	assert.NoError(t, err)
	assert.Equal(t, 10, v)
	assert.Equal(t, 9, s.Len())

	_, err = New[int](0).Shift()
	assert.ErrorIs(t, err, ErrEmptySequence)
}

func TestReverse(t *testing.T) {
	s := From([]int{1, 2, 3, 4})
	s.Reverse()
	assert.Equal(t, []int{4, 3, 2, 1}, s.ToSlice())

	odd := From([]int{1, 2, 3})
	odd.Reverse()
	assert.Equal(t, []int{3, 2, 1}, odd.ToSlice())

	single := From([]int{5})
	single.Reverse()
	assert.Equal(t, []int{5}, single.ToSlice())

	empty := New[int](0)
	empty.Reverse()
	assert.Zero(t, empty.Len())
}

func TestSlice(t *testing.T) {
	s := newCounting(10)

	t1 := s.Slice(5)
	assert.Equal(t, 5, t1.Len())
	assert.True(t, t1.Every(func(v int) bool { return v > 4 }))

	t2 := s.Slice(-3)
	assert.Equal(t, 3, t2.Len())
	assert.True(t, t2.Every(func(v int) bool { return v > 6 }))

	t3 := s.Slice(1, -1)
	assert.Equal(t, 8, t3.Len())
	assert.True(t, t3.Every(func(v int) bool { return v > 0 && v < 9 }))

	t4 := s.Slice(-7, 7)
	assert.Equal(t, 4, t4.Len())
	assert.True(t, t4.Every(func(v int) bool { return v > 2 && v < 7 }))

	// begin after end
	assert.Zero(t, s.Slice(6, 5).Len())
	assert.Zero(t, s.Slice(-1, 1).Len())

	// out-of-range offsets
	assert.Zero(t, s.Slice(11).Len())
	assert.Zero(t, s.Slice(-11).Len())
	assert.Zero(t, s.Slice(0, 11).Len())

	// the source is never mutated and the result never aliases it
	assert.Equal(t, lo.Range(10), s.ToSlice())
	assert.NoError(t, t1.Set(0, 99))
	v, err := s.Get(5)
	assert.NoError(t, err)
	assert.Equal(t, 5, v)
}

func TestSliceMode(t *testing.T) {
	s := NewStrict[int](4)
	assert.Equal(t, Strict, s.Slice(1).Mode())
	assert.Equal(t, Strict, s.Slice(3, 1).Mode())
}

func TestIndexOf(t *testing.T) {
	s := From([]string{"a", "b", "c", "b"})
	assert.Equal(t, 1, IndexOf(s, "b"))
	assert.Equal(t, 3, LastIndexOf(s, "b"))
	assert.Equal(t, NotFound, IndexOf(s, "z"))
	assert.Equal(t, NotFound, LastIndexOf(s, "z"))
}

func TestSort(t *testing.T) {
	s := From([]int{3, 1, 4, 1, 5, 9, 2, 6})
	Sort(s)
	assert.Equal(t, []int{1, 1, 2, 3, 4, 5, 6, 9}, s.ToSlice())
}

func TestSortFuncStable(t *testing.T) {
	type pair struct {
		key   int
		order int
	}
	s := From([]pair{{2, 0}, {1, 1}, {2, 2}, {1, 3}, {2, 4}})
	s.SortFunc(func(a, b pair) bool { return a.key < b.key })
	assert.Equal(t, []pair{{1, 1}, {1, 3}, {2, 0}, {2, 2}, {2, 4}}, s.ToSlice())
}

func TestString(t *testing.T) {
	assert.Equal(t, "[1, 2, 3]", From([]int{1, 2, 3}).String())
	assert.Equal(t, "[]", New[int](0).String())
}

func BenchmarkPush(b *testing.B) {
	s := New[int](0)
	for i := 0; i < b.N; i++ {
		s.Push(i)
	}
}

func BenchmarkSlice(b *testing.B) {
	s := newCounting(1024)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.Slice(1, -1)
	}
}
