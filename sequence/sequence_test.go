package sequence_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcodamonte/containers/sequence"
)

// ── Construction ─────────────────────────────────────────────────────────────

func TestNewDefaults(t *testing.T) {
	t.Parallel()

	s := sequence.New[int]()
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, sequence.DefaultCapacity, s.Cap())
	assert.True(t, s.IsEmpty())
}

func TestWithCapacityZero(t *testing.T) {
	t.Parallel()

	s := sequence.WithCapacity[string](0)
	assert.Equal(t, 0, s.Cap())

	s.Append("a")
	assert.Equal(t, 1, s.Cap())
	s.Append("b")
	assert.Equal(t, 3, s.Cap())
	s.Append("c")
	s.Append("d")
	assert.Equal(t, 7, s.Cap())
}

func TestWithCapacityNegativePanics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { sequence.WithCapacity[int](-1) })
}

func TestZeroValueUsable(t *testing.T) {
	t.Parallel()

	var s sequence.Sequence[int]
	s.Append(42)
	v, err := s.At(0)
	require.NoError(t, err)
	assert.Equal(t, 42, v)
	assert.Equal(t, 1, s.Cap())
}

// ── Append / RemoveLast ──────────────────────────────────────────────────────

func TestAppendGrowsSizeAndStoresValue(t *testing.T) {
	t.Parallel()

	s := sequence.WithCapacity[int](2)
	for i := 0; i < 50; i++ {
		old := s.Len()
		s.Append(i * 3)
		require.Equal(t, old+1, s.Len())
		v, err := s.At(old)
		require.NoError(t, err)
		require.Equal(t, i*3, v)
	}
}

func TestCapacityGrowthLaw(t *testing.T) {
	t.Parallel()

	for _, c := range []int{0, 1, 4, 10} {
		s := sequence.WithCapacity[int](c)
		for i := 0; i < c; i++ {
			s.Append(i)
		}
		require.Equal(t, c, s.Cap(), "not yet full")

		s.Append(-1)
		assert.Equal(t, 2*c+1, s.Cap(), "capacity after growth from %d", c)
		assert.Equal(t, append(seq(c), -1), s.Values(), "order preserved across growth")
	}
}

// TestScenarioCapacityFive mirrors the classic sandbox: capacity 5, push 0..9.
func TestScenarioCapacityFive(t *testing.T) {
	t.Parallel()

	s := sequence.WithCapacity[int](5)
	caps := []int{s.Cap()}
	for i := 0; i < 10; i++ {
		s.Append(i)
		if s.Cap() != caps[len(caps)-1] {
			caps = append(caps, s.Cap())
		}
	}

	assert.Equal(t, 10, s.Len())
	assert.Equal(t, []int{5, 11}, caps)

	v, err := s.At(9)
	require.NoError(t, err)
	assert.Equal(t, 9, v)

	_, err = s.At(10)
	assert.ErrorIs(t, err, sequence.ErrOutOfRange)
}

func TestRemoveLast(t *testing.T) {
	t.Parallel()

	s := sequence.Of(1, 2, 3)
	s.RemoveLast()
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, 3, s.Cap(), "capacity never shrinks")
	assert.Equal(t, []int{1, 2}, s.Values())

	s.RemoveLast()
	s.RemoveLast()
	assert.Equal(t, 0, s.Len())

	s.RemoveLast() // empty: no-op
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, 3, s.Cap())
}

func TestRemoveLastThenAppendReusesSlot(t *testing.T) {
	t.Parallel()

	s := sequence.Of("a", "b")
	s.RemoveLast()
	s.Append("c")
	assert.Equal(t, []string{"a", "c"}, s.Values())
	assert.Equal(t, 2, s.Cap())
}

// ── Copy semantics ───────────────────────────────────────────────────────────

func TestCloneIsIndependent(t *testing.T) {
	t.Parallel()

	s := sequence.WithCapacity[int](4)
	for i := 0; i < 6; i++ {
		s.Append(i)
	}

	c := s.Clone()
	require.Equal(t, s.Len(), c.Len())
	require.Equal(t, s.Cap(), c.Cap())
	for i := 0; i < s.Len(); i++ {
		assert.Equal(t, s.Index(i), c.Index(i))
	}

	require.NoError(t, c.Set(0, 100))
	c.Append(7)
	c.RemoveLast()
	c.RemoveLast()

	assert.Equal(t, seq(6), s.Values(), "original untouched")
	assert.Equal(t, []int{100, 1, 2, 3, 4}, c.Values())
}

func TestCloneEmptyThenAppend(t *testing.T) {
	t.Parallel()

	s := sequence.New[int]()
	c := s.Clone()
	c.Append(1)

	assert.Equal(t, 0, s.Len())
	assert.Equal(t, 1, c.Len())
}

func TestAssign(t *testing.T) {
	t.Parallel()

	src := sequence.WithCapacity[int](3)
	src.Append(1)
	src.Append(2)

	dst := sequence.Of(9, 9, 9, 9, 9)
	dst.Assign(src)
	assert.Equal(t, []int{1, 2}, dst.Values())
	assert.Equal(t, 3, dst.Cap())

	dst.Append(3)
	dst.Append(4)
	assert.Equal(t, []int{1, 2}, src.Values(), "assign must not alias the source")
	assert.Equal(t, 3, src.Cap())
}

func TestAssignSelf(t *testing.T) {
	t.Parallel()

	s := sequence.Of("x", "y")
	s.Assign(s)
	assert.Equal(t, []string{"x", "y"}, s.Values())
	assert.Equal(t, 2, s.Cap())
}

func TestReserve(t *testing.T) {
	t.Parallel()

	s := sequence.Of(1, 2, 3)
	s.Reserve(8)
	assert.Equal(t, 8, s.Cap())
	assert.Equal(t, []int{1, 2, 3}, s.Values())

	s.Reserve(1) // clamps to Len
	assert.Equal(t, 3, s.Cap())
	assert.Equal(t, []int{1, 2, 3}, s.Values())
}

// ── Access ───────────────────────────────────────────────────────────────────

func TestBoundsLaw(t *testing.T) {
	t.Parallel()

	s := sequence.Of(10, 20, 30)
	for i := 0; i < s.Len(); i++ {
		_, err := s.At(i)
		assert.NoError(t, err, "index %d", i)
	}
	for _, i := range []int{-1, 3, 4, 100} {
		_, err := s.At(i)
		assert.ErrorIs(t, err, sequence.ErrOutOfRange, "index %d", i)

		_, err = s.Ref(i)
		assert.ErrorIs(t, err, sequence.ErrOutOfRange, "Ref index %d", i)

		assert.ErrorIs(t, s.Set(i, 0), sequence.ErrOutOfRange, "Set index %d", i)
	}
}

func TestOutOfRangeErrorFields(t *testing.T) {
	t.Parallel()

	s := sequence.Of('a', 'b')
	_, err := s.At(5)

	var oor *sequence.OutOfRangeError
	require.True(t, errors.As(err, &oor))
	assert.Equal(t, 5, oor.Index)
	assert.Equal(t, 2, oor.Len)
	assert.EqualError(t, err, "sequence: index 5 out of range [0, 2)")
}

func TestStaleSlotNotObservable(t *testing.T) {
	t.Parallel()

	s := sequence.Of(1, 2, 3)
	s.RemoveLast()
	_, err := s.At(2)
	assert.ErrorIs(t, err, sequence.ErrOutOfRange)
}

func TestRefMutatesInPlace(t *testing.T) {
	t.Parallel()

	type point struct{ X, Y int }
	s := sequence.Of(point{1, 2}, point{3, 4})

	p, err := s.Ref(1)
	require.NoError(t, err)
	p.Y = 40

	*s.IndexRef(0) = point{0, 0}

	assert.Equal(t, []point{{0, 0}, {3, 40}}, s.Values())
}

func TestIndexUnchecked(t *testing.T) {
	t.Parallel()

	s := sequence.Of("a", "b")
	assert.Equal(t, "b", s.Index(1))
	assert.Panics(t, func() { _ = s.Index(2) }, "beyond capacity panics")
}

func TestValuesIsACopy(t *testing.T) {
	t.Parallel()

	s := sequence.Of(1, 2)
	vals := s.Values()
	vals[0] = 99
	assert.Equal(t, 1, s.Index(0))
}

func TestAllStopsEarly(t *testing.T) {
	t.Parallel()

	s := sequence.Of(5, 6, 7, 8)
	var seen []int
	for i, v := range s.All() {
		if i == 2 {
			break
		}
		seen = append(seen, v)
	}
	assert.Equal(t, []int{5, 6}, seen)
}

// ── Rendering ────────────────────────────────────────────────────────────────

func TestStringAndPrint(t *testing.T) {
	t.Parallel()

	s := sequence.Of(0, 1, 2)
	assert.Equal(t, "0 1 2", s.String())

	var buf bytes.Buffer
	require.NoError(t, s.Print(&buf))
	assert.Equal(t, "0 1 2\n", buf.String())

	buf.Reset()
	require.NoError(t, sequence.New[string]().Print(&buf))
	assert.Equal(t, "\n", buf.String())
}

func seq(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}
