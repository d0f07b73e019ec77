// Package sequence provides Sequence[T], a growable contiguous container that
// owns its backing array and manages capacity explicitly instead of relying on
// the runtime's append growth policy.
//
// Capacity grows as 2*C+1 whenever an Append finds the buffer full, so a
// sequence created with capacity 5 goes 5 → 11 → 23 …
//
// Sequence is not safe for concurrent use. Callers that share one across
// goroutines must serialize Append, RemoveLast, Assign and indexed writes.
package sequence

import (
	"fmt"
	"io"
	"iter"
	"strings"
)

// DefaultCapacity is the capacity used by New.
const DefaultCapacity = 10

// Sequence is an owning, growable array of T.
//
// The zero value is an empty sequence with capacity 0 and is ready to use.
type Sequence[T any] struct {
	buf []T // len(buf) is the capacity
	n   int // live elements, buf[:n]
}

// New returns an empty sequence with DefaultCapacity slots.
func New[T any]() *Sequence[T] {
	return WithCapacity[T](DefaultCapacity)
}

// WithCapacity returns an empty sequence with room for c elements.
// It panics if c is negative, like make does.
func WithCapacity[T any](c int) *Sequence[T] {
	if c < 0 {
		panic(fmt.Sprintf("sequence: negative capacity %d", c))
	}
	return &Sequence[T]{buf: make([]T, c)}
}

// Of returns a sequence holding vals, with capacity len(vals).
func Of[T any](vals ...T) *Sequence[T] {
	s := WithCapacity[T](len(vals))
	s.n = copy(s.buf, vals)
	return s
}

// Clone returns an independent copy with the same length, capacity and live
// values. Mutating the clone never affects s.
func (s *Sequence[T]) Clone() *Sequence[T] {
	out := &Sequence[T]{buf: make([]T, len(s.buf)), n: s.n}
	copy(out.buf, s.buf[:s.n])
	return out
}

// Assign replaces the contents and capacity of s with a copy of other.
// Assigning a sequence to itself is a no-op.
func (s *Sequence[T]) Assign(other *Sequence[T]) {
	if s == other {
		return
	}
	// Build the new buffer first; s is untouched until the swap.
	buf := make([]T, len(other.buf))
	copy(buf, other.buf[:other.n])
	s.buf, s.n = buf, other.n
}

// Append stores v after the last live element, growing the buffer to 2*C+1
// slots when it is full.
func (s *Sequence[T]) Append(v T) {
	if s.n == len(s.buf) {
		s.grow(2*len(s.buf) + 1)
	}
	s.buf[s.n] = v
	s.n++
}

// RemoveLast drops the last live element. It does nothing on an empty
// sequence and never releases capacity.
func (s *Sequence[T]) RemoveLast() {
	if s.n == 0 {
		return
	}
	s.n--
	var zero T
	s.buf[s.n] = zero // don't pin whatever the slot referenced
}

// Reserve sets the capacity to c, or to Len() if c is smaller, copying the
// live elements into a new buffer.
func (s *Sequence[T]) Reserve(c int) {
	if c < s.n {
		c = s.n
	}
	if c == len(s.buf) {
		return
	}
	s.grow(c)
}

func (s *Sequence[T]) grow(c int) {
	buf := make([]T, c)
	copy(buf, s.buf[:s.n])
	s.buf = buf
}

// ── Checked access ────────────────────────────────────────────────────────────

// At returns the element at i, or an *OutOfRangeError if i is not in [0, Len()).
func (s *Sequence[T]) At(i int) (T, error) {
	if err := s.check(i); err != nil {
		var zero T
		return zero, err
	}
	return s.buf[i], nil
}

// Ref returns a pointer to the element at i for in-place mutation.
// The pointer is invalidated by the next growth of s.
func (s *Sequence[T]) Ref(i int) (*T, error) {
	if err := s.check(i); err != nil {
		return nil, err
	}
	return &s.buf[i], nil
}

// Set overwrites the element at i.
func (s *Sequence[T]) Set(i int, v T) error {
	if err := s.check(i); err != nil {
		return err
	}
	s.buf[i] = v
	return nil
}

func (s *Sequence[T]) check(i int) error {
	if i < 0 || i >= s.n {
		return &OutOfRangeError{Index: i, Len: s.n}
	}
	return nil
}

// ── Unchecked access ──────────────────────────────────────────────────────────
// The caller must guarantee 0 <= i < Len(). Out-of-range indexes below Cap()
// read stale slots; indexes at or beyond Cap() panic.

// Index returns the element at i without bounds checking against Len().
func (s *Sequence[T]) Index(i int) T { return s.buf[i] }

// IndexRef returns a pointer to the element at i without bounds checking
// against Len().
func (s *Sequence[T]) IndexRef(i int) *T { return &s.buf[i] }

// ── Introspection ─────────────────────────────────────────────────────────────

func (s *Sequence[T]) Len() int      { return s.n }
func (s *Sequence[T]) Cap() int      { return len(s.buf) }
func (s *Sequence[T]) IsEmpty() bool { return s.n == 0 }

// Values returns a copy of the live elements.
func (s *Sequence[T]) Values() []T {
	out := make([]T, s.n)
	copy(out, s.buf[:s.n])
	return out
}

// All iterates over the live elements in order.
func (s *Sequence[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < s.n; i++ {
			if !yield(i, s.buf[i]) {
				return
			}
		}
	}
}

// String renders the live elements separated by single spaces.
func (s *Sequence[T]) String() string {
	var b strings.Builder
	for i := 0; i < s.n; i++ {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprint(&b, s.buf[i])
	}
	return b.String()
}

// Print writes String() followed by a newline to w.
func (s *Sequence[T]) Print(w io.Writer) error {
	_, err := fmt.Fprintln(w, s.String())
	return err
}
