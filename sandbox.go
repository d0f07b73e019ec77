package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"

	"github.com/marcodamonte/containers/sequence"
)

// runSandbox exercises every Sequence operation on ints and prints the
// results: growth trace, copies, assignment and a failing bounds check.
func runSandbox(w io.Writer, log logrus.FieldLogger, capacity, count int) error {
	if capacity < 0 {
		return fmt.Errorf("capacity must be >= 0, got %d", capacity)
	}

	// ── Growth ────────────────────────────────────────────────────────────────
	vec := sequence.WithCapacity[int](capacity)
	fmt.Fprintf(w, "  start      len=%d cap=%s\n", vec.Len(), humanize.Comma(int64(vec.Cap())))
	for i := 0; i < count; i++ {
		before := vec.Cap()
		vec.Append(i)
		if vec.Cap() != before {
			fmt.Fprintf(w, "  grow       len=%d cap %s → %s\n",
				vec.Len(), humanize.Comma(int64(before)), humanize.Comma(int64(vec.Cap())))
			log.WithFields(logrus.Fields{"len": vec.Len(), "from": before, "to": vec.Cap()}).Debug("sequence grew")
		}
	}
	printSeq(w, "vec", vec)

	// ── Copy and assign ───────────────────────────────────────────────────────
	vec2 := vec.Clone()
	printSeq(w, "vec2=clone", vec2)

	vec3 := sequence.New[int]()
	vec3.Assign(vec)
	printSeq(w, "vec3=assign", vec3)

	vec.Append(count)
	vec2.RemoveLast()
	vec3.Append(100)
	fmt.Fprintln(w)
	printSeq(w, "vec+append", vec)
	printSeq(w, "vec2-last", vec2)
	printSeq(w, "vec3+append", vec3)

	// ── Bounds ────────────────────────────────────────────────────────────────
	fmt.Fprintln(w)
	for _, i := range []int{vec3.Len() - 1, vec3.Len()} {
		v, err := vec3.At(i)
		var oor *sequence.OutOfRangeError
		switch {
		case err == nil:
			fmt.Fprintf(w, "  vec3.At(%d) = %d\n", i, v)
		case errors.As(err, &oor):
			fmt.Fprintf(w, "  vec3.At(%d) → %v\n", i, err)
			log.WithFields(logrus.Fields{"index": oor.Index, "len": oor.Len}).Debug("bounds check rejected index")
		default:
			return err
		}
	}
	return nil
}

func printSeq[T any](w io.Writer, label string, s *sequence.Sequence[T]) {
	fmt.Fprintf(w, "  %-12s len=%-3d cap=%-4s [%s]\n", label, s.Len(), humanize.Comma(int64(s.Cap())), s)
}
