// Package matchmaker pairs a name with applicants that share its initials.
//
// Choosing one match among several is delegated to a Picker so that callers
// decide between reproducible and random selection.
package matchmaker

import (
	"bufio"
	"io"
	"math/rand"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"

	"github.com/marcodamonte/containers/sequence"
)

// NoMatch is returned by Match when there are no candidates.
const NoMatch = "NO MATCHES FOUND."

// LoadApplicants reads one name per line. Blank lines are skipped and
// duplicates keep their first position.
func LoadApplicants(r io.Reader) (*sequence.Sequence[string], error) {
	out := sequence.New[string]()
	seen := make(map[string]struct{})

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		name := strings.TrimSpace(sc.Text())
		if name == "" {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		out.Append(name)
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "read applicants")
	}
	return out, nil
}

// LoadApplicantsFile opens path and calls LoadApplicants.
func LoadApplicantsFile(path string) (*sequence.Sequence[string], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open applicants file %q", path)
	}
	defer f.Close()

	apps, err := LoadApplicants(f)
	if err != nil {
		return nil, errors.Wrapf(err, "load %q", path)
	}
	return apps, nil
}

// Initials returns the first rune of every space-separated word in name.
func Initials(name string) string {
	var b strings.Builder
	for _, word := range strings.Fields(name) {
		r, _ := utf8.DecodeRuneInString(word)
		b.WriteRune(r)
	}
	return b.String()
}

// FindMatches returns the applicants whose initials equal those of name,
// in applicant order.
func FindMatches(name string, applicants *sequence.Sequence[string]) *sequence.Sequence[string] {
	want := Initials(name)
	out := sequence.WithCapacity[string](0)
	for _, a := range applicants.All() {
		if Initials(a) == want {
			out.Append(a)
		}
	}
	return out
}

// ── Picker ────────────────────────────────────────────────────────────────────

// Picker chooses one index in [0, n). n is always > 0.
type Picker interface {
	Pick(n int) int
}

// PickerFunc adapts a function to Picker.
type PickerFunc func(n int) int

func (f PickerFunc) Pick(n int) int { return f(n) }

// FirstPicker always chooses the first candidate.
type FirstPicker struct{}

func (FirstPicker) Pick(int) int { return 0 }

// RandomPicker chooses uniformly using its own source. Two pickers built
// with the same seed make the same choices.
type RandomPicker struct {
	rng *rand.Rand
}

func NewRandomPicker(seed int64) *RandomPicker {
	return &RandomPicker{rng: rand.New(rand.NewSource(seed))}
}

func (p *RandomPicker) Pick(n int) int { return p.rng.Intn(n) }

// Match picks one candidate, or returns NoMatch when matches is empty.
// A nil picker behaves like FirstPicker.
func Match(matches *sequence.Sequence[string], p Picker) string {
	if matches.IsEmpty() {
		return NoMatch
	}
	if p == nil {
		p = FirstPicker{}
	}
	i := p.Pick(matches.Len())
	m, err := matches.At(i)
	if err != nil {
		// A misbehaving picker falls back to the first candidate.
		return matches.Index(0)
	}
	return m
}
