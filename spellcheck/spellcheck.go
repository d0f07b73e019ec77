// Package spellcheck flags words that are not in a dictionary but sit one
// edit away from a word that is.
package spellcheck

import (
	"bufio"
	"io"
	"os"
	"sort"
	"strings"
	"unicode"

	"github.com/agnivade/levenshtein"
	"github.com/pkg/errors"

	"github.com/marcodamonte/containers/sequence"
)

// Token is a normalized word and the byte offset where it starts in the source.
type Token struct {
	Content string
	Offset  int
}

// Misspelling is a token absent from the dictionary together with the
// dictionary words at edit distance 1, sorted.
type Misspelling struct {
	Token       Token
	Suggestions []string
}

// Dictionary is a set of lowercase words.
type Dictionary map[string]struct{}

func NewDictionary(words ...string) Dictionary {
	d := make(Dictionary, len(words))
	for _, w := range words {
		d.Add(w)
	}
	return d
}

func (d Dictionary) Add(w string) { d[strings.ToLower(w)] = struct{}{} }

func (d Dictionary) Contains(w string) bool { _, ok := d[w]; return ok }

// LoadDictionary reads whitespace-separated words from r.
func LoadDictionary(r io.Reader) (Dictionary, error) {
	d := make(Dictionary)
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	for sc.Scan() {
		d.Add(sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "read dictionary")
	}
	return d, nil
}

// LoadDictionaryFile opens path and calls LoadDictionary.
func LoadDictionaryFile(path string) (Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open dictionary %q", path)
	}
	defer f.Close()
	return LoadDictionary(f)
}

// Tokenize splits source on whitespace, strips leading and trailing
// punctuation from each word and lowercases it. Words that are empty after
// stripping are dropped.
func Tokenize(source string) *sequence.Sequence[Token] {
	out := sequence.New[Token]()
	start := -1
	flush := func(end int) {
		if start < 0 {
			return
		}
		word := source[start:end]
		trimmed := strings.TrimLeftFunc(word, unicode.IsPunct)
		off := start + len(word) - len(trimmed)
		trimmed = strings.TrimRightFunc(trimmed, unicode.IsPunct)
		if trimmed != "" {
			out.Append(Token{Content: strings.ToLower(trimmed), Offset: off})
		}
		start = -1
	}

	for i, r := range source {
		if unicode.IsSpace(r) {
			flush(i)
			continue
		}
		if start < 0 {
			start = i
		}
	}
	flush(len(source))
	return out
}

// Levenshtein returns the edit distance between a and b counted in runes.
func Levenshtein(a, b string) int { return levenshtein.ComputeDistance(a, b) }

// Check returns, in token order, every token missing from dict that has at
// least one suggestion. Tokens with no suggestion are not reported.
func Check(tokens *sequence.Sequence[Token], dict Dictionary) *sequence.Sequence[Misspelling] {
	out := sequence.WithCapacity[Misspelling](0)
	for _, tok := range tokens.All() {
		if dict.Contains(tok.Content) {
			continue
		}
		var sugg []string
		for w := range dict {
			if Levenshtein(tok.Content, w) == 1 {
				sugg = append(sugg, w)
			}
		}
		if len(sugg) == 0 {
			continue
		}
		sort.Strings(sugg)
		out.Append(Misspelling{Token: tok, Suggestions: sugg})
	}
	return out
}
