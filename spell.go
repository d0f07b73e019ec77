package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"

	"github.com/marcodamonte/containers/spellcheck"
)

func runSpell(w io.Writer, log logrus.FieldLogger, cfg Config) error {
	dict, err := spellcheck.LoadDictionaryFile(cfg.DictFile)
	if err != nil {
		return err
	}

	tokens := spellcheck.Tokenize(cfg.Text)
	log.WithFields(logrus.Fields{"words": len(dict), "tokens": tokens.Len()}).Debug("checking")

	misspelled := spellcheck.Check(tokens, dict)
	if misspelled.IsEmpty() {
		fmt.Fprintln(w, "  no misspellings")
		return nil
	}

	bad := color.New(color.FgRed, color.Underline).SprintFunc()
	for _, m := range misspelled.All() {
		fmt.Fprintf(w, "  @%-4d %s → %s\n", m.Token.Offset, bad(m.Token.Content), strings.Join(m.Suggestions, ", "))
	}
	return nil
}
