package main

import (
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"

	"github.com/marcodamonte/containers/matchmaker"
)

func runMatch(w io.Writer, log logrus.FieldLogger, cfg Config) error {
	apps, err := matchmaker.LoadApplicantsFile(cfg.NamesFile)
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{"file": cfg.NamesFile, "applicants": apps.Len()}).Debug("loaded applicants")

	matches := matchmaker.FindMatches(cfg.Name, apps)
	fmt.Fprintf(w, "  %s (%s): %d candidate(s)\n", cfg.Name, matchmaker.Initials(cfg.Name), matches.Len())
	for _, m := range matches.All() {
		fmt.Fprintf(w, "    - %s\n", m)
	}

	fmt.Fprintf(w, "  match: %s\n", color.New(color.FgGreen, color.Bold).Sprint(
		matchmaker.Match(matches, newPicker(log, cfg))))
	return nil
}

func newPicker(log logrus.FieldLogger, cfg Config) matchmaker.Picker {
	if !cfg.Random {
		return matchmaker.FirstPicker{}
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	// Logged so a surprising pick can be replayed with --seed.
	log.WithField("seed", seed).Info("random picker")
	return matchmaker.NewRandomPicker(seed)
}
