package main

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// Each command runs one exercise built on sequence.Sequence.
//
// Run:
//
//	go run . sandbox --capacity 5 --count 10
//	go run . match --names names.txt "Ada Lovelace"
//	go run . spell --dict words.txt "teh cst sat"
//	go run . friends alice bob carol
func main() {
	cfg, cmd, err := parseConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	log := newLogger(cfg)
	out := os.Stdout

	switch cmd {
	case cmdSandbox:
		section(out, "Sandbox — append, copy, assign, remove-last, bounds")
		err = runSandbox(out, log, cfg.Capacity, cfg.Count)
	case cmdMatch:
		section(out, "Match — applicants sharing the same initials")
		err = runMatch(out, log, cfg)
	case cmdSpell:
		section(out, "Spell — tokens one edit away from a dictionary word")
		err = runSpell(out, log, cfg)
	case cmdFriends:
		section(out, "Friends — mutual friend lists")
		err = runFriends(out, log, cfg.Users)
	}

	if err != nil {
		log.WithError(err).WithField("command", cmd).Error("command failed")
		os.Exit(1)
	}
}

func newLogger(cfg Config) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	if cfg.Verbose {
		log.SetLevel(logrus.DebugLevel)
	}
	return log
}

func section(w io.Writer, title string) {
	fmt.Fprintf(w, "\n━━━ %s ━━━\n", title)
}
