package main

import (
	"strings"

	"gopkg.in/alecthomas/kingpin.v2"
)

const (
	cmdSandbox = "sandbox"
	cmdMatch   = "match"
	cmdSpell   = "spell"
	cmdFriends = "friends"
)

// Config holds everything parsed from flags, args and environment.
type Config struct {
	Verbose bool

	// sandbox
	Capacity int
	Count    int

	// match
	NamesFile string
	Name      string
	Random    bool
	Seed      int64 // 0 with Random means "seed from the clock"

	// spell
	DictFile string
	Text     string

	// friends
	Users []string
}

func parseConfig(args []string) (Config, string, error) {
	var cfg Config

	app := kingpin.New("containers", "Exercises built on a growable typed sequence.")
	app.Flag("verbose", "Log debug output to stderr.").Short('v').
		Envar("CONTAINERS_VERBOSE").BoolVar(&cfg.Verbose)

	sandbox := app.Command(cmdSandbox, "Append, copy and index a Sequence[int].").Default()
	sandbox.Flag("capacity", "Initial capacity.").Default("5").IntVar(&cfg.Capacity)
	sandbox.Flag("count", "Number of values to append.").Default("10").IntVar(&cfg.Count)

	match := app.Command(cmdMatch, "Find applicants with the same initials.")
	match.Flag("names", "File with one applicant per line.").Required().ExistingFileVar(&cfg.NamesFile)
	match.Flag("random", "Pick a random match instead of the first.").BoolVar(&cfg.Random)
	match.Flag("seed", "Seed for --random.").Envar("CONTAINERS_SEED").Int64Var(&cfg.Seed)
	match.Arg("name", "Name to match.").Required().StringVar(&cfg.Name)

	spell := app.Command(cmdSpell, "Spell-check text against a dictionary.")
	spell.Flag("dict", "Dictionary file, whitespace-separated words.").Required().ExistingFileVar(&cfg.DictFile)
	words := spell.Arg("text", "Text to check.").Required().Strings()

	friends := app.Command(cmdFriends, "Connect every pair of users and print them.")
	friends.Arg("users", "User names.").Required().StringsVar(&cfg.Users)

	cmd, err := app.Parse(args)
	if err != nil {
		return Config{}, "", err
	}
	cfg.Text = strings.Join(*words, " ")
	return cfg, cmd, nil
}
