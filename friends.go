package main

import (
	"fmt"
	"io"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/marcodamonte/containers/friends"
)

// runFriends connects every pair of names and prints the users sorted by name.
func runFriends(w io.Writer, log logrus.FieldLogger, names []string) error {
	users := make([]*friends.User, 0, len(names))
	for _, n := range names {
		users = append(users, friends.New(n))
	}
	for i := range users {
		for j := i + 1; j < len(users); j++ {
			friends.Connect(users[i], users[j])
		}
	}
	log.WithField("users", len(users)).Debug("connected all pairs")

	sort.Slice(users, func(i, j int) bool { return users[i].Less(users[j]) })
	for _, u := range users {
		fmt.Fprintf(w, "  %s\n", u)
	}
	return nil
}
