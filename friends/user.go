// Package friends models users and their friend lists.
package friends

import (
	"fmt"
	"strings"

	"github.com/marcodamonte/containers/sequence"
)

// User has a name and an ordered list of friend names. The zero value is a
// nameless user with no friends and is ready to use. Copy a User with Clone.
type User struct {
	name    string
	friends sequence.Sequence[string]
}

// New creates a user with no friends. The friend list starts with zero
// capacity and grows 1 → 3 → 7 …
func New(name string) *User {
	return &User{name: name}
}

func (u *User) Name() string { return u.name }
func (u *User) Len() int     { return u.friends.Len() }

func (u *User) AddFriend(name string) { u.friends.Append(name) }

// Friend returns the friend at index i.
func (u *User) Friend(i int) (string, error) { return u.friends.At(i) }

// SetFriend replaces the friend at index i.
func (u *User) SetFriend(i int, name string) error { return u.friends.Set(i, name) }

// Friends returns a copy of the friend list.
func (u *User) Friends() []string { return u.friends.Values() }

// Clone returns a deep copy; later changes to either user are not shared.
func (u *User) Clone() *User {
	c := &User{name: u.name}
	c.friends.Assign(&u.friends)
	return c
}

// Assign makes u a deep copy of other.
func (u *User) Assign(other *User) {
	if u == other {
		return
	}
	u.name = other.name
	u.friends.Assign(&other.friends)
}

// Connect adds a and b to each other's friend lists.
func Connect(a, b *User) {
	a.AddFriend(b.name)
	b.AddFriend(a.name)
}

// Less orders users by name.
func (u *User) Less(other *User) bool { return u.name < other.name }

// String renders the user as User(name=alice, friends=[bob, carol]).
func (u *User) String() string {
	return fmt.Sprintf("User(name=%s, friends=[%s])", u.name, strings.Join(u.friends.Values(), ", "))
}
