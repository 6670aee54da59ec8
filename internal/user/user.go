// Package user holds the session identity: a display name and the
// in-memory drill history for the lifetime of the process. Nothing here
// is persisted.
package user

import (
	"strings"

	"github.com/sambit/prepdrill/internal/drill"
)

// User is the session identity. The name is a display label only and is
// not validated against any directory.
type User struct {
	Name string

	// history is append-only, oldest first.
	history []drill.DrillResult
}

// New creates a User with an empty history. A blank name falls back to
// "Candidate" so headers never render empty.
func New(name string) *User {
	name = strings.TrimSpace(name)
	if name == "" {
		name = "Candidate"
	}
	return &User{Name: name}
}

// AddResult appends a finished drill result to the history. Ownership of
// the result transfers to the user record; callers must not mutate it
// afterwards.
func (u *User) AddResult(res drill.DrillResult) {
	u.history = append(u.history, res)
}

// History returns the results oldest first. The returned slice is a copy.
func (u *User) History() []drill.DrillResult {
	out := make([]drill.DrillResult, len(u.history))
	copy(out, u.history)
	return out
}

// Session is the explicit session context handed to each screen: the
// identified user plus the selected drill configuration. It replaces any
// notion of global mutable UI state.
type Session struct {
	User *User
	Mode drill.Config
}
