package model

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidUser is returned for users that cannot be persisted.
var ErrInvalidUser = errors.New("invalid user")

// User is a station customer. Two users are equal when both fields match.
type User struct {
	ID    string
	Admin bool
}

// reserved characters are separators of the persisted state format.
const reserved = ":,-\r\n"

// Validate checks that the user can round-trip through the state file.
func (u User) Validate() error {
	if strings.TrimSpace(u.ID) == "" {
		return fmt.Errorf("%w: empty identifier", ErrInvalidUser)
	}
	if strings.TrimSpace(u.ID) != u.ID {
		return fmt.Errorf("%w: identifier %q has surrounding whitespace", ErrInvalidUser, u.ID)
	}
	if strings.ContainsAny(u.ID, reserved) {
		return fmt.Errorf("%w: identifier %q contains one of %q", ErrInvalidUser, u.ID, ":,-")
	}
	return nil
}
