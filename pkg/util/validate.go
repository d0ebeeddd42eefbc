package util

import (
	"errors"
	"regexp"
)

var usernameRe = regexp.MustCompile(`^[a-zA-Z0-9_-]{3,20}$`)

// IsUsername validates a username: 3-20 chars of [a-zA-Z0-9_-].
func IsUsername(username string) error {
	if !usernameRe.MatchString(username) {
		return errors.New("invalid username")
	}
	return nil
}

// IsPassword validates a password. Minimum 6 characters.
func IsPassword(password string) error {
	if len(password) < 6 {
		return errors.New("invalid password")
	}
	return nil
}
