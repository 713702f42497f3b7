package domain

import (
	"errors"
	"regexp"
)

var identifierRe = regexp.MustCompile(`^[A-Z0-9_]+$`)

var (
	ErrEmptyIdentifier   = errors.New("must not be empty")
	ErrInvalidIdentifier = errors.New("may only contain upper-case letters, digits and underscores")
)

// ValidateIdentifier checks action and unlock item ids.
func ValidateIdentifier(id string) error {
	if id == "" {
		return ErrEmptyIdentifier
	}
	if !identifierRe.MatchString(id) {
		return ErrInvalidIdentifier
	}
	return nil
}
