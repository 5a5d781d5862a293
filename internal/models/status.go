package models

import "errors"

// Default status values.
const (
	StatusActive  = "Active"
	StatusFlagged = "FLAGGED"
)

var ErrInvalidStatusPair = errors.New("status pair must be two distinct non-empty values")

// StatusPair is the two-valued status domain of a dungeon.
type StatusPair struct {
	Active  string
	Flagged string
}

// DefaultStatusPair is Active/FLAGGED.
func DefaultStatusPair() StatusPair {
	return StatusPair{Active: StatusActive, Flagged: StatusFlagged}
}

// Validate reports whether p has two distinct non-empty values.
func (p StatusPair) Validate() error {
	if p.Active == "" || p.Flagged == "" || p.Active == p.Flagged {
		return ErrInvalidStatusPair
	}
	return nil
}

// Toggle returns the other value of the pair. Anything that is not the
// active value (including values outside the pair) becomes active.
func (p StatusPair) Toggle(current string) string {
	if current == p.Active {
		return p.Flagged
	}
	return p.Active
}
