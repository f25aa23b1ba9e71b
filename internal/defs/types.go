// internal/defs/types.go
package defs

import "errors"

var (
	// ErrInvalidLevel is returned when a level below 1 is used to scale an attack or build a tower.
	ErrInvalidLevel = errors.New("invalid level parameters")
	// ErrInvalidAttack is returned for attack specs with non-positive base values.
	ErrInvalidAttack = errors.New("invalid attack spec")
	// ErrUnknownDefinition is returned when a definition references an ID that is not loaded.
	ErrUnknownDefinition = errors.New("unknown definition")
)
