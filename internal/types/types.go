// internal/types/types.go
package types

// EntityID identifies an entity in the simulation world. Zero means "no entity".
type EntityID uint64
