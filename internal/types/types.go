// internal/types/types.go
package types

// EntityID identifies a single entity across all component maps.
type EntityID uint64
