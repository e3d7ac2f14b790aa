// internal/types/types.go
package types

// EntityID — идентификатор сущности в ECS.
type EntityID uint64
