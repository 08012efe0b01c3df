// Package entity holds the identity and versioning fields shared by the
// domain aggregates.
package entity

import (
	"context"
	"time"

	"oafund/internal/core/id"
)

// Validatable is implemented by entities that support self-validation.
// Validation checks internal invariants without touching storage.
type Validatable interface {
	Validate(ctx context.Context) error
}

// BaseEntity contains common fields for all aggregates.
type BaseEntity struct {
	// ID is the primary key (UUIDv7)
	ID id.ID `db:"id" json:"id"`

	// Version for optimistic locking (incremented on each mutation)
	Version int `db:"version" json:"version"`

	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

// NewBaseEntity creates a new BaseEntity with generated ID.
func NewBaseEntity() BaseEntity {
	now := time.Now().UTC()
	return BaseEntity{
		ID:        id.New(),
		Version:   1,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Touch increments version and refreshes UpdatedAt.
func (b *BaseEntity) Touch() {
	b.Version++
	b.UpdatedAt = time.Now().UTC()
}

// SetVersion updates the version number (used by a repository after sync).
func (b *BaseEntity) SetVersion(v int) {
	b.Version = v
}

// GetID returns the entity ID.
func (b *BaseEntity) GetID() id.ID {
	return b.ID
}
