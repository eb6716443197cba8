package kernel

import (
	"fmt"

	"burger/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrUUIDIsNotConstructed is returned for the zero UUID.
var ErrUUIDIsNotConstructed = errs.NewValueIsRequiredError("UUID must be created via NewUUID, UUIDFromString, or UUIDFromBytes")

// UUID is a value object that identifies aggregates. It wraps github.com/google/uuid
// so the domain never depends on the library type directly.
//
// The zero value of UUID is invalid and must be constructed using one of the provided
// factory functions: NewUUID, UUIDFromString, or UUIDFromBytes.
//
// Example usage:
//
//	id := kernel.NewUUID()
//	b, err := burger.NewBurger(id)
type UUID struct {
	id uuid.UUID
}

// NewUUID returns a random (v4) identifier.
func NewUUID() UUID {
	return UUID{
		id: uuid.New(),
	}
}

// UUIDFromString parses a UUID from its string representation.
// It accepts the formats understood by uuid.Parse, for example
// "6ba7b810-9dad-11d1-80b4-00c04fd430c8" or "urn:uuid:6ba7b810-9dad-11d1-80b4-00c04fd430c8".
//
// The nil UUID is rejected with ErrUUIDIsNotConstructed: path parameters such as
// /burgers/00000000-0000-0000-0000-000000000000 never address a real burger.
func UUIDFromString(s string) (UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return UUID{}, fmt.Errorf("invalid UUID format: %w", err)
	}
	newID := UUID{id: id}
	if err = newID.Validate(); err != nil {
		return UUID{}, err
	}

	return newID, nil
}

// UUIDFromBytes rebuilds an identifier from its 16 raw bytes.
func UUIDFromBytes(b []byte) (UUID, error) {
	id, err := uuid.FromBytes(b)
	if err != nil {
		return UUID{}, fmt.Errorf("invalid UUID format: %w", err)
	}
	newID := UUID{id: id}
	if err = newID.Validate(); err != nil {
		return UUID{}, err
	}

	return newID, nil
}

// String renders the identifier in canonical hyphenated form.
func (u UUID) String() string {
	return u.id.String()
}

// Bytes exposes the google/uuid value for DTOs.
func (u UUID) Bytes() uuid.UUID {
	return u.id
}

// IsEqual compares two identifiers.
func (u UUID) IsEqual(other UUID) bool {
	return u.id == other.id
}

// Validate rejects the nil UUID.
func (u UUID) Validate() error {
	if u.id == uuid.Nil {
		return ErrUUIDIsNotConstructed
	}
	return nil
}
