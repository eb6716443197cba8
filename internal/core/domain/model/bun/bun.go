package bun

import (
	"errors"

	"burger/internal/core/domain/model/kernel"
	"burger/internal/pkg/guard"
)

// ErrBunIsNotConstructed is returned when a Bun was declared as a zero value.
var ErrBunIsNotConstructed = errors.New("Bun must be created via NewBun constructor")

// Bun is an immutable bread with a name and a price.
type Bun struct {
	name  string
	price kernel.Money
	guard guard.ConstructorGuard
}

// NewBun creates a bun. Construction always succeeds.
func NewBun(name string, price kernel.Money) Bun {
	return Bun{
		name:  name,
		price: price,
		guard: guard.NewConstructorGuard(),
	}
}

// Validate reports whether the bun was created by NewBun.
func (b Bun) Validate() error {
	return b.guard.Validate(ErrBunIsNotConstructed)
}

// Name returns the bun's name, printed in the receipt delimiters.
func (b Bun) Name() string {
	return b.name
}

// Price returns the price of a single bun.
func (b Bun) Price() kernel.Money {
	return b.price
}

// IsEqual compares buns by name and amount.
func (b Bun) IsEqual(other Bun) bool {
	return b.name == other.name && b.price.Equal(other.price)
}
