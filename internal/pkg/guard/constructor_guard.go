// Package guard detects domain values that were declared as zero values
// instead of being built through their constructors.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the caller passes a nil error.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded into value objects and aggregates. Its zero value
// means "not constructed"; constructors set it with NewConstructorGuard.
//
// Example:
//
//	var ErrBunIsNotConstructed = errors.New("Bun must be created via NewBun constructor")
//
//	type Bun struct {
//	    name  string
//	    price kernel.Money
//	    guard guard.ConstructorGuard
//	}
//
//	func NewBun(name string, price kernel.Money) Bun {
//	    return Bun{name: name, price: price, guard: guard.NewConstructorGuard()}
//	}
//
//	func (b Bun) Validate() error {
//	    return b.guard.Validate(ErrBunIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard that marks its owner as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil)
// if the owner was not built by its constructor, and nil otherwise.
func (g ConstructorGuard) Validate(validationError error) error {
	if g.isConstructed {
		return nil
	}
	if validationError == nil {
		return ErrDefaultConstructorGuard
	}
	return validationError
}
