package burger

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"burger/internal/core/domain/model/bun"
	"burger/internal/core/domain/model/ingredient"
	"burger/internal/core/domain/model/kernel"
	"burger/internal/pkg/errs"
)

var (
	// ErrBurgerIsNotConstructed is returned when a Burger was not created through
	// NewBurger or RestoreBurger.
	ErrBurgerIsNotConstructed = errors.New("Burger must be created via NewBurger constructor")

	// ErrBunIsNotSet is returned by Price and Receipt before SetBuns was called.
	ErrBunIsNotSet = errs.NewPreconditionIsNotMetError("burger pricing", "a bun")
)

// bunsPerBurger is the number of times the bun price is counted: top and bottom.
const bunsPerBurger = 2

// Burger is the aggregate root of a customizable burger order.
//
// The zero value is not usable; create burgers with NewBurger.
// A Burger is not safe for concurrent use.
type Burger struct {
	id          kernel.UUID
	bun         *bun.Bun
	ingredients []ingredient.Ingredient

	isConstructed bool
}

// NewBurger creates an empty burger without a bun.
//
// Example:
//
//	b, err := burger.NewBurger(kernel.NewUUID())
//	if err != nil {
//	    return err
//	}
//	_ = b.SetBuns(bun.NewBun("black bun", kernel.MoneyFromInt(100)))
func NewBurger(id kernel.UUID) (*Burger, error) {
	b := &Burger{
		ingredients:   []ingredient.Ingredient{},
		isConstructed: true,
	}

	if err := b.setID(id); err != nil {
		return nil, err
	}

	return b, nil
}

// RestoreBurger rebuilds a burger from persisted state. bn may be nil when the
// burger never had a bun set. Every value is validated as if it were passed to
// the corresponding mutation method.
func RestoreBurger(id kernel.UUID, bn *bun.Bun, ingredients []ingredient.Ingredient) (*Burger, error) {
	b := &Burger{
		ingredients:   make([]ingredient.Ingredient, 0, len(ingredients)),
		isConstructed: true,
	}

	validationErrs := []error{b.setID(id)}
	if bn != nil {
		validationErrs = append(validationErrs, b.SetBuns(*bn))
	}
	for _, i := range ingredients {
		validationErrs = append(validationErrs, b.AddIngredient(i))
	}

	if err := errors.Join(validationErrs...); err != nil {
		return nil, err
	}

	return b, nil
}

// Validate ensures the burger was created through NewBurger or RestoreBurger.
func (b *Burger) Validate() error {
	if b == nil || !b.isConstructed {
		return ErrBurgerIsNotConstructed
	}

	return nil
}

// IsEqual compares two burgers by identifier.
func (b *Burger) IsEqual(other *Burger) bool {
	return other != nil && b.id.IsEqual(other.id)
}

// ID returns the burger's unique identifier.
func (b *Burger) ID() kernel.UUID {
	return b.id
}

// Bun returns the current bun and whether one has been set.
func (b *Burger) Bun() (bun.Bun, bool) {
	if b.bun == nil {
		return bun.Bun{}, false
	}
	return *b.bun, true
}

// Ingredients returns a copy of the ingredient sequence in order.
func (b *Burger) Ingredients() []ingredient.Ingredient {
	return slices.Clone(b.ingredients)
}

// SetBuns sets the bun used for both top and bottom, replacing any previous one.
func (b *Burger) SetBuns(bn bun.Bun) error {
	if err := bn.Validate(); err != nil {
		return err
	}

	b.bun = &bn
	return nil
}

// AddIngredient appends an ingredient to the end of the sequence.
// The same ingredient may be added more than once.
func (b *Burger) AddIngredient(i ingredient.Ingredient) error {
	if err := i.Validate(); err != nil {
		return err
	}

	b.ingredients = append(b.ingredients, i)
	return nil
}

// RemoveIngredient removes the ingredient at the zero-based index.
func (b *Burger) RemoveIngredient(index int) error {
	if err := b.checkIndex("index", index); err != nil {
		return err
	}

	b.ingredients = slices.Delete(b.ingredients, index, index+1)
	return nil
}

// MoveIngredient relocates the ingredient at from so that it ends up at to,
// keeping the relative order of all other ingredients. Both indices refer to
// positions in the current sequence.
//
// Example:
//
//	// [A, B, C]
//	_ = b.MoveIngredient(0, 2)
//	// [B, C, A]
func (b *Burger) MoveIngredient(from, to int) error {
	if err := errors.Join(
		b.checkIndex("from", from),
		b.checkIndex("to", to),
	); err != nil {
		return err
	}

	moved := b.ingredients[from]
	b.ingredients = slices.Delete(b.ingredients, from, from+1)
	b.ingredients = slices.Insert(b.ingredients, to, moved)
	return nil
}

// Price returns 2 × bun price plus the price of every ingredient.
func (b *Burger) Price() (kernel.Money, error) {
	if b.bun == nil {
		return kernel.Money{}, ErrBunIsNotSet
	}

	total := b.bun.Price().Mul(bunsPerBurger)
	for _, i := range b.ingredients {
		total = total.Add(i.Price())
	}
	return total, nil
}

// Receipt renders the burger as text: the bun delimiter, one line per
// ingredient in order, the bun delimiter again, then the total price.
func (b *Burger) Receipt() (string, error) {
	price, err := b.Price()
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "(==== %s ====)\n", b.bun.Name())
	for _, i := range b.ingredients {
		fmt.Fprintf(&sb, "= %s %s =\n", i.Type().Lower(), i.Name())
	}
	fmt.Fprintf(&sb, "(==== %s ====)\n", b.bun.Name())
	fmt.Fprintf(&sb, "\nPrice: %s", price)

	return sb.String(), nil
}

func (b *Burger) checkIndex(paramName string, index int) error {
	if index < 0 || index >= len(b.ingredients) {
		return errs.NewValueIsOutOfRangeErrorWithCause(
			paramName, index, 0, len(b.ingredients)-1,
			fmt.Errorf("burger has %d ingredients", len(b.ingredients)),
		)
	}
	return nil
}

func (b *Burger) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	b.id = id
	return nil
}
