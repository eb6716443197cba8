package ingredient

import (
	"errors"

	"burger/internal/core/domain/model/kernel"
	"burger/internal/pkg/guard"
)

// ErrIngredientIsNotConstructed is returned when an Ingredient was declared as a zero value.
var ErrIngredientIsNotConstructed = errors.New("Ingredient must be created via NewIngredient constructor")

// Ingredient is an immutable sauce or filling with a name and a price.
// It contributes its price once to every burger it is part of.
//
// Example:
//
//	sauce, err := ingredient.NewIngredient(ingredient.Sauce, "sour cream", kernel.MoneyFromInt(200))
//	if err != nil {
//	    return err
//	}
//	fmt.Println(sauce.Type().Lower(), sauce.Name()) // sauce sour cream
type Ingredient struct {
	ingredientType Type
	name           string
	price          kernel.Money
	guard          guard.ConstructorGuard
}

// NewIngredient creates an ingredient. The type must be Sauce or Filling;
// name and price are taken as given.
func NewIngredient(ingredientType Type, name string, price kernel.Money) (Ingredient, error) {
	if err := ingredientType.Validate(); err != nil {
		return Ingredient{}, err
	}

	return Ingredient{
		ingredientType: ingredientType,
		name:           name,
		price:          price,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate reports whether the ingredient was created by NewIngredient.
func (i Ingredient) Validate() error {
	return i.guard.Validate(ErrIngredientIsNotConstructed)
}

// Type returns the ingredient's category.
func (i Ingredient) Type() Type {
	return i.ingredientType
}

// Name returns the ingredient's name.
func (i Ingredient) Name() string {
	return i.name
}

// Price returns the ingredient's price.
func (i Ingredient) Price() kernel.Money {
	return i.price
}

// IsEqual compares ingredients by value: same type, name and amount.
func (i Ingredient) IsEqual(other Ingredient) bool {
	return i.ingredientType == other.ingredientType &&
		i.name == other.name &&
		i.price.Equal(other.price)
}
