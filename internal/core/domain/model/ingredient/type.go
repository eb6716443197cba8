package ingredient

import (
	"fmt"
	"strings"

	"burger/internal/pkg/errs"
)

// Type is the category of an ingredient.
//
// Only Sauce and Filling are valid. The zero value, Unknown, catches ingredients
// that were declared without going through NewIngredient.
type Type int

const (
	// Unknown represents an invalid or undefined category.
	Unknown Type = iota

	// Sauce is a liquid topping such as "hot sauce" or "sour cream".
	Sauce

	// Filling is a solid layer such as "cutlet" or "sausage".
	Filling
)

func getTypeStrings() map[Type]string {
	return map[Type]string{
		Unknown: "UNKNOWN",
		Sauce:   "SAUCE",
		Filling: "FILLING",
	}
}

// ParseType resolves a category name case-insensitively ("sauce", "SAUCE", "Filling").
// Returns a ValueIsInvalidError for anything else, including "unknown".
func ParseType(s string) (Type, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "SAUCE":
		return Sauce, nil
	case "FILLING":
		return Filling, nil
	default:
		return Unknown, errs.NewValueIsInvalidErrorWithCause(
			"ingredient type is invalid",
			fmt.Errorf("%q is not one of SAUCE, FILLING", s),
		)
	}
}

// Validate returns an error unless the type is Sauce or Filling.
func (t Type) Validate() error {
	if t != Sauce && t != Filling {
		return errs.NewValueIsInvalidErrorWithCause(
			"ingredient type is invalid",
			fmt.Errorf("%d is not a valid ingredient type", t),
		)
	}
	return nil
}

// String returns the upper-case category name, e.g. "SAUCE".
// Values outside the enumeration render as "UNKNOWN".
func (t Type) String() string {
	if str, ok := getTypeStrings()[t]; ok {
		return str
	}
	return "UNKNOWN"
}

// Lower returns the lower-case category name used in receipts, e.g. "sauce".
func (t Type) Lower() string {
	return strings.ToLower(t.String())
}
