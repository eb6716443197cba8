package queries

import (
	"errors"

	"burger/internal/core/domain/model/kernel"
	"burger/internal/pkg/guard"
)

var ErrGetBurgerReceiptQueryIsNotConstructed = errors.New(
	"GetBurgerReceiptQuery must be created via NewGetBurgerReceiptQuery constructor",
)

// GetBurgerReceiptQuery asks for the printable receipt of a burger.
type GetBurgerReceiptQuery struct {
	burgerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetBurgerReceiptQuery creates a receipt query for the given burger id.
func NewGetBurgerReceiptQuery(burgerID kernel.UUID) (GetBurgerReceiptQuery, error) {
	if err := burgerID.Validate(); err != nil {
		return GetBurgerReceiptQuery{}, err
	}

	return GetBurgerReceiptQuery{
		burgerID: burgerID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetBurgerReceiptQuery) Validate() error {
	return q.guard.Validate(ErrGetBurgerReceiptQueryIsNotConstructed)
}

// BurgerID returns the identifier of the requested burger.
func (q GetBurgerReceiptQuery) BurgerID() kernel.UUID {
	return q.burgerID
}

// GetBurgerReceiptQueryResponse carries the total and the formatted receipt.
type GetBurgerReceiptQueryResponse struct {
	Price   kernel.Money
	Receipt string
}
