package queries

import (
	"context"

	"burger/internal/core/ports"
)

// BurgerReader provides read access to stored burger aggregates.
// A unit of work outside a transaction satisfies it.
type BurgerReader interface {
	BurgerRepository() ports.BurgerRepository
}

// GetBurgerReceiptQueryHandler loads the aggregate and returns its price and receipt.
type GetBurgerReceiptQueryHandler struct {
	reader BurgerReader
}

// NewGetBurgerReceiptQueryHandler creates a receipt handler.
func NewGetBurgerReceiptQueryHandler(reader BurgerReader) GetBurgerReceiptQueryHandler {
	return GetBurgerReceiptQueryHandler{reader: reader}
}

// Handle returns burger.ErrBunIsNotSet when the burger has no bun yet.
func (h GetBurgerReceiptQueryHandler) Handle(
	ctx context.Context,
	query GetBurgerReceiptQuery,
) (*GetBurgerReceiptQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	b, err := h.reader.BurgerRepository().Get(ctx, query.BurgerID())
	if err != nil {
		return nil, err
	}

	price, err := b.Price()
	if err != nil {
		return nil, err
	}

	receipt, err := b.Receipt()
	if err != nil {
		return nil, err
	}

	return &GetBurgerReceiptQueryResponse{
		Price:   price,
		Receipt: receipt,
	}, nil
}
