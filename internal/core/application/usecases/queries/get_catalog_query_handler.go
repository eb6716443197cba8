package queries

import (
	"context"

	"burger/internal/core/ports"
)

// GetCatalogQueryHandler reads the bun and ingredient catalogs.
type GetCatalogQueryHandler struct {
	buns        ports.BunCatalog
	ingredients ports.IngredientCatalog
}

// NewGetCatalogQueryHandler creates a catalog handler.
func NewGetCatalogQueryHandler(buns ports.BunCatalog, ingredients ports.IngredientCatalog) GetCatalogQueryHandler {
	return GetCatalogQueryHandler{
		buns:        buns,
		ingredients: ingredients,
	}
}

// Handle returns all buns and ingredients.
func (h GetCatalogQueryHandler) Handle(ctx context.Context, query GetCatalogQuery) (*GetCatalogQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	buns, err := h.buns.AvailableBuns(ctx)
	if err != nil {
		return nil, err
	}

	ingredients, err := h.ingredients.AvailableIngredients(ctx)
	if err != nil {
		return nil, err
	}

	response := &GetCatalogQueryResponse{
		Buns:        make([]BunReadModel, 0, len(buns)),
		Ingredients: make([]IngredientReadModel, 0, len(ingredients)),
	}

	for _, bn := range buns {
		response.Buns = append(response.Buns, BunReadModel{
			Name:  bn.Name(),
			Price: bn.Price(),
		})
	}

	for _, i := range ingredients {
		response.Ingredients = append(response.Ingredients, IngredientReadModel{
			Type:  i.Type(),
			Name:  i.Name(),
			Price: i.Price(),
		})
	}

	return response, nil
}
