package queries

import (
	"context"
	"database/sql"

	"burger/internal/core/domain/model/bun"
	"burger/internal/core/domain/model/burger"
	"burger/internal/core/domain/model/ingredient"
	"burger/internal/core/domain/model/kernel"
	"burger/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetBurgerQueryHandler reads a burger's composition straight from the tables.
type GetBurgerQueryHandler struct {
	db *gorm.DB
}

// NewGetBurgerQueryHandler creates a handler reading through the given connection.
func NewGetBurgerQueryHandler(db *gorm.DB) GetBurgerQueryHandler {
	return GetBurgerQueryHandler{db: db}
}

// Handle returns the burger read model with ingredients ordered by position.
// The burger row and its ingredients are read by one statement, so they come
// from the same snapshot. Returns *errs.ObjectNotFoundError when the burger does not exist.
func (h GetBurgerQueryHandler) Handle(ctx context.Context, query GetBurgerQuery) (*GetBurgerQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT 
			b.bun_name, 
			b.bun_price, 
			i.type, 
			i.name, 
			i.price 
		FROM burgers b
		LEFT JOIN burger_ingredients i ON i.burger_id = b.id
		WHERE b.id = ?
		ORDER BY i.position
	`, query.BurgerID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	found := false
	var bn *bun.Bun
	ingredients := make([]ingredient.Ingredient, 0)

	for rows.Next() {
		var bunName, name sql.NullString
		var bunPrice, price decimal.NullDecimal
		var ingredientType sql.NullInt64

		if err = rows.Scan(&bunName, &bunPrice, &ingredientType, &name, &price); err != nil {
			return nil, err
		}

		if !found && bunName.Valid {
			b := bun.NewBun(bunName.String, kernel.NewMoney(bunPrice.Decimal))
			bn = &b
		}
		found = true

		if !ingredientType.Valid {
			continue
		}
		i, err := ingredient.NewIngredient(ingredient.Type(ingredientType.Int64), name.String, kernel.NewMoney(price.Decimal))
		if err != nil {
			return nil, err
		}
		ingredients = append(ingredients, i)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	if !found {
		return nil, errs.NewObjectNotFoundError("burger", query.BurgerID().String())
	}

	aggregate, err := burger.RestoreBurger(query.BurgerID(), bn, ingredients)
	if err != nil {
		return nil, err
	}

	return toBurgerResponse(aggregate)
}

func toBurgerResponse(aggregate *burger.Burger) (*GetBurgerQueryResponse, error) {
	response := &GetBurgerQueryResponse{
		ID:          aggregate.ID(),
		Ingredients: make([]IngredientReadModel, 0, len(aggregate.Ingredients())),
	}

	for position, i := range aggregate.Ingredients() {
		response.Ingredients = append(response.Ingredients, IngredientReadModel{
			Position: position,
			Type:     i.Type(),
			Name:     i.Name(),
			Price:    i.Price(),
		})
	}

	bn, ok := aggregate.Bun()
	if !ok {
		return response, nil
	}

	price, err := aggregate.Price()
	if err != nil {
		return nil, err
	}
	response.Bun = &BunReadModel{Name: bn.Name(), Price: bn.Price()}
	response.Price = &price

	return response, nil
}
