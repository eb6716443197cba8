// Package burgerrepo provides the GORM persistence of the burger aggregate.
// A burger is stored as one row in "burgers" holding the optional bun and one row
// per ingredient in "burger_ingredients", keyed by burger id and position.
package burgerrepo

import (
	"burger/internal/core/domain/model/bun"
	"burger/internal/core/domain/model/burger"
	"burger/internal/core/domain/model/ingredient"
	"burger/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BurgerDTO represents the database structure for persisting burger aggregates.
// BunName is nil until a bun has been set. Version grows by one on every update.
type BurgerDTO struct {
	ID          uuid.UUID           `gorm:"type:uuid;primaryKey"`
	Version     int64               `gorm:"not null;default:0"`
	BunName     *string             `gorm:"type:varchar(255)"`
	BunPrice    decimal.NullDecimal `gorm:"type:numeric(12,2)"`
	Ingredients []IngredientDTO     `gorm:"foreignKey:BurgerID;constraint:OnDelete:CASCADE"`
}

// TableName overrides GORM's default "burger_dtos".
func (BurgerDTO) TableName() string {
	return "burgers"
}

// IngredientDTO is one entry of a burger's ingredient sequence.
type IngredientDTO struct {
	BurgerID uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Position int             `gorm:"primaryKey;autoIncrement:false"`
	Type     int             `gorm:"type:smallint;not null"`
	Name     string          `gorm:"type:varchar(255);not null"`
	Price    decimal.Decimal `gorm:"type:numeric(12,2);not null"`
}

// TableName overrides GORM's default "ingredient_dtos".
func (IngredientDTO) TableName() string {
	return "burger_ingredients"
}

// fromDomain converts a burger aggregate to its database representation.
// Ingredient positions follow the aggregate's sequence.
func fromDomain(aggregate *burger.Burger) BurgerDTO {
	burgerID := aggregate.ID().Bytes()

	dto := BurgerDTO{
		ID:          burgerID,
		Ingredients: ingredientsFromDomain(burgerID, aggregate.Ingredients()),
	}

	if bn, ok := aggregate.Bun(); ok {
		name := bn.Name()
		dto.BunName = &name
		dto.BunPrice = decimal.NewNullDecimal(bn.Price().Amount())
	}

	return dto
}

func ingredientsFromDomain(burgerID uuid.UUID, ingredients []ingredient.Ingredient) []IngredientDTO {
	dtos := make([]IngredientDTO, 0, len(ingredients))
	for position, i := range ingredients {
		dtos = append(dtos, IngredientDTO{
			BurgerID: burgerID,
			Position: position,
			Type:     int(i.Type()),
			Name:     i.Name(),
			Price:    i.Price().Amount(),
		})
	}
	return dtos
}

// toDomain converts a database DTO to a burger aggregate using RestoreBurger.
// dto.Ingredients must already be sorted by position.
func toDomain(dto BurgerDTO) (*burger.Burger, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var bn *bun.Bun
	if dto.BunName != nil {
		restored := bun.NewBun(*dto.BunName, kernel.NewMoney(dto.BunPrice.Decimal))
		bn = &restored
	}

	ingredients := make([]ingredient.Ingredient, 0, len(dto.Ingredients))
	for _, iDto := range dto.Ingredients {
		i, iErr := ingredient.NewIngredient(ingredient.Type(iDto.Type), iDto.Name, kernel.NewMoney(iDto.Price))
		if iErr != nil {
			return nil, iErr
		}
		ingredients = append(ingredients, i)
	}

	return burger.RestoreBurger(id, bn, ingredients)
}
