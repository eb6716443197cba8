package http

import (
	"burger/internal/core/application/usecases/queries"
)

// Error is the body of every non-2xx response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type CreatedBurger struct {
	ID string `json:"id"`
}

type SetBunRequest struct {
	Name string `json:"name"`
}

type AddIngredientRequest struct {
	Name string `json:"name"`
}

// MoveIngredientRequest uses pointers so a missing position is told apart from 0.
type MoveIngredientRequest struct {
	From *int `json:"from"`
	To   *int `json:"to"`
}

type Bun struct {
	Name  string `json:"name"`
	Price string `json:"price"`
}

type Ingredient struct {
	Position *int   `json:"position,omitempty"`
	Type     string `json:"type"`
	Name     string `json:"name"`
	Price    string `json:"price"`
}

// Burger is the composition view. Bun and Price are null until a bun is set.
type Burger struct {
	ID          string       `json:"id"`
	Bun         *Bun         `json:"bun"`
	Ingredients []Ingredient `json:"ingredients"`
	Price       *string      `json:"price"`
}

type Receipt struct {
	Price   string `json:"price"`
	Receipt string `json:"receipt"`
}

type Catalog struct {
	Buns        []Bun        `json:"buns"`
	Ingredients []Ingredient `json:"ingredients"`
}

func burgerFromReadModel(b *queries.GetBurgerQueryResponse) Burger {
	response := Burger{
		ID:          b.ID.String(),
		Ingredients: make([]Ingredient, len(b.Ingredients)),
	}

	if b.Bun != nil {
		response.Bun = &Bun{Name: b.Bun.Name, Price: b.Bun.Price.String()}
	}
	if b.Price != nil {
		price := b.Price.String()
		response.Price = &price
	}

	for i, line := range b.Ingredients {
		position := line.Position
		response.Ingredients[i] = Ingredient{
			Position: &position,
			Type:     line.Type.String(),
			Name:     line.Name,
			Price:    line.Price.String(),
		}
	}

	return response
}

func catalogFromReadModel(c *queries.GetCatalogQueryResponse) Catalog {
	response := Catalog{
		Buns:        make([]Bun, len(c.Buns)),
		Ingredients: make([]Ingredient, len(c.Ingredients)),
	}

	for i, b := range c.Buns {
		response.Buns[i] = Bun{Name: b.Name, Price: b.Price.String()}
	}
	for i, line := range c.Ingredients {
		response.Ingredients[i] = Ingredient{
			Type:  line.Type.String(),
			Name:  line.Name,
			Price: line.Price.String(),
		}
	}

	return response
}
