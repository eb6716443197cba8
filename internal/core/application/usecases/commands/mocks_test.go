package commands_test

import (
	"context"

	"burger/internal/core/application/usecases/commands"
	"burger/internal/core/domain/model/bun"
	"burger/internal/core/domain/model/burger"
	"burger/internal/core/domain/model/ingredient"
	"burger/internal/core/domain/model/kernel"
	"burger/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockBurgerRepository struct{ mock.Mock }

func (m *MockBurgerRepository) Add(ctx context.Context, b *burger.Burger) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockBurgerRepository) Update(ctx context.Context, b *burger.Burger) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockBurgerRepository) Get(ctx context.Context, id kernel.UUID) (*burger.Burger, error) {
	args := m.Called(ctx, id)
	if b := args.Get(0); b != nil {
		return b.(*burger.Burger), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockBurgerUoW struct{ mock.Mock }

func (m *MockBurgerUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockBurgerUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockBurgerUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockBurgerUoW) BurgerRepository() ports.BurgerRepository {
	args := m.Called()
	return args.Get(0).(ports.BurgerRepository)
}

type MockBurgerUoWFactory struct{ mock.Mock }

func (m *MockBurgerUoWFactory) Create() commands.BurgerUoW {
	args := m.Called()
	return args.Get(0).(commands.BurgerUoW)
}

type MockBunCatalog struct{ mock.Mock }

func (m *MockBunCatalog) AvailableBuns(ctx context.Context) ([]bun.Bun, error) {
	args := m.Called(ctx)
	return args.Get(0).([]bun.Bun), args.Error(1)
}

func (m *MockBunCatalog) FindBun(ctx context.Context, name string) (bun.Bun, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(bun.Bun), args.Error(1)
}

type MockIngredientCatalog struct{ mock.Mock }

func (m *MockIngredientCatalog) AvailableIngredients(ctx context.Context) ([]ingredient.Ingredient, error) {
	args := m.Called(ctx)
	return args.Get(0).([]ingredient.Ingredient), args.Error(1)
}

func (m *MockIngredientCatalog) FindIngredient(ctx context.Context, name string) (ingredient.Ingredient, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(ingredient.Ingredient), args.Error(1)
}

// mustIngredient builds a fixture ingredient; fixtures are always valid.
func mustIngredient(ingredientType ingredient.Type, name string, price int64) ingredient.Ingredient {
	i, err := ingredient.NewIngredient(ingredientType, name, kernel.MoneyFromInt(price))
	if err != nil {
		panic(err)
	}
	return i
}

func storedBurger(ingredients ...ingredient.Ingredient) *burger.Burger {
	bn := bun.NewBun("black bun", kernel.MoneyFromInt(100))
	b, err := burger.RestoreBurger(kernel.NewUUID(), &bn, ingredients)
	if err != nil {
		panic(err)
	}
	return b
}

func ingredientNames(b *burger.Burger) []string {
	result := make([]string, 0)
	for _, i := range b.Ingredients() {
		result = append(result, i.Name())
	}
	return result
}
