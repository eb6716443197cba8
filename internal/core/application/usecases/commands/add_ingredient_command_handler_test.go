package commands_test

import (
	"testing"

	"burger/internal/core/application/usecases/commands"
	"burger/internal/core/domain/model/ingredient"
	"burger/internal/core/domain/model/kernel"
	"burger/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAddIngredientCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	stored := storedBurger(mustIngredient(ingredient.Sauce, "hot sauce", 100))
	cutlet := mustIngredient(ingredient.Filling, "cutlet", 100)
	cmd, _ := commands.NewAddIngredientCommand(stored.ID(), "cutlet")

	ingredients := new(MockIngredientCatalog)
	ingredients.On("FindIngredient", ctx, "cutlet").Return(cutlet, nil).Once()

	repo := new(MockBurgerRepository)
	uow := new(MockBurgerUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("BurgerRepository").Return(repo).Once(),
		repo.On("Get", ctx, stored.ID()).Return(stored, nil).Once(),
		repo.On("Update", ctx, stored).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockBurgerUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddIngredientCommandHandler(factory, ingredients)
	err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, []string{"hot sauce", "cutlet"}, ingredientNames(stored))
	ingredients.AssertExpectations(t)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAddIngredientCommandHandler_Handle_UnknownIngredient(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewAddIngredientCommand(kernel.NewUUID(), "ketchup")

	ingredients := new(MockIngredientCatalog)
	ingredients.On("FindIngredient", ctx, "ketchup").
		Return(ingredient.Ingredient{}, errs.NewObjectNotFoundError("ingredient", "ketchup")).Once()
	factory := new(MockBurgerUoWFactory)

	h := commands.NewAddIngredientCommandHandler(factory, ingredients)
	err := h.Handle(ctx, cmd)

	var notFound *errs.ObjectNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "ingredient", notFound.ParamName)
	factory.AssertNotCalled(t, "Create")
}

func TestAddIngredientCommandHandler_Handle_ValidationError(t *testing.T) {
	h := commands.NewAddIngredientCommandHandler(new(MockBurgerUoWFactory), new(MockIngredientCatalog))

	err := h.Handle(t.Context(), commands.AddIngredientCommand{})

	require.ErrorIs(t, err, commands.ErrAddIngredientCommandIsNotConstructed)
}
