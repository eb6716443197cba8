package ingredient_test

import (
	"testing"

	"burger/internal/core/domain/model/ingredient"
	"burger/internal/core/domain/model/kernel"
	"burger/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func availableIngredients() []struct {
	ingredientType ingredient.Type
	name           string
	price          int64
} {
	return []struct {
		ingredientType ingredient.Type
		name           string
		price          int64
	}{
		{ingredient.Sauce, "hot sauce", 100},
		{ingredient.Sauce, "sour cream", 200},
		{ingredient.Sauce, "chili sauce", 300},
		{ingredient.Filling, "cutlet", 100},
		{ingredient.Filling, "dinosaur", 200},
		{ingredient.Filling, "sausage", 300},
	}
}

func TestNewIngredient(t *testing.T) {
	for _, tc := range availableIngredients() {
		t.Run(tc.name, func(t *testing.T) {
			i, err := ingredient.NewIngredient(tc.ingredientType, tc.name, kernel.MoneyFromInt(tc.price))

			require.NoError(t, err)
			require.NoError(t, i.Validate())
			assert.Equal(t, tc.ingredientType, i.Type())
			assert.Equal(t, tc.name, i.Name())
			assert.True(t, kernel.MoneyFromInt(tc.price).Equal(i.Price()))
		})
	}

	t.Run("should reject unknown type", func(t *testing.T) {
		i, err := ingredient.NewIngredient(ingredient.Unknown, "ketchup", kernel.MoneyFromInt(50))

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "0 is not a valid ingredient type")
		assert.Zero(t, i)
	})

	t.Run("should reject out of enum type", func(t *testing.T) {
		_, err := ingredient.NewIngredient(ingredient.Type(42), "ketchup", kernel.MoneyFromInt(50))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "42 is not a valid ingredient type")
	})

	t.Run("should accept empty name and zero price", func(t *testing.T) {
		i, err := ingredient.NewIngredient(ingredient.Filling, "", kernel.ZeroMoney())

		require.NoError(t, err)
		assert.Empty(t, i.Name())
	})
}

func TestIngredient_Validate(t *testing.T) {
	var zero ingredient.Ingredient

	assert.Equal(t, ingredient.ErrIngredientIsNotConstructed, zero.Validate())
}

func TestIngredient_IsEqual(t *testing.T) {
	a, _ := ingredient.NewIngredient(ingredient.Sauce, "hot sauce", kernel.MoneyFromInt(100))
	b, _ := ingredient.NewIngredient(ingredient.Sauce, "hot sauce", kernel.MoneyFromFloat(100.0))
	c, _ := ingredient.NewIngredient(ingredient.Filling, "hot sauce", kernel.MoneyFromInt(100))

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
}

func TestType(t *testing.T) {
	t.Run("String and Lower", func(t *testing.T) {
		assert.Equal(t, "SAUCE", ingredient.Sauce.String())
		assert.Equal(t, "FILLING", ingredient.Filling.String())
		assert.Equal(t, "UNKNOWN", ingredient.Unknown.String())
		assert.Equal(t, "UNKNOWN", ingredient.Type(7).String())
		assert.Equal(t, "sauce", ingredient.Sauce.Lower())
		assert.Equal(t, "filling", ingredient.Filling.Lower())
	})

	t.Run("ParseType", func(t *testing.T) {
		tests := []struct {
			input   string
			want    ingredient.Type
			wantErr bool
		}{
			{"SAUCE", ingredient.Sauce, false},
			{"sauce", ingredient.Sauce, false},
			{" Filling ", ingredient.Filling, false},
			{"unknown", ingredient.Unknown, true},
			{"bread", ingredient.Unknown, true},
			{"", ingredient.Unknown, true},
		}

		for _, tt := range tests {
			got, err := ingredient.ParseType(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, errs.ErrValueIsInvalid, tt.input)
			} else {
				require.NoError(t, err, tt.input)
			}
			assert.Equal(t, tt.want, got, tt.input)
		}
	})
}
