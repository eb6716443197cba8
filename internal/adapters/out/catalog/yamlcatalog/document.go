package yamlcatalog

import (
	"errors"
	"fmt"

	"burger/internal/core/domain/model/bun"
	"burger/internal/core/domain/model/ingredient"
	"burger/internal/core/domain/model/kernel"

	"gopkg.in/yaml.v3"
)

type document struct {
	Buns        []bunEntry        `yaml:"buns"`
	Ingredients []ingredientEntry `yaml:"ingredients"`
}

type bunEntry struct {
	Name  string `yaml:"name"`
	Price price  `yaml:"price"`
}

type ingredientEntry struct {
	Type  string `yaml:"type"`
	Name  string `yaml:"name"`
	Price price  `yaml:"price"`
}

// price keeps the literal text of the YAML scalar so 12.50 is parsed as an exact decimal.
type price struct {
	kernel.Money
}

func (p *price) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: price must be a number", node.Line)
	}

	m, err := kernel.MoneyFromString(node.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}

	p.Money = m
	return nil
}

func parse(data []byte) ([]bun.Bun, []ingredient.Ingredient, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, nil, err
	}

	buns := make([]bun.Bun, 0, len(doc.Buns))
	for _, entry := range doc.Buns {
		buns = append(buns, bun.NewBun(entry.Name, entry.Price.Money))
	}

	var entryErrs []error
	ingredients := make([]ingredient.Ingredient, 0, len(doc.Ingredients))
	for n, entry := range doc.Ingredients {
		ingredientType, err := ingredient.ParseType(entry.Type)
		if err != nil {
			entryErrs = append(entryErrs, fmt.Errorf("ingredient #%d %q: %w", n+1, entry.Name, err))
			continue
		}

		i, err := ingredient.NewIngredient(ingredientType, entry.Name, entry.Price.Money)
		if err != nil {
			entryErrs = append(entryErrs, fmt.Errorf("ingredient #%d %q: %w", n+1, entry.Name, err))
			continue
		}
		ingredients = append(ingredients, i)
	}

	if err := errors.Join(entryErrs...); err != nil {
		return nil, nil, err
	}

	return buns, ingredients, nil
}
