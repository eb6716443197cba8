// Package yamlcatalog serves the bun and ingredient catalogs from a YAML document.
//
// Document layout:
//
//	buns:
//	  - name: black bun
//	    price: 100
//	ingredients:
//	  - type: SAUCE
//	    name: hot sauce
//	    price: 100
//
// Without a path the embedded default catalog is used.
package yamlcatalog

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"burger/internal/core/domain/model/bun"
	"burger/internal/core/domain/model/ingredient"
	"burger/internal/core/ports"
	"burger/internal/pkg/errs"
)

//go:embed default_catalog.yaml
var defaultCatalog []byte

var (
	_ ports.BunCatalog        = (*Catalog)(nil)
	_ ports.IngredientCatalog = (*Catalog)(nil)
)

// Catalog holds the parsed catalog. It is safe for concurrent use; Reload swaps
// the whole snapshot at once.
type Catalog struct {
	path string

	mu          sync.RWMutex
	buns        []bun.Bun
	ingredients []ingredient.Ingredient
}

// NewCatalog loads the catalog from path, or the embedded default when path is empty.
func NewCatalog(path string) (*Catalog, error) {
	c := &Catalog{path: path}
	if err := c.Reload(context.Background()); err != nil {
		return nil, err
	}
	return c, nil
}

// Reload re-reads the catalog source. On failure the previous snapshot is kept.
func (c *Catalog) Reload(_ context.Context) error {
	data := defaultCatalog
	if c.path != "" {
		b, err := os.ReadFile(filepath.Clean(c.path))
		if err != nil {
			return fmt.Errorf("read catalog %s: %w", c.path, err)
		}
		data = b
	}

	buns, ingredients, err := parse(data)
	if err != nil {
		return fmt.Errorf("parse catalog %s: %w", c.source(), err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.buns = buns
	c.ingredients = ingredients
	return nil
}

// source describes where the catalog is read from, for logs.
func (c *Catalog) source() string {
	if c.path == "" {
		return "(embedded)"
	}
	return c.path
}

// AvailableBuns returns every bun in document order.
func (c *Catalog) AvailableBuns(_ context.Context) ([]bun.Bun, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	result := make([]bun.Bun, len(c.buns))
	copy(result, c.buns)
	return result, nil
}

// AvailableIngredients returns every ingredient in document order.
func (c *Catalog) AvailableIngredients(_ context.Context) ([]ingredient.Ingredient, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	result := make([]ingredient.Ingredient, len(c.ingredients))
	copy(result, c.ingredients)
	return result, nil
}

// FindBun returns the first bun with exactly the given name.
func (c *Catalog) FindBun(_ context.Context, name string) (bun.Bun, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, bn := range c.buns {
		if bn.Name() == name {
			return bn, nil
		}
	}
	return bun.Bun{}, errs.NewObjectNotFoundError("bun", name)
}

// FindIngredient returns the first ingredient with exactly the given name.
func (c *Catalog) FindIngredient(_ context.Context, name string) (ingredient.Ingredient, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, i := range c.ingredients {
		if i.Name() == name {
			return i, nil
		}
	}
	return ingredient.Ingredient{}, errs.NewObjectNotFoundError("ingredient", name)
}
