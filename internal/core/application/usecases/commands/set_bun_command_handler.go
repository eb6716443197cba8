package commands

import (
	"context"

	"burger/internal/core/domain/model/burger"
	"burger/internal/core/ports"
)

// SetBunCommandHandler resolves a bun in the catalog and sets it on a stored burger.
type SetBunCommandHandler struct {
	uowFactory BurgerUoWFactory
	buns       ports.BunCatalog
}

// NewSetBunCommandHandler creates a handler for bun selection.
func NewSetBunCommandHandler(uowFactory BurgerUoWFactory, buns ports.BunCatalog) SetBunCommandHandler {
	return SetBunCommandHandler{
		uowFactory: uowFactory,
		buns:       buns,
	}
}

// Handle looks the bun up before opening the transaction, so an unknown bun
// never touches the database.
func (h *SetBunCommandHandler) Handle(ctx context.Context, cmd SetBunCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	bn, err := h.buns.FindBun(ctx, cmd.BunName())
	if err != nil {
		return err
	}

	return updateBurger(ctx, h.uowFactory, cmd.BurgerID(), func(b *burger.Burger) error {
		return b.SetBuns(bn)
	})
}
