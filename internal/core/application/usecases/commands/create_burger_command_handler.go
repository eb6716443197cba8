package commands

import (
	"context"

	"burger/internal/core/domain/model/burger"
)

// CreateBurgerCommandHandler persists a new burger without bun or ingredients.
type CreateBurgerCommandHandler struct {
	uowFactory BurgerUoWFactory
}

// NewCreateBurgerCommandHandler creates a handler for burger creation.
func NewCreateBurgerCommandHandler(uowFactory BurgerUoWFactory) CreateBurgerCommandHandler {
	return CreateBurgerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle creates the burger and adds it to the repository in one transaction.
func (h *CreateBurgerCommandHandler) Handle(ctx context.Context, cmd CreateBurgerCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	b, err := burger.NewBurger(cmd.BurgerID())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.BurgerRepository().Add(ctx, b); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
