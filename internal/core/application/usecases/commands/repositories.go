// Package commands contains the write operations on burgers.
// Every handler validates its command, opens a unit of work, loads or creates the
// burger, applies exactly one domain operation and commits.
package commands

import (
	"context"

	"burger/internal/core/domain/model/burger"
	"burger/internal/core/domain/model/kernel"
	"burger/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// BurgerRepoFactory provides access to the burger repository within a transaction.
	BurgerRepoFactory interface {
		BurgerRepository() ports.BurgerRepository
	}

	// BurgerUoW manages transactions for burger operations.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   b, err := uow.BurgerRepository().Get(ctx, id)
	//   // ... mutate b
	//   err = uow.BurgerRepository().Update(ctx, b)
	//
	//   err = uow.Commit(ctx)
	BurgerUoW interface {
		TxManager
		BurgerRepoFactory
	}

	// BurgerUoWFactory creates new burger unit of work instances.
	BurgerUoWFactory interface {
		Create() BurgerUoW
	}
)

// updateBurger loads a burger inside a new unit of work, applies mutate and saves it.
// The transaction is rolled back when any step fails.
func updateBurger(
	ctx context.Context,
	uowFactory BurgerUoWFactory,
	burgerID kernel.UUID,
	mutate func(b *burger.Burger) error,
) error {
	uow := uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.BurgerRepository()
	b, err := repo.Get(ctx, burgerID)
	if err != nil {
		return err
	}

	if err = mutate(b); err != nil {
		return err
	}

	if err = repo.Update(ctx, b); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
