package ports

import (
	"context"
)

// UnitOfWorkFactory hands out a fresh UnitOfWork per command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork scopes one transaction. Repositories it returns after Begin write
// inside that transaction until Commit or Rollback.
type UnitOfWork interface {
	Begin(ctx context.Context) error

	// Commit fails when Begin was not called or the database rejects the commit.
	Commit(ctx context.Context) error

	// Rollback fails when no transaction is open; deferring it after Commit is safe.
	Rollback(ctx context.Context) error

	BurgerRepository() BurgerRepository
}
