// Package postgres provides the GORM-based Unit of Work used by the burger use cases.
//
// Every command handler creates its own unit of work, begins a transaction, loads
// the burger through BurgerRepository, mutates it and commits:
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer uow.Rollback(ctx) //nolint:errcheck
//
//	b, err := uow.BurgerRepository().Get(ctx, id)
//	if err != nil {
//	    return err
//	}
//	if err := b.RemoveIngredient(0); err != nil {
//	    return err
//	}
//	if err := uow.BurgerRepository().Update(ctx, b); err != nil {
//	    return err
//	}
//	return uow.Commit(ctx)
//
// Repositories obtained before Begin use the plain connection and auto-commit.
//
// Update is optimistic: it fails with *errs.VersionIsInvalidError when another
// transaction changed the burger after this unit of work loaded it.
package postgres

import (
	"context"

	"burger/internal/adapters/out/postgres/burgerrepo"
	"burger/internal/core/domain/model/kernel"
	"burger/internal/core/ports"

	"gorm.io/gorm"
)

// Migrate creates or updates the tables used by the burger repository.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&burgerrepo.BurgerDTO{}, &burgerrepo.IngredientDTO{})
}

// GormUnitOfWorkFactory creates UnitOfWork instances using GORM database connections.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work instances.
//
// Example:
//
//	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
//	if err != nil {
//	    log.Fatal("failed to connect database")
//	}
//	factory := NewGormUnitOfWorkFactory(db)
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork with its own transaction state and tracked aggregates.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:       f.db,
		versions: make(map[kernel.UUID]int64),
	}
}

// GormUnitOfWork coordinates a database transaction and remembers the stored
// version of every burger its repositories read or wrote, so that an update based
// on a stale read is rejected.
type GormUnitOfWork struct {
	db       *gorm.DB
	tx       *gorm.DB
	versions map[kernel.UUID]int64
}

// Begin starts a transaction. Calling Begin again while a transaction is open is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		err := uow.tx.Error
		uow.tx = nil
		return err
	}

	return nil
}

// Commit finalizes the current transaction.
// Returns gorm.ErrInvalidTransaction when no transaction is open.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards the current transaction.
// Returns gorm.ErrInvalidTransaction when no transaction is open, which makes it
// safe to defer after a successful Commit.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	clear(uow.versions)
	return err
}

// BurgerRepository returns a repository bound to the open transaction,
// or to the plain connection when none is open.
func (uow *GormUnitOfWork) BurgerRepository() ports.BurgerRepository {
	db := uow.db
	if uow.tx != nil {
		db = uow.tx
	}
	return burgerrepo.NewGormBurgerRepository(db, uow)
}

// TrackAggregate records the stored version of a burger after a read or write.
// Called by repositories.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, version int64) {
	uow.versions[id] = version
}

// TrackedVersion returns the last version recorded for id.
func (uow *GormUnitOfWork) TrackedVersion(id kernel.UUID) (int64, bool) {
	version, ok := uow.versions[id]
	return version, ok
}
