package burgerrepo

import (
	"context"
	"errors"
	"fmt"

	"burger/internal/core/domain/model/burger"
	"burger/internal/core/domain/model/kernel"
	"burger/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormBurgerRepository implements BurgerRepository using GORM.
//
// Writes are optimistic: Get and Add record the stored version of a burger in the
// tracker, and Update only succeeds while the row still has that version.
type GormBurgerRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker remembers the stored version of every burger read or written
// within one unit of work.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, version int64)
	TrackedVersion(id kernel.UUID) (int64, bool)
}

// NewGormBurgerRepository creates a new GORM burger repository.
func NewGormBurgerRepository(db *gorm.DB, tracker aggregateTracker) *GormBurgerRepository {
	return &GormBurgerRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new burger together with its ingredients.
func (r *GormBurgerRepository) Add(ctx context.Context, aggregate *burger.Burger) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), dto.Version)
	return nil
}

// Update saves the bun and replaces the stored ingredient sequence.
// The burger must have been loaded or added through the same tracker. Returns
// *errs.VersionIsInvalidError when another transaction updated it in between.
func (r *GormBurgerRepository) Update(ctx context.Context, aggregate *burger.Burger) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	expected, ok := r.tracker.TrackedVersion(aggregate.ID())
	if !ok {
		return errs.NewVersionIsInvalidErrorWithCause("burger version",
			fmt.Errorf("burger %s was not loaded before update", aggregate.ID()))
	}

	dto := fromDomain(aggregate)
	db := r.db.WithContext(ctx)

	result := db.Model(&BurgerDTO{}).
		Where("id = ? AND version = ?", dto.ID, expected).
		Updates(map[string]any{
			"bun_name":  dto.BunName,
			"bun_price": dto.BunPrice,
			"version":   gorm.Expr("version + 1"),
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return r.staleOrMissing(db, aggregate.ID(), expected)
	}

	if err := db.Where("burger_id = ?", dto.ID).Delete(&IngredientDTO{}).Error; err != nil {
		return err
	}

	if len(dto.Ingredients) > 0 {
		if err := db.Create(&dto.Ingredients).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), expected+1)
	return nil
}

// Get retrieves a burger by ID with its ingredients in stored order.
func (r *GormBurgerRepository) Get(ctx context.Context, id kernel.UUID) (*burger.Burger, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto BurgerDTO
	if err := r.db.WithContext(ctx).
		Preload("Ingredients", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("burger", id.String())
		}
		return nil, err
	}

	aggregate, err := toDomain(dto)
	if err != nil {
		return nil, err
	}

	r.tracker.TrackAggregate(id, dto.Version)
	return aggregate, nil
}

func (r *GormBurgerRepository) staleOrMissing(db *gorm.DB, id kernel.UUID, expected int64) error {
	var current BurgerDTO
	err := db.Select("version").First(&current, "id = ?", id.Bytes()).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.NewObjectNotFoundError("burger", id.String())
	}
	if err != nil {
		return err
	}

	return errs.NewVersionIsInvalidErrorWithCause("burger version",
		fmt.Errorf("expected %d, stored %d", expected, current.Version))
}
