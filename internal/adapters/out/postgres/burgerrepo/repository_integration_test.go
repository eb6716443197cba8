package burgerrepo_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"burger/internal/adapters/out/postgres/burgerrepo"
	"burger/internal/core/domain/model/bun"
	"burger/internal/core/domain/model/burger"
	"burger/internal/core/domain/model/ingredient"
	"burger/internal/core/domain/model/kernel"
	"burger/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
// It records the tracked versions so that Update can read them back.
type MockAggregateTracker struct {
	mock.Mock
	versions map[kernel.UUID]int64
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, version int64) {
	m.Called(id, version)
	if m.versions == nil {
		m.versions = make(map[kernel.UUID]int64)
	}
	m.versions[id] = version
}

func (m *MockAggregateTracker) TrackedVersion(id kernel.UUID) (int64, bool) {
	version, ok := m.versions[id]
	return version, ok
}

// BurgerRepositoryIntegrationTestSuite verifies burger persistence against a real PostgreSQL.
type BurgerRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *burgerrepo.GormBurgerRepository
	tracker    *MockAggregateTracker
}

func (suite *BurgerRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&burgerrepo.BurgerDTO{}, &burgerrepo.IngredientDTO{}))
}

func (suite *BurgerRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE burgers, burger_ingredients").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = burgerrepo.NewGormBurgerRepository(suite.db, suite.tracker)
}

func (suite *BurgerRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *BurgerRepositoryIntegrationTestSuite) TestAdd_EmptyBurger_Success() {
	ctx := context.Background()
	b := suite.newBurger()

	suite.tracker.On("TrackAggregate", b.ID(), int64(0)).Twice()

	err := suite.repository.Add(ctx, b)
	suite.Require().NoError(err)

	suite.assertBurgerCount(1)
	restored, err := suite.repository.Get(ctx, b.ID())
	suite.Require().NoError(err)
	suite.True(restored.ID().IsEqual(b.ID()))
	_, hasBun := restored.Bun()
	suite.False(hasBun)
	suite.Empty(restored.Ingredients())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *BurgerRepositoryIntegrationTestSuite) TestAdd_FullBurger_RoundTripKeepsOrderAndPrice() {
	ctx := context.Background()
	b := suite.newBurger()
	suite.Require().NoError(b.SetBuns(bun.NewBun("test_bun", kernel.MoneyFromFloat(12.5))))
	suite.addIngredients(b, "sausage", "hot sauce", "cutlet")

	suite.tracker.On("TrackAggregate", b.ID(), int64(0)).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, b))

	restored, err := suite.repository.Get(ctx, b.ID())
	suite.Require().NoError(err)

	restoredBun, ok := restored.Bun()
	suite.Require().True(ok)
	suite.Equal("test_bun", restoredBun.Name())
	suite.Equal([]string{"sausage", "hot sauce", "cutlet"}, ingredientNames(restored))

	wantReceipt, err := b.Receipt()
	suite.Require().NoError(err)
	gotReceipt, err := restored.Receipt()
	suite.Require().NoError(err)
	suite.Equal(wantReceipt, gotReceipt)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *BurgerRepositoryIntegrationTestSuite) TestUpdate_MoveAndRemove_PersistsNewSequence() {
	ctx := context.Background()
	b := suite.newBurger()
	suite.addIngredients(b, "hot sauce", "sour cream", "dinosaur")

	suite.tracker.On("TrackAggregate", b.ID(), int64(0)).Once()
	suite.tracker.On("TrackAggregate", b.ID(), int64(1)).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, b))

	suite.Require().NoError(b.SetBuns(bun.NewBun("red bun", kernel.MoneyFromInt(300))))
	suite.Require().NoError(b.MoveIngredient(2, 0))
	suite.Require().NoError(b.RemoveIngredient(2))

	suite.Require().NoError(suite.repository.Update(ctx, b))

	restored, err := suite.repository.Get(ctx, b.ID())
	suite.Require().NoError(err)
	suite.Equal([]string{"dinosaur", "hot sauce"}, ingredientNames(restored))

	price, err := restored.Price()
	suite.Require().NoError(err)
	suite.Equal("900.00", price.String())

	var rows int64
	suite.Require().NoError(suite.db.Model(&burgerrepo.IngredientDTO{}).Where("burger_id = ?", b.ID().Bytes()).Count(&rows).Error)
	suite.Equal(int64(2), rows)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *BurgerRepositoryIntegrationTestSuite) TestUpdate_RemoveAllIngredients() {
	ctx := context.Background()
	b := suite.newBurger()
	suite.addIngredients(b, "cutlet")

	suite.tracker.On("TrackAggregate", b.ID(), int64(0)).Once()
	suite.tracker.On("TrackAggregate", b.ID(), int64(1)).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, b))

	suite.Require().NoError(b.RemoveIngredient(0))
	suite.Require().NoError(suite.repository.Update(ctx, b))

	restored, err := suite.repository.Get(ctx, b.ID())
	suite.Require().NoError(err)
	suite.Empty(restored.Ingredients())

	suite.tracker.AssertExpectations(suite.T())
}

// TestBurgerRepository_ErrorScenarios verifies error handling for various failure cases.
func (suite *BurgerRepositoryIntegrationTestSuite) TestBurgerRepository_ErrorScenarios() {
	testCases := []struct {
		name      string
		operation func() error
		expected  string
	}{
		{
			name: "get with invalid UUID",
			operation: func() error {
				_, err := suite.repository.Get(context.Background(), kernel.UUID{})
				return err
			},
			expected: "required",
		},
		{
			name: "get non-existent burger",
			operation: func() error {
				_, err := suite.repository.Get(context.Background(), kernel.NewUUID())
				return err
			},
			expected: "not found",
		},
		{
			name: "update burger that was never loaded",
			operation: func() error {
				return suite.repository.Update(context.Background(), suite.newBurger())
			},
			expected: "version is invalid",
		},
		{
			name: "add non constructed burger",
			operation: func() error {
				return suite.repository.Add(context.Background(), &burger.Burger{})
			},
			expected: "must be created",
		},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			err := tc.operation()
			suite.Require().Error(err)
			suite.Contains(strings.ToLower(err.Error()), strings.ToLower(tc.expected))
			suite.tracker.AssertExpectations(suite.T())
		})
	}
}

func (suite *BurgerRepositoryIntegrationTestSuite) TestGet_NotFound_ReturnsObjectNotFoundError() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
	suite.Equal("burger", notFoundErr.ParamName)
}

func (suite *BurgerRepositoryIntegrationTestSuite) TestUpdate_StaleVersion_ReturnsVersionIsInvalidError() {
	ctx := context.Background()
	b := suite.newBurger()
	suite.addIngredients(b, "cutlet")

	suite.tracker.On("TrackAggregate", b.ID(), int64(0)).Once()
	suite.Require().NoError(suite.repository.Add(ctx, b))

	// Another writer commits in between.
	suite.Require().NoError(suite.db.Exec("UPDATE burgers SET version = version + 1 WHERE id = ?", b.ID().Bytes()).Error)

	suite.Require().NoError(b.RemoveIngredient(0))
	err := suite.repository.Update(ctx, b)

	var versionErr *errs.VersionIsInvalidError
	suite.Require().ErrorAs(err, &versionErr)
	suite.Equal("burger version", versionErr.ParamName)
	suite.Contains(err.Error(), "expected 0, stored 1")

	var rows int64
	suite.Require().NoError(suite.db.Model(&burgerrepo.IngredientDTO{}).Where("burger_id = ?", b.ID().Bytes()).Count(&rows).Error)
	suite.Equal(int64(1), rows, "rejected update must not touch ingredients")

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *BurgerRepositoryIntegrationTestSuite) TestUpdate_DeletedAfterLoad_ReturnsObjectNotFoundError() {
	ctx := context.Background()
	b := suite.newBurger()

	suite.tracker.On("TrackAggregate", b.ID(), int64(0)).Once()
	suite.Require().NoError(suite.repository.Add(ctx, b))
	suite.Require().NoError(suite.db.Exec("DELETE FROM burgers WHERE id = ?", b.ID().Bytes()).Error)

	err := suite.repository.Update(ctx, b)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *BurgerRepositoryIntegrationTestSuite) newBurger() *burger.Burger {
	b, err := burger.NewBurger(kernel.NewUUID())
	suite.Require().NoError(err)
	return b
}

func (suite *BurgerRepositoryIntegrationTestSuite) addIngredients(b *burger.Burger, names ...string) {
	fixtures := map[string]struct {
		ingredientType ingredient.Type
		price          int64
	}{
		"hot sauce":  {ingredient.Sauce, 100},
		"sour cream": {ingredient.Sauce, 200},
		"cutlet":     {ingredient.Filling, 100},
		"dinosaur":   {ingredient.Filling, 200},
		"sausage":    {ingredient.Filling, 300},
	}

	for _, name := range names {
		f, ok := fixtures[name]
		suite.Require().True(ok, name)
		i, err := ingredient.NewIngredient(f.ingredientType, name, kernel.MoneyFromInt(f.price))
		suite.Require().NoError(err)
		suite.Require().NoError(b.AddIngredient(i))
	}
}

func (suite *BurgerRepositoryIntegrationTestSuite) assertBurgerCount(expected int64) {
	var count int64
	suite.Require().NoError(suite.db.Model(&burgerrepo.BurgerDTO{}).Count(&count).Error)
	suite.Equal(expected, count)
}

func ingredientNames(b *burger.Burger) []string {
	ingredients := b.Ingredients()
	result := make([]string, 0, len(ingredients))
	for _, i := range ingredients {
		result = append(result, i.Name())
	}
	return result
}

func TestBurgerRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(BurgerRepositoryIntegrationTestSuite))
}
