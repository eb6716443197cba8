package cmd

import (
	"log/slog"

	httpadapter "burger/internal/adapters/in/http"
	"burger/internal/adapters/out/catalog/yamlcatalog"
	"burger/internal/adapters/out/postgres"
	"burger/internal/core/application/usecases/commands"
	"burger/internal/core/application/usecases/queries"
	"burger/internal/core/ports"
	"burger/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	cfg        Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	catalog    *yamlcatalog.Catalog
	logger     *slog.Logger
}

func NewCompositionRoot(cfg Config, gormDB *gorm.DB, catalog *yamlcatalog.Catalog, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		cfg:        cfg,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		catalog:    catalog,
		logger:     logger,
	}
}

func (c *CompositionRoot) burgerUoWFactory() commands.BurgerUoWFactory {
	return FuncBurgerUoWFactory(func() commands.BurgerUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateBurgerCommandHandler() commands.CreateBurgerCommandHandler {
	return commands.NewCreateBurgerCommandHandler(c.burgerUoWFactory())
}

func (c *CompositionRoot) CreateSetBunCommandHandler() commands.SetBunCommandHandler {
	return commands.NewSetBunCommandHandler(c.burgerUoWFactory(), c.catalog)
}

func (c *CompositionRoot) CreateAddIngredientCommandHandler() commands.AddIngredientCommandHandler {
	return commands.NewAddIngredientCommandHandler(c.burgerUoWFactory(), c.catalog)
}

func (c *CompositionRoot) CreateRemoveIngredientCommandHandler() commands.RemoveIngredientCommandHandler {
	return commands.NewRemoveIngredientCommandHandler(c.burgerUoWFactory())
}

func (c *CompositionRoot) CreateMoveIngredientCommandHandler() commands.MoveIngredientCommandHandler {
	return commands.NewMoveIngredientCommandHandler(c.burgerUoWFactory())
}

func (c *CompositionRoot) CreateGetBurgerQueryHandler() queries.GetBurgerQueryHandler {
	return queries.NewGetBurgerQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetBurgerReceiptQueryHandler() queries.GetBurgerReceiptQueryHandler {
	return queries.NewGetBurgerReceiptQueryHandler(FuncBurgerReader(func() ports.BurgerRepository {
		return c.uowFactory.Create().BurgerRepository()
	}))
}

func (c *CompositionRoot) CreateGetCatalogQueryHandler() queries.GetCatalogQueryHandler {
	return queries.NewGetCatalogQueryHandler(c.catalog, c.catalog)
}

func (c *CompositionRoot) CreateHTTPServer() *httpadapter.Server {
	createBurger := c.CreateCreateBurgerCommandHandler()
	setBun := c.CreateSetBunCommandHandler()
	addIngredient := c.CreateAddIngredientCommandHandler()
	removeIngredient := c.CreateRemoveIngredientCommandHandler()
	moveIngredient := c.CreateMoveIngredientCommandHandler()

	return httpadapter.NewServer(httpadapter.Handlers{
		CreateBurger:     &createBurger,
		SetBun:           &setBun,
		AddIngredient:    &addIngredient,
		RemoveIngredient: &removeIngredient,
		MoveIngredient:   &moveIngredient,
		GetBurger:        c.CreateGetBurgerQueryHandler(),
		GetBurgerReceipt: c.CreateGetBurgerReceiptQueryHandler(),
		GetCatalog:       c.CreateGetCatalogQueryHandler(),
	}, c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.catalog, c.cfg.CatalogReloadSchedule, c.logger)
}

type FuncBurgerUoWFactory func() commands.BurgerUoW

func (f FuncBurgerUoWFactory) Create() commands.BurgerUoW {
	return f()
}

type FuncBurgerReader func() ports.BurgerRepository

func (f FuncBurgerReader) BurgerRepository() ports.BurgerRepository {
	return f()
}
