package http

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"burger/internal/core/application/usecases/commands"
	"burger/internal/core/application/usecases/queries"
	"burger/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// CommandHandler runs a write use case.
type CommandHandler[C any] interface {
	Handle(ctx context.Context, cmd C) error
}

// QueryHandler runs a read use case.
type QueryHandler[Q, R any] interface {
	Handle(ctx context.Context, query Q) (*R, error)
}

// Handlers groups the use cases served over HTTP.
type Handlers struct {
	// Command handlers
	CreateBurger     CommandHandler[commands.CreateBurgerCommand]
	SetBun           CommandHandler[commands.SetBunCommand]
	AddIngredient    CommandHandler[commands.AddIngredientCommand]
	RemoveIngredient CommandHandler[commands.RemoveIngredientCommand]
	MoveIngredient   CommandHandler[commands.MoveIngredientCommand]

	// Query handlers
	GetBurger        QueryHandler[queries.GetBurgerQuery, queries.GetBurgerQueryResponse]
	GetBurgerReceipt QueryHandler[queries.GetBurgerReceiptQuery, queries.GetBurgerReceiptQueryResponse]
	GetCatalog       QueryHandler[queries.GetCatalogQuery, queries.GetCatalogQueryResponse]
}

// Server translates HTTP requests into application use cases.
type Server struct {
	handlers Handlers
	logger   *slog.Logger
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(handlers Handlers, logger *slog.Logger) *Server {
	return &Server{
		handlers: handlers,
		logger:   logger.With("component", "http"),
	}
}

// Register mounts the API routes on e.
func (s *Server) Register(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.GET("/catalog", s.GetCatalog)

	api.POST("/burgers", s.CreateBurger)
	api.GET("/burgers/:id", s.GetBurger)
	api.GET("/burgers/:id/receipt", s.GetBurgerReceipt)
	api.PUT("/burgers/:id/bun", s.SetBun)
	api.POST("/burgers/:id/ingredients", s.AddIngredient)
	api.POST("/burgers/:id/ingredients/move", s.MoveIngredient)
	api.DELETE("/burgers/:id/ingredients/:index", s.RemoveIngredient)
}

// GetCatalog handles GET /api/v1/catalog.
func (s *Server) GetCatalog(ctx echo.Context) error {
	catalog, err := s.handlers.GetCatalog.Handle(ctx.Request().Context(), queries.NewGetCatalogQuery())
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, catalogFromReadModel(catalog))
}

// CreateBurger handles POST /api/v1/burgers. The identifier is generated here.
func (s *Server) CreateBurger(ctx echo.Context) error {
	burgerID := kernel.NewUUID()

	cmd, err := commands.NewCreateBurgerCommand(burgerID)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.handlers.CreateBurger.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedBurger{ID: burgerID.String()})
}

// GetBurger handles GET /api/v1/burgers/:id.
func (s *Server) GetBurger(ctx echo.Context) error {
	burgerID, err := burgerIDParam(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewGetBurgerQuery(burgerID)
	if err != nil {
		return s.fail(ctx, err)
	}

	b, err := s.handlers.GetBurger.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, burgerFromReadModel(b))
}

// GetBurgerReceipt handles GET /api/v1/burgers/:id/receipt.
func (s *Server) GetBurgerReceipt(ctx echo.Context) error {
	burgerID, err := burgerIDParam(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewGetBurgerReceiptQuery(burgerID)
	if err != nil {
		return s.fail(ctx, err)
	}

	receipt, err := s.handlers.GetBurgerReceipt.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, Receipt{
		Price:   receipt.Price.String(),
		Receipt: receipt.Receipt,
	})
}

// SetBun handles PUT /api/v1/burgers/:id/bun.
func (s *Server) SetBun(ctx echo.Context) error {
	burgerID, err := burgerIDParam(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	var body SetBunRequest
	if err = ctx.Bind(&body); err != nil {
		return s.fail(ctx, malformedBody(err))
	}

	cmd, err := commands.NewSetBunCommand(burgerID, body.Name)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.handlers.SetBun.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AddIngredient handles POST /api/v1/burgers/:id/ingredients.
func (s *Server) AddIngredient(ctx echo.Context) error {
	burgerID, err := burgerIDParam(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	var body AddIngredientRequest
	if err = ctx.Bind(&body); err != nil {
		return s.fail(ctx, malformedBody(err))
	}

	cmd, err := commands.NewAddIngredientCommand(burgerID, body.Name)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.handlers.AddIngredient.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RemoveIngredient handles DELETE /api/v1/burgers/:id/ingredients/:index.
func (s *Server) RemoveIngredient(ctx echo.Context) error {
	burgerID, err := burgerIDParam(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	index, err := strconv.Atoi(ctx.Param("index"))
	if err != nil {
		return s.fail(ctx, malformedParam("index", err))
	}

	cmd, err := commands.NewRemoveIngredientCommand(burgerID, index)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.handlers.RemoveIngredient.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// MoveIngredient handles POST /api/v1/burgers/:id/ingredients/move.
func (s *Server) MoveIngredient(ctx echo.Context) error {
	burgerID, err := burgerIDParam(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	var body MoveIngredientRequest
	if err = ctx.Bind(&body); err != nil {
		return s.fail(ctx, malformedBody(err))
	}
	if body.From == nil || body.To == nil {
		return s.fail(ctx, errMissingPositions)
	}

	cmd, err := commands.NewMoveIngredientCommand(burgerID, *body.From, *body.To)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.handlers.MoveIngredient.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func burgerIDParam(ctx echo.Context) (kernel.UUID, error) {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return kernel.UUID{}, malformedParam("id", err)
	}
	return id, nil
}
