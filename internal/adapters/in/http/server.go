package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/application/usecases/queries"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/generated/servers"
	"foodorder/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

type (
	CreateOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CreateOrderCommand) (order.OrderID, error)
	}
	AddOrderItemHandler interface {
		Handle(ctx context.Context, cmd commands.AddOrderItemCommand) (order.OrderItemID, error)
	}
	RemoveOrderItemHandler interface {
		Handle(ctx context.Context, cmd commands.RemoveOrderItemCommand) error
	}
	UpdateOrderStatusHandler interface {
		Handle(ctx context.Context, cmd commands.UpdateOrderStatusCommand) error
	}
	ApplyDiscountHandler interface {
		Handle(ctx context.Context, cmd commands.ApplyDiscountCommand) error
	}
	GetOrderHandler interface {
		Handle(ctx context.Context, query queries.GetOrderQuery) (order.Snapshot, error)
	}
	GetActiveOrdersHandler interface {
		Handle(ctx context.Context, query queries.GetActiveOrdersQuery) ([]order.Snapshot, error)
	}
)

// Handlers groups the use cases the HTTP API dispatches to.
type Handlers struct {
	CreateOrder       CreateOrderHandler
	AddOrderItem      AddOrderItemHandler
	RemoveOrderItem   RemoveOrderItemHandler
	UpdateOrderStatus UpdateOrderStatusHandler
	ApplyDiscount     ApplyDiscountHandler
	GetOrder          GetOrderHandler
	GetActiveOrders   GetActiveOrdersHandler
}

// Server implements servers.ServerInterface on top of the order use cases.
type Server struct {
	handlers Handlers
	logger   *slog.Logger
}

var _ servers.ServerInterface = (*Server)(nil)

func NewServer(handlers Handlers, logger *slog.Logger) *Server {
	return &Server{
		handlers: handlers,
		logger:   logger.With("component", "http_server"),
	}
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body servers.CreateOrderJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	customerID, err := kernel.UUIDFromBytes(body.CustomerId[:])
	if err != nil {
		return s.fail(ctx, err)
	}
	restaurantID, err := kernel.UUIDFromBytes(body.RestaurantId[:])
	if err != nil {
		return s.fail(ctx, err)
	}

	drafts := make([]commands.ItemDraft, 0, len(body.Items))
	for _, item := range body.Items {
		drafts = append(drafts, toItemDraft(item))
	}

	cmd, err := commands.NewCreateOrderCommand(customerID, restaurantID, drafts, commands.OrderDetails{
		DeliveryAddress:    body.DeliveryAddress,
		DeliveryFeeInCents: body.DeliveryFeeInCents,
		DiscountInCents:    body.DiscountInCents,
		Notes:              body.Notes,
	})
	if err != nil {
		return s.fail(ctx, err)
	}

	orderID, err := s.handlers.CreateOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.CreatedOrder{OrderId: orderID.UUID().Bytes()})
}

// GetActiveOrders handles GET /api/v1/orders/active.
func (s *Server) GetActiveOrders(ctx echo.Context) error {
	snapshots, err := s.handlers.GetActiveOrders.Handle(ctx.Request().Context(), queries.NewGetActiveOrdersQuery())
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, snapshots)
}

// GetOrder handles GET /api/v1/orders/{orderId}.
func (s *Server) GetOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	id, err := toOrderID(orderId)
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	snapshot, err := s.handlers.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, snapshot)
}

// AddOrderItem handles POST /api/v1/orders/{orderId}/items.
func (s *Server) AddOrderItem(ctx echo.Context, orderId openapi_types.UUID) error {
	var body servers.AddOrderItemJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	id, err := toOrderID(orderId)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewAddOrderItemCommand(id, toItemDraft(body))
	if err != nil {
		return s.fail(ctx, err)
	}

	itemID, err := s.handlers.AddOrderItem.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.CreatedOrderItem{OrderItemId: itemID.UUID().Bytes()})
}

// RemoveOrderItem handles DELETE /api/v1/orders/{orderId}/items/{itemId}.
func (s *Server) RemoveOrderItem(ctx echo.Context, orderId openapi_types.UUID, itemId openapi_types.UUID) error {
	id, err := toOrderID(orderId)
	if err != nil {
		return s.fail(ctx, err)
	}

	rawItemID, err := kernel.UUIDFromBytes(itemId[:])
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewRemoveOrderItemCommand(id, order.OrderItemIDFromUUID(rawItemID))
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.handlers.RemoveOrderItem.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateOrderStatus handles PUT /api/v1/orders/{orderId}/status.
func (s *Server) UpdateOrderStatus(ctx echo.Context, orderId openapi_types.UUID) error {
	var body servers.UpdateOrderStatusJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	id, err := toOrderID(orderId)
	if err != nil {
		return s.fail(ctx, err)
	}

	status, err := order.ParseStatus(string(body.Status))
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(id, status)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.handlers.UpdateOrderStatus.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ApplyDiscount handles PUT /api/v1/orders/{orderId}/discount.
func (s *Server) ApplyDiscount(ctx echo.Context, orderId openapi_types.UUID) error {
	var body servers.ApplyDiscountJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	id, err := toOrderID(orderId)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewApplyDiscountCommand(id, body.DiscountInCents)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.handlers.ApplyDiscount.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// fail maps validation failures to 400, missing orders to 404 and anything
// else to a logged 500 that does not leak the cause.
func (s *Server) fail(ctx echo.Context, err error) error {
	switch {
	case errs.IsValidationError(err):
		return badRequest(ctx, err.Error())
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, servers.Error{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	default:
		s.logger.ErrorContext(ctx.Request().Context(), "request failed",
			"method", ctx.Request().Method,
			"path", ctx.Path(),
			"error", err)
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Internal server error",
		})
	}
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, servers.Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func toOrderID(id openapi_types.UUID) (order.OrderID, error) {
	raw, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return order.OrderID{}, err
	}
	return order.OrderIDFromUUID(raw), nil
}

func toItemDraft(item servers.NewOrderItem) commands.ItemDraft {
	return commands.ItemDraft{
		Name:             item.Name,
		Quantity:         item.Quantity,
		UnitPriceInCents: item.UnitPriceInCents,
		Notes:            item.Notes,
	}
}
