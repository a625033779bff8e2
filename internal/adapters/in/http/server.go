package http

import (
	"context"
	"encoding/base64"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"parcelhub/internal/core/application/usecases/commands"
	"parcelhub/internal/core/application/usecases/queries"
	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/core/domain/model/order"
	"parcelhub/internal/core/domain/services"
	"parcelhub/internal/core/ports"
	"parcelhub/internal/pkg/errs"
)

// NotificationDispatcher is the slice of the notification subsystem the HTTP
// edge needs: the automatic enqueue fired after a successful creation.
type NotificationDispatcher interface {
	EnqueueCreated(ctx context.Context, aggregate *order.Order) error
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler commands.CreateOrderCommandHandler
	acceptOrderHandler commands.AcceptOrderCommandHandler
	deleteOrderHandler commands.DeleteOrderCommandHandler
	resendHandler      commands.ResendNotificationCommandHandler

	// Query handlers
	getOrderByIDHandler         queries.GetOrderByIDQueryHandler
	getOrderByURLHandler        queries.GetOrderByURLQueryHandler
	getOrdersByRecipientHandler queries.GetOrdersByRecipientQueryHandler

	dispatcher NotificationDispatcher
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	acceptOrderHandler commands.AcceptOrderCommandHandler,
	deleteOrderHandler commands.DeleteOrderCommandHandler,
	resendHandler commands.ResendNotificationCommandHandler,
	getOrderByIDHandler queries.GetOrderByIDQueryHandler,
	getOrderByURLHandler queries.GetOrderByURLQueryHandler,
	getOrdersByRecipientHandler queries.GetOrdersByRecipientQueryHandler,
	dispatcher NotificationDispatcher,
) *Server {
	return &Server{
		createOrderHandler:          createOrderHandler,
		acceptOrderHandler:          acceptOrderHandler,
		deleteOrderHandler:          deleteOrderHandler,
		resendHandler:               resendHandler,
		getOrderByIDHandler:         getOrderByIDHandler,
		getOrderByURLHandler:        getOrderByURLHandler,
		getOrdersByRecipientHandler: getOrdersByRecipientHandler,
		dispatcher:                  dispatcher,
	}
}

// RegisterRoutes wires all endpoints onto the Echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	staff := e.Group("/api/v1/orders", CallerIdentity())
	staff.POST("", s.CreateOrder)
	staff.GET("", s.ListOrders)
	staff.GET("/:id", s.GetOrder)
	staff.DELETE("/:id", s.DeleteOrder)
	staff.POST("/:id/notifications", s.ResendNotification)

	public := e.Group("/api/v1/public/orders")
	public.GET("/:url", s.GetPublicOrder)
	public.POST("/accept", s.AcceptOrder)
}

// CreateOrder handles POST /api/v1/orders - registers a new parcel.
// The pickup notification is enqueued strictly after the order committed;
// an enqueue failure is logged and the creation still answers 201, with the
// resend endpoint as the recovery path.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body", nil)
	}

	condominiumID, err := kernel.UUIDFromString(req.CondominiumID)
	if err != nil {
		return badRequest(ctx, "Invalid condominium id", nil)
	}

	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), condominiumID, req.AddresseeName, req.PhoneNumber, req.Code)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error(), nil)
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.mapError(ctx, err)
	}

	if enqueueErr := s.dispatcher.EnqueueCreated(ctx.Request().Context(), created); enqueueErr != nil {
		ctx.Logger().Warnf("order %s created but notification enqueue failed: %v",
			created.ID().String(), enqueueErr)
	}

	return ctx.JSON(http.StatusCreated, orderViewFromAggregate(created))
}

// GetOrder handles GET /api/v1/orders/:id.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id", nil)
	}

	query, err := queries.NewGetOrderByIDQuery(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order id", nil)
	}

	resp, err := s.getOrderByIDHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.mapError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderViewFromResponse(resp))
}

// ListOrders handles GET /api/v1/orders - lists the caller's parcels.
// The recipient scope comes from the resolved caller identity, never from
// request parameters.
func (s *Server) ListOrders(ctx echo.Context) error {
	query, err := queries.NewGetOrdersByRecipientQuery(callerPhone(ctx))
	if err != nil {
		return badRequest(ctx, "Invalid caller identity", nil)
	}

	resp, err := s.getOrdersByRecipientHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.mapError(ctx, err)
	}

	views := make([]OrderView, len(resp))
	for i, item := range resp {
		views[i] = orderViewFromResponse(item)
	}

	return ctx.JSON(http.StatusOK, views)
}

// DeleteOrder handles DELETE /api/v1/orders/:id.
// Deletion is idempotent: repeating the call answers 204 again.
func (s *Server) DeleteOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id", nil)
	}

	cmd, err := commands.NewDeleteOrderCommand(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order id", nil)
	}

	if err = s.deleteOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.mapError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ResendNotification handles POST /api/v1/orders/:id/notifications.
// Answers 409 while a previous job for the order is still outstanding.
func (s *Server) ResendNotification(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id", nil)
	}

	cmd, err := commands.NewResendNotificationCommand(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order id", nil)
	}

	if err = s.resendHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.mapError(ctx, err)
	}

	return ctx.NoContent(http.StatusAccepted)
}

// GetPublicOrder handles GET /api/v1/public/orders/:url.
func (s *Server) GetPublicOrder(ctx echo.Context) error {
	query, err := queries.NewGetOrderByURLQuery(ctx.Param("url"))
	if err != nil {
		return badRequest(ctx, "Invalid url token", nil)
	}

	resp, err := s.getOrderByURLHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.mapError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, publicOrderViewFromResponse(resp))
}

// AcceptOrder handles POST /api/v1/public/orders/accept - the pickup
// confirmation. Distinguishes 404 (unknown url), 403 (wrong code),
// 409 (already accepted) and 400 (signature violations).
func (s *Server) AcceptOrder(ctx echo.Context) error {
	var req AcceptOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body", nil)
	}

	signature, err := base64.StdEncoding.DecodeString(req.Signature)
	if err != nil {
		return badRequest(ctx, "Signature must be base64 encoded", nil)
	}

	cmd, err := commands.NewAcceptOrderCommand(req.URL, req.Code, signature)
	if err != nil {
		return badRequest(ctx, "Invalid acceptance data: "+err.Error(), nil)
	}

	delivered, err := s.acceptOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.mapError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderViewFromAggregate(delivered))
}

// mapError translates domain errors into HTTP status codes.
func (s *Server) mapError(ctx echo.Context, err error) error {
	var fileErr *services.FileValidationError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, ErrorResponse{
			Code:    http.StatusNotFound,
			Message: "Order not found",
		})
	case errors.Is(err, order.ErrCodeMismatch):
		return ctx.JSON(http.StatusForbidden, ErrorResponse{
			Code:    http.StatusForbidden,
			Message: "Pickup code does not match",
		})
	case errors.Is(err, order.ErrOrderAlreadyAccepted):
		return ctx.JSON(http.StatusConflict, ErrorResponse{
			Code:    http.StatusConflict,
			Message: "Order has already been accepted",
		})
	case errors.Is(err, ports.ErrDuplicateJob):
		return ctx.JSON(http.StatusConflict, ErrorResponse{
			Code:    http.StatusConflict,
			Message: "A notification for this order is already queued",
		})
	case errors.As(err, &fileErr):
		return badRequest(ctx, "Signature validation failed", fileErr.Violations)
	case errors.Is(err, errs.ErrValueIsRequired), errors.Is(err, errs.ErrValueIsInvalid):
		return badRequest(ctx, err.Error(), nil)
	default:
		ctx.Logger().Errorf("request failed: %v", err)
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Internal server error",
		})
	}
}

func badRequest(ctx echo.Context, message string, violations []string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:       http.StatusBadRequest,
		Message:    message,
		Violations: violations,
	})
}
