// Package http exposes the ordering use cases as a JSON API and streams order
// events to admin dashboards as Server-Sent Events.
package http

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"ordering/internal/adapters/views"
	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/model/customer"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/menu"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/services"

	"github.com/labstack/echo/v4"
)

var _ ServerInterface = (*Server)(nil)

// OrderCreator handles order intake.
type OrderCreator interface {
	Handle(ctx context.Context, cmd commands.CreateOrderCommand) (commands.OrderResult, error)
}

// OrderTransitioner handles lifecycle transitions.
type OrderTransitioner interface {
	Handle(ctx context.Context, cmd commands.TransitionOrderCommand) (commands.OrderResult, error)
}

// OrderLister lists orders newest first.
type OrderLister interface {
	Handle(ctx context.Context, query queries.ListOrdersQuery) ([]queries.OrderResponse, error)
}

// StatsReader computes dashboard statistics.
type StatsReader interface {
	Handle(ctx context.Context, query queries.GetOrderStatsQuery) (services.OrderStats, error)
}

// PaymentLinkReader builds payment links for orders.
type PaymentLinkReader interface {
	Handle(ctx context.Context, query queries.GetPaymentLinkQuery) (queries.PaymentLinkResponse, error)
}

// MenuLister lists visible menu items.
type MenuLister interface {
	Handle(ctx context.Context, query queries.ListMenuQuery) ([]menu.Item, error)
}

// OTPRequester issues one-time codes.
type OTPRequester interface {
	Handle(ctx context.Context, cmd commands.RequestOTPCommand) error
}

// OTPVerifier checks one-time codes.
type OTPVerifier interface {
	Handle(ctx context.Context, cmd commands.VerifyOTPCommand) error
}

// ProfileCompleter stores the profile of a verified customer.
type ProfileCompleter interface {
	Handle(ctx context.Context, cmd commands.CompleteProfileCommand) (*customer.Customer, error)
}

// Handlers groups the use cases the server delegates to.
type Handlers struct {
	CreateOrder     OrderCreator
	TransitionOrder OrderTransitioner
	ListOrders      OrderLister
	OrderStats      StatsReader
	PaymentLink     PaymentLinkReader
	ListMenu        MenuLister
	RequestOTP      OTPRequester
	VerifyOTP       OTPVerifier
	CompleteProfile ProfileCompleter
}

// Server implements ServerInterface.
type Server struct {
	handlers  Handlers
	observers EventSubscriber
	logger    *slog.Logger
}

// NewServer creates the server.
func NewServer(handlers Handlers, observers EventSubscriber, logger *slog.Logger) *Server {
	return &Server{
		handlers:  handlers,
		observers: observers,
		logger:    logger.With("component", "http"),
	}
}

// RequestOTP handles POST /api/auth/request-otp.
//
//	@Summary	Send a one-time code to a phone
//	@Tags		auth
//	@Accept		json
//	@Produce	json
//	@Param		body	body		RequestOTPRequest	true	"phone"
//	@Success	200		{object}	MessageResponse
//	@Failure	400		{object}	Error
//	@Router		/api/auth/request-otp [post]
func (s *Server) RequestOTP(ctx echo.Context) error {
	var req RequestOTPRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewRequestOTPCommand(req.Phone)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err := s.handlers.RequestOTP.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, MessageResponse{Success: true, Message: "OTP sent successfully"})
}

// VerifyOTP handles POST /api/auth/verify-otp.
//
//	@Summary	Verify a one-time code
//	@Tags		auth
//	@Accept		json
//	@Produce	json
//	@Param		body	body		VerifyOTPRequest	true	"phone and code"
//	@Success	200		{object}	MessageResponse
//	@Failure	400		{object}	Error
//	@Router		/api/auth/verify-otp [post]
func (s *Server) VerifyOTP(ctx echo.Context) error {
	var req VerifyOTPRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewVerifyOTPCommand(req.Phone, req.OTP)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err := s.handlers.VerifyOTP.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, MessageResponse{Success: true, Message: "OTP verified successfully"})
}

// CompleteProfile handles POST /api/auth/complete-profile.
//
//	@Summary	Save the profile of a verified phone
//	@Tags		auth
//	@Accept		json
//	@Produce	json
//	@Param		body	body		CompleteProfileRequest	true	"profile"
//	@Success	200		{object}	CustomerEnvelope
//	@Failure	400		{object}	Error
//	@Router		/api/auth/complete-profile [post]
func (s *Server) CompleteProfile(ctx echo.Context) error {
	var req CompleteProfileRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCompleteProfileCommand(req.Phone, req.Name, req.Address)
	if err != nil {
		return s.fail(ctx, err)
	}
	c, err := s.handlers.CompleteProfile.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, CustomerEnvelope{Success: true, Customer: views.NewCustomer(c)})
}

// GetMenu handles GET /api/menu.
//
//	@Summary	List visible menu items
//	@Tags		menu
//	@Produce	json
//	@Success	200	{array}	views.MenuItem
//	@Router		/api/menu [get]
func (s *Server) GetMenu(ctx echo.Context) error {
	items, err := s.handlers.ListMenu.Handle(ctx.Request().Context(), queries.NewListMenuQuery())
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]views.MenuItem, len(items))
	for i, item := range items {
		response[i] = views.NewMenuItem(item)
	}
	return ctx.JSON(http.StatusOK, response)
}

// CreateOrder handles POST /api/orders.
//
//	@Summary	Place an order
//	@Tags		orders
//	@Accept		json
//	@Produce	json
//	@Param		body	body		CreateOrderRequest	true	"order"
//	@Success	201		{object}	OrderEnvelope
//	@Failure	400		{object}	Error
//	@Failure	404		{object}	Error
//	@Router		/api/orders [post]
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	ref := commands.CustomerRef{ID: req.CustomerID}
	if req.Customer != nil {
		ref.Phone = req.Customer.Phone
		ref.Name = req.Customer.Name
		ref.Address = req.Customer.Address
	}

	lines := make([]services.LineRequest, len(req.Items))
	for i, item := range req.Items {
		lines[i] = services.LineRequest{MenuItemID: item.MenuItemID, Qty: item.Qty}
	}

	var total *kernel.Money
	if req.TotalAmount != nil {
		m, err := kernel.NewMoney(*req.TotalAmount)
		if err != nil {
			return s.fail(ctx, err)
		}
		total = &m
	}

	cmd, err := commands.NewCreateOrderCommand(ref, order.Mode(strings.ToUpper(req.Mode)), lines, total)
	if err != nil {
		return s.fail(ctx, err)
	}

	result, err := s.handlers.CreateOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, OrderEnvelope{Success: true, Order: views.NewOrder(result.Order, result.Customer)})
}

// GetOrders handles GET /api/orders. The status query parameter may be
// repeated or comma separated.
//
//	@Summary	List orders newest first
//	@Tags		orders
//	@Produce	json
//	@Param		status	query	string	false	"status filter"
//	@Success	200		{array}	views.Order
//	@Failure	400		{object}	Error
//	@Router		/api/orders [get]
func (s *Server) GetOrders(ctx echo.Context) error {
	var statuses []order.Status
	for _, raw := range ctx.QueryParams()["status"] {
		for _, name := range strings.Split(raw, ",") {
			name = strings.TrimSpace(name)
			if name == "" {
				continue
			}
			status, err := order.ParseStatus(strings.ToUpper(name))
			if err != nil {
				return s.fail(ctx, err)
			}
			statuses = append(statuses, status)
		}
	}

	query, err := queries.NewListOrdersQuery(statuses...)
	if err != nil {
		return s.fail(ctx, err)
	}

	orders, err := s.handlers.ListOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]views.Order, len(orders))
	for i, o := range orders {
		response[i] = views.NewOrder(o.Order, o.Customer)
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetOrderStats handles GET /api/orders/stats.
//
//	@Summary	Dashboard statistics
//	@Tags		orders
//	@Produce	json
//	@Success	200	{object}	views.Stats
//	@Router		/api/orders/stats [get]
func (s *Server) GetOrderStats(ctx echo.Context) error {
	stats, err := s.handlers.OrderStats.Handle(ctx.Request().Context(), queries.NewGetOrderStatsQuery())
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, views.NewStats(stats))
}

// AcceptOrder handles POST /api/orders/{id}/accept.
//
//	@Summary	Accept a placed order
//	@Tags		orders
//	@Produce	json
//	@Param		id	path		int	true	"order id"
//	@Success	200	{object}	OrderEnvelope
//	@Failure	404	{object}	Error
//	@Failure	409	{object}	Error
//	@Failure	422	{object}	Error
//	@Router		/api/orders/{id}/accept [post]
func (s *Server) AcceptOrder(ctx echo.Context, id int64) error {
	cmd, err := commands.NewAcceptOrderCommand(order.ID(id))
	return s.transition(ctx, cmd, err)
}

// AdvanceOrder handles POST /api/orders/{id}/advance.
//
//	@Summary	Move an order to its next status
//	@Tags		orders
//	@Produce	json
//	@Param		id	path		int	true	"order id"
//	@Success	200	{object}	OrderEnvelope
//	@Failure	404	{object}	Error
//	@Failure	409	{object}	Error
//	@Failure	422	{object}	Error
//	@Router		/api/orders/{id}/advance [post]
func (s *Server) AdvanceOrder(ctx echo.Context, id int64) error {
	cmd, err := commands.NewAdvanceOrderCommand(order.ID(id))
	return s.transition(ctx, cmd, err)
}

// CancelOrder handles POST /api/orders/{id}/cancel.
//
//	@Summary	Cancel a placed order
//	@Tags		orders
//	@Produce	json
//	@Param		id	path		int	true	"order id"
//	@Success	200	{object}	OrderEnvelope
//	@Failure	404	{object}	Error
//	@Failure	409	{object}	Error
//	@Failure	422	{object}	Error
//	@Router		/api/orders/{id}/cancel [post]
func (s *Server) CancelOrder(ctx echo.Context, id int64) error {
	cmd, err := commands.NewCancelOrderCommand(order.ID(id))
	return s.transition(ctx, cmd, err)
}

// GetPaymentLink handles GET /api/orders/{id}/payment-link.
//
//	@Summary	UPI payment link for an order total
//	@Tags		orders
//	@Produce	json
//	@Param		id	path		int	true	"order id"
//	@Success	200	{object}	PaymentLink
//	@Failure	400	{object}	Error
//	@Failure	404	{object}	Error
//	@Router		/api/orders/{id}/payment-link [get]
func (s *Server) GetPaymentLink(ctx echo.Context, id int64) error {
	query, err := queries.NewGetPaymentLinkQuery(order.ID(id))
	if err != nil {
		return s.fail(ctx, err)
	}

	link, err := s.handlers.PaymentLink.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, PaymentLink{
		OrderID:   int64(link.OrderID),
		OrderCode: link.Code.String(),
		Amount:    link.Amount.String(),
		UPIURL:    link.URL,
	})
}

// UpdateOrderStatus handles PATCH /api/orders/{id}/status.
//
//	@Summary	Move an order to the given status
//	@Tags		orders
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int					true	"order id"
//	@Param		body	body		UpdateStatusRequest	true	"target status"
//	@Success	200		{object}	OrderEnvelope
//	@Failure	400		{object}	Error
//	@Failure	404		{object}	Error
//	@Failure	409		{object}	Error
//	@Failure	422		{object}	Error
//	@Router		/api/orders/{id}/status [patch]
func (s *Server) UpdateOrderStatus(ctx echo.Context, id int64) error {
	var req UpdateStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	target, err := order.ParseStatus(strings.ToUpper(strings.TrimSpace(req.Status)))
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewTransitionOrderToCommand(order.ID(id), target)
	return s.transition(ctx, cmd, err)
}

func (s *Server) transition(ctx echo.Context, cmd commands.TransitionOrderCommand, cmdErr error) error {
	if cmdErr != nil {
		return s.fail(ctx, cmdErr)
	}

	result, err := s.handlers.TransitionOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, OrderEnvelope{Success: true, Order: views.NewOrder(result.Order, result.Customer)})
}
