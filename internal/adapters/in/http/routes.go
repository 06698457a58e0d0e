package http

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// ServerInterface lists the operations of the ordering API.
type ServerInterface interface {
	// (POST /api/auth/request-otp)
	RequestOTP(ctx echo.Context) error
	// (POST /api/auth/verify-otp)
	VerifyOTP(ctx echo.Context) error
	// (POST /api/auth/complete-profile)
	CompleteProfile(ctx echo.Context) error
	// (GET /api/menu)
	GetMenu(ctx echo.Context) error
	// (POST /api/orders)
	CreateOrder(ctx echo.Context) error
	// (GET /api/orders)
	GetOrders(ctx echo.Context) error
	// (GET /api/orders/stats)
	GetOrderStats(ctx echo.Context) error
	// (POST /api/orders/{id}/accept)
	AcceptOrder(ctx echo.Context, id int64) error
	// (POST /api/orders/{id}/advance)
	AdvanceOrder(ctx echo.Context, id int64) error
	// (POST /api/orders/{id}/cancel)
	CancelOrder(ctx echo.Context, id int64) error
	// (GET /api/orders/{id}/payment-link)
	GetPaymentLink(ctx echo.Context, id int64) error
	// (PATCH /api/orders/{id}/status)
	UpdateOrderStatus(ctx echo.Context, id int64) error
	// (GET /api/admin/events)
	StreamAdminEvents(ctx echo.Context) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

func bindOrderID(ctx echo.Context) (int64, error) {
	var id int64
	err := runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter id: %s", err))
	}
	return id, nil
}

// AcceptOrder converts echo context to params.
func (w *ServerInterfaceWrapper) AcceptOrder(ctx echo.Context) error {
	id, err := bindOrderID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.AcceptOrder(ctx, id)
}

// AdvanceOrder converts echo context to params.
func (w *ServerInterfaceWrapper) AdvanceOrder(ctx echo.Context) error {
	id, err := bindOrderID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.AdvanceOrder(ctx, id)
}

// CancelOrder converts echo context to params.
func (w *ServerInterfaceWrapper) CancelOrder(ctx echo.Context) error {
	id, err := bindOrderID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.CancelOrder(ctx, id)
}

// GetPaymentLink converts echo context to params.
func (w *ServerInterfaceWrapper) GetPaymentLink(ctx echo.Context) error {
	id, err := bindOrderID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.GetPaymentLink(ctx, id)
}

// UpdateOrderStatus converts echo context to params.
func (w *ServerInterfaceWrapper) UpdateOrderStatus(ctx echo.Context) error {
	id, err := bindOrderID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.UpdateOrderStatus(ctx, id)
}

// EchoRouter is satisfied by both *echo.Echo and *echo.Group.
type EchoRouter interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PATCH(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the router.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

// RegisterHandlersWithBaseURL registers the routes under baseURL.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	wrapper := ServerInterfaceWrapper{Handler: si}

	router.POST(baseURL+"/api/auth/request-otp", si.RequestOTP)
	router.POST(baseURL+"/api/auth/verify-otp", si.VerifyOTP)
	router.POST(baseURL+"/api/auth/complete-profile", si.CompleteProfile)
	router.GET(baseURL+"/api/menu", si.GetMenu)
	router.POST(baseURL+"/api/orders", si.CreateOrder)
	router.GET(baseURL+"/api/orders", si.GetOrders)
	router.GET(baseURL+"/api/orders/stats", si.GetOrderStats)
	router.POST(baseURL+"/api/orders/:id/accept", wrapper.AcceptOrder)
	router.POST(baseURL+"/api/orders/:id/advance", wrapper.AdvanceOrder)
	router.POST(baseURL+"/api/orders/:id/cancel", wrapper.CancelOrder)
	router.GET(baseURL+"/api/orders/:id/payment-link", wrapper.GetPaymentLink)
	router.PATCH(baseURL+"/api/orders/:id/status", wrapper.UpdateOrderStatus)
	router.GET(baseURL+"/api/admin/events", si.StreamAdminEvents)
}
