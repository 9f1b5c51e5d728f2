package http

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// ServerInterface lists one method per operation of the delivery contract.
type ServerInterface interface {
	// (POST /user/login)
	Login(ctx echo.Context) error
	// (POST /user/register)
	Register(ctx echo.Context) error
	// (POST /user/logout)
	Logout(ctx echo.Context) error
	// (GET /getOrdersForDeliveryStaff)
	GetOrdersForDeliveryStaff(ctx echo.Context, params GetOrdersForDeliveryStaffParams) error
	// (PUT /onDelivered/{id})
	MarkOnDelivery(ctx echo.Context, id int64) error
	// (PUT /delivered/{id})
	MarkDelivered(ctx echo.Context, id int64) error
	// (GET /health)
	Health(ctx echo.Context) error
}

// ServerInterfaceWrapper binds path and query parameters before calling the handler.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

func (w *ServerInterfaceWrapper) Login(ctx echo.Context) error {
	return w.Handler.Login(ctx)
}

func (w *ServerInterfaceWrapper) Register(ctx echo.Context) error {
	return w.Handler.Register(ctx)
}

func (w *ServerInterfaceWrapper) Logout(ctx echo.Context) error {
	return w.Handler.Logout(ctx)
}

func (w *ServerInterfaceWrapper) GetOrdersForDeliveryStaff(ctx echo.Context) error {
	var params GetOrdersForDeliveryStaffParams

	err := runtime.BindQueryParameter("form", true, true, "userId", ctx.QueryParams(), &params.UserID)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter userId: %s", err))
	}

	err = runtime.BindQueryParameter("form", true, true, "location", ctx.QueryParams(), &params.Location)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter location: %s", err))
	}

	return w.Handler.GetOrdersForDeliveryStaff(ctx, params)
}

func (w *ServerInterfaceWrapper) MarkOnDelivery(ctx echo.Context) error {
	id, err := bindOrderID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.MarkOnDelivery(ctx, id)
}

func (w *ServerInterfaceWrapper) MarkDelivered(ctx echo.Context) error {
	id, err := bindOrderID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.MarkDelivered(ctx, id)
}

func (w *ServerInterfaceWrapper) Health(ctx echo.Context) error {
	return w.Handler.Health(ctx)
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

// EchoRouter is satisfied by *echo.Echo and *echo.Group.
type EchoRouter interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers mounts every operation on router. bearer guards the
// operations that require a token.
func RegisterHandlers(router EchoRouter, si ServerInterface, bearer echo.MiddlewareFunc) {
	wrapper := ServerInterfaceWrapper{Handler: si}

	router.POST("/user/login", wrapper.Login)
	router.POST("/user/register", wrapper.Register)
	router.POST("/user/logout", wrapper.Logout, bearer)
	router.GET("/getOrdersForDeliveryStaff", wrapper.GetOrdersForDeliveryStaff, bearer)
	router.PUT("/onDelivered/:id", wrapper.MarkOnDelivery, bearer)
	router.PUT("/delivered/:id", wrapper.MarkDelivered, bearer)
	router.GET("/health", wrapper.Health)
}
