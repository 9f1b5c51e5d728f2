package http

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"driverapp/internal/core/domain/model/order"
	"driverapp/internal/devbackend/auth"
	"driverapp/internal/devbackend/usecases/commands"
	"driverapp/internal/devbackend/usecases/queries"
)

var _ ServerInterface = &Server{}

type (
	RegisterHandler interface {
		Handle(ctx context.Context, cmd commands.RegisterAccountCommand) (commands.AuthResult, error)
	}
	AuthenticateHandler interface {
		Handle(ctx context.Context, cmd commands.AuthenticateCommand) (commands.AuthResult, error)
	}
	LogoutHandler interface {
		Handle(ctx context.Context, cmd commands.LogoutCommand) error
	}
	AdvanceDeliveryHandler interface {
		Handle(ctx context.Context, cmd commands.AdvanceDeliveryCommand) (*order.Order, error)
	}
	ListDriverOrdersHandler interface {
		Handle(ctx context.Context, query queries.ListDriverOrdersQuery) ([]*order.Order, error)
	}
)

// Server implements ServerInterface on top of the backend use cases.
type Server struct {
	// Command handlers
	registerHandler     RegisterHandler
	authenticateHandler AuthenticateHandler
	logoutHandler       LogoutHandler
	advanceHandler      AdvanceDeliveryHandler

	// Query handlers
	listOrdersHandler ListDriverOrdersHandler
}

func NewServer(
	registerHandler RegisterHandler,
	authenticateHandler AuthenticateHandler,
	logoutHandler LogoutHandler,
	advanceHandler AdvanceDeliveryHandler,
	listOrdersHandler ListDriverOrdersHandler,
) *Server {
	return &Server{
		registerHandler:     registerHandler,
		authenticateHandler: authenticateHandler,
		logoutHandler:       logoutHandler,
		advanceHandler:      advanceHandler,
		listOrdersHandler:   listOrdersHandler,
	}
}

// Login handles POST /user/login.
func (s *Server) Login(ctx echo.Context) error {
	var req LoginRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewAuthenticateCommand(req.Email, req.Password)
	if err != nil {
		return err
	}

	result, err := s.authenticateHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, toAuthResponse(result))
}

// Register handles POST /user/register.
func (s *Server) Register(ctx echo.Context) error {
	var req RegisterRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewRegisterAccountCommand(req.Name, req.Email, req.Password, req.Role)
	if err != nil {
		return err
	}

	result, err := s.registerHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, toAuthResponse(result))
}

// Logout handles POST /user/logout. The token stays rejected until it expires.
func (s *Server) Logout(ctx echo.Context) error {
	claims, ok := auth.ClaimsFrom(ctx)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing bearer token")
	}

	var expiresAt time.Time
	if claims.ExpiresAt != nil {
		expiresAt = claims.ExpiresAt.Time
	}
	cmd, err := commands.NewLogoutCommand(claims.ID, expiresAt)
	if err != nil {
		return err
	}
	if err = s.logoutHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return ctx.NoContent(http.StatusOK)
}

// GetOrdersForDeliveryStaff handles GET /getOrdersForDeliveryStaff. A driver
// may only list their own orders.
func (s *Server) GetOrdersForDeliveryStaff(ctx echo.Context, params GetOrdersForDeliveryStaffParams) error {
	driverID, err := s.caller(ctx)
	if err != nil {
		return err
	}
	if params.UserID != driverID.String() {
		return echo.NewHTTPError(http.StatusForbidden, "userId does not match the token")
	}

	region, err := order.ParseRegion(params.Location)
	if err != nil {
		return err
	}
	query, err := queries.NewListDriverOrdersQuery(driverID, region)
	if err != nil {
		return err
	}

	orders, err := s.listOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	response := make([]Order, len(orders))
	for i, o := range orders {
		response[i] = toOrder(o)
	}
	return ctx.JSON(http.StatusOK, response)
}

// MarkOnDelivery handles PUT /onDelivered/{id}.
func (s *Server) MarkOnDelivery(ctx echo.Context, id int64) error {
	return s.advance(ctx, id, order.OnDelivery)
}

// MarkDelivered handles PUT /delivered/{id}.
func (s *Server) MarkDelivered(ctx echo.Context, id int64) error {
	return s.advance(ctx, id, order.Delivered)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

func (s *Server) advance(ctx echo.Context, id int64, target order.Status) error {
	driverID, err := s.caller(ctx)
	if err != nil {
		return err
	}

	cmd, err := commands.NewAdvanceDeliveryCommand(id, driverID, target)
	if err != nil {
		return err
	}

	updated, err := s.advanceHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, toOrder(updated))
}

func (s *Server) caller(ctx echo.Context) (uuid.UUID, error) {
	claims, ok := auth.ClaimsFrom(ctx)
	if !ok {
		return uuid.Nil, echo.NewHTTPError(http.StatusUnauthorized, "missing bearer token")
	}
	id, err := claims.UserID()
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusUnauthorized, "invalid token subject")
	}
	return id, nil
}

func toAuthResponse(r commands.AuthResult) AuthResponse {
	return AuthResponse{
		UserID: r.UserID,
		Name:   r.Name,
		Role:   r.Role,
		Token:  r.Token,
	}
}
