package deliveryapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/getkin/kin-openapi/routers/gorillamux"
	"github.com/oapi-codegen/runtime"

	"driverapp/api"
	"driverapp/internal/core/domain/model/order"
	"driverapp/internal/core/ports"
	"driverapp/internal/pkg/errs"
)

// Client implements ports.DeliveryAPI. The base URL is resolved on every call, so
// switching environments applies to the next request.
type Client struct {
	httpClient *http.Client
	envs       ports.EnvironmentProvider
	router     routers.Router
	logger     *slog.Logger
}

var _ ports.DeliveryAPI = (*Client)(nil)

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default client, which has no timeout.
func WithHTTPClient(c *http.Client) Option {
	return func(client *Client) { client.httpClient = c }
}

func WithLogger(l *slog.Logger) Option {
	return func(client *Client) { client.logger = l }
}

// NewClient builds a Client validating responses against the embedded contract.
func NewClient(envs ports.EnvironmentProvider, opts ...Option) (*Client, error) {
	if envs == nil {
		return nil, errs.NewValueIsRequiredError("environment provider")
	}
	doc, err := api.Load()
	if err != nil {
		return nil, err
	}
	router, err := gorillamux.NewRouter(doc)
	if err != nil {
		return nil, fmt.Errorf("build contract router: %w", err)
	}

	c := &Client{
		httpClient: &http.Client{},
		envs:       envs,
		router:     router,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = c.logger.With("component", "DeliveryAPIClient")
	return c, nil
}

func (c *Client) Login(ctx context.Context, email, password string) (ports.AuthResult, error) {
	var out authResponse
	err := c.do(ctx, call{
		operation: "login",
		method:    http.MethodPost,
		path:      "/user/login",
		body:      loginRequest{Email: email, Password: password},
		out:       &out,
	})
	if err != nil {
		return ports.AuthResult{}, err
	}
	return ports.AuthResult(out), nil
}

func (c *Client) Register(ctx context.Context, r ports.Registration) (ports.AuthResult, error) {
	var out authResponse
	err := c.do(ctx, call{
		operation: "register",
		method:    http.MethodPost,
		path:      "/user/register",
		body:      registerRequest{Name: r.Name, Email: r.Email, Password: r.Password, Role: r.Role},
		out:       &out,
	})
	if err != nil {
		return ports.AuthResult{}, err
	}
	return ports.AuthResult(out), nil
}

func (c *Client) Logout(ctx context.Context, token string) error {
	return c.do(ctx, call{
		operation: "logout",
		method:    http.MethodPost,
		path:      "/user/logout",
		token:     token,
	})
}

func (c *Client) GetOrdersForDeliveryStaff(
	ctx context.Context,
	token, userID string,
	region order.Region,
) ([]*order.Order, error) {
	query := url.Values{}
	for name, value := range map[string]string{"userId": userID, "location": region.String()} {
		frag, err := runtime.StyleParamWithLocation("form", true, name, runtime.ParamLocationQuery, value)
		if err != nil {
			return nil, errs.NewTransportError("list orders", err)
		}
		parsed, err := url.ParseQuery(frag)
		if err != nil {
			return nil, errs.NewTransportError("list orders", err)
		}
		for k, vs := range parsed {
			for _, v := range vs {
				query.Add(k, v)
			}
		}
	}

	var out []OrderDTO
	err := c.do(ctx, call{
		operation: "list orders",
		method:    http.MethodGet,
		path:      "/getOrdersForDeliveryStaff",
		query:     query,
		token:     token,
		out:       &out,
	})
	if err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(out))
	for _, dto := range out {
		o, err := dto.ToDomain()
		if err != nil {
			return nil, errs.NewTransportError("list orders", err)
		}
		orders = append(orders, o)
	}
	return orders, nil
}

func (c *Client) MarkOnDelivery(ctx context.Context, token string, orderID int64) error {
	return c.transition(ctx, "mark on delivery", "/onDelivered/", token, orderID)
}

func (c *Client) MarkDelivered(ctx context.Context, token string, orderID int64) error {
	return c.transition(ctx, "mark delivered", "/delivered/", token, orderID)
}

func (c *Client) transition(ctx context.Context, operation, prefix, token string, orderID int64) error {
	id, err := runtime.StyleParamWithLocation("simple", false, "id", runtime.ParamLocationPath, orderID)
	if err != nil {
		return errs.NewTransportError(operation, err)
	}
	return c.do(ctx, call{
		operation: operation,
		method:    http.MethodPut,
		path:      prefix + id,
		token:     token,
	})
}

type call struct {
	operation string
	method    string
	path      string
	query     url.Values
	token     string
	body      any
	// out is nil when the caller ignores the response body.
	out any
}

func (c *Client) do(ctx context.Context, cl call) error {
	base, err := c.envs.ActiveBaseURL(ctx)
	if err != nil {
		return err
	}
	target, err := url.Parse(strings.TrimRight(base, "/") + cl.path)
	if err != nil {
		return errs.NewTransportError(cl.operation, err)
	}
	if len(cl.query) > 0 {
		target.RawQuery = cl.query.Encode()
	}

	var reqBody io.Reader
	if cl.body != nil {
		raw, marshalErr := json.Marshal(cl.body)
		if marshalErr != nil {
			return errs.NewTransportError(cl.operation, marshalErr)
		}
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, cl.method, target.String(), reqBody)
	if err != nil {
		return errs.NewTransportError(cl.operation, err)
	}
	req.Header.Set("Accept", "application/json")
	if cl.body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if cl.token != "" {
		req.Header.Set("Authorization", "Bearer "+cl.token)
	}

	c.logger.DebugContext(ctx, "request", "operation", cl.operation, "method", cl.method, "url", target.String())
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errs.NewTransportError(cl.operation, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return errs.NewTransportError(cl.operation, err)
	}
	c.logger.DebugContext(ctx, "response", "operation", cl.operation, "status", resp.StatusCode)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		statusErr := errs.NewHTTPStatusError(cl.operation, resp.StatusCode, errorMessage(body))
		statusErr.URL = target.String()
		return statusErr
	}

	// The status code alone acknowledges calls whose answer is not read.
	if cl.out == nil {
		return nil
	}
	if err = c.validateResponse(ctx, req, base, resp, body); err != nil {
		return errs.NewTransportError(cl.operation, err)
	}
	if err = json.Unmarshal(body, cl.out); err != nil {
		return errs.NewTransportError(cl.operation, err)
	}
	return nil
}

// validateResponse checks a 2xx answer against the contract. The request is
// matched with the base URL's own path stripped, so backends mounted under a
// prefix still resolve to the documented routes.
func (c *Client) validateResponse(
	ctx context.Context,
	req *http.Request,
	base string,
	resp *http.Response,
	body []byte,
) error {
	routeReq := req.Clone(ctx)
	if baseURL, err := url.Parse(base); err == nil {
		routeReq.URL.Path = "/" + strings.TrimPrefix(
			strings.TrimPrefix(req.URL.Path, strings.TrimRight(baseURL.Path, "/")), "/")
	}

	route, pathParams, err := c.router.FindRoute(routeReq)
	if err != nil {
		return fmt.Errorf("route %s %s: %w", req.Method, routeReq.URL.Path, err)
	}

	input := &openapi3filter.ResponseValidationInput{
		RequestValidationInput: &openapi3filter.RequestValidationInput{
			Request:    routeReq,
			PathParams: pathParams,
			Route:      route,
		},
		Status: resp.StatusCode,
		Header: resp.Header,
	}
	input.SetBodyBytes(body)
	return openapi3filter.ValidateResponse(ctx, input)
}

func errorMessage(body []byte) string {
	var payload errorResponse
	if err := json.Unmarshal(body, &payload); err == nil && payload.Message != "" {
		return payload.Message
	}
	return strings.TrimSpace(string(body))
}
