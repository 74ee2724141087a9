package http

import (
	"context"
	"net/http"

	"github.com/landifrancesco/TradeStatEngine/internal/service"
	"github.com/landifrancesco/TradeStatEngine/pkg/middleware"

	goValidator "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type HttpAPIHandler struct {
	echo      *echo.Echo
	validator *goValidator.Validate
	service   *service.Service
}

func NewHttpAPIHandler(ctx context.Context, echo *echo.Echo, validator *goValidator.Validate, service *service.Service) *HttpAPIHandler {
	return &HttpAPIHandler{
		echo:      echo,
		validator: validator,
		service:   service,
	}
}

func (h *HttpAPIHandler) SetupRoutes() {
	h.echo.Use(middleware.NewRateLimiterMiddleware())

	base := h.echo.Group("/api")
	base.GET("/health", h.health)
	h.SetupAccounts(base)
	h.SetupStats(base)
}

func (h *HttpAPIHandler) health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "OK"})
}

// bindAndValidate decodes query params into req and validates it, writing the
// 400 response itself. It reports whether the handler should proceed.
func (h *HttpAPIHandler) bindAndValidate(c echo.Context, req interface{}) bool {
	if err := c.Bind(req); err != nil {
		_ = c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
		return false
	}
	if err := h.validator.Struct(req); err != nil {
		_ = c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		return false
	}
	return true
}
