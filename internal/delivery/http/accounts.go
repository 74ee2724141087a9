package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func (h *HttpAPIHandler) SetupAccounts(base *echo.Group) {
	base.GET("/accounts", h.listAccounts)
}

func (h *HttpAPIHandler) listAccounts(c echo.Context) error {
	accounts, err := h.service.AccountService.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to list accounts"})
	}
	return c.JSON(http.StatusOK, accounts)
}
