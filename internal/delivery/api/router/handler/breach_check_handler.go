// Package handler contains the HTTP handlers of the API.
package handler

import (
	"log/slog"
	"net/http"

	"breachcheck/internal/delivery/api/response"
	domainerrors "breachcheck/internal/domain/errors"
	"breachcheck/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// BreachCheckHandlerParams holds dependencies for BreachCheckHandler, injected by Fx.
type BreachCheckHandlerParams struct {
	fx.In

	BreachCheckUC usecase.BreachCheckUsecase
	Logger        *slog.Logger
}

// BreachCheckHandler serves password breach checks
type BreachCheckHandler struct {
	breachCheckUC usecase.BreachCheckUsecase
	logger        *slog.Logger
}

// NewBreachCheckHandler is the constructor for BreachCheckHandler
func NewBreachCheckHandler(params BreachCheckHandlerParams) *BreachCheckHandler {
	return &BreachCheckHandler{
		breachCheckUC: params.BreachCheckUC,
		logger:        params.Logger,
	}
}

// CheckPassword handles POST /check
func (h *BreachCheckHandler) CheckPassword(c echo.Context) error {
	var req usecase.CheckPasswordInput
	if err := c.Bind(&req); err != nil {
		return errors.Wrap(domainerrors.ErrInvalidBody, err.Error())
	}

	if err := c.Validate(&req); err != nil {
		return errors.Wrap(domainerrors.ErrInvalidRequest, err.Error())
	}

	out, err := h.breachCheckUC.CheckPassword(c.Request().Context(), &req)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, out)
}

// HealthCheck reports liveness only; it touches no dependency.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}
