package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/techhunt/api/internal/core/ports"
	"github.com/techhunt/api/internal/infrastructure/metrics"
)

type AuthHandler struct {
	tokens ports.TokenService
}

func NewAuthHandler(tokens ports.TokenService) *AuthHandler {
	return &AuthHandler{tokens: tokens}
}

// IssueToken signs the submitted identity into a one-hour bearer token. The
// email is not checked against the registered users.
//
// @Summary      Issue a bearer token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      identityRequest  true  "Identity claims (any extra fields are embedded)"
// @Success      200   {object}  tokenResponse
// @Failure      400   {object}  errorResponse
// @Router       /jwt [post]
func (h *AuthHandler) IssueToken(c echo.Context) error {
	payload, err := bindObject(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&identityRequest{Email: stringField(payload, "email")}); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, err := h.tokens.Issue(payload)
	if err != nil {
		return err
	}

	metrics.TokensIssuedTotal.Inc()
	return c.JSON(http.StatusOK, tokenResponse{Token: token})
}
