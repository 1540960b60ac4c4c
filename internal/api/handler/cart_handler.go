package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/techhunt/api/internal/core/ports"
)

// CartHandler serves /dashboard/userProduct. The routes are unauthenticated
// and perform no ownership checks.
type CartHandler struct {
	cart ports.CartService
}

func NewCartHandler(cart ports.CartService) *CartHandler {
	return &CartHandler{cart: cart}
}

// Add handles POST /dashboard/userProduct.
//
// @Summary      Add a product to the cart
// @Tags         cart
// @Accept       json
// @Produce      json
// @Param        body  body      document  true  "Cart entry"
// @Success      200   {object}  insertResponse
// @Failure      400   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /dashboard/userProduct [post]
func (h *CartHandler) Add(c echo.Context) error {
	payload, err := bindObject(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	res, err := h.cart.Add(c.Request().Context(), toCartItem(payload))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toInsertResponse(res))
}

// List handles GET /dashboard/userProduct.
//
// @Summary      List cart entries
// @Tags         cart
// @Produce      json
// @Success      200  {array}   document
// @Failure      500  {object}  errorResponse
// @Router       /dashboard/userProduct [get]
func (h *CartHandler) List(c echo.Context) error {
	items, err := h.cart.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toDocuments(items, toCartDocument))
}

// Remove handles DELETE /dashboard/userProduct/:id.
//
// @Summary      Remove a cart entry
// @Tags         cart
// @Produce      json
// @Param        id   path      string  true  "Cart entry id"
// @Success      200  {object}  deleteResponse
// @Failure      400  {object}  errorResponse
// @Router       /dashboard/userProduct/{id} [delete]
func (h *CartHandler) Remove(c echo.Context) error {
	res, err := h.cart.Remove(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toDeleteResponse(res))
}
