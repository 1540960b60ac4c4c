package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/techhunt/api/internal/core/domain"
	"github.com/techhunt/api/internal/core/ports"
)

// ProductHandler serves the catalog endpoints.
type ProductHandler struct {
	products ports.ProductService
}

func NewProductHandler(products ports.ProductService) *ProductHandler {
	return &ProductHandler{products: products}
}

// Menu handles GET /menu.
//
// @Summary      List all products
// @Tags         products
// @Produce      json
// @Success      200  {array}   document
// @Failure      500  {object}  errorResponse
// @Router       /menu [get]
func (h *ProductHandler) Menu(c echo.Context) error {
	products, err := h.products.Menu(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toDocuments(products, toProductDocument))
}

// Search handles GET /products. One page holds at most domain.SearchPageSize
// products and no total count is returned.
//
// @Summary      Search products by tag
// @Tags         products
// @Produce      json
// @Param        search  query     string  false  "Case-insensitive tag substring"
// @Param        page    query     int     false  "1-based page number"
// @Success      200     {array}   document
// @Failure      400     {object}  errorResponse
// @Router       /products [get]
func (h *ProductHandler) Search(c echo.Context) error {
	var q searchQuery
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &q); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid query parameters")
	}
	if err := c.Validate(&q); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	products, err := h.products.Search(c.Request().Context(), domain.ProductSearch{Term: q.Search, Page: q.Page})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toDocuments(products, toProductDocument))
}

// Get handles GET /products/:productId.
//
// @Summary      Get a product
// @Tags         products
// @Produce      json
// @Param        productId  path      string  true  "Product id"
// @Success      200        {object}  document
// @Failure      400        {object}  errorResponse
// @Failure      404        {object}  errorResponse
// @Router       /products/{productId} [get]
func (h *ProductHandler) Get(c echo.Context) error {
	p, err := h.products.Get(c.Request().Context(), c.Param("productId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toProductDocument(p))
}

// Upvote handles POST /api/upvote/:productId.
//
// @Summary      Upvote a product
// @Tags         products
// @Produce      json
// @Param        productId  path      string  true  "Product id"
// @Success      200        {object}  document
// @Failure      400        {object}  errorResponse
// @Failure      404        {object}  errorResponse
// @Router       /api/upvote/{productId} [post]
func (h *ProductHandler) Upvote(c echo.Context) error {
	p, err := h.products.Upvote(c.Request().Context(), c.Param("productId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toProductDocument(p))
}

// Report handles POST /api/report/:productId.
//
// @Summary      Report a product
// @Tags         products
// @Produce      json
// @Param        productId  path      string  true  "Product id"
// @Success      200        {object}  document
// @Failure      400        {object}  errorResponse
// @Failure      404        {object}  errorResponse
// @Router       /api/report/{productId} [post]
func (h *ProductHandler) Report(c echo.Context) error {
	p, err := h.products.Report(c.Request().Context(), c.Param("productId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toProductDocument(p))
}
