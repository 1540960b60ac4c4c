package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/techhunt/api/internal/core/ports"
)

type ReviewHandler struct {
	reviews ports.ReviewService
}

func NewReviewHandler(reviews ports.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviews: reviews}
}

// Create handles POST /reviews.
//
// @Summary      Add a review
// @Tags         reviews
// @Accept       json
// @Produce      json
// @Param        body  body      reviewRequest  true  "Review; roomId is required, other fields are stored as-is"
// @Success      200   {object}  insertResponse
// @Failure      400   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /reviews [post]
func (h *ReviewHandler) Create(c echo.Context) error {
	payload, err := bindObject(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	review := toReview(payload)
	if err := c.Validate(&reviewRequest{RoomID: review.RoomID}); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	res, err := h.reviews.Create(c.Request().Context(), review)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toInsertResponse(res))
}

// List handles GET /reviews?roomId=.
//
// @Summary      List reviews of a room
// @Tags         reviews
// @Produce      json
// @Param        roomId  query     string  true  "Room (product) id"
// @Success      200     {array}   document
// @Failure      400     {object}  errorResponse
// @Failure      500     {object}  errorResponse
// @Router       /reviews [get]
func (h *ReviewHandler) List(c echo.Context) error {
	q := reviewQuery{RoomID: c.QueryParam("roomId")}
	if err := c.Validate(&q); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	reviews, err := h.reviews.ListByRoom(c.Request().Context(), q.RoomID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toDocuments(reviews, toReviewDocument))
}
