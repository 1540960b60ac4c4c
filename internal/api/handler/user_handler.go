package handler

import (
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"

	"github.com/techhunt/api/internal/core/domain"
	"github.com/techhunt/api/internal/core/ports"
)

// UserHandler serves registration, listing and role management.
type UserHandler struct {
	users ports.UserService
}

func NewUserHandler(users ports.UserService) *UserHandler {
	return &UserHandler{users: users}
}

// Register handles POST /users.
//
// @Summary      Register a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      identityRequest  true  "User profile; email is required and unique"
// @Success      200   {object}  insertResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /users [post]
func (h *UserHandler) Register(c echo.Context) error {
	payload, err := bindObject(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&identityRequest{Email: stringField(payload, "email")}); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	res, err := h.users.Register(c.Request().Context(), payload)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toInsertResponse(res))
}

// List handles GET /users.
//
// @Summary      List all users
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   document
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.users.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toDocuments(users, toUserDocument))
}

// IsAdmin handles GET /users/admin/:email.
//
// @Summary      Check whether the caller is an admin
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        email  path      string  true  "Caller email"
// @Success      200    {object}  adminCheckResponse
// @Failure      401    {object}  errorResponse
// @Router       /users/admin/{email} [get]
func (h *UserHandler) IsAdmin(c echo.Context) error {
	ok, err := h.selfRoleCheck(c, domain.RoleAdmin)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, adminCheckResponse{Admin: ok})
}

// IsModerator handles GET /users/mod/:email.
//
// @Summary      Check whether the caller is a moderator
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        email  path      string  true  "Caller email"
// @Success      200    {object}  moderatorCheckResponse
// @Failure      401    {object}  errorResponse
// @Router       /users/mod/{email} [get]
func (h *UserHandler) IsModerator(c echo.Context) error {
	ok, err := h.selfRoleCheck(c, domain.RoleModerator)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, moderatorCheckResponse{Moderator: ok})
}

// selfRoleCheck answers a role query only for the caller's own email.
func (h *UserHandler) selfRoleCheck(c echo.Context, role domain.Role) (bool, error) {
	email, err := authenticatedEmail(c)
	if err != nil {
		return false, err
	}
	requested, err := url.PathUnescape(c.Param("email"))
	if err != nil || requested != email {
		return false, domain.ErrUnauthorized
	}
	return h.users.HasRole(c.Request().Context(), email, role)
}

// GrantAdmin handles PATCH /users/admin/:id.
//
// @Summary      Grant the admin role
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  updateResponse
// @Failure      400  {object}  errorResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /users/admin/{id} [patch]
func (h *UserHandler) GrantAdmin(c echo.Context) error {
	return h.grant(c, domain.RoleAdmin)
}

// GrantModerator handles PATCH /users/mod/:id.
//
// @Summary      Grant the moderator role
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  updateResponse
// @Failure      400  {object}  errorResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /users/mod/{id} [patch]
func (h *UserHandler) GrantModerator(c echo.Context) error {
	return h.grant(c, domain.RoleModerator)
}

func (h *UserHandler) grant(c echo.Context, role domain.Role) error {
	res, err := h.users.GrantRole(c.Request().Context(), c.Param("id"), role)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUpdateResponse(res))
}

// Delete handles DELETE /users/:id.
//
// @Summary      Delete a user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  deleteResponse
// @Failure      400  {object}  errorResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /users/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	res, err := h.users.Delete(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toDeleteResponse(res))
}
