package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/plastifind/collection-system/internal/api/middleware"
	"github.com/plastifind/collection-system/internal/core/domain"
	"github.com/plastifind/collection-system/internal/core/ports"
)

// ActorHandler exposes the administrative account surface.
type ActorHandler struct {
	service ports.ActorService
}

func NewActorHandler(service ports.ActorService) *ActorHandler {
	return &ActorHandler{service: service}
}

type updateActorRequest struct {
	Role           *string `json:"role" validate:"omitempty,oneof=super_admin admin field_officer partner"`
	Status         *string `json:"status" validate:"omitempty,oneof=active suspended"`
	AssignedZoneID *string `json:"assigned_zone_id"`
	Organization   *string `json:"organization"`
}

// List handles GET /v1/users.
//
// @Summary      List actor accounts
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Actor
// @Failure      403  {object}  errorResponse
// @Router       /v1/users [get]
func (h *ActorHandler) List(c echo.Context) error {
	actor, err := middleware.ActorFromContext(c)
	if err != nil {
		return err
	}

	actors, err := h.service.ListActors(c.Request().Context(), actor)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, actors)
}

// Update handles PATCH /v1/users/:id.
//
// @Summary      Update an actor's role, status, or assignment
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string              true  "Actor id"
// @Param        body  body      updateActorRequest  true  "Fields to change"
// @Success      200   {object}  domain.Actor
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/users/{id} [patch]
func (h *ActorHandler) Update(c echo.Context) error {
	actor, err := middleware.ActorFromContext(c)
	if err != nil {
		return err
	}

	var req updateActorRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	update := ports.ActorUpdate{
		AssignedZoneID: req.AssignedZoneID,
		Organization:   req.Organization,
	}
	if req.Role != nil {
		role := domain.Role(*req.Role)
		update.Role = &role
	}
	if req.Status != nil {
		status := domain.AccountStatus(*req.Status)
		update.Status = &status
	}

	updated, err := h.service.UpdateActor(c.Request().Context(), ports.UpdateActorInput{
		Actor:         actor,
		TargetActorID: c.Param("id"),
		Update:        update,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, updated)
}
