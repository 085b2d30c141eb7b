package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/plastifind/collection-system/internal/api/middleware"
	"github.com/plastifind/collection-system/internal/core/domain"
	"github.com/plastifind/collection-system/internal/core/ports"
)

// ZoneHandler handles HTTP requests for hotspot management.
type ZoneHandler struct {
	service ports.ZoneService
}

func NewZoneHandler(service ports.ZoneService) *ZoneHandler {
	return &ZoneHandler{service: service}
}

type createZoneRequest struct {
	Name            string             `json:"name" validate:"required"`
	Description     string             `json:"description"`
	Location        coordinatesRequest `json:"location" validate:"required"`
	Status          string             `json:"status" validate:"omitempty,oneof=active critical cleared"`
	EstimatedVolume float64            `json:"estimated_volume" validate:"gte=0"`
	Accessibility   string             `json:"accessibility"`
	PartnerInfo     string             `json:"partner_info"`
}

type updateZoneRequest struct {
	Name            *string  `json:"name"`
	Description     *string  `json:"description"`
	Status          *string  `json:"status" validate:"omitempty,oneof=active critical cleared"`
	EstimatedVolume *float64 `json:"estimated_volume" validate:"omitempty,gte=0"`
	Accessibility   *string  `json:"accessibility"`
	PartnerInfo     *string  `json:"partner_info"`
}

// Create handles POST /v1/zones.
//
// @Summary      Register a hotspot
// @Tags         zones
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createZoneRequest  true  "Zone details"
// @Success      201   {object}  domain.Zone
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /v1/zones [post]
func (h *ZoneHandler) Create(c echo.Context) error {
	actor, err := middleware.ActorFromContext(c)
	if err != nil {
		return err
	}

	var req createZoneRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	zone, err := h.service.CreateZone(c.Request().Context(), ports.CreateZoneInput{
		Actor:           actor,
		Name:            req.Name,
		Description:     req.Description,
		Location:        ports.CoordinatesInput{Lat: req.Location.Lat, Lng: req.Location.Lng},
		Status:          domain.ZoneStatus(req.Status),
		EstimatedVolume: req.EstimatedVolume,
		Accessibility:   req.Accessibility,
		PartnerInfo:     req.PartnerInfo,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, zone)
}

// List handles GET /v1/zones.
//
// @Summary      List hotspots
// @Tags         zones
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Zone
// @Failure      401  {object}  errorResponse
// @Router       /v1/zones [get]
func (h *ZoneHandler) List(c echo.Context) error {
	actor, err := middleware.ActorFromContext(c)
	if err != nil {
		return err
	}

	zones, err := h.service.ListZones(c.Request().Context(), actor)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, zones)
}

// Update handles PATCH /v1/zones/:id.
//
// @Summary      Update a hotspot
// @Tags         zones
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "Zone id"
// @Param        body  body      updateZoneRequest  true  "Fields to change"
// @Success      200   {object}  domain.Zone
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/zones/{id} [patch]
func (h *ZoneHandler) Update(c echo.Context) error {
	actor, err := middleware.ActorFromContext(c)
	if err != nil {
		return err
	}

	var req updateZoneRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	update := ports.ZoneUpdate{
		Name:            req.Name,
		Description:     req.Description,
		EstimatedVolume: req.EstimatedVolume,
		Accessibility:   req.Accessibility,
		PartnerInfo:     req.PartnerInfo,
	}
	if req.Status != nil {
		status := domain.ZoneStatus(*req.Status)
		update.Status = &status
	}

	zone, err := h.service.UpdateZone(c.Request().Context(), ports.UpdateZoneInput{
		Actor:  actor,
		ZoneID: c.Param("id"),
		Update: update,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, zone)
}

// Delete handles DELETE /v1/zones/:id.
//
// @Summary      Delete a hotspot
// @Tags         zones
// @Security     BearerAuth
// @Param        id  path  string  true  "Zone id"
// @Success      204
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/zones/{id} [delete]
func (h *ZoneHandler) Delete(c echo.Context) error {
	actor, err := middleware.ActorFromContext(c)
	if err != nil {
		return err
	}

	if err := h.service.DeleteZone(c.Request().Context(), actor, c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
