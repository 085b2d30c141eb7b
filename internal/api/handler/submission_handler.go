package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/plastifind/collection-system/internal/api/metrics"
	"github.com/plastifind/collection-system/internal/api/middleware"
	"github.com/plastifind/collection-system/internal/core/domain"
	"github.com/plastifind/collection-system/internal/core/ports"
)

// SubmissionHandler handles HTTP requests for the submission lifecycle.
type SubmissionHandler struct {
	service ports.SubmissionService
}

func NewSubmissionHandler(service ports.SubmissionService) *SubmissionHandler {
	return &SubmissionHandler{service: service}
}

// Create handles POST /v1/submissions.
//
// @Summary      Submit a field collection for moderation
// @Tags         submissions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createSubmissionRequest  true  "Submission details"
// @Success      201   {object}  submissionResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /v1/submissions [post]
func (h *SubmissionHandler) Create(c echo.Context) error {
	actor, err := middleware.ActorFromContext(c)
	if err != nil {
		return err
	}

	var req createSubmissionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	input := ports.CreateSubmissionInput{
		Actor:       actor,
		ZoneID:      req.ZoneID,
		NewZoneName: req.NewZoneName,
		Notes:       req.Notes,
		ImageURL:    req.ImageURL,
		Items:       make([]ports.ItemInput, 0, len(req.Items)),
	}
	if req.Location != nil {
		input.Location = &ports.CoordinatesInput{Lat: req.Location.Lat, Lng: req.Location.Lng}
	}
	for _, item := range req.Items {
		input.Items = append(input.Items, ports.ItemInput{
			MaterialType: item.MaterialType,
			WeightKg:     item.WeightKg,
			BagCount:     item.BagCount,
		})
	}

	submission, err := h.service.CreateSubmission(c.Request().Context(), input)
	if err != nil {
		return err
	}

	zoneKind := "existing"
	if submission.NewZoneName != "" {
		zoneKind = "proposed"
	}
	metrics.SubmissionsCreatedTotal.WithLabelValues(zoneKind).Inc()

	return c.JSON(http.StatusCreated, toSubmissionResponse(submission))
}

// List handles GET /v1/submissions.
//
// @Summary      List visible submissions
// @Tags         submissions
// @Produce      json
// @Security     BearerAuth
// @Param        status   query     string  false  "Filter by moderation status"
// @Param        zone_id  query     string  false  "Filter by zone"
// @Param        page     query     int     false  "Page (1-based)"
// @Param        limit    query     int     false  "Rows per page (max 100)"
// @Success      200      {object}  listSubmissionsResponse
// @Failure      401      {object}  errorResponse
// @Router       /v1/submissions [get]
func (h *SubmissionHandler) List(c echo.Context) error {
	actor, err := middleware.ActorFromContext(c)
	if err != nil {
		return err
	}

	result, err := h.service.ListSubmissions(c.Request().Context(), ports.ListSubmissionsInput{
		Actor:  actor,
		Status: c.QueryParam("status"),
		ZoneID: c.QueryParam("zone_id"),
		Page:   intQueryParam(c, "page"),
		Limit:  intQueryParam(c, "limit"),
	})
	if err != nil {
		return err
	}

	data := make([]submissionResponse, 0, len(result.Items))
	for _, s := range result.Items {
		data = append(data, toSubmissionResponse(s))
	}

	return c.JSON(http.StatusOK, listSubmissionsResponse{
		Data: data,
		Pagination: paginationResponse{
			Total:      result.Total,
			Page:       result.Page,
			Limit:      result.Limit,
			TotalPages: result.TotalPages,
		},
	})
}

// Transition handles PATCH /v1/submissions/:id/status.
//
// @Summary      Moderate a submission (verify or reject)
// @Tags         submissions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                   true  "Submission id"
// @Param        body  body      transitionStatusRequest  true  "Target status"
// @Success      200   {object}  transitionStatusResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /v1/submissions/{id}/status [patch]
func (h *SubmissionHandler) Transition(c echo.Context) error {
	actor, err := middleware.ActorFromContext(c)
	if err != nil {
		return err
	}

	var req transitionStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	result, err := h.service.TransitionStatus(c.Request().Context(), ports.TransitionSubmissionInput{
		Actor:        actor,
		SubmissionID: c.Param("id"),
		Target:       domain.SubmissionStatus(req.Status),
	})
	if err != nil {
		return err
	}

	resp := transitionStatusResponse{ID: result.ID, Status: result.Status}
	outcome := "applied"
	if result.AlreadyModerated {
		outcome = "noop"
		resp.Note = "already in " + result.Status + " state"
	}
	metrics.ModerationsTotal.WithLabelValues(result.Status, outcome).Inc()

	return c.JSON(http.StatusOK, resp)
}

// Delete handles DELETE /v1/submissions/:id.
//
// @Summary      Delete an owned, non-verified submission
// @Tags         submissions
// @Security     BearerAuth
// @Param        id  path  string  true  "Submission id"
// @Success      204
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Failure      409  {object}  errorResponse
// @Router       /v1/submissions/{id} [delete]
func (h *SubmissionHandler) Delete(c echo.Context) error {
	actor, err := middleware.ActorFromContext(c)
	if err != nil {
		return err
	}

	if err := h.service.DeleteSubmission(c.Request().Context(), ports.DeleteSubmissionInput{
		Actor:        actor,
		SubmissionID: c.Param("id"),
	}); err != nil {
		return err
	}

	metrics.SubmissionsDeletedTotal.Inc()
	return c.NoContent(http.StatusNoContent)
}

func toSubmissionResponse(s *domain.Submission) submissionResponse {
	items := make([]submissionItemResponse, 0, len(s.Items))
	for _, item := range s.Items {
		items = append(items, submissionItemResponse{
			MaterialType: item.MaterialType,
			WeightKg:     item.WeightKg,
			BagCount:     item.BagCount,
		})
	}

	resp := submissionResponse{
		ID:            s.ID,
		OwnerID:       s.OwnerID,
		ZoneID:        s.ZoneID,
		NewZoneName:   s.NewZoneName,
		Status:        string(s.Status),
		Notes:         s.Notes,
		ImageURL:      s.ImageURL,
		Items:         items,
		TotalWeightKg: s.TotalWeightKg(),
		CollectedAt:   s.CollectedAt,
		ModeratedAt:   s.ModeratedAt,
	}
	if s.Location != nil {
		resp.Location = &coordinatesResponse{Lat: s.Location.Lat, Lng: s.Location.Lng}
	}
	return resp
}
