package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/teamplan/capacity-system/internal/api/metrics"
	"github.com/teamplan/capacity-system/internal/core/ports"
)

// CapacityHandler exposes per-engineer capacity queries.
type CapacityHandler struct {
	service ports.CapacityService
}

func NewCapacityHandler(service ports.CapacityService) *CapacityHandler {
	return &CapacityHandler{service: service}
}

// Get handles GET /v1/engineers/:id/capacity.
//
// @Summary      Get one engineer's current and available capacity
// @Tags         capacity
// @Produce      json
// @Param        id  path      string  true   "Engineer id"
// @Param        at  query     string  false  "Evaluation date (YYYY-MM-DD, default today)"
// @Success      200  {object}  capacityResponse
// @Failure      404  {object}  errorResponse
// @Failure      422  {object}  errorResponse
// @Router       /v1/engineers/{id}/capacity [get]
func (h *CapacityHandler) Get(c echo.Context) error {
	var q atQuery
	if err := c.Bind(&q); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid query parameters")
	}
	if err := c.Validate(&q); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	start := time.Now()
	result, err := h.service.GetEngineerCapacity(c.Request().Context(), c.Param("id"), q.instant())
	if err != nil {
		metrics.ComputationErrorsTotal.WithLabelValues("capacity").Inc()
		return err
	}
	metrics.ComputationDuration.WithLabelValues("capacity").Observe(time.Since(start).Seconds())

	return c.JSON(http.StatusOK, toCapacityResponse(*result))
}

// List handles GET /v1/engineers/capacity.
//
// @Summary      Get capacity for the whole roster
// @Tags         capacity
// @Produce      json
// @Param        at  query     string  false  "Evaluation date (YYYY-MM-DD, default today)"
// @Success      200  {object}  capacityListResponse
// @Failure      422  {object}  errorResponse
// @Router       /v1/engineers/capacity [get]
func (h *CapacityHandler) List(c echo.Context) error {
	var q atQuery
	if err := c.Bind(&q); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid query parameters")
	}
	if err := c.Validate(&q); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	start := time.Now()
	results, err := h.service.ListEngineerCapacities(c.Request().Context(), q.instant())
	if err != nil {
		metrics.ComputationErrorsTotal.WithLabelValues("capacity").Inc()
		return err
	}
	metrics.ComputationDuration.WithLabelValues("capacity").Observe(time.Since(start).Seconds())

	resp := capacityListResponse{Data: make([]capacityResponse, 0, len(results))}
	for _, r := range results {
		resp.Data = append(resp.Data, toCapacityResponse(r))
	}
	if len(results) > 0 {
		resp.EvaluatedAt = results[0].EvaluatedAt.Format(dateLayout)
	}
	return c.JSON(http.StatusOK, resp)
}

func toCapacityResponse(r ports.EngineerCapacity) capacityResponse {
	skills := r.Skills
	if skills == nil {
		skills = []string{}
	}
	return capacityResponse{
		EngineerID:        r.EngineerID,
		Name:              r.Name,
		Role:              string(r.Role),
		Seniority:         string(r.Seniority),
		Skills:            skills,
		MaxCapacity:       r.MaxCapacity,
		CurrentCapacity:   r.CurrentCapacity,
		AvailableCapacity: r.AvailableCapacity,
		EvaluatedAt:       r.EvaluatedAt.Format(dateLayout),
	}
}
