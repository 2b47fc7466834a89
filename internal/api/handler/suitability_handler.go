package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/teamplan/capacity-system/internal/api/metrics"
	"github.com/teamplan/capacity-system/internal/core/ports"
)

// SuitabilityHandler exposes skill-based engineer-to-project matching.
type SuitabilityHandler struct {
	service ports.SuitabilityService
}

func NewSuitabilityHandler(service ports.SuitabilityService) *SuitabilityHandler {
	return &SuitabilityHandler{service: service}
}

// Get handles GET /v1/projects/:id/suitability.
//
// @Summary      Rank engineers suitable for a project
// @Tags         suitability
// @Produce      json
// @Param        id  path      string  true   "Project id"
// @Param        at  query     string  false  "Evaluation date (YYYY-MM-DD, default today)"
// @Success      200  {object}  suitabilityResponse
// @Failure      404  {object}  errorResponse
// @Failure      422  {object}  errorResponse
// @Router       /v1/projects/{id}/suitability [get]
func (h *SuitabilityHandler) Get(c echo.Context) error {
	var q atQuery
	if err := c.Bind(&q); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid query parameters")
	}
	if err := c.Validate(&q); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	start := time.Now()
	result, err := h.service.FindSuitableEngineers(c.Request().Context(), c.Param("id"), q.instant())
	if err != nil {
		metrics.ComputationErrorsTotal.WithLabelValues("suitability").Inc()
		return err
	}
	metrics.ComputationDuration.WithLabelValues("suitability").Observe(time.Since(start).Seconds())

	resp := suitabilityResponse{
		ProjectID:      result.ProjectID,
		ProjectName:    result.ProjectName,
		RequiredSkills: result.RequiredSkills,
		Candidates:     make([]candidateResponse, 0, len(result.Candidates)),
		EvaluatedAt:    result.EvaluatedAt.Format(dateLayout),
	}
	if resp.RequiredSkills == nil {
		resp.RequiredSkills = []string{}
	}
	for _, cand := range result.Candidates {
		resp.Candidates = append(resp.Candidates, candidateResponse{
			EngineerID:        cand.EngineerID,
			Name:              cand.Name,
			Role:              string(cand.Role),
			Seniority:         string(cand.Seniority),
			MatchedSkills:     cand.MatchedSkills,
			CurrentCapacity:   cand.CurrentCapacity,
			AvailableCapacity: cand.AvailableCapacity,
		})
	}
	return c.JSON(http.StatusOK, resp)
}
