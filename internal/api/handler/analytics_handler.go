package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/teamplan/capacity-system/internal/api/metrics"
	"github.com/teamplan/capacity-system/internal/core/ports"
)

// AnalyticsHandler exposes the team-wide analytics report.
type AnalyticsHandler struct {
	service ports.AnalyticsService
}

func NewAnalyticsHandler(service ports.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{service: service}
}

// Team handles GET /v1/analytics/team.
//
// @Summary      Compute the team-wide utilization and skill-gap report
// @Tags         analytics
// @Produce      json
// @Param        at  query     string  false  "Evaluation date (YYYY-MM-DD, default today)"
// @Success      200  {object}  analyticsResponse
// @Failure      422  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /v1/analytics/team [get]
func (h *AnalyticsHandler) Team(c echo.Context) error {
	var q atQuery
	if err := c.Bind(&q); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid query parameters")
	}
	if err := c.Validate(&q); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	start := time.Now()
	report, err := h.service.TeamAnalytics(c.Request().Context(), q.instant())
	if err != nil {
		metrics.ComputationErrorsTotal.WithLabelValues("analytics").Inc()
		return err
	}
	metrics.ComputationDuration.WithLabelValues("analytics").Observe(time.Since(start).Seconds())

	resp := analyticsResponse{
		TotalEngineers:      report.TotalEngineers,
		TotalProjects:       report.TotalProjects,
		OverloadedEngineers: report.OverloadedEngineers,
		AvailableEngineers:  report.AvailableEngineers,
		AverageUtilization:  report.AverageUtilization,
		ProjectStatusDistribution: statusDistributionResponse{
			Planning:  report.ProjectStatusDistribution.Planning,
			Active:    report.ProjectStatusDistribution.Active,
			Completed: report.ProjectStatusDistribution.Completed,
		},
		SkillDemand: make([]skillDemandResponse, 0, len(report.SkillDemand)),
		SkillGap: skillGapResponse{
			MissingSkills:      report.SkillGap.MissingSkills,
			CoveragePercentage: report.SkillGap.CoveragePercentage,
			LowCoverageSkills:  report.SkillGap.LowCoverageSkills,
		},
		SnapshotTakenAt: report.SnapshotTakenAt.UTC().Format(time.RFC3339),
		EvaluatedAt:     report.EvaluatedAt.Format(dateLayout),
	}
	for _, d := range report.SkillDemand {
		resp.SkillDemand = append(resp.SkillDemand, skillDemandResponse{Skill: d.Skill, Count: d.Count})
	}
	return c.JSON(http.StatusOK, resp)
}
