package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/teamplan/capacity-system/internal/api/metrics"
	"github.com/teamplan/capacity-system/internal/core/ports"
)

// ScheduleHandler exposes calendar and upcoming-assignment views.
type ScheduleHandler struct {
	service ports.ScheduleService
}

func NewScheduleHandler(service ports.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{service: service}
}

// Calendar handles GET /v1/schedule/calendar.
//
// @Summary      Bucket assignments onto the days of one month
// @Tags         schedule
// @Produce      json
// @Param        year         query     int     true   "Calendar year"
// @Param        month        query     int     true   "Calendar month (1-12)"
// @Param        engineer_id  query     string  false  "Scope to one engineer"
// @Param        project_id   query     string  false  "Scope to one project"
// @Success      200  {object}  calendarResponse
// @Failure      422  {object}  errorResponse
// @Router       /v1/schedule/calendar [get]
func (h *ScheduleHandler) Calendar(c echo.Context) error {
	var q calendarQuery
	if err := c.Bind(&q); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid query parameters")
	}
	if err := c.Validate(&q); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	start := time.Now()
	result, err := h.service.MonthCalendar(c.Request().Context(), ports.CalendarInput{
		Year:       q.Year,
		Month:      q.Month,
		EngineerID: q.EngineerID,
		ProjectID:  q.ProjectID,
	})
	if err != nil {
		metrics.ComputationErrorsTotal.WithLabelValues("calendar").Inc()
		return err
	}
	metrics.ComputationDuration.WithLabelValues("calendar").Observe(time.Since(start).Seconds())

	resp := calendarResponse{
		Year:  result.Year,
		Month: result.Month,
		Days:  make([]calendarDayResponse, 0, len(result.Days)),
	}
	for _, d := range result.Days {
		day := calendarDayResponse{
			Day:         d.Day,
			Date:        d.Date.Format(dateLayout),
			Assignments: make([]assignmentResponse, 0, len(d.Assignments)),
		}
		for _, a := range d.Assignments {
			day.Assignments = append(day.Assignments, toAssignmentResponse(a))
		}
		resp.Days = append(resp.Days, day)
	}
	return c.JSON(http.StatusOK, resp)
}

// Upcoming handles GET /v1/schedule/upcoming.
//
// @Summary      List assignments starting on or after a date
// @Tags         schedule
// @Produce      json
// @Param        at     query     string  false  "Evaluation date (YYYY-MM-DD, default today)"
// @Param        limit  query     int     false  "Maximum entries to return"
// @Success      200  {object}  upcomingResponse
// @Failure      422  {object}  errorResponse
// @Router       /v1/schedule/upcoming [get]
func (h *ScheduleHandler) Upcoming(c echo.Context) error {
	var q upcomingQuery
	if err := c.Bind(&q); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid query parameters")
	}
	if err := c.Validate(&q); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	start := time.Now()
	views, err := h.service.UpcomingAssignments(c.Request().Context(), ports.UpcomingInput{
		At:    q.instant(),
		Limit: q.Limit,
	})
	if err != nil {
		metrics.ComputationErrorsTotal.WithLabelValues("upcoming").Inc()
		return err
	}
	metrics.ComputationDuration.WithLabelValues("upcoming").Observe(time.Since(start).Seconds())

	resp := upcomingResponse{Data: make([]assignmentResponse, 0, len(views))}
	for _, v := range views {
		resp.Data = append(resp.Data, toAssignmentResponse(v))
	}
	return c.JSON(http.StatusOK, resp)
}

func toAssignmentResponse(v ports.AssignmentView) assignmentResponse {
	return assignmentResponse{
		ID:           v.ID,
		EngineerID:   v.EngineerID,
		EngineerName: v.EngineerName,
		ProjectID:    v.ProjectID,
		ProjectName:  v.ProjectName,
		Allocation:   v.Allocation,
		StartDate:    v.StartDate.Format(dateLayout),
		EndDate:      v.EndDate.Format(dateLayout),
		Role:         v.Role,
	}
}
