package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sidimedmar/profeleve/internal/services"
)

type DashboardHandler struct {
	analytics *services.AnalyticsService
}

func NewDashboardHandler(analytics *services.AnalyticsService) *DashboardHandler {
	return &DashboardHandler{analytics: analytics}
}

// GetSummary godoc
// @Summary      Aggregate submission metrics
// @Description  Average, highest and lowest percentage; zeros when empty
// @Tags         dashboard
// @Produce      json
// @Success      200 {object} services.Summary
// @Router       /api/v1/dashboard/summary [get]
func (h *DashboardHandler) GetSummary(c *gin.Context) {
	c.JSON(http.StatusOK, h.analytics.Summary())
}

// GetDistribution godoc
// @Summary      Score distribution histogram
// @Description  Five fixed percentage buckets; counts sum to the submission count
// @Tags         dashboard
// @Produce      json
// @Success      200 {array} services.DistributionBucket
// @Router       /api/v1/dashboard/distribution [get]
func (h *DashboardHandler) GetDistribution(c *gin.Context) {
	c.JSON(http.StatusOK, h.analytics.Distribution())
}

// GetTimeline godoc
// @Summary      Submission timeline
// @Description  Submissions bucketed by hour:minute of arrival
// @Tags         dashboard
// @Produce      json
// @Success      200 {array} services.TimelinePoint
// @Router       /api/v1/dashboard/timeline [get]
func (h *DashboardHandler) GetTimeline(c *gin.Context) {
	c.JSON(http.StatusOK, h.analytics.Timeline())
}

// GetStudentSeries godoc
// @Summary      Per-student score series
// @Description  One (first name, percentage) point per submission in order
// @Tags         dashboard
// @Produce      json
// @Success      200 {array} services.StudentScore
// @Router       /api/v1/dashboard/students [get]
func (h *DashboardHandler) GetStudentSeries(c *gin.Context) {
	c.JSON(http.StatusOK, h.analytics.StudentSeries())
}

// ListSubmissions godoc
// @Summary      All submissions
// @Description  Raw submission records for the dashboard detail table
// @Tags         dashboard
// @Produce      json
// @Success      200 {array} models.Submission
// @Router       /api/v1/dashboard/submissions [get]
func (h *DashboardHandler) ListSubmissions(c *gin.Context) {
	c.JSON(http.StatusOK, h.analytics.Submissions())
}

// ExportCSV godoc
// @Summary      Download results as CSV
// @Description  Name, Phone, Score, Total, Percentage, Time; header row always present
// @Tags         dashboard
// @Produce      text/csv
// @Success      200 {string} string "CSV content"
// @Router       /api/v1/dashboard/export [get]
func (h *DashboardHandler) ExportCSV(c *gin.Context) {
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", `attachment; filename="quiz_results.csv"`)

	if err := h.analytics.WriteCSV(c.Writer); err != nil {
		log.Printf("dashboard: csv export failed: %v", err)
	}
}
