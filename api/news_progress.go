package api

import (
	"net/http"
	"strconv"

	"nutriplan/services"
	"nutriplan/utils"

	"github.com/gin-gonic/gin"
)

// ListNewsHandler returns the newest health articles. Public.
// GET /api/health-news?category=nutrition&limit=10
func (h *APIHandler) ListNewsHandler(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			utils.SendJSONError(c, http.StatusBadRequest, "Invalid limit parameter.", err)
			return
		}
		limit = n
	}
	articles, err := h.newsService.ListNews(c.Request.Context(), c.Query("category"), limit)
	if err != nil {
		sendServiceError(c, err, "Failed to fetch health news.")
		return
	}
	utils.SendJSONSuccess(c, http.StatusOK, "Health news retrieved successfully", articles)
}

// CreateNewsHandler publishes an article.
// POST /api/health-news
func (h *APIHandler) CreateNewsHandler(c *gin.Context) {
	var in services.NewsInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.SendJSONError(c, http.StatusBadRequest, "Invalid request format.", err, err.Error())
		return
	}
	article, err := h.newsService.CreateNews(c.Request.Context(), in)
	if err != nil {
		sendServiceError(c, err, "Failed to create article.")
		return
	}
	utils.SendJSONSuccess(c, http.StatusCreated, "Article created successfully", article)
}

// ListProgressHandler returns the caller's daily progress entries.
// GET /api/progress?startDate=YYYY-MM-DD&endDate=YYYY-MM-DD
func (h *APIHandler) ListProgressHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	entries, err := h.progressService.ListProgress(c.Request.Context(), userID, c.Query("startDate"), c.Query("endDate"))
	if err != nil {
		sendServiceError(c, err, "Failed to fetch progress.")
		return
	}
	utils.SendJSONSuccess(c, http.StatusOK, "Progress retrieved successfully", entries)
}

// LogProgressHandler records (or overwrites) one day of progress.
// POST /api/progress
func (h *APIHandler) LogProgressHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var in services.ProgressInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.SendJSONError(c, http.StatusBadRequest, "Invalid request format.", err, err.Error())
		return
	}
	entry, err := h.progressService.LogProgress(c.Request.Context(), userID, in)
	if err != nil {
		sendServiceError(c, err, "Failed to save progress.")
		return
	}
	utils.SendJSONSuccess(c, http.StatusOK, "Progress saved successfully", entry)
}

// GetProgressReportHandler handles requests to fetch a user's progress report.
// GET /api/progress/report?period=last_7_days&referenceDate=YYYY-MM-DD
func (h *APIHandler) GetProgressReportHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	period := c.DefaultQuery("period", services.PeriodLast7Days)
	report, err := h.progressService.GenerateProgressReport(c.Request.Context(), userID, period, c.Query("referenceDate"))
	if err != nil {
		sendServiceError(c, err, "Failed to generate progress report.")
		return
	}
	utils.SendJSONSuccess(c, http.StatusOK, "Progress report generated successfully", report)
}
