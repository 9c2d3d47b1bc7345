package api

import (
	"net/http"

	"nutriplan/models"
	"nutriplan/services"
	"nutriplan/utils"

	"github.com/gin-gonic/gin"
)

// profileResponse adds the computed calorie target to a stored profile.
type profileResponse struct {
	*models.UserProfile
	DailyCalorieTarget int `json:"dailyCalorieTarget"`
}

func newProfileResponse(p *models.UserProfile) profileResponse {
	return profileResponse{UserProfile: p, DailyCalorieTarget: services.ComputeDailyCalorieTarget(*p)}
}

// GetProfileHandler returns the caller's profile.
// GET /api/profile
func (h *APIHandler) GetProfileHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	profile, err := h.profileService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		sendServiceError(c, err, "Failed to fetch profile.")
		return
	}
	utils.SendJSONSuccess(c, http.StatusOK, "Profile retrieved successfully", newProfileResponse(profile))
}

// SaveProfileHandler creates or replaces the caller's profile.
// POST /api/profile
func (h *APIHandler) SaveProfileHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var in services.ProfileInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.SendJSONError(c, http.StatusBadRequest, "Invalid request format.", err, err.Error())
		return
	}
	profile, err := h.profileService.SaveProfile(c.Request.Context(), userID, in)
	if err != nil {
		sendServiceError(c, err, "Failed to save profile.")
		return
	}
	utils.SendJSONSuccess(c, http.StatusOK, "Profile saved successfully", newProfileResponse(profile))
}

// GenerateMealPlanHandler generates plans for today and the next two days.
// POST /api/meal-plans/generate
func (h *APIHandler) GenerateMealPlanHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	plans, err := h.mealPlanService.GeneratePlan(c.Request.Context(), userID)
	if err != nil {
		sendServiceError(c, err, "Failed to generate meal plans")
		return
	}
	utils.SendJSONSuccess(c, http.StatusCreated, "Meal plans generated successfully", plans)
}

// ListMealPlansHandler returns the caller's plans, optionally within a date range.
// GET /api/meal-plans?startDate=YYYY-MM-DD&endDate=YYYY-MM-DD
func (h *APIHandler) ListMealPlansHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	plans, err := h.mealPlanService.ListPlans(c.Request.Context(), userID, c.Query("startDate"), c.Query("endDate"))
	if err != nil {
		sendServiceError(c, err, "Failed to fetch meal plans.")
		return
	}
	utils.SendJSONSuccess(c, http.StatusOK, "Meal plans retrieved successfully", plans)
}

// CompleteMealHandler sets the completion state of one meal.
// PATCH /api/meals/:id/complete
// Request body: { "completed": bool }
func (h *APIHandler) CompleteMealHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	mealID, ok := utils.ParseUintParam(c, "id")
	if !ok {
		utils.SendJSONError(c, http.StatusBadRequest, "Invalid meal ID parameter.", nil)
		return
	}
	completed, ok := bindCompletion(c)
	if !ok {
		return
	}
	meal, err := h.mealPlanService.SetMealCompletion(c.Request.Context(), userID, mealID, completed)
	if err != nil {
		sendServiceError(c, err, "Failed to update meal.")
		return
	}
	utils.SendJSONSuccess(c, http.StatusOK, "Meal updated successfully", meal)
}
