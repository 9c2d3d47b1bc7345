package api

import (
	"errors"
	"net/http"

	"nutriplan/middleware"
	"nutriplan/services"
	"nutriplan/utils"

	"github.com/gin-gonic/gin"
)

// APIHandler holds all dependencies for API handlers.
type APIHandler struct {
	authService     services.AuthService
	profileService  services.ProfileService
	mealPlanService services.MealPlanService
	taskService     services.TaskService
	newsService     services.NewsService
	progressService services.ProgressService
}

// NewAPIHandler creates a new APIHandler with necessary dependencies.
func NewAPIHandler(
	authService services.AuthService,
	profileService services.ProfileService,
	mealPlanService services.MealPlanService,
	taskService services.TaskService,
	newsService services.NewsService,
	progressService services.ProgressService,
) *APIHandler {
	return &APIHandler{
		authService:     authService,
		profileService:  profileService,
		mealPlanService: mealPlanService,
		taskService:     taskService,
		newsService:     newsService,
		progressService: progressService,
	}
}

// RegisterRoutes mounts every endpoint under /api. authMW guards the routes
// that act on behalf of a user; it must set middleware.UserIDKey.
func RegisterRoutes(r *gin.Engine, h *APIHandler, authMW gin.HandlerFunc) {
	apiGroup := r.Group("/api")
	{
		apiGroup.POST("/auth/register", h.RegisterHandler)
		apiGroup.POST("/auth/login", h.LoginHandler)
		apiGroup.GET("/health-news", h.ListNewsHandler)

		authed := apiGroup.Group("")
		authed.Use(authMW)
		{
			authed.GET("/auth/user", h.CurrentUserHandler)

			authed.GET("/profile", h.GetProfileHandler)
			authed.POST("/profile", h.SaveProfileHandler)

			authed.GET("/meal-plans", h.ListMealPlansHandler)
			authed.POST("/meal-plans/generate", h.GenerateMealPlanHandler)
			authed.PATCH("/meals/:id/complete", h.CompleteMealHandler)

			authed.GET("/tasks", h.ListTasksHandler)
			authed.POST("/tasks", h.CreateTaskHandler)
			authed.PATCH("/tasks/:id/complete", h.CompleteTaskHandler)
			authed.DELETE("/tasks/:id", h.DeleteTaskHandler)

			authed.POST("/health-news", h.CreateNewsHandler)

			authed.GET("/progress", h.ListProgressHandler)
			authed.POST("/progress", h.LogProgressHandler)
			authed.GET("/progress/report", h.GetProgressReportHandler)
		}
	}
}

// currentUserID returns the authenticated user, or responds 401 and false.
func currentUserID(c *gin.Context) (string, bool) {
	userID := c.GetString(middleware.UserIDKey)
	if userID == "" {
		utils.SendJSONError(c, http.StatusUnauthorized, "Authentication required.", nil)
		return "", false
	}
	return userID, true
}

// completionRequest is the body of the meal and task completion endpoints.
type completionRequest struct {
	Completed *bool `json:"completed"`
}

func bindCompletion(c *gin.Context) (bool, bool) {
	var req completionRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Completed == nil {
		utils.SendJSONError(c, http.StatusBadRequest, "Invalid request: completed is required.", err)
		return false, false
	}
	return *req.Completed, true
}

// sendServiceError maps service sentinel errors to HTTP responses. Anything
// unrecognised is a 500 with fallbackMsg; the cause is only logged.
func sendServiceError(c *gin.Context, err error, fallbackMsg string) {
	switch {
	case errors.Is(err, services.ErrProfileRequired):
		utils.SendJSONError(c, http.StatusBadRequest, "Please complete your profile first", nil)
	case errors.Is(err, services.ErrInvalidInput):
		utils.SendJSONError(c, http.StatusBadRequest, "Invalid request.", nil, err.Error())
	case errors.Is(err, services.ErrNotFound):
		utils.SendJSONError(c, http.StatusNotFound, "Resource not found.", nil, err.Error())
	case errors.Is(err, services.ErrForbidden):
		utils.SendJSONError(c, http.StatusForbidden, "You are not allowed to modify this resource.", nil)
	case errors.Is(err, services.ErrInvalidCredentials):
		utils.SendJSONError(c, http.StatusUnauthorized, "Invalid email or password.", nil)
	case errors.Is(err, services.ErrEmailTaken):
		utils.SendJSONError(c, http.StatusConflict, "An account with this email already exists.", nil)
	default:
		utils.SendJSONError(c, http.StatusInternalServerError, fallbackMsg, err)
	}
}
