package api

import (
	"net/http"

	"nutriplan/models"
	"nutriplan/services"
	"nutriplan/utils"

	"github.com/gin-gonic/gin"
)

type authResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

// RegisterHandler creates an account and signs it in.
// POST /api/auth/register
func (h *APIHandler) RegisterHandler(c *gin.Context) {
	var in services.RegisterInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.SendJSONError(c, http.StatusBadRequest, "Invalid request format.", err)
		return
	}
	user, token, err := h.authService.Register(c.Request.Context(), in)
	if err != nil {
		sendServiceError(c, err, "Failed to register.")
		return
	}
	utils.SendJSONSuccess(c, http.StatusCreated, "Registered successfully", authResponse{Token: token, User: user})
}

// LoginHandler exchanges credentials for a bearer token.
// POST /api/auth/login
func (h *APIHandler) LoginHandler(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendJSONError(c, http.StatusBadRequest, "Invalid request: email and password are required.", err)
		return
	}
	user, token, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		sendServiceError(c, err, "Failed to sign in.")
		return
	}
	utils.SendJSONSuccess(c, http.StatusOK, "Signed in successfully", authResponse{Token: token, User: user})
}

// CurrentUserHandler returns the signed-in account.
// GET /api/auth/user
func (h *APIHandler) CurrentUserHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	user, err := h.authService.GetUser(c.Request.Context(), userID)
	if err != nil {
		sendServiceError(c, err, "Failed to fetch user.")
		return
	}
	utils.SendJSONSuccess(c, http.StatusOK, "User retrieved successfully", user)
}
