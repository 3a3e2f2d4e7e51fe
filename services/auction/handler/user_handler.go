package handler

import (
	"net/http"

	model "auction-house/internal/models"
	"auction-house/services/auction/helpers"

	"github.com/gin-gonic/gin"
)

type UserServiceInterface interface {
	GetUser(userID string) (model.UserDetail, error)
	Register(username, email, password string) (model.User, string, error)
	Login(email, password string) (model.User, string, error)
}

type UserHandler struct {
	service UserServiceInterface
}

func NewUserHandler(service UserServiceInterface) *UserHandler {
	return &UserHandler{service: service}
}

// GetUserHandler handles GET /api/users/:userId
func (h *UserHandler) GetUserHandler(c *gin.Context) {
	userID := c.Param("userId")
	detail, err := h.service.GetUser(userID)
	if err != nil {
		helpers.RespondError(c, "GetUserHandler", err, map[string]any{"user_id": userID})
		return
	}

	c.JSON(http.StatusOK, helpers.NewUserDetailResponse(detail))
}

// RegisterHandler handles POST /api/auth/register
func (h *UserHandler) RegisterHandler(c *gin.Context) {
	var req helpers.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "RegisterHandler", err)
		return
	}

	user, token, err := h.service.Register(req.Username, req.Email, req.Password)
	if err != nil {
		helpers.RespondError(c, "RegisterHandler", err, map[string]any{"email": req.Email})
		return
	}

	c.JSON(http.StatusCreated, helpers.AuthResponse{
		Token: token,
		User:  helpers.UserSummary{ID: user.ID, Username: user.Username},
	})
	helpers.LogSuccess("RegisterHandler", "user registered successfully", map[string]any{
		"user_id": user.ID,
	})
}

// LoginHandler handles POST /api/auth/login
func (h *UserHandler) LoginHandler(c *gin.Context) {
	var req helpers.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "LoginHandler", err)
		return
	}

	user, token, err := h.service.Login(req.Email, req.Password)
	if err != nil {
		helpers.RespondError(c, "LoginHandler", err, nil)
		return
	}

	c.JSON(http.StatusOK, helpers.AuthResponse{
		Token: token,
		User:  helpers.UserSummary{ID: user.ID, Username: user.Username},
	})
	helpers.LogSuccess("LoginHandler", "user logged in successfully", map[string]any{
		"user_id": user.ID,
	})
}
