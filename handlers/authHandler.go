package handlers

import (
	"net/http"

	"github.com/arthurhenrique02/doc-pay-manager/middlewares"
	"github.com/arthurhenrique02/doc-pay-manager/models"
	"github.com/arthurhenrique02/doc-pay-manager/services"
	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService services.AuthService
	userService services.UserService
}

func NewAuthHandler(authService services.AuthService, userService services.UserService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		userService: userService,
	}
}

// Login exchanges form-encoded credentials for a bearer token.
func (h *AuthHandler) Login(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	ctx := c.Request.Context()
	user, err := h.authService.Authenticate(ctx, username, password)
	if err != nil {
		respondError(c, err)
		return
	}

	accessToken, err := h.authService.IssueToken(user.Username)
	if err != nil {
		respondError(c, err)
		return
	}

	middlewares.RespondJSON(c, models.Token{
		AccessToken: accessToken,
		TokenType:   "bearer",
	}, http.StatusOK)
}

// Register handles new user registration
func (h *AuthHandler) Register(c *gin.Context) {
	var payload struct {
		Username    string `json:"username"`
		Password    string `json:"password"`
		IsSuperuser bool   `json:"is_superuser"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		middlewares.HttpError(c, "Invalid request body", http.StatusBadRequest, err)
		return
	}

	user := models.User{
		Username:    payload.Username,
		Password:    payload.Password,
		IsSuperuser: payload.IsSuperuser,
	}

	ctx := c.Request.Context()
	if err := h.userService.Register(ctx, &user); err != nil {
		respondError(c, err)
		return
	}

	middlewares.RespondJSON(c, models.UserDetail{
		Username:    user.Username,
		IsSuperuser: user.IsSuperuser,
	}, http.StatusCreated)
}
