package controllers

import (
	"github.com/arthurhenrique02/doc-pay-manager/handlers"
	"github.com/gin-gonic/gin"
)

type AuthController struct {
	Handler *handlers.AuthHandler
}

// NewAuthController creates a new AuthController with the given AuthHandler
func NewAuthController(authHandler *handlers.AuthHandler) *AuthController {
	return &AuthController{
		Handler: authHandler,
	}
}

// RegisterRoutes initializes all authentication routes directly on the router
func (ac *AuthController) RegisterRoutes(router *gin.Engine) {
	// Public routes: no token required
	router.POST("/auth/token", ac.Handler.Login)
	router.POST("/auth/registry", ac.Handler.Register)
}
