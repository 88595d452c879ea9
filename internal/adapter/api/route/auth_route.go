package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/notas-fiscais-api/internal/adapter/api/controller"
)

// RegisterAuthRoutes registra as rotas de autenticação
func RegisterAuthRoutes(r *gin.RouterGroup, authController *controller.AuthController) {
	auth := r.Group("/auth")
	{
		auth.POST("/token", authController.Token)
	}
}
