package routes

import (
	"pedidos-crm/internal/middleware"

	"github.com/gin-gonic/gin"
)

// SetupRoutes wires every route of the application onto the engine. Public
// auth routes come first; everything else sits behind AuthMiddleware.
func SetupRoutes(r *gin.Engine) {
	RegisterAuthRoutes(r)

	authRequired := r.Group("/")
	authRequired.Use(middleware.AuthMiddleware())
	{
		RegisterAPIRoutes(authRequired)
	}
}
