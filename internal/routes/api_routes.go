package routes

import (
	"pedidos-crm/internal/handlers"
	"pedidos-crm/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterAPIRoutes registers all authenticated routes under /api.
func RegisterAPIRoutes(api *gin.RouterGroup) {
	apiGroup := api.Group("/api")
	{
		clients := apiGroup.Group("/clients")
		{
			clients.GET("", handlers.ListClientsHandler)
			clients.POST("", handlers.CreateClientHandler)
			clients.GET("/export", handlers.ExportClientsHandler)
			clients.PUT("/:id", handlers.UpdateClientHandler)
			clients.DELETE("/:id", handlers.DeleteClientHandler)
		}

		orders := apiGroup.Group("/orders")
		{
			orders.GET("", handlers.ListOrdersHandler)
			orders.POST("", handlers.CreateOrderHandler)
			orders.GET("/:id", handlers.GetOrderHandler)
			orders.DELETE("/:id", handlers.DeleteOrderHandler)
		}

		installments := apiGroup.Group("/installments")
		{
			installments.GET("/export", handlers.ExportInstallmentsHandler)
			installments.POST("/:id/settle", handlers.SettleInstallmentHandler)
			installments.POST("/:id/reopen", handlers.ReopenInstallmentHandler)
		}

		apiGroup.GET("/cashflow", handlers.GetCashFlowHandler)

		admin := apiGroup.Group("/admin")
		admin.Use(middleware.AdminMiddleware())
		{
			admin.GET("/users", handlers.ListUsersHandler)
			admin.POST("/users", handlers.CreateUserHandler)
			admin.POST("/users/:id/reset-password", handlers.ResetPasswordHandler)
			admin.DELETE("/users/:id", handlers.DeleteUserHandler)
		}
	}
}
