package users

import (
	"github.com/gin-gonic/gin"

	"cryptofolio/internal/shared/middleware"
)

// Administrative user management. Every route is admin-only: listing accounts
// exposes emails and balances.
func SetupUserRoutes(router *gin.RouterGroup, controller *Controller, authMW gin.HandlerFunc) {
	adminUsers := router.Group("/users")
	adminUsers.Use(authMW, middleware.RequireAdmin())
	{
		adminUsers.GET("", controller.ListUsers)
		adminUsers.POST("", controller.CreateUser)
		adminUsers.GET("/:id", controller.GetUser)
		adminUsers.PUT("/:id", controller.UpdateUser)
		adminUsers.DELETE("/:id", controller.DeleteUser)
	}
}
