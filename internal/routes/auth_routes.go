package routes

import (
	"tricypay/internal/controllers"
	"tricypay/internal/middleware"

	"github.com/gin-gonic/gin"
)

func AuthRoutes(r *gin.Engine) {
	auth := r.Group("/auth")
	{
		auth.POST("/login", controllers.LoginDriver)
		auth.POST("/logout", controllers.LogoutDriver)
		auth.GET("/me/qr", middleware.RequireAuth(), controllers.DriverQR)
	}

	r.GET("/protected", middleware.RequireAuth(), controllers.Protected)
}
