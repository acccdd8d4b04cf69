package routes

import (
	"tricypay/internal/controllers"

	"github.com/gin-gonic/gin"
)

func TodaRoutes(r *gin.Engine) {
	todas := r.Group("/todas")
	{
		todas.GET("/", controllers.ListTodas)
		todas.POST("/", controllers.CreateToda)
		todas.PUT("/:id", controllers.UpdateToda)
		todas.DELETE("/:id", controllers.DeleteToda)
	}
}
