package routes

import (
	"tricypay/internal/controllers"

	"github.com/gin-gonic/gin"
)

func VehicleRoutes(r *gin.Engine) {
	vehicles := r.Group("/vehicles")
	{
		vehicles.GET("/", controllers.ListVehicles)
		vehicles.POST("/", controllers.CreateVehicle)
		vehicles.PUT("/:plate", controllers.UpdateVehicle)
		vehicles.DELETE("/:plate", controllers.DeleteVehicle)
	}
}
