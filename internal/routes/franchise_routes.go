package routes

import (
	"tricypay/internal/controllers"

	"github.com/gin-gonic/gin"
)

func FranchiseRoutes(r *gin.Engine) {
	franchises := r.Group("/franchises")
	{
		franchises.GET("/", controllers.ListFranchises)
		franchises.POST("/", controllers.CreateFranchise)
		franchises.PUT("/:franchise_id", controllers.UpdateFranchise)
		franchises.DELETE("/:franchise_id", controllers.DeleteFranchise)
	}
}
