package routes

import (
	"tricypay/internal/controllers"

	"github.com/gin-gonic/gin"
)

func OperatorRoutes(r *gin.Engine) {
	operators := r.Group("/operators")
	{
		operators.GET("/", controllers.ListOperators)
		operators.POST("/", controllers.CreateOperator)
		operators.PUT("/:id", controllers.UpdateOperator)
		operators.DELETE("/:id", controllers.DeleteOperator)
	}
}
