package routes

import (
	"tricypay/internal/controllers"

	"github.com/gin-gonic/gin"
)

func AssignmentRoutes(r *gin.Engine) {
	assignments := r.Group("/assignments")
	{
		assignments.GET("/", controllers.ListAssignments)
		assignments.POST("/", controllers.CreateAssignment)
		assignments.PUT("/:assignment_id", controllers.UpdateAssignment)
		assignments.DELETE("/:assignment_id", controllers.DeleteAssignment)
	}
}
