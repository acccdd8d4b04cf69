package routes

import (
	"tricypay/internal/controllers"

	"github.com/gin-gonic/gin"
)

func ReportRoutes(r *gin.Engine) {
	r.POST("/submit-report", controllers.SubmitReport)
}
