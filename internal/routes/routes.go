package routes

import (
	"net/http"

	ginlogger "github.com/gin-contrib/logger"
	"github.com/gin-gonic/gin"
)

// SetupRouter wires every route group onto a fresh engine.
func SetupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(ginlogger.SetLogger())

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Tricypay backend is running!")
	})

	AuthRoutes(r)
	DriverRoutes(r)
	OperatorRoutes(r)
	FranchiseRoutes(r)
	TodaRoutes(r)
	VehicleRoutes(r)
	AssignmentRoutes(r)
	ReportRoutes(r)

	return r
}
