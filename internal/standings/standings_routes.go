package standings

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// StandingsRoutes registers the points table routes and returns the service
// for the match lifecycle to drive.
func StandingsRoutes(router *gin.RouterGroup, db *gorm.DB, write gin.HandlerFunc) *Service {
	service := NewService(NewStandingsRepository(db))
	controller := NewStandingsController(service)

	router.GET("/tournaments/:id/standings", controller.GetStandings)
	router.POST("/tournaments/:id/standings/recompute", write, controller.RecomputeStandings)
	return service
}
