package bracket

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// BracketRoutes registers the knockout routes and returns the service that
// advances completed playoff fixtures.
func BracketRoutes(router *gin.RouterGroup, db *gorm.DB, ranker Ranker, admin gin.HandlerFunc) *Service {
	service := NewService(NewBracketRepository(db), ranker)
	controller := NewBracketController(service)

	router.POST("/tournaments/:id/knockouts", admin, controller.GenerateKnockouts)
	return service
}
