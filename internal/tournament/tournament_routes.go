package tournament

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/DhavalSuthar-24/crease/internal/team"
)

// TournamentRoutes registers tournament and fixture scheduling routes.
func TournamentRoutes(router *gin.RouterGroup, db *gorm.DB, teamRepo team.TeamRepository, write gin.HandlerFunc) {
	service := NewService(NewTournamentRepository(db), teamRepo)
	controller := NewTournamentController(service)

	tournaments := router.Group("/tournaments")
	{
		tournaments.POST("", write, controller.CreateTournament)
		tournaments.GET("/:id", controller.GetTournament)
		tournaments.GET("/:id/fixtures", controller.ListFixtures)
		tournaments.POST("/:id/fixtures", write, controller.CreateFixture)
		tournaments.POST("/:id/schedule", write, controller.ScheduleLeague)
	}
}
