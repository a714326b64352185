package match

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/DhavalSuthar-24/crease/internal/simulator"
	"github.com/DhavalSuthar-24/crease/internal/team"
)

// MatchRoutes sets up the scoring and fixture lifecycle routes. Write routes
// go through the write middleware.
func MatchRoutes(router *gin.RouterGroup, db *gorm.DB, teamRepo team.TeamRepository, standings StandingsRefresher, bracket Progressor, profile simulator.Profile, write gin.HandlerFunc) *Service {
	service := NewService(NewGormMatchRepository(db), teamRepo, standings, bracket, profile)
	matchController := NewMatchController(service)

	fixtures := router.Group("/fixtures/:id")
	{
		fixtures.GET("/state", matchController.GetState)
		fixtures.GET("/scorecard", matchController.GetScorecard)

		fixtures.POST("/balls", write, matchController.RecordBall)
		fixtures.DELETE("/balls/last", write, matchController.UndoLastBall)
		fixtures.PATCH("/state", write, matchController.UpdateState)
		fixtures.POST("/simulate", write, matchController.Simulate)
		fixtures.POST("/winner", write, matchController.MarkWinner)
	}

	router.GET("/tournaments/:id/mvp", matchController.GetTournamentMVP)
	return service
}
