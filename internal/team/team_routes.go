package team

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// TeamRoutes sets up all team-related routes. write wraps mutating routes
// with the scorer middleware.
func TeamRoutes(router *gin.RouterGroup, db *gorm.DB, write gin.HandlerFunc) {
	teamRepo := NewTeamRepository(db)
	teamController := NewTeamController(teamRepo)

	// Public team routes
	router.GET("/tournaments/:id/teams", teamController.GetTournamentTeams)
	router.GET("/teams/:id", teamController.GetTeamByID)

	router.POST("/tournaments/:id/teams", write, teamController.CreateTeam)
	router.POST("/teams/:id/players", write, teamController.AddPlayer)
}
