package routes

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/DhavalSuthar-24/crease/config"
	"github.com/DhavalSuthar-24/crease/internal/bracket"
	"github.com/DhavalSuthar-24/crease/internal/match"
	"github.com/DhavalSuthar-24/crease/internal/middleware"
	"github.com/DhavalSuthar-24/crease/internal/standings"
	"github.com/DhavalSuthar-24/crease/internal/team"
	"github.com/DhavalSuthar-24/crease/internal/tournament"
)

// SetupRoutes builds the engine. It returns the standings service so the
// reconciler job shares it with the request path.
func SetupRoutes(db *gorm.DB, cfg *config.Config) (*gin.Engine, *standings.Service) {
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger())

	corsConfig := cors.DefaultConfig()
	if cfg.App.FrontendURL != "" {
		corsConfig.AllowOrigins = []string{cfg.App.FrontendURL}
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization", "X-Request-ID")
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	r.Use(cors.New(corsConfig))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Swagger route
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API routes
	api := r.Group("/api")
	write := middleware.ScorerMiddleware(cfg.JWT.ScorerSecret, cfg.JWT.Issuer)
	admin := middleware.AdminMiddleware(cfg.JWT.ScorerSecret, cfg.JWT.Issuer)

	teamRepo := team.NewTeamRepository(db)
	team.TeamRoutes(api, db, write)
	tournament.TournamentRoutes(api, db, teamRepo, write)
	standingsService := standings.StandingsRoutes(api, db, write)
	bracketService := bracket.BracketRoutes(api, db, standingsService, admin)
	match.MatchRoutes(api, db, teamRepo, standingsService, bracketService, cfg.Simulator, write)

	return r, standingsService
}
