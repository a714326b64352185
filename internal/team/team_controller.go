package team

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gosimple/slug"

	"github.com/DhavalSuthar-24/crease/internal/common"
	"github.com/DhavalSuthar-24/crease/internal/models"
	"github.com/DhavalSuthar-24/crease/pkg/matchresponse"
)

// TeamController handles team and roster HTTP requests
type TeamController struct {
	repo TeamRepository
}

// NewTeamController creates a new team controller
func NewTeamController(repo TeamRepository) *TeamController {
	return &TeamController{repo: repo}
}

// CreateTeam godoc
// @Summary Register a team in a tournament
// @Tags Teams
// @Accept json
// @Produce json
// @Param id path int true "Tournament ID"
// @Param team body CreateTeamRequest true "Team"
// @Success 201 {object} models.Team
// @Failure 400 {object} map[string]interface{} "Invalid input"
// @Failure 404 {object} map[string]interface{} "Tournament not found"
// @Security ScorerAuth
// @Router /tournaments/{id}/teams [post]
func (tc *TeamController) CreateTeam(c *gin.Context) {
	tournamentID, ok := matchresponse.ParseID(c, "id")
	if !ok {
		return
	}

	var req CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		matchresponse.ValidationErrorResponse(c, err)
		return
	}

	ctx := c.Request.Context()
	exists, err := tc.repo.TournamentExists(ctx, tournamentID)
	if err != nil {
		matchresponse.DomainError(c, err)
		return
	}
	if !exists {
		matchresponse.DomainError(c, common.ErrTournamentNotFound)
		return
	}

	team := models.Team{
		TournamentID: tournamentID,
		Name:         req.Name,
		ShortName:    req.ShortName,
		Slug:         slug.Make(req.Name),
		Logo:         req.Logo,
	}
	if err := tc.repo.CreateTeam(ctx, &team); err != nil {
		matchresponse.DomainError(c, err)
		return
	}
	matchresponse.SuccessResponse(c, http.StatusCreated, team)
}

// GetTournamentTeams godoc
// @Summary List the teams of a tournament
// @Tags Teams
// @Produce json
// @Param id path int true "Tournament ID"
// @Success 200 {array} models.Team
// @Router /tournaments/{id}/teams [get]
func (tc *TeamController) GetTournamentTeams(c *gin.Context) {
	tournamentID, ok := matchresponse.ParseID(c, "id")
	if !ok {
		return
	}
	teams, err := tc.repo.GetTournamentTeams(c.Request.Context(), tournamentID)
	if err != nil {
		matchresponse.DomainError(c, err)
		return
	}
	matchresponse.SuccessResponse(c, http.StatusOK, teams)
}

// GetTeamByID godoc
// @Summary Get a team with its roster
// @Tags Teams
// @Produce json
// @Param id path int true "Team ID"
// @Success 200 {object} models.Team
// @Failure 404 {object} map[string]interface{} "Team not found"
// @Router /teams/{id} [get]
func (tc *TeamController) GetTeamByID(c *gin.Context) {
	teamID, ok := matchresponse.ParseID(c, "id")
	if !ok {
		return
	}
	team, err := tc.repo.GetTeamByID(c.Request.Context(), teamID)
	if err != nil {
		matchresponse.DomainError(c, err)
		return
	}
	matchresponse.SuccessResponse(c, http.StatusOK, team)
}

// AddPlayer godoc
// @Summary Add a player to a team roster
// @Description Players bat in the order they are added.
// @Tags Teams
// @Accept json
// @Produce json
// @Param id path int true "Team ID"
// @Param player body AddPlayerRequest true "Player"
// @Success 201 {object} models.Player
// @Failure 404 {object} map[string]interface{} "Team not found"
// @Security ScorerAuth
// @Router /teams/{id}/players [post]
func (tc *TeamController) AddPlayer(c *gin.Context) {
	teamID, ok := matchresponse.ParseID(c, "id")
	if !ok {
		return
	}

	var req AddPlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		matchresponse.ValidationErrorResponse(c, err)
		return
	}

	ctx := c.Request.Context()
	if _, err := tc.repo.GetTeamByID(ctx, teamID); err != nil {
		matchresponse.DomainError(c, err)
		return
	}

	player := models.Player{TeamID: teamID, Name: req.Name, Role: req.Role}
	if player.Role == "" {
		player.Role = models.RoleAllRounder
	}
	if err := tc.repo.AddPlayer(ctx, &player); err != nil {
		matchresponse.DomainError(c, err)
		return
	}
	matchresponse.SuccessResponse(c, http.StatusCreated, player)
}
