package match

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/DhavalSuthar-24/crease/pkg/matchresponse"
)

// MatchController handles the scoring and lifecycle endpoints of a fixture.
type MatchController struct {
	service *Service
}

// NewMatchController creates a new match controller
func NewMatchController(service *Service) *MatchController {
	return &MatchController{service: service}
}

// RecordBall godoc
// @Summary Append a delivery to the ledger
// @Description The caller supplies innings, over, ball, participants and outcome. Over and ball sequencing is not checked.
// @Tags Scoring
// @Accept json
// @Produce json
// @Param id path int true "Fixture ID"
// @Param ball body RecordBallRequest true "Delivery"
// @Success 201 {object} models.BallEvent
// @Failure 400 {object} map[string]interface{} "Invalid ball payload"
// @Failure 404 {object} map[string]interface{} "Fixture not found"
// @Failure 409 {object} map[string]interface{} "Fixture completed or cancelled"
// @Security ScorerAuth
// @Router /fixtures/{id}/balls [post]
func (mc *MatchController) RecordBall(c *gin.Context) {
	fixtureID, ok := matchresponse.ParseID(c, "id")
	if !ok {
		return
	}

	var req RecordBallRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		matchresponse.ValidationErrorResponse(c, err)
		return
	}

	ball, err := mc.service.RecordBall(c.Request.Context(), fixtureID, req)
	if err != nil {
		matchresponse.DomainError(c, err)
		return
	}
	matchresponse.SuccessResponse(c, http.StatusCreated, ball)
}

// UndoLastBall godoc
// @Summary Delete the most recent delivery
// @Tags Scoring
// @Produce json
// @Param id path int true "Fixture ID"
// @Success 200 {object} models.BallEvent
// @Failure 404 {object} map[string]interface{} "Fixture not found or no balls recorded"
// @Security ScorerAuth
// @Router /fixtures/{id}/balls/last [delete]
func (mc *MatchController) UndoLastBall(c *gin.Context) {
	fixtureID, ok := matchresponse.ParseID(c, "id")
	if !ok {
		return
	}
	removed, err := mc.service.UndoLast(c.Request.Context(), fixtureID)
	if err != nil {
		matchresponse.DomainError(c, err)
		return
	}
	matchresponse.SuccessResponse(c, http.StatusOK, gin.H{"message": "Last ball removed", "ball": removed})
}

// GetState godoc
// @Summary Get the live state of a fixture
// @Description Fixture, every ball, both innings scores, the next-ball cursor and, during a chase, the win probability.
// @Tags Scoring
// @Produce json
// @Param id path int true "Fixture ID"
// @Success 200 {object} State
// @Failure 404 {object} map[string]interface{} "Fixture not found"
// @Router /fixtures/{id}/state [get]
func (mc *MatchController) GetState(c *gin.Context) {
	fixtureID, ok := matchresponse.ParseID(c, "id")
	if !ok {
		return
	}
	state, err := mc.service.GetState(c.Request.Context(), fixtureID)
	if err != nil {
		matchresponse.DomainError(c, err)
		return
	}
	matchresponse.SuccessResponse(c, http.StatusOK, state)
}

// UpdateState godoc
// @Summary Update toss, innings, overs or status
// @Description Setting status to completed resolves the result, picks the player of the match and refreshes standings.
// @Tags Scoring
// @Accept json
// @Produce json
// @Param id path int true "Fixture ID"
// @Param state body UpdateStateRequest true "Changes"
// @Success 200 {object} models.Fixture
// @Failure 400 {object} map[string]interface{} "Invalid input"
// @Failure 404 {object} map[string]interface{} "Fixture not found"
// @Failure 409 {object} map[string]interface{} "Fixture already completed"
// @Security ScorerAuth
// @Router /fixtures/{id}/state [patch]
func (mc *MatchController) UpdateState(c *gin.Context) {
	fixtureID, ok := matchresponse.ParseID(c, "id")
	if !ok {
		return
	}

	var req UpdateStateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		matchresponse.ValidationErrorResponse(c, err)
		return
	}

	fixture, err := mc.service.UpdateState(c.Request.Context(), fixtureID, req)
	if err != nil {
		matchresponse.DomainError(c, err)
		return
	}
	matchresponse.SuccessResponse(c, http.StatusOK, fixture)
}

// Simulate godoc
// @Summary Simulate the rest of a fixture
// @Description Generates deliveries from the current ledger position to the end of the match, stores them and completes the fixture. A forced winner biases the outcome; it does not guarantee it.
// @Tags Scoring
// @Accept json
// @Produce json
// @Param id path int true "Fixture ID"
// @Param options body SimulateRequest false "Simulation options"
// @Success 200 {object} SimulationResult
// @Failure 400 {object} map[string]interface{} "Invalid input"
// @Failure 404 {object} map[string]interface{} "Fixture not found"
// @Failure 409 {object} map[string]interface{} "Fixture completed or roster empty"
// @Security ScorerAuth
// @Router /fixtures/{id}/simulate [post]
func (mc *MatchController) Simulate(c *gin.Context) {
	fixtureID, ok := matchresponse.ParseID(c, "id")
	if !ok {
		return
	}

	var req SimulateRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		matchresponse.ValidationErrorResponse(c, err)
		return
	}

	result, err := mc.service.Simulate(c.Request.Context(), fixtureID, req)
	if err != nil {
		matchresponse.DomainError(c, err)
		return
	}
	matchresponse.SuccessResponse(c, http.StatusOK, result)
}

// MarkWinner godoc
// @Summary Award a fixture to one team
// @Description Completes the fixture without resolving the ledger and advances the bracket.
// @Tags Scoring
// @Accept json
// @Produce json
// @Param id path int true "Fixture ID"
// @Param winner body MarkWinnerRequest true "Winning team"
// @Success 200 {object} models.Fixture
// @Failure 400 {object} map[string]interface{} "Team does not play in the fixture"
// @Failure 404 {object} map[string]interface{} "Fixture not found"
// @Failure 409 {object} map[string]interface{} "Fixture completed or teams undecided"
// @Security ScorerAuth
// @Router /fixtures/{id}/winner [post]
func (mc *MatchController) MarkWinner(c *gin.Context) {
	fixtureID, ok := matchresponse.ParseID(c, "id")
	if !ok {
		return
	}

	var req MarkWinnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		matchresponse.ValidationErrorResponse(c, err)
		return
	}

	fixture, err := mc.service.MarkWinner(c.Request.Context(), fixtureID, req.WinningTeamID)
	if err != nil {
		matchresponse.DomainError(c, err)
		return
	}
	matchresponse.SuccessResponse(c, http.StatusOK, fixture)
}

// GetScorecard godoc
// @Summary Batting and bowling breakdown of both innings
// @Tags Scoring
// @Produce json
// @Param id path int true "Fixture ID"
// @Success 200 {object} ScorecardResponse
// @Failure 404 {object} map[string]interface{} "Fixture not found"
// @Router /fixtures/{id}/scorecard [get]
func (mc *MatchController) GetScorecard(c *gin.Context) {
	fixtureID, ok := matchresponse.ParseID(c, "id")
	if !ok {
		return
	}
	card, err := mc.service.Scorecard(c.Request.Context(), fixtureID)
	if err != nil {
		matchresponse.DomainError(c, err)
		return
	}
	matchresponse.SuccessResponse(c, http.StatusOK, card)
}

// GetTournamentMVP godoc
// @Summary Impact leaderboard across a tournament
// @Tags Scoring
// @Produce json
// @Param id path int true "Tournament ID"
// @Param limit query int false "Number of players" default(10)
// @Success 200 {array} MVPEntry
// @Failure 404 {object} map[string]interface{} "Tournament not found"
// @Router /tournaments/{id}/mvp [get]
func (mc *MatchController) GetTournamentMVP(c *gin.Context) {
	tournamentID, ok := matchresponse.ParseID(c, "id")
	if !ok {
		return
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit < 0 {
		matchresponse.ErrorResponse(c, http.StatusBadRequest, "Invalid limit")
		return
	}

	entries, err := mc.service.LifetimeMVP(c.Request.Context(), tournamentID, limit)
	if err != nil {
		matchresponse.DomainError(c, err)
		return
	}
	matchresponse.SuccessResponse(c, http.StatusOK, entries)
}
