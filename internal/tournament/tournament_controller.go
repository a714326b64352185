package tournament

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/DhavalSuthar-24/crease/pkg/matchresponse"
)

// TournamentController handles tournament and fixture HTTP requests
type TournamentController struct {
	service *Service
}

// NewTournamentController creates a new tournament controller
func NewTournamentController(service *Service) *TournamentController {
	return &TournamentController{service: service}
}

// CreateTournament godoc
// @Summary Create a tournament
// @Tags Tournaments
// @Accept json
// @Produce json
// @Param tournament body CreateTournamentRequest true "Tournament"
// @Success 201 {object} models.Tournament
// @Failure 400 {object} map[string]interface{} "Invalid input"
// @Security ScorerAuth
// @Router /tournaments [post]
func (tc *TournamentController) CreateTournament(c *gin.Context) {
	var req CreateTournamentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		matchresponse.ValidationErrorResponse(c, err)
		return
	}

	t, err := tc.service.Create(c.Request.Context(), req)
	if err != nil {
		matchresponse.DomainError(c, err)
		return
	}
	matchresponse.SuccessResponse(c, http.StatusCreated, t)
}

// GetTournament godoc
// @Summary Get a tournament with its teams
// @Tags Tournaments
// @Produce json
// @Param id path int true "Tournament ID"
// @Success 200 {object} models.Tournament
// @Failure 404 {object} map[string]interface{} "Tournament not found"
// @Router /tournaments/{id} [get]
func (tc *TournamentController) GetTournament(c *gin.Context) {
	id, ok := matchresponse.ParseID(c, "id")
	if !ok {
		return
	}
	t, err := tc.service.Get(c.Request.Context(), id)
	if err != nil {
		matchresponse.DomainError(c, err)
		return
	}
	matchresponse.SuccessResponse(c, http.StatusOK, t)
}

// CreateFixture godoc
// @Summary Schedule one fixture
// @Tags Fixtures
// @Accept json
// @Produce json
// @Param id path int true "Tournament ID"
// @Param fixture body CreateFixtureRequest true "Fixture"
// @Success 201 {object} models.Fixture
// @Failure 400 {object} map[string]interface{} "Invalid input or team outside the tournament"
// @Failure 404 {object} map[string]interface{} "Tournament not found"
// @Security ScorerAuth
// @Router /tournaments/{id}/fixtures [post]
func (tc *TournamentController) CreateFixture(c *gin.Context) {
	id, ok := matchresponse.ParseID(c, "id")
	if !ok {
		return
	}

	var req CreateFixtureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		matchresponse.ValidationErrorResponse(c, err)
		return
	}

	f, err := tc.service.CreateFixture(c.Request.Context(), id, req)
	if err != nil {
		matchresponse.DomainError(c, err)
		return
	}
	matchresponse.SuccessResponse(c, http.StatusCreated, f)
}

// ScheduleLeague godoc
// @Summary Generate the league round-robin
// @Description Every team meets every other team once. Rounds are interval_days apart.
// @Tags Fixtures
// @Accept json
// @Produce json
// @Param id path int true "Tournament ID"
// @Param options body ScheduleRequest false "Schedule options"
// @Success 201 {array} models.Fixture
// @Failure 404 {object} map[string]interface{} "Tournament not found"
// @Failure 409 {object} map[string]interface{} "Too few teams or league already scheduled"
// @Security ScorerAuth
// @Router /tournaments/{id}/schedule [post]
func (tc *TournamentController) ScheduleLeague(c *gin.Context) {
	id, ok := matchresponse.ParseID(c, "id")
	if !ok {
		return
	}

	var req ScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		matchresponse.ValidationErrorResponse(c, err)
		return
	}

	fixtures, err := tc.service.ScheduleLeague(c.Request.Context(), id, req)
	if err != nil {
		matchresponse.DomainError(c, err)
		return
	}
	matchresponse.SuccessResponse(c, http.StatusCreated, fixtures)
}

// ListFixtures godoc
// @Summary List the fixtures of a tournament
// @Tags Fixtures
// @Produce json
// @Param id path int true "Tournament ID"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Param stage query string false "Filter by stage"
// @Param status query string false "Filter by status"
// @Success 200 {array} models.Fixture
// @Failure 404 {object} map[string]interface{} "Tournament not found"
// @Router /tournaments/{id}/fixtures [get]
func (tc *TournamentController) ListFixtures(c *gin.Context) {
	id, ok := matchresponse.ParseID(c, "id")
	if !ok {
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}

	filters := make(map[string]interface{})
	if stage := c.Query("stage"); stage != "" {
		filters["stage"] = stage
	}
	if status := c.Query("status"); status != "" {
		filters["status"] = status
	}

	fixtures, total, err := tc.service.ListFixtures(c.Request.Context(), id, page, limit, filters)
	if err != nil {
		matchresponse.DomainError(c, err)
		return
	}
	matchresponse.PaginatedResponse(c, http.StatusOK, fixtures, page, limit, total)
}
