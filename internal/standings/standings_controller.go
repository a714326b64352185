package standings

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DhavalSuthar-24/crease/pkg/matchresponse"
)

type StandingsController struct {
	service *Service
}

func NewStandingsController(service *Service) *StandingsController {
	return &StandingsController{service: service}
}

// GetStandings godoc
// @Summary Get the points table
// @Description Rows ordered by points, then net run rate, then team name.
// @Tags Standings
// @Produce json
// @Param id path int true "Tournament ID"
// @Success 200 {array} models.StandingsRow
// @Failure 404 {object} map[string]interface{} "Tournament not found"
// @Router /tournaments/{id}/standings [get]
func (sc *StandingsController) GetStandings(c *gin.Context) {
	tournamentID, ok := matchresponse.ParseID(c, "id")
	if !ok {
		return
	}
	rows, err := sc.service.Get(c.Request.Context(), tournamentID)
	if err != nil {
		matchresponse.DomainError(c, err)
		return
	}
	matchresponse.SuccessResponse(c, http.StatusOK, rows)
}

// RecomputeStandings godoc
// @Summary Rebuild the points table from completed league fixtures
// @Tags Standings
// @Produce json
// @Param id path int true "Tournament ID"
// @Success 200 {array} models.StandingsRow
// @Failure 404 {object} map[string]interface{} "Tournament not found"
// @Security ScorerAuth
// @Router /tournaments/{id}/standings/recompute [post]
func (sc *StandingsController) RecomputeStandings(c *gin.Context) {
	tournamentID, ok := matchresponse.ParseID(c, "id")
	if !ok {
		return
	}
	rows, err := sc.service.Recompute(c.Request.Context(), tournamentID)
	if err != nil {
		matchresponse.DomainError(c, err)
		return
	}
	matchresponse.SuccessResponse(c, http.StatusOK, rows)
}
