package bracket

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DhavalSuthar-24/crease/pkg/matchresponse"
)

type BracketController struct {
	service *Service
}

func NewBracketController(service *Service) *BracketController {
	return &BracketController{service: service}
}

// GenerateKnockouts godoc
// @Summary Seed the playoff fixtures from the standings
// @Description Deletes existing playoff fixtures and their balls, then creates Qualifier 1, Eliminator, Qualifier 2 and Final (or a single Final for two or three teams).
// @Tags Bracket
// @Produce json
// @Param id path int true "Tournament ID"
// @Success 201 {array} models.Fixture
// @Failure 404 {object} map[string]interface{} "Tournament not found"
// @Failure 403 {object} map[string]interface{} "Admin role required"
// @Failure 409 {object} map[string]interface{} "Fewer than two teams in the standings"
// @Security ScorerAuth
// @Router /tournaments/{id}/knockouts [post]
func (bc *BracketController) GenerateKnockouts(c *gin.Context) {
	tournamentID, ok := matchresponse.ParseID(c, "id")
	if !ok {
		return
	}
	fixtures, err := bc.service.Generate(c.Request.Context(), tournamentID)
	if err != nil {
		matchresponse.DomainError(c, err)
		return
	}
	matchresponse.SuccessResponse(c, http.StatusCreated, fixtures)
}
