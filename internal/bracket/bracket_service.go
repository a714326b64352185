// Package bracket seeds the playoff fixtures from the points table and moves
// winners and losers through them.
package bracket

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/DhavalSuthar-24/crease/internal/common"
	"github.com/DhavalSuthar-24/crease/internal/models"
)

// Ranker returns the points table in display order.
type Ranker interface {
	Get(ctx context.Context, tournamentID uint) ([]models.StandingsRow, error)
}

type Service struct {
	repo   BracketRepository
	ranker Ranker
}

func NewService(repo BracketRepository, ranker Ranker) *Service {
	return &Service{repo: repo, ranker: ranker}
}

// Generate re-seeds the playoffs. Four or more ranked teams get the
// qualifier/eliminator ladder; two or three get a straight final. Existing
// playoff fixtures and their balls are discarded first.
func (s *Service) Generate(ctx context.Context, tournamentID uint) ([]models.Fixture, error) {
	t, err := s.repo.GetTournament(ctx, tournamentID)
	if err != nil {
		return nil, err
	}
	rows, err := s.ranker.Get(ctx, tournamentID)
	if err != nil {
		return nil, err
	}
	if len(rows) < 2 {
		return nil, common.ErrNotEnoughStandings
	}

	seed := func(i int) *uint { return models.UintPtr(rows[i].TeamID) }
	fixture := func(stage models.Stage, team1, team2 *uint) models.Fixture {
		return models.Fixture{
			TournamentID:   tournamentID,
			Team1ID:        team1,
			Team2ID:        team2,
			Status:         models.FixtureScheduled,
			Stage:          stage,
			CurrentInnings: 1,
			TotalOvers:     t.TotalOvers,
		}
	}

	var fixtures []models.Fixture
	if len(rows) >= 4 {
		fixtures = []models.Fixture{
			fixture(models.StageQualifier1, seed(0), seed(1)),
			fixture(models.StageEliminator, seed(2), seed(3)),
			fixture(models.StageQualifier2, nil, nil),
			fixture(models.StageFinal, nil, nil),
		}
	} else {
		fixtures = []models.Fixture{fixture(models.StageFinal, seed(0), seed(1))}
	}

	if err := s.repo.ReplaceKnockouts(ctx, tournamentID, fixtures); err != nil {
		return nil, fmt.Errorf("replace knockouts: %w", err)
	}
	log.Ctx(ctx).Info().Uint("tournament_id", tournamentID).Int("fixtures", len(fixtures)).Msg("knockouts generated")
	return fixtures, nil
}

// Advance fills the slots fed by a decided knockout fixture. A fixture
// without a winner, or a stage the bracket does not have, is a no-op.
func (s *Service) Advance(ctx context.Context, f *models.Fixture) error {
	if !f.Stage.IsKnockout() || f.WinningTeamID == nil {
		return nil
	}
	winner := *f.WinningTeamID
	loser := f.Opponent(winner)

	switch f.Stage {
	case models.StageQualifier1:
		if err := s.fill(ctx, f.TournamentID, models.StageFinal, SlotTeam1, winner); err != nil {
			return err
		}
		if loser != nil {
			return s.fill(ctx, f.TournamentID, models.StageQualifier2, SlotTeam1, *loser)
		}
	case models.StageEliminator:
		return s.fill(ctx, f.TournamentID, models.StageQualifier2, SlotTeam2, winner)
	case models.StageQualifier2:
		return s.fill(ctx, f.TournamentID, models.StageFinal, SlotTeam2, winner)
	case models.StageFinal:
		if loser == nil {
			return common.InvalidState("final winner %d did not play in fixture %d", winner, f.ID)
		}
		log.Ctx(ctx).Info().Uint("tournament_id", f.TournamentID).Uint("champion", winner).Msg("tournament decided")
		return s.repo.SetPodium(ctx, f.TournamentID, winner, *loser)
	}
	return nil
}

func (s *Service) fill(ctx context.Context, tournamentID uint, stage models.Stage, slot Slot, teamID uint) error {
	target, err := s.repo.GetStageFixture(ctx, tournamentID, stage)
	if err != nil {
		return err
	}
	if target == nil {
		return nil
	}
	return s.repo.AssignTeam(ctx, target.ID, slot, teamID)
}
