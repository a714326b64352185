package standings

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/DhavalSuthar-24/crease/internal/models"
)

// Service recomputes and serves the points table of a tournament.
type Service struct {
	repo StandingsRepository
}

func NewService(repo StandingsRepository) *Service {
	return &Service{repo: repo}
}

// Recompute rebuilds every row of the tournament from its completed league
// fixtures, stores them and clears the stale flag. Rows come back in display
// order.
func (s *Service) Recompute(ctx context.Context, tournamentID uint) ([]models.StandingsRow, error) {
	t, err := s.repo.GetTournament(ctx, tournamentID)
	if err != nil {
		return nil, err
	}
	teams, err := s.repo.GetTeams(ctx, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("load teams: %w", err)
	}
	fixtures, err := s.repo.GetCompletedLeagueFixtures(ctx, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("load fixtures: %w", err)
	}

	rows := Compute(tournamentID, teams, fixtures, t.TotalOvers)
	if err := s.repo.UpsertRows(ctx, rows); err != nil {
		return nil, fmt.Errorf("upsert standings: %w", err)
	}
	if t.StandingsStale {
		if err := s.repo.SetStale(ctx, tournamentID, false); err != nil {
			return nil, fmt.Errorf("clear stale flag: %w", err)
		}
	}

	Sort(rows)
	return rows, nil
}

// Get returns the stored table in display order. Teams registered since the
// last recompute appear with zeroed rows.
func (s *Service) Get(ctx context.Context, tournamentID uint) ([]models.StandingsRow, error) {
	if _, err := s.repo.GetTournament(ctx, tournamentID); err != nil {
		return nil, err
	}
	rows, err := s.repo.GetRows(ctx, tournamentID)
	if err != nil {
		return nil, err
	}
	teams, err := s.repo.GetTeams(ctx, tournamentID)
	if err != nil {
		return nil, err
	}

	seen := make(map[uint]bool, len(rows))
	for _, r := range rows {
		seen[r.TeamID] = true
	}
	for i := range teams {
		if !seen[teams[i].ID] {
			rows = append(rows, models.StandingsRow{TournamentID: tournamentID, TeamID: teams[i].ID, Team: &teams[i]})
		}
	}

	Sort(rows)
	return rows, nil
}

// MarkStale flags the tournament for the reconciler.
func (s *Service) MarkStale(ctx context.Context, tournamentID uint) error {
	return s.repo.SetStale(ctx, tournamentID, true)
}

// ReconcileStale recomputes every tournament flagged stale. One failure does
// not stop the others; the tournament simply stays flagged.
func (s *Service) ReconcileStale(ctx context.Context) (int, error) {
	ids, err := s.repo.GetStaleTournamentIDs(ctx)
	if err != nil {
		return 0, err
	}
	done := 0
	for _, id := range ids {
		if _, err := s.Recompute(ctx, id); err != nil {
			log.Ctx(ctx).Warn().Err(err).Uint("tournament_id", id).Msg("standings reconcile failed")
			continue
		}
		done++
	}
	return done, nil
}
