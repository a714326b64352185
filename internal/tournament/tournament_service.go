package tournament

import (
	"context"
	"fmt"
	"time"

	"github.com/gosimple/slug"
	"github.com/rs/zerolog/log"

	"github.com/DhavalSuthar-24/crease/internal/common"
	"github.com/DhavalSuthar-24/crease/internal/models"
	"github.com/DhavalSuthar-24/crease/internal/team"
)

// DefaultOvers applies when a tournament is created without an overs limit.
const DefaultOvers = 20

// Service manages tournaments and their league fixtures.
type Service struct {
	repo  TournamentRepository
	teams team.TeamRepository
	now   func() time.Time
}

func NewService(repo TournamentRepository, teams team.TeamRepository) *Service {
	return &Service{repo: repo, teams: teams, now: time.Now}
}

// Create registers a tournament under a unique slug derived from its name.
func (s *Service) Create(ctx context.Context, req CreateTournamentRequest) (*models.Tournament, error) {
	overs := req.TotalOvers
	if overs == 0 {
		overs = DefaultOvers
	}

	base := slug.Make(req.Name)
	candidate := base
	for n := 2; ; n++ {
		taken, err := s.repo.SlugTaken(ctx, candidate)
		if err != nil {
			return nil, err
		}
		if !taken {
			break
		}
		candidate = fmt.Sprintf("%s-%d", base, n)
	}

	t := &models.Tournament{
		Name:       req.Name,
		Slug:       candidate,
		TotalOvers: overs,
		StartDate:  req.StartDate,
		Status:     models.TournamentUpcoming,
	}
	if err := s.repo.CreateTournament(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *Service) Get(ctx context.Context, id uint) (*models.Tournament, error) {
	return s.repo.GetTournament(ctx, id)
}

// CreateFixture schedules a single fixture between two teams of the tournament.
func (s *Service) CreateFixture(ctx context.Context, tournamentID uint, req CreateFixtureRequest) (*models.Fixture, error) {
	t, err := s.repo.GetTournament(ctx, tournamentID)
	if err != nil {
		return nil, err
	}
	if req.Team1ID == req.Team2ID {
		return nil, common.Validation("a fixture needs two different teams", models.ErrSameTeams)
	}
	teams, err := s.teams.GetTeamsByIDs(ctx, []uint{req.Team1ID, req.Team2ID})
	if err != nil {
		return nil, err
	}
	for _, id := range []uint{req.Team1ID, req.Team2ID} {
		tm, ok := teams[id]
		if !ok || tm.TournamentID != tournamentID {
			return nil, common.Validation(fmt.Sprintf("team %d is not registered in this tournament", id), nil)
		}
	}

	stage := req.Stage
	if stage == "" {
		stage = models.StageLeague
	}
	overs := req.TotalOvers
	if overs == 0 {
		overs = t.TotalOvers
	}
	f := models.Fixture{
		TournamentID:   tournamentID,
		Team1ID:        models.UintPtr(req.Team1ID),
		Team2ID:        models.UintPtr(req.Team2ID),
		ScheduledAt:    req.ScheduledAt,
		Venue:          req.Venue,
		Status:         models.FixtureScheduled,
		Stage:          stage,
		CurrentInnings: 1,
		TotalOvers:     overs,
	}
	fixtures := []models.Fixture{f}
	if err := s.repo.CreateFixtures(ctx, fixtures); err != nil {
		return nil, err
	}
	return &fixtures[0], nil
}

// ScheduleLeague generates the single round-robin of the tournament. It
// refuses to run twice.
func (s *Service) ScheduleLeague(ctx context.Context, tournamentID uint, req ScheduleRequest) ([]models.Fixture, error) {
	t, err := s.repo.GetTournament(ctx, tournamentID)
	if err != nil {
		return nil, err
	}
	if len(t.Teams) < 2 {
		return nil, common.InvalidState("a league needs at least two teams, tournament has %d", len(t.Teams))
	}
	existing, err := s.repo.CountFixtures(ctx, tournamentID, models.StageLeague)
	if err != nil {
		return nil, err
	}
	if existing > 0 {
		return nil, common.InvalidState("league already has %d fixtures", existing)
	}

	start := s.now().UTC().Truncate(24 * time.Hour)
	switch {
	case req.StartDate != nil:
		start = *req.StartDate
	case t.StartDate != nil:
		start = *t.StartDate
	}
	interval := req.IntervalDays
	if interval == 0 {
		interval = 1
	}

	pairs := RoundRobin(t.Teams)
	fixtures := LeagueFixtures(tournamentID, pairs, start, time.Duration(interval)*24*time.Hour, t.TotalOvers, req.Venue)
	if err := s.repo.CreateFixtures(ctx, fixtures); err != nil {
		return nil, fmt.Errorf("create league fixtures: %w", err)
	}

	log.Ctx(ctx).Info().
		Uint("tournament_id", tournamentID).
		Int("teams", len(t.Teams)).
		Int("fixtures", len(fixtures)).
		Msg("league scheduled")
	return fixtures, nil
}

// ListFixtures returns one page of fixtures and the total count.
func (s *Service) ListFixtures(ctx context.Context, tournamentID uint, page, limit int, filters map[string]interface{}) ([]models.Fixture, int64, error) {
	if _, err := s.repo.GetTournament(ctx, tournamentID); err != nil {
		return nil, 0, err
	}
	return s.repo.ListFixtures(ctx, tournamentID, page, limit, filters)
}
