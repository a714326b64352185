package match

import (
	"context"
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/DhavalSuthar-24/crease/internal/common"
	"github.com/DhavalSuthar-24/crease/internal/models"
	"github.com/DhavalSuthar-24/crease/internal/scoring"
	"github.com/DhavalSuthar-24/crease/internal/simulator"
	"github.com/DhavalSuthar-24/crease/internal/team"
	"github.com/DhavalSuthar-24/crease/pkg/validator"
)

// StandingsRefresher rebuilds the points table after a result.
type StandingsRefresher interface {
	Recompute(ctx context.Context, tournamentID uint) ([]models.StandingsRow, error)
	MarkStale(ctx context.Context, tournamentID uint) error
}

// Progressor moves knockout results into later bracket slots.
type Progressor interface {
	Advance(ctx context.Context, f *models.Fixture) error
}

// Service drives a fixture from its first ball to its result.
type Service struct {
	repo      MatchRepository
	teams     team.TeamRepository
	standings StandingsRefresher
	bracket   Progressor
	profile   simulator.Profile
	locks     *fixtureLocks
	now       func() time.Time
}

func NewService(repo MatchRepository, teams team.TeamRepository, standings StandingsRefresher, bracket Progressor, profile simulator.Profile) *Service {
	return &Service{
		repo:      repo,
		teams:     teams,
		standings: standings,
		bracket:   bracket,
		profile:   profile,
		locks:     newFixtureLocks(),
		now:       time.Now,
	}
}

// writable rejects fixtures whose ledger is closed.
func writable(f *models.Fixture) error {
	switch f.Status {
	case models.FixtureCompleted:
		return common.ErrFixtureCompleted
	case models.FixtureCancelled:
		return common.InvalidState("fixture %d is cancelled", f.ID)
	}
	return nil
}

// RecordBall appends one delivery to the fixture's ledger. Sequencing of
// overs and balls is trusted; only the payload shape is checked.
func (s *Service) RecordBall(ctx context.Context, fixtureID uint, req RecordBallRequest) (*models.BallEvent, error) {
	unlock := s.locks.lock(fixtureID)
	defer unlock()

	f, err := s.repo.GetFixture(ctx, fixtureID)
	if err != nil {
		return nil, err
	}
	if err := writable(f); err != nil {
		return nil, err
	}

	ball := req.Event(fixtureID)
	if err := validator.Struct(ball); err != nil {
		return nil, common.Validation("invalid ball payload", err)
	}
	if err := s.repo.AppendBall(ctx, &ball); err != nil {
		return nil, fmt.Errorf("append ball: %w", err)
	}

	log.Ctx(ctx).Debug().
		Uint("fixture_id", fixtureID).
		Int("sequence", ball.Sequence).
		Int("innings", ball.Innings).
		Msg("ball recorded")
	return &ball, nil
}

// UndoLast removes the most recent delivery.
func (s *Service) UndoLast(ctx context.Context, fixtureID uint) (*models.BallEvent, error) {
	unlock := s.locks.lock(fixtureID)
	defer unlock()

	f, err := s.repo.GetFixture(ctx, fixtureID)
	if err != nil {
		return nil, err
	}
	if err := writable(f); err != nil {
		return nil, err
	}
	return s.repo.DeleteLastBall(ctx, fixtureID)
}

// GetState returns the fixture with its ledger and the scores derived from it.
func (s *Service) GetState(ctx context.Context, fixtureID uint) (*State, error) {
	f, err := s.repo.GetFixture(ctx, fixtureID)
	if err != nil {
		return nil, err
	}
	balls, err := s.repo.ListBalls(ctx, fixtureID)
	if err != nil {
		return nil, err
	}
	return buildState(f, balls), nil
}

func buildState(f *models.Fixture, balls []models.BallEvent) *State {
	if balls == nil {
		balls = []models.BallEvent{}
	}
	first, second := scoring.SplitInnings(balls)

	var firstID, secondID *uint
	if a, b, ok := scoring.BattingOrder(f); ok {
		firstID, secondID = models.UintPtr(a), models.UintPtr(b)
	}

	st := &State{
		Fixture: f,
		Balls:   balls,
		Innings: []InningsView{
			newInningsView(1, firstID, first),
			newInningsView(2, secondID, second),
		},
		Cursor: scoring.Cursor(balls, f.CurrentInnings),
	}
	if st.Cursor.Innings == 2 && f.Status == models.FixtureLive {
		wp := scoring.LiveWinProbability(first, second, f.TotalOvers)
		st.WinProbability = &wp
	}
	return st
}

// UpdateState applies scorer metadata changes. Moving the status to
// completed resolves the result and runs the completion side effects.
func (s *Service) UpdateState(ctx context.Context, fixtureID uint, req UpdateStateRequest) (*models.Fixture, error) {
	unlock := s.locks.lock(fixtureID)
	defer unlock()

	f, err := s.repo.GetFixture(ctx, fixtureID)
	if err != nil {
		return nil, err
	}
	completing := req.Status != nil && *req.Status == models.FixtureCompleted
	if f.Status == models.FixtureCompleted {
		if completing {
			return f, nil
		}
		return nil, common.ErrFixtureCompleted
	}

	if req.TossWinnerID != nil {
		if !f.Involves(*req.TossWinnerID) {
			return nil, common.Validation("toss winner must be one of the fixture's teams", nil)
		}
		f.TossWinnerID = models.UintPtr(*req.TossWinnerID)
		if f.TossDecision == "" {
			f.TossDecision = models.TossBat
		}
		if f.Status == models.FixtureScheduled {
			f.Status = models.FixtureLive
		}
	}
	if req.TossDecision != nil {
		f.TossDecision = *req.TossDecision
	}
	if req.CurrentInnings != nil {
		f.CurrentInnings = *req.CurrentInnings
	}
	if req.TotalOvers != nil {
		f.TotalOvers = *req.TotalOvers
	}

	if completing {
		return s.complete(ctx, f, nil)
	}
	if req.Status != nil {
		f.Status = *req.Status
	}
	if err := s.repo.UpdateFixture(ctx, f); err != nil {
		return nil, fmt.Errorf("update fixture: %w", err)
	}
	return f, nil
}

// MarkWinner completes the fixture in favour of teamID without resolving
// the ledger. Bracket progression and standings follow as for any result.
func (s *Service) MarkWinner(ctx context.Context, fixtureID, teamID uint) (*models.Fixture, error) {
	unlock := s.locks.lock(fixtureID)
	defer unlock()

	f, err := s.repo.GetFixture(ctx, fixtureID)
	if err != nil {
		return nil, err
	}
	if err := writable(f); err != nil {
		return nil, err
	}
	if !f.HasTeams() {
		return nil, common.ErrTeamsNotDecided
	}
	if !f.Involves(teamID) {
		return nil, common.Validation("winning team must be one of the fixture's teams", nil)
	}
	return s.complete(ctx, f, models.UintPtr(teamID))
}

// complete writes the result of f and runs the bracket and standings side
// effects. A non-nil awarded skips score resolution.
func (s *Service) complete(ctx context.Context, f *models.Fixture, awarded *uint) (*models.Fixture, error) {
	f, err := s.settle(ctx, s.repo, f, awarded)
	if err != nil {
		return nil, err
	}
	return s.publish(ctx, f)
}

// settle resolves and saves the result of f through repo.
func (s *Service) settle(ctx context.Context, repo MatchRepository, f *models.Fixture, awarded *uint) (*models.Fixture, error) {
	if !f.HasTeams() {
		return nil, common.ErrTeamsNotDecided
	}
	balls, err := repo.ListBalls(ctx, f.ID)
	if err != nil {
		return nil, err
	}
	firstID, secondID, _ := scoring.BattingOrder(f)
	names := teamNames(f)

	now := s.now()
	f.Status = models.FixtureCompleted
	f.CompletedAt = &now
	f.PlayerOfMatchID = nil

	switch {
	case awarded != nil:
		f.WinningTeamID = models.UintPtr(*awarded)
		f.ResultText = names[*awarded] + " awarded the match"
		f.Snapshots = nil
	case len(balls) == 0:
		f.WinningTeamID = nil
		f.ResultText = "No result"
		f.Snapshots = nil
	default:
		first, second := scoring.SplitInnings(balls)
		res := scoring.Resolve(
			scoring.Side{TeamID: firstID, Name: names[firstID], Score: first},
			scoring.Side{TeamID: secondID, Name: names[secondID], Score: second},
		)
		f.ResultText = res.Text
		f.WinningTeamID = res.WinningTeamID
		f.Snapshots = models.Snapshots{
			firstID:  snapshot(first),
			secondID: snapshot(second),
		}
	}
	if mvp, ok := scoring.MVP(balls); ok {
		f.PlayerOfMatchID = models.UintPtr(mvp.PlayerID)
	}

	if err := repo.UpdateFixture(ctx, f); err != nil {
		return nil, fmt.Errorf("save result: %w", err)
	}
	return f, nil
}

// publish moves a saved result into the bracket and the points table.
func (s *Service) publish(ctx context.Context, f *models.Fixture) (*models.Fixture, error) {
	log.Ctx(ctx).Info().
		Uint("fixture_id", f.ID).
		Str("stage", string(f.Stage)).
		Str("result", f.ResultText).
		Msg("fixture completed")

	if f.Stage.IsKnockout() {
		if err := s.bracket.Advance(ctx, f); err != nil {
			return nil, fmt.Errorf("advance bracket: %w", err)
		}
	}
	s.refreshStandings(ctx, f.TournamentID)
	return f, nil
}

// refreshStandings never fails the caller. A failed recompute leaves the
// tournament flagged for the reconciler job.
func (s *Service) refreshStandings(ctx context.Context, tournamentID uint) {
	if _, err := s.standings.Recompute(ctx, tournamentID); err != nil {
		log.Ctx(ctx).Error().Err(err).Uint("tournament_id", tournamentID).Msg("standings recompute failed")
		if err := s.standings.MarkStale(ctx, tournamentID); err != nil {
			log.Ctx(ctx).Error().Err(err).Uint("tournament_id", tournamentID).Msg("could not flag standings stale")
		}
	}
}

func snapshot(score scoring.InningsScore) models.TeamSnapshot {
	return models.TeamSnapshot{
		Runs:    score.Runs,
		Wickets: score.Wickets,
		Overs:   score.OversDecimal(),
	}
}

func teamNames(f *models.Fixture) map[uint]string {
	names := make(map[uint]string, 2)
	for _, t := range []struct {
		id   *uint
		team *models.Team
	}{{f.Team1ID, f.Team1}, {f.Team2ID, f.Team2}} {
		if t.id == nil {
			continue
		}
		if t.team != nil && t.team.Name != "" {
			names[*t.id] = t.team.Name
		} else {
			names[*t.id] = fmt.Sprintf("Team %d", *t.id)
		}
	}
	return names
}

// Simulate generates the rest of the fixture, stores it through the
// ledger and completes the fixture.
func (s *Service) Simulate(ctx context.Context, fixtureID uint, req SimulateRequest) (*SimulationResult, error) {
	unlock := s.locks.lock(fixtureID)
	defer unlock()

	f, err := s.repo.GetFixture(ctx, fixtureID)
	if err != nil {
		return nil, err
	}
	if err := writable(f); err != nil {
		return nil, err
	}
	if !f.HasTeams() {
		return nil, common.ErrTeamsNotDecided
	}
	if req.ForcedWinnerID != nil && !f.Involves(*req.ForcedWinnerID) {
		return nil, common.Validation("forced winner must be one of the fixture's teams", nil)
	}

	if f.TossWinnerID == nil {
		f.TossWinnerID = models.UintPtr(*f.Team1ID)
		f.TossDecision = models.TossBat
	}
	firstID, secondID, _ := scoring.BattingOrder(f)

	firstPlayers, err := s.teams.GetPlayers(ctx, firstID)
	if err != nil {
		return nil, err
	}
	secondPlayers, err := s.teams.GetPlayers(ctx, secondID)
	if err != nil {
		return nil, err
	}
	existing, err := s.repo.ListBalls(ctx, fixtureID)
	if err != nil {
		return nil, err
	}

	seed := time.Now().UnixNano()
	if req.Seed != nil {
		seed = *req.Seed
	}
	target := 0
	if req.TargetScore != nil {
		target = *req.TargetScore
	}
	sim := simulator.New(s.profile, rand.New(rand.NewSource(seed)))
	generated, err := sim.Run(simulator.Request{
		First:          simulator.Lineup{TeamID: firstID, Players: firstPlayers},
		Second:         simulator.Lineup{TeamID: secondID, Players: secondPlayers},
		TotalOvers:     f.TotalOvers,
		Existing:       existing,
		ForcedWinnerID: req.ForcedWinnerID,
		TargetScore:    target,
	})
	if err != nil {
		return nil, err
	}

	if f.Status == models.FixtureScheduled {
		f.Status = models.FixtureLive
	}
	// The toss, the generated balls and the result commit together.
	err = s.repo.WithTransaction(ctx, func(tx MatchRepository) error {
		if err := tx.UpdateFixture(ctx, f); err != nil {
			return fmt.Errorf("record toss: %w", err)
		}
		if err := tx.AppendBalls(ctx, fixtureID, generated); err != nil {
			return fmt.Errorf("store simulated balls: %w", err)
		}
		stored, err := tx.GetFixture(ctx, fixtureID)
		if err != nil {
			return err
		}
		f, err = s.settle(ctx, tx, stored, nil)
		return err
	})
	if err != nil {
		return nil, err
	}
	log.Ctx(ctx).Info().
		Uint("fixture_id", fixtureID).
		Int64("seed", seed).
		Int("balls", len(generated)).
		Msg("fixture simulated")

	f, err = s.publish(ctx, f)
	if err != nil {
		return nil, err
	}
	balls, err := s.repo.ListBalls(ctx, fixtureID)
	if err != nil {
		return nil, err
	}
	return &SimulationResult{BallsCreated: len(generated), State: buildState(f, balls)}, nil
}

// Scorecard breaks both innings down per batter and bowler.
func (s *Service) Scorecard(ctx context.Context, fixtureID uint) (*ScorecardResponse, error) {
	if _, err := s.repo.GetFixture(ctx, fixtureID); err != nil {
		return nil, err
	}
	balls, err := s.repo.ListBalls(ctx, fixtureID)
	if err != nil {
		return nil, err
	}
	resp := &ScorecardResponse{FixtureID: fixtureID}
	for n := 1; n <= 2; n++ {
		resp.Innings = append(resp.Innings, scoring.BuildScorecard(n, scoring.FilterInnings(balls, n)))
	}
	return resp, nil
}

// LifetimeMVP ranks players by impact across every ball of the tournament.
// Equal totals keep the order in which players first appeared.
func (s *Service) LifetimeMVP(ctx context.Context, tournamentID uint, limit int) ([]MVPEntry, error) {
	if _, err := s.repo.GetTournament(ctx, tournamentID); err != nil {
		return nil, err
	}
	balls, err := s.repo.ListTournamentBalls(ctx, tournamentID)
	if err != nil {
		return nil, err
	}

	impacts := scoring.Impacts(balls)
	sort.SliceStable(impacts, func(i, j int) bool {
		return impacts[i].Points > impacts[j].Points
	})
	if limit > 0 && len(impacts) > limit {
		impacts = impacts[:limit]
	}

	ids := make([]uint, len(impacts))
	for i, imp := range impacts {
		ids[i] = imp.PlayerID
	}
	players, err := s.teams.GetPlayersByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	out := make([]MVPEntry, len(impacts))
	for i, imp := range impacts {
		out[i] = MVPEntry{PlayerImpact: imp, Rank: i + 1}
		if p, ok := players[imp.PlayerID]; ok {
			out[i].PlayerName = p.Name
			out[i].TeamID = p.TeamID
		}
	}
	return out, nil
}
