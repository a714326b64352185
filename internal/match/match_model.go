package match

import (
	"github.com/DhavalSuthar-24/crease/internal/models"
	"github.com/DhavalSuthar-24/crease/internal/scoring"
)

// --- DTOs for requests ---

// RecordBallRequest is one delivery as the scorer enters it.
type RecordBallRequest struct {
	Innings           int               `json:"innings"`
	OverNumber        int               `json:"over_number"`
	BallNumber        int               `json:"ball_number"`
	StrikerID         uint              `json:"striker_id"`
	NonStrikerID      uint              `json:"non_striker_id"`
	BowlerID          uint              `json:"bowler_id"`
	Runs              int               `json:"runs"`
	Extras            int               `json:"extras"`
	ExtraKind         models.ExtraKind  `json:"extra_kind"`
	IsWicket          bool              `json:"is_wicket"`
	WicketKind        models.WicketKind `json:"wicket_kind"`
	DismissedPlayerID *uint             `json:"dismissed_player_id"`
	FielderID         *uint             `json:"fielder_id"`
	Commentary        string            `json:"commentary"`
}

// Event converts the request into an unsaved ledger entry.
func (r RecordBallRequest) Event(fixtureID uint) models.BallEvent {
	kind := r.ExtraKind
	if kind == "" {
		kind = models.ExtraNone
	}
	return models.BallEvent{
		FixtureID:         fixtureID,
		Innings:           r.Innings,
		OverNumber:        r.OverNumber,
		BallNumber:        r.BallNumber,
		StrikerID:         r.StrikerID,
		NonStrikerID:      r.NonStrikerID,
		BowlerID:          r.BowlerID,
		Runs:              r.Runs,
		Extras:            r.Extras,
		ExtraKind:         kind,
		IsWicket:          r.IsWicket,
		WicketKind:        r.WicketKind,
		DismissedPlayerID: r.DismissedPlayerID,
		FielderID:         r.FielderID,
		Commentary:        r.Commentary,
	}
}

// UpdateStateRequest changes fixture metadata. Absent fields are left alone.
type UpdateStateRequest struct {
	Status         *models.FixtureStatus `json:"status" binding:"omitempty,oneof=scheduled live completed cancelled"`
	TossWinnerID   *uint                 `json:"toss_winner_id"`
	TossDecision   *models.TossDecision  `json:"toss_decision" binding:"omitempty,oneof=bat bowl"`
	CurrentInnings *int                  `json:"current_innings" binding:"omitempty,oneof=1 2"`
	TotalOvers     *int                  `json:"total_overs" binding:"omitempty,gte=1,lte=50"`
}

type MarkWinnerRequest struct {
	WinningTeamID uint `json:"winning_team_id" binding:"required"`
}

type SimulateRequest struct {
	ForcedWinnerID *uint  `json:"forced_winner_id"`
	TargetScore    *int   `json:"target_score" binding:"omitempty,gte=1"`
	Seed           *int64 `json:"seed"`
}

// --- Responses ---

// InningsView is one innings as shown on the scoreboard.
type InningsView struct {
	Number      int    `json:"number"`
	TeamID      *uint  `json:"team_id,omitempty"`
	Runs        int    `json:"runs"`
	Wickets     int    `json:"wickets"`
	LegalBalls  int    `json:"legal_balls"`
	OversString string `json:"overs"`
}

func newInningsView(number int, teamID *uint, s scoring.InningsScore) InningsView {
	return InningsView{
		Number:      number,
		TeamID:      teamID,
		Runs:        s.Runs,
		Wickets:     s.Wickets,
		LegalBalls:  s.LegalBalls,
		OversString: s.Overs(),
	}
}

// State is the live view of a fixture derived from its ledger.
type State struct {
	Fixture        *models.Fixture         `json:"fixture"`
	Balls          []models.BallEvent      `json:"balls"`
	Innings        []InningsView           `json:"innings"`
	Cursor         scoring.Position        `json:"cursor"`
	WinProbability *scoring.WinProbability `json:"win_probability,omitempty"`
}

type SimulationResult struct {
	BallsCreated int    `json:"balls_created"`
	State        *State `json:"state"`
}

type ScorecardResponse struct {
	FixtureID uint                `json:"fixture_id"`
	Innings   []scoring.Scorecard `json:"innings"`
}

// MVPEntry is one line of the tournament impact leaderboard.
type MVPEntry struct {
	scoring.PlayerImpact
	Rank       int    `json:"rank"`
	PlayerName string `json:"player_name,omitempty"`
	TeamID     uint   `json:"team_id,omitempty"`
}
