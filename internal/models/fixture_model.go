package models

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

type FixtureStatus string

const (
	FixtureScheduled FixtureStatus = "scheduled"
	FixtureLive      FixtureStatus = "live"
	FixtureCompleted FixtureStatus = "completed"
	FixtureCancelled FixtureStatus = "cancelled"
)

type Stage string

const (
	StageLeague     Stage = "league"
	StageQualifier1 Stage = "qualifier1"
	StageEliminator Stage = "eliminator"
	StageQualifier2 Stage = "qualifier2"
	StageFinal      Stage = "final"
)

// IsKnockout reports whether the stage belongs to the playoff bracket.
func (s Stage) IsKnockout() bool {
	return s != StageLeague && s != ""
}

type TossDecision string

const (
	TossBat  TossDecision = "bat"
	TossBowl TossDecision = "bowl"
)

var ErrSameTeams = errors.New("team1 and team2 must be different teams")

// Fixture is one scheduled match between two teams. Team references stay nil
// until the bracket fills them.
type Fixture struct {
	BaseModel
	TournamentID uint  `json:"tournament_id" gorm:"index;not null"`
	Team1ID      *uint `json:"team1_id,omitempty" gorm:"index"`
	Team1        *Team `json:"team1,omitempty" gorm:"foreignKey:Team1ID"`
	Team2ID      *uint `json:"team2_id,omitempty" gorm:"index"`
	Team2        *Team `json:"team2,omitempty" gorm:"foreignKey:Team2ID"`

	ScheduledAt *time.Time    `json:"scheduled_at,omitempty" gorm:"index"`
	Venue       string        `json:"venue,omitempty"`
	Status      FixtureStatus `json:"status" gorm:"index;default:'scheduled'"`
	Stage       Stage         `json:"stage" gorm:"index;default:'league'"`

	TossWinnerID   *uint        `json:"toss_winner_id,omitempty"`
	TossDecision   TossDecision `json:"toss_decision,omitempty"`
	CurrentInnings int          `json:"current_innings" gorm:"default:1"`
	TotalOvers     int          `json:"total_overs" gorm:"not null;default:20"`

	ResultText      string     `json:"result_text,omitempty" gorm:"type:text"`
	WinningTeamID   *uint      `json:"winning_team_id,omitempty" gorm:"index"`
	PlayerOfMatchID *uint      `json:"player_of_match_id,omitempty"`
	CompletedAt     *time.Time `json:"completed_at,omitempty"`
	Snapshots       Snapshots  `json:"snapshots,omitempty" gorm:"type:json"`
}

// HasTeams reports whether both sides have been decided.
func (f *Fixture) HasTeams() bool {
	return f.Team1ID != nil && f.Team2ID != nil
}

// Involves reports whether teamID plays in the fixture.
func (f *Fixture) Involves(teamID uint) bool {
	return (f.Team1ID != nil && *f.Team1ID == teamID) || (f.Team2ID != nil && *f.Team2ID == teamID)
}

// Opponent returns the other side of teamID, or nil when it cannot be determined.
func (f *Fixture) Opponent(teamID uint) *uint {
	if !f.HasTeams() {
		return nil
	}
	switch teamID {
	case *f.Team1ID:
		return UintPtr(*f.Team2ID)
	case *f.Team2ID:
		return UintPtr(*f.Team1ID)
	}
	return nil
}

// Validate checks the structural invariants of a fixture.
func (f *Fixture) Validate() error {
	if f.HasTeams() && *f.Team1ID == *f.Team2ID {
		return ErrSameTeams
	}
	return nil
}

// BeforeSave keeps team1 != team2 on every write.
func (f *Fixture) BeforeSave(_ *gorm.DB) error {
	return f.Validate()
}
