package models

import "time"

type TournamentStatus string

const (
	TournamentUpcoming  TournamentStatus = "upcoming"
	TournamentOngoing   TournamentStatus = "ongoing"
	TournamentCompleted TournamentStatus = "completed"
)

// Tournament groups the teams, fixtures and standings of one competition.
type Tournament struct {
	BaseModel
	Name       string           `json:"name" gorm:"not null"`
	Slug       string           `json:"slug" gorm:"uniqueIndex"`
	TotalOvers int              `json:"total_overs" gorm:"not null;default:20"`
	StartDate  *time.Time       `json:"start_date,omitempty"`
	Status     TournamentStatus `json:"status" gorm:"index;default:'upcoming'"`

	ChampionTeamID *uint `json:"champion_team_id,omitempty" gorm:"index"`
	RunnerUpTeamID *uint `json:"runner_up_team_id,omitempty" gorm:"index"`
	StandingsStale bool  `json:"standings_stale" gorm:"default:false"`

	Teams []Team `json:"teams,omitempty" gorm:"foreignKey:TournamentID"`
}

// Team is one side registered in a tournament.
type Team struct {
	BaseModel
	TournamentID uint     `json:"tournament_id" gorm:"index;not null"`
	Name         string   `json:"name" gorm:"not null"`
	ShortName    string   `json:"short_name"`
	Slug         string   `json:"slug" gorm:"index"`
	Logo         string   `json:"logo,omitempty"`
	Players      []Player `json:"players,omitempty" gorm:"foreignKey:TeamID"`
}

type PlayerRole string

const (
	RoleBatter       PlayerRole = "batter"
	RoleBowler       PlayerRole = "bowler"
	RoleAllRounder   PlayerRole = "all_rounder"
	RoleWicketKeeper PlayerRole = "wicket_keeper"
)

// Player is a rostered member of a team. Roster order doubles as batting order.
type Player struct {
	BaseModel
	TeamID uint       `json:"team_id" gorm:"index;not null"`
	Name   string     `json:"name" gorm:"not null"`
	Role   PlayerRole `json:"role" gorm:"default:'all_rounder'"`
}

// CanBowl reports whether the player is eligible for the bowling rotation.
func (p Player) CanBowl() bool {
	return p.Role != RoleBatter && p.Role != RoleWicketKeeper
}
