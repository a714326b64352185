package models

// StandingsRow is one team's aggregate for a tournament. Rows are rewritten
// wholesale after every completed fixture.
type StandingsRow struct {
	BaseModel
	TournamentID uint  `json:"tournament_id" gorm:"not null;uniqueIndex:idx_standings_tournament_team"`
	TeamID       uint  `json:"team_id" gorm:"not null;uniqueIndex:idx_standings_tournament_team"`
	Team         *Team `json:"team,omitempty" gorm:"foreignKey:TeamID"`

	Played   int `json:"played"`
	Won      int `json:"won"`
	Lost     int `json:"lost"`
	Tied     int `json:"tied"`
	NoResult int `json:"no_result"`
	Points   int `json:"points"`

	RunsFor      int     `json:"runs_for"`
	BallsFor     int     `json:"balls_for"`
	RunsAgainst  int     `json:"runs_against"`
	BallsAgainst int     `json:"balls_against"`
	NetRunRate   float64 `json:"net_run_rate"`
}
