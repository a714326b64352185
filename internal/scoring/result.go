package scoring

import (
	"fmt"

	"github.com/DhavalSuthar-24/crease/internal/models"
)

// BattingFirst decides which team opened the batting from the toss. A
// missing toss falls back to team1.
func BattingFirst(tossWinnerID *uint, decision models.TossDecision, team1ID, team2ID uint) uint {
	if tossWinnerID == nil || (*tossWinnerID != team1ID && *tossWinnerID != team2ID) {
		return team1ID
	}
	if decision == models.TossBowl {
		if *tossWinnerID == team1ID {
			return team2ID
		}
		return team1ID
	}
	return *tossWinnerID
}

// BattingOrder returns the first and second batting team of a fixture.
func BattingOrder(f *models.Fixture) (first, second uint, ok bool) {
	if !f.HasTeams() {
		return 0, 0, false
	}
	first = BattingFirst(f.TossWinnerID, f.TossDecision, *f.Team1ID, *f.Team2ID)
	second = *f.Team2ID
	if first == *f.Team2ID {
		second = *f.Team1ID
	}
	return first, second, true
}

// Side is one team's innings as seen by the resolver.
type Side struct {
	TeamID uint
	Name   string
	Score  InningsScore
}

// Result is the outcome of a completed fixture.
type Result struct {
	Text          string `json:"text"`
	WinningTeamID *uint  `json:"winning_team_id,omitempty"`
	LosingTeamID  *uint  `json:"losing_team_id,omitempty"`
	Tied          bool   `json:"tied"`
	MarginRuns    int    `json:"margin_runs,omitempty"`
	MarginWickets int    `json:"margin_wickets,omitempty"`
}

// Resolve compares the side that batted first with the chasing side.
func Resolve(first, second Side) Result {
	switch {
	case second.Score.Runs > first.Score.Runs:
		margin := MaxWickets - second.Score.Wickets
		if margin < 0 {
			margin = 0
		}
		return Result{
			Text:          fmt.Sprintf("%s won by %d %s", second.Name, margin, plural(margin, "wicket")),
			WinningTeamID: models.UintPtr(second.TeamID),
			LosingTeamID:  models.UintPtr(first.TeamID),
			MarginWickets: margin,
		}
	case first.Score.Runs > second.Score.Runs:
		margin := first.Score.Runs - second.Score.Runs
		return Result{
			Text:          fmt.Sprintf("%s won by %d %s", first.Name, margin, plural(margin, "run")),
			WinningTeamID: models.UintPtr(first.TeamID),
			LosingTeamID:  models.UintPtr(second.TeamID),
			MarginRuns:    margin,
		}
	default:
		return Result{Text: "Match tied", Tied: true}
	}
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
