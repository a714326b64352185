// Package scoring derives scores, results and player impact from a ball ledger.
// Everything here is pure: no storage, no clocks.
package scoring

import (
	"fmt"
	"math"

	"github.com/DhavalSuthar-24/crease/internal/models"
)

const (
	BallsPerOver = 6
	MaxWickets   = 10
)

// InningsScore is the derived state of one innings.
type InningsScore struct {
	Runs       int `json:"runs"`
	Wickets    int `json:"wickets"`
	LegalBalls int `json:"legal_balls"`
}

// Overs renders legal balls the way a scoreboard does, e.g. "14.3".
func (s InningsScore) Overs() string {
	return fmt.Sprintf("%d.%d", s.LegalBalls/BallsPerOver, s.LegalBalls%BallsPerOver)
}

// OversDecimal is the stored form of Overs (14.3 means 14 overs and 3 balls).
func (s InningsScore) OversDecimal() float64 {
	return float64(s.LegalBalls/BallsPerOver) + float64(s.LegalBalls%BallsPerOver)/10
}

// AllOut reports whether the side lost all ten wickets.
func (s InningsScore) AllOut() bool {
	return s.Wickets >= MaxWickets
}

// CalculateInnings folds the events of a single innings into its score.
// Wides and no-balls never count as legal balls.
func CalculateInnings(events []models.BallEvent) InningsScore {
	var score InningsScore
	for i := range events {
		b := &events[i]
		score.Runs += b.TotalRuns()
		if b.IsWicket {
			score.Wickets++
		}
		if b.IsLegal() {
			score.LegalBalls++
		}
	}
	return score
}

// BowlerWickets counts the wickets credited to bowlerID, excluding run outs.
func BowlerWickets(events []models.BallEvent, bowlerID uint) int {
	n := 0
	for i := range events {
		if events[i].BowlerID == bowlerID && events[i].CreditsBowler() {
			n++
		}
	}
	return n
}

// FilterInnings returns the events that belong to innings n, preserving order.
func FilterInnings(events []models.BallEvent, n int) []models.BallEvent {
	out := make([]models.BallEvent, 0, len(events))
	for _, b := range events {
		if b.Innings == n {
			out = append(out, b)
		}
	}
	return out
}

// SplitInnings calculates both innings of a fixture in one call.
func SplitInnings(events []models.BallEvent) (InningsScore, InningsScore) {
	return CalculateInnings(FilterInnings(events, 1)), CalculateInnings(FilterInnings(events, 2))
}

// OversToBalls converts decimal overs into legal balls. The fractional digit
// is a ball count, not a tenth of an over: 19.4 is 118 balls.
func OversToBalls(overs float64) int {
	whole := math.Floor(overs)
	return int(whole)*BallsPerOver + int(math.Round((overs-whole)*10))
}

// Position locates the next delivery of a fixture.
type Position struct {
	Innings    int `json:"innings"`
	OverNumber int `json:"over_number"`
	BallNumber int `json:"ball_number"`
}

// Cursor derives where scoring stands from the ledger itself. storedInnings
// is the fixture's cached innings pointer; it only wins when the scorer has
// moved on to an innings that has no balls yet.
func Cursor(events []models.BallEvent, storedInnings int) Position {
	innings := 1
	if len(events) > 0 {
		innings = events[len(events)-1].Innings
	}
	if storedInnings > innings {
		return Position{Innings: storedInnings, OverNumber: 0, BallNumber: 1}
	}
	legal := CalculateInnings(FilterInnings(events, innings)).LegalBalls
	return Position{
		Innings:    innings,
		OverNumber: legal / BallsPerOver,
		BallNumber: legal%BallsPerOver + 1,
	}
}
