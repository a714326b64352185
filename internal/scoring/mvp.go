package scoring

import "github.com/DhavalSuthar-24/crease/internal/models"

// Impact weights.
const (
	pointsPerRun       = 1
	bonusPerFour       = 1
	bonusPerSix        = 2
	pointsPerWicket    = 25
	pointsPerDot       = 1
	pointsPerDismissal = 10
)

// PlayerImpact is a player's weighted contribution.
type PlayerImpact struct {
	PlayerID       uint `json:"player_id"`
	Points         int  `json:"points"`
	BattingPoints  int  `json:"batting_points"`
	BowlingPoints  int  `json:"bowling_points"`
	FieldingPoints int  `json:"fielding_points"`
}

// Impacts scores every player that appears in events, in the order they
// were first encountered.
func Impacts(events []models.BallEvent) []PlayerImpact {
	index := make(map[uint]int)
	var out []PlayerImpact
	touch := func(id uint) *PlayerImpact {
		i, ok := index[id]
		if !ok {
			i = len(out)
			index[id] = i
			out = append(out, PlayerImpact{PlayerID: id})
		}
		return &out[i]
	}

	for i := range events {
		b := &events[i]

		bat := b.Runs * pointsPerRun
		switch b.Runs {
		case 4:
			bat += bonusPerFour
		case 6:
			bat += bonusPerSix
		}
		striker := touch(b.StrikerID)
		striker.BattingPoints += bat
		striker.Points += bat

		bowl := 0
		if b.CreditsBowler() {
			bowl += pointsPerWicket
		}
		if b.IsDot() {
			bowl += pointsPerDot
		}
		bowler := touch(b.BowlerID)
		bowler.BowlingPoints += bowl
		bowler.Points += bowl

		if b.IsWicket && b.FielderID != nil {
			fielder := touch(*b.FielderID)
			fielder.FieldingPoints += pointsPerDismissal
			fielder.Points += pointsPerDismissal
		}
	}
	return out
}

// MVP picks the highest impact. Ties go to whoever appeared first.
func MVP(events []models.BallEvent) (PlayerImpact, bool) {
	impacts := Impacts(events)
	if len(impacts) == 0 {
		return PlayerImpact{}, false
	}
	best := impacts[0]
	for _, p := range impacts[1:] {
		if p.Points > best.Points {
			best = p
		}
	}
	return best, true
}
