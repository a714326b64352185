package scoring

import "github.com/DhavalSuthar-24/crease/internal/models"

type BatterLine struct {
	PlayerID   uint              `json:"player_id"`
	Runs       int               `json:"runs"`
	Balls      int               `json:"balls"`
	Fours      int               `json:"fours"`
	Sixes      int               `json:"sixes"`
	Out        bool              `json:"out"`
	HowOut     models.WicketKind `json:"how_out,omitempty"`
	StrikeRate float64           `json:"strike_rate"`
}

type BowlerLine struct {
	PlayerID   uint    `json:"player_id"`
	LegalBalls int     `json:"legal_balls"`
	Overs      string  `json:"overs"`
	Runs       int     `json:"runs"`
	Wickets    int     `json:"wickets"`
	Dots       int     `json:"dots"`
	Wides      int     `json:"wides"`
	NoBalls    int     `json:"no_balls"`
	Economy    float64 `json:"economy"`
}

type ExtrasLine struct {
	Wides   int `json:"wides"`
	NoBalls int `json:"no_balls"`
	Byes    int `json:"byes"`
	LegByes int `json:"leg_byes"`
	Total   int `json:"total"`
}

// Scorecard is the full breakdown of one innings.
type Scorecard struct {
	Innings int          `json:"innings"`
	Score   InningsScore `json:"score"`
	Overs   string       `json:"overs"`
	Batting []BatterLine `json:"batting"`
	Bowling []BowlerLine `json:"bowling"`
	Extras  ExtrasLine   `json:"extras"`
}

// BuildScorecard breaks down the events of a single innings.
func BuildScorecard(innings int, events []models.BallEvent) Scorecard {
	card := Scorecard{Innings: innings, Score: CalculateInnings(events)}
	card.Overs = card.Score.Overs()

	batIdx := make(map[uint]int)
	bowlIdx := make(map[uint]int)
	batter := func(id uint) *BatterLine {
		i, ok := batIdx[id]
		if !ok {
			i = len(card.Batting)
			batIdx[id] = i
			card.Batting = append(card.Batting, BatterLine{PlayerID: id})
		}
		return &card.Batting[i]
	}
	bowler := func(id uint) *BowlerLine {
		i, ok := bowlIdx[id]
		if !ok {
			i = len(card.Bowling)
			bowlIdx[id] = i
			card.Bowling = append(card.Bowling, BowlerLine{PlayerID: id})
		}
		return &card.Bowling[i]
	}

	for i := range events {
		b := &events[i]
		// batter may grow card.Batting, so both ends are registered before
		// the striker's line is held.
		batter(b.StrikerID)
		batter(b.NonStrikerID)
		bat := batter(b.StrikerID)
		bowl := bowler(b.BowlerID)

		if b.ExtraKind != models.ExtraWide {
			bat.Balls++
		}
		bat.Runs += b.Runs
		switch b.Runs {
		case 4:
			bat.Fours++
		case 6:
			bat.Sixes++
		}

		switch b.ExtraKind {
		case models.ExtraWide:
			card.Extras.Wides += b.Extras
			bowl.Wides++
		case models.ExtraNoBall:
			card.Extras.NoBalls += b.Extras
			bowl.NoBalls++
		case models.ExtraBye:
			card.Extras.Byes += b.Extras
		case models.ExtraLegBye:
			card.Extras.LegByes += b.Extras
		}

		bowl.Runs += b.Runs
		if b.ExtraKind == models.ExtraWide || b.ExtraKind == models.ExtraNoBall {
			bowl.Runs += b.Extras
		}
		if b.IsLegal() {
			bowl.LegalBalls++
		}
		if b.IsDot() {
			bowl.Dots++
		}
		if b.CreditsBowler() {
			bowl.Wickets++
		}

		if b.IsWicket {
			out := batter(b.OutPlayer())
			out.Out = true
			out.HowOut = b.WicketKind
		}
	}
	card.Extras.Total = card.Extras.Wides + card.Extras.NoBalls + card.Extras.Byes + card.Extras.LegByes

	for i := range card.Batting {
		if card.Batting[i].Balls > 0 {
			card.Batting[i].StrikeRate = float64(card.Batting[i].Runs) * 100 / float64(card.Batting[i].Balls)
		}
	}
	for i := range card.Bowling {
		line := &card.Bowling[i]
		line.Overs = InningsScore{LegalBalls: line.LegalBalls}.Overs()
		if line.LegalBalls > 0 {
			line.Economy = float64(line.Runs) / (float64(line.LegalBalls) / BallsPerOver)
		}
	}
	return card
}
