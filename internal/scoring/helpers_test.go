package scoring

import "github.com/DhavalSuthar-24/crease/internal/models"

func ball(innings int, runs int) models.BallEvent {
	return models.BallEvent{Innings: innings, StrikerID: 1, NonStrikerID: 2, BowlerID: 11, Runs: runs, ExtraKind: models.ExtraNone}
}

func extra(innings int, kind models.ExtraKind, n int) models.BallEvent {
	b := ball(innings, 0)
	b.ExtraKind = kind
	b.Extras = n
	return b
}

func wicket(innings int, kind models.WicketKind, fielder *uint) models.BallEvent {
	b := ball(innings, 0)
	b.IsWicket = true
	b.WicketKind = kind
	b.FielderID = fielder
	return b
}

// repeat builds n legal deliveries scoring runs each.
func repeat(innings, n, runs int) []models.BallEvent {
	out := make([]models.BallEvent, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, ball(innings, runs))
	}
	return out
}
