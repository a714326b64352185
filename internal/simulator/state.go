package simulator

import (
	"math/rand"

	"github.com/DhavalSuthar-24/crease/internal/models"
	"github.com/DhavalSuthar-24/crease/internal/scoring"
)

// inningsState tracks the crease while deliveries are generated.
type inningsState struct {
	number  int
	batting Lineup
	bowling Lineup
	bowlers []models.Player

	runs        int
	wickets     int
	legal       int
	wicketLimit int

	striker    uint
	nonStriker uint
	out        map[uint]bool
}

// newInningsState resumes an innings from the balls it already has.
func newInningsState(number int, batting, bowling Lineup, prior []models.BallEvent) *inningsState {
	st := &inningsState{
		number:      number,
		batting:     batting,
		bowling:     bowling,
		bowlers:     bowlingPool(bowling.Players),
		wicketLimit: len(batting.Players) - 1,
		out:         make(map[uint]bool),
	}
	if st.wicketLimit > scoring.MaxWickets {
		st.wicketLimit = scoring.MaxWickets
	}

	score := scoring.CalculateInnings(prior)
	st.runs, st.wickets, st.legal = score.Runs, score.Wickets, score.LegalBalls
	for i := range prior {
		if prior[i].IsWicket {
			st.out[prior[i].OutPlayer()] = true
		}
	}

	if len(prior) == 0 {
		st.striker = batting.Players[0].ID
		if len(batting.Players) > 1 {
			st.nonStriker = batting.Players[1].ID
		}
		return st
	}

	last := prior[len(prior)-1]
	st.striker, st.nonStriker = last.StrikerID, last.NonStrikerID
	if last.IsWicket {
		st.replaceDismissed(last.OutPlayer())
	}
	return st
}

// bowlingPool picks the rotation: the first BowlerPool eligible bowlers,
// falling back to the whole roster when nobody is marked as a bowler.
func bowlingPool(players []models.Player) []models.Player {
	var pool []models.Player
	for _, p := range players {
		if p.CanBowl() {
			pool = append(pool, p)
		}
	}
	if len(pool) == 0 {
		pool = players
	}
	if len(pool) > BowlerPool {
		pool = pool[:BowlerPool]
	}
	return pool
}

// delivery prepares the next ball at the current position.
func (st *inningsState) delivery() models.BallEvent {
	over := st.legal / scoring.BallsPerOver
	return models.BallEvent{
		Innings:      st.number,
		OverNumber:   over,
		BallNumber:   st.legal%scoring.BallsPerOver + 1,
		StrikerID:    st.striker,
		NonStrikerID: st.nonStriker,
		BowlerID:     st.bowlers[over%len(st.bowlers)].ID,
		ExtraKind:    models.ExtraNone,
	}
}

// apply folds a generated ball into the state.
func (st *inningsState) apply(b *models.BallEvent) {
	st.runs += b.TotalRuns()
	if b.IsLegal() {
		st.legal++
	}
	if b.IsWicket {
		st.wickets++
		st.out[b.OutPlayer()] = true
		st.replaceDismissed(b.OutPlayer())
	}
}

// replaceDismissed makes the surviving batter the striker and brings the
// next batter in at the non-striker's end.
func (st *inningsState) replaceDismissed(dismissed uint) {
	if dismissed == st.striker {
		st.striker = st.nonStriker
	}
	st.nonStriker = 0
	if st.wickets >= st.wicketLimit {
		return
	}
	next := st.nextBatter()
	if next == 0 {
		st.wicketLimit = st.wickets
		return
	}
	st.nonStriker = next
}

func (st *inningsState) nextBatter() uint {
	for _, p := range st.batting.Players {
		if !st.out[p.ID] && p.ID != st.striker && p.ID != st.nonStriker {
			return p.ID
		}
	}
	return 0
}

// keeper returns the bowling side's wicket keeper, or any fielder.
func (st *inningsState) keeper(rng *rand.Rand) uint {
	for _, p := range st.bowling.Players {
		if p.Role == models.RoleWicketKeeper {
			return p.ID
		}
	}
	return st.bowling.Players[rng.Intn(len(st.bowling.Players))].ID
}
