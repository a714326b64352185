// Package simulator fast-forwards a fixture by generating plausible deliveries.
package simulator

import (
	"fmt"
	"math/rand"

	"github.com/DhavalSuthar-24/crease/internal/common"
	"github.com/DhavalSuthar-24/crease/internal/models"
	"github.com/DhavalSuthar-24/crease/internal/scoring"
)

const (
	// MaxDeliveries bounds a single run regardless of overs or roster shape.
	MaxDeliveries = 1000
	// BowlerPool is the size of the bowling rotation.
	BowlerPool = 5
)

// Lineup is one side in roster order. Roster order is batting order.
type Lineup struct {
	TeamID  uint
	Players []models.Player
}

// Request describes what to simulate. First is the side that bats first.
// Existing holds balls already in the ledger; simulation resumes after them.
type Request struct {
	First          Lineup
	Second         Lineup
	TotalOvers     int
	Existing       []models.BallEvent
	ForcedWinnerID *uint
	// TargetScore stops the innings the simulation starts in once reached.
	TargetScore int
}

// Simulator draws deliveries from a Profile. It is not safe for concurrent use
// because the underlying rand.Rand is not.
type Simulator struct {
	profile Profile
	rng     *rand.Rand
}

// New returns a simulator. A nil rng gets a fixed seed.
func New(profile Profile, rng *rand.Rand) *Simulator {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	return &Simulator{profile: profile, rng: rng}
}

// Run generates the remaining deliveries of the fixture. Returned events
// carry no fixture id or sequence; the ledger assigns those.
func (s *Simulator) Run(req Request) ([]models.BallEvent, error) {
	if len(req.First.Players) == 0 || len(req.Second.Players) == 0 {
		return nil, common.ErrEmptyRoster
	}
	if req.TotalOvers <= 0 {
		req.TotalOvers = 20
	}

	start := 1
	if n := len(req.Existing); n > 0 {
		start = req.Existing[n-1].Innings
	}

	names := make(map[uint]string)
	for _, l := range []Lineup{req.First, req.Second} {
		for _, p := range l.Players {
			names[p.ID] = p.Name
		}
	}

	budget := MaxDeliveries
	var out []models.BallEvent
	for innings := start; innings <= 2 && budget > 0; innings++ {
		batting, bowling := req.First, req.Second
		if innings == 2 {
			batting, bowling = req.Second, req.First
		}

		target := 0
		if innings == 2 {
			target = scoring.CalculateInnings(scoring.FilterInnings(req.Existing, 1)).Runs +
				scoring.CalculateInnings(scoring.FilterInnings(out, 1)).Runs + 1
		}
		if innings == start && req.TargetScore > 0 && (target == 0 || req.TargetScore < target) {
			target = req.TargetScore
		}

		st := newInningsState(innings, batting, bowling, scoring.FilterInnings(req.Existing, innings))
		bias := 0
		if req.ForcedWinnerID != nil {
			switch *req.ForcedWinnerID {
			case batting.TeamID:
				bias = 1
			case bowling.TeamID:
				bias = -1
			}
		}
		out = append(out, s.play(st, req.TotalOvers*scoring.BallsPerOver, target, bias, names, &budget)...)
	}
	return out, nil
}

func (s *Simulator) play(st *inningsState, maxLegal, target, bias int, names map[uint]string, budget *int) []models.BallEvent {
	dist, wicketChance := s.profile.weights(bias)

	var out []models.BallEvent
	for *budget > 0 && st.legal < maxLegal && st.wickets < st.wicketLimit && (target == 0 || st.runs < target) {
		*budget--

		b := st.delivery()
		switch {
		case s.rng.Float64() < s.profile.WideChance:
			b.ExtraKind = models.ExtraWide
			b.Extras = 1
		case s.rng.Float64() < wicketChance:
			s.dismiss(st, &b)
		default:
			b.Runs = s.sampleRuns(dist)
		}
		b.Commentary = describe(&b, names)

		st.apply(&b)
		out = append(out, b)
	}
	return out
}

func (s *Simulator) sampleRuns(dist []outcome) int {
	total := 0.0
	for _, o := range dist {
		total += o.weight
	}
	r := s.rng.Float64() * total
	for _, o := range dist {
		if r < o.weight {
			return o.runs
		}
		r -= o.weight
	}
	return dist[len(dist)-1].runs
}

var dismissals = []struct {
	kind   models.WicketKind
	weight int
}{
	{models.WicketCaught, 45},
	{models.WicketBowled, 25},
	{models.WicketLBW, 15},
	{models.WicketRunOut, 10},
	{models.WicketStumped, 5},
}

func (s *Simulator) dismiss(st *inningsState, b *models.BallEvent) {
	r := s.rng.Intn(100)
	kind := models.WicketCaught
	for _, d := range dismissals {
		if r < d.weight {
			kind = d.kind
			break
		}
		r -= d.weight
	}

	b.IsWicket = true
	b.WicketKind = kind
	b.DismissedPlayerID = models.UintPtr(b.StrikerID)

	switch kind {
	case models.WicketCaught, models.WicketRunOut:
		fielders := st.bowling.Players
		b.FielderID = models.UintPtr(fielders[s.rng.Intn(len(fielders))].ID)
	case models.WicketStumped:
		b.FielderID = models.UintPtr(st.keeper(s.rng))
	}
}

func describe(b *models.BallEvent, names map[uint]string) string {
	head := fmt.Sprintf("%s to %s", names[b.BowlerID], names[b.StrikerID])
	switch {
	case b.ExtraKind == models.ExtraWide:
		return head + ", wide"
	case b.IsWicket:
		return fmt.Sprintf("%s, OUT (%s)", head, b.WicketKind)
	case b.Runs == 0:
		return head + ", no run"
	case b.Runs == 4:
		return head + ", FOUR"
	case b.Runs == 6:
		return head + ", SIX"
	case b.Runs == 1:
		return head + ", 1 run"
	default:
		return fmt.Sprintf("%s, %d runs", head, b.Runs)
	}
}
