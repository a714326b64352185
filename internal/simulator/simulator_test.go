package simulator

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DhavalSuthar-24/crease/internal/common"
	"github.com/DhavalSuthar-24/crease/internal/models"
	"github.com/DhavalSuthar-24/crease/internal/scoring"
)

func lineup(teamID uint, firstPlayerID uint, n int) Lineup {
	l := Lineup{TeamID: teamID}
	for i := 0; i < n; i++ {
		p := models.Player{TeamID: teamID, Name: "P", Role: models.RoleAllRounder}
		p.ID = firstPlayerID + uint(i)
		l.Players = append(l.Players, p)
	}
	return l
}

func noWickets() Profile {
	p := DefaultProfile()
	p.WicketChance = 0
	p.WideChance = 0
	return p
}

func seeded(p Profile, seed int64) *Simulator {
	return New(p, rand.New(rand.NewSource(seed)))
}

func TestRun_EmptyRoster(t *testing.T) {
	sim := seeded(DefaultProfile(), 1)
	_, err := sim.Run(Request{First: lineup(1, 100, 11), Second: Lineup{TeamID: 2}, TotalOvers: 20})
	assert.ErrorIs(t, err, common.ErrEmptyRoster)
}

func TestRun_OversAndBallNumbering(t *testing.T) {
	sim := seeded(noWickets(), 7)
	balls, err := sim.Run(Request{First: lineup(1, 100, 11), Second: lineup(2, 200, 11), TotalOvers: 2})
	require.NoError(t, err)

	first := scoring.FilterInnings(balls, 1)
	require.Len(t, first, 12)
	for i, b := range first {
		assert.Equal(t, i/6, b.OverNumber)
		assert.Equal(t, i%6+1, b.BallNumber)
		assert.Equal(t, uint(100), b.StrikerID, "no strike rotation")
		assert.Equal(t, uint(101), b.NonStrikerID)
	}
	assert.Equal(t, uint(200), first[0].BowlerID)
	assert.Equal(t, uint(201), first[6].BowlerID)
}

func TestRun_ChaseStopsOncePassed(t *testing.T) {
	sim := seeded(noWickets(), 3)
	balls, err := sim.Run(Request{First: lineup(1, 100, 11), Second: lineup(2, 200, 11), TotalOvers: 20})
	require.NoError(t, err)

	first, second := scoring.SplitInnings(balls)
	chase := scoring.FilterInnings(balls, 2)
	if second.Runs > first.Runs {
		before := scoring.CalculateInnings(chase[:len(chase)-1])
		assert.LessOrEqual(t, before.Runs, first.Runs, "chase must stop on the ball that passes the target")
	} else {
		assert.Equal(t, 120, second.LegalBalls)
	}
}

func TestRun_TargetScoreStopsCurrentInnings(t *testing.T) {
	sim := seeded(noWickets(), 11)
	balls, err := sim.Run(Request{First: lineup(1, 100, 11), Second: lineup(2, 200, 11), TotalOvers: 20, TargetScore: 30})
	require.NoError(t, err)

	first := scoring.FilterInnings(balls, 1)
	assert.GreaterOrEqual(t, scoring.CalculateInnings(first).Runs, 30)
	assert.Less(t, scoring.CalculateInnings(first[:len(first)-1]).Runs, 30)
}

func TestRun_WicketsLimitedByRoster(t *testing.T) {
	p := DefaultProfile()
	p.WicketChance = 0.5
	sim := seeded(p, 5)
	balls, err := sim.Run(Request{First: lineup(1, 100, 3), Second: lineup(2, 200, 4), TotalOvers: 20})
	require.NoError(t, err)

	first, second := scoring.SplitInnings(balls)
	assert.Equal(t, 2, first.Wickets)
	assert.LessOrEqual(t, second.Wickets, 3)
}

func TestRun_SingleBatterRosterBowlsNothing(t *testing.T) {
	sim := seeded(DefaultProfile(), 5)
	balls, err := sim.Run(Request{First: lineup(1, 100, 1), Second: lineup(2, 200, 1), TotalOvers: 20})
	require.NoError(t, err)
	assert.Empty(t, balls)
}

func TestRun_SurvivorTakesStrikeAfterWicket(t *testing.T) {
	p := DefaultProfile()
	p.WicketChance = 0.3
	sim := seeded(p, 9)
	balls, err := sim.Run(Request{First: lineup(1, 100, 11), Second: lineup(2, 200, 11), TotalOvers: 10})
	require.NoError(t, err)

	seen := 0
	for i := 0; i+1 < len(balls); i++ {
		b, next := balls[i], balls[i+1]
		if !b.IsWicket || next.Innings != b.Innings {
			continue
		}
		seen++
		assert.Equal(t, b.NonStrikerID, next.StrikerID)
		assert.NotEqual(t, b.StrikerID, next.NonStrikerID)
	}
	assert.Positive(t, seen)
}

func TestRun_BowlingPoolRotatesOverFive(t *testing.T) {
	sim := seeded(noWickets(), 2)
	bowling := lineup(2, 200, 8)
	balls, err := sim.Run(Request{First: lineup(1, 100, 11), Second: bowling, TotalOvers: 7})
	require.NoError(t, err)

	first := scoring.FilterInnings(balls, 1)
	byOver := map[int]uint{}
	for _, b := range first {
		byOver[b.OverNumber] = b.BowlerID
	}
	assert.Equal(t, uint(200), byOver[0])
	assert.Equal(t, uint(204), byOver[4])
	assert.Equal(t, uint(200), byOver[5])
	assert.Equal(t, uint(201), byOver[6])
}

func TestRun_SkipsBattersInBowlingPool(t *testing.T) {
	bowling := lineup(2, 200, 4)
	bowling.Players[0].Role = models.RoleBatter
	bowling.Players[1].Role = models.RoleWicketKeeper

	pool := bowlingPool(bowling.Players)
	require.Len(t, pool, 2)
	assert.Equal(t, uint(202), pool[0].ID)
}

func TestRun_DeliveryCap(t *testing.T) {
	sim := seeded(noWickets(), 4)
	balls, err := sim.Run(Request{First: lineup(1, 100, 11), Second: lineup(2, 200, 11), TotalOvers: 500})
	require.NoError(t, err)
	assert.Len(t, balls, MaxDeliveries)
}

func TestRun_ResumesFromLedger(t *testing.T) {
	existing := make([]models.BallEvent, 0, 6)
	for i := 0; i < 6; i++ {
		existing = append(existing, models.BallEvent{
			Innings: 1, OverNumber: 0, BallNumber: i + 1,
			StrikerID: 100, NonStrikerID: 101, BowlerID: 200, Runs: 1, ExtraKind: models.ExtraNone,
		})
	}
	existing[5].IsWicket = true
	existing[5].WicketKind = models.WicketBowled

	sim := seeded(noWickets(), 8)
	balls, err := sim.Run(Request{First: lineup(1, 100, 11), Second: lineup(2, 200, 11), TotalOvers: 2, Existing: existing})
	require.NoError(t, err)

	first := scoring.FilterInnings(balls, 1)
	require.Len(t, first, 6)
	assert.Equal(t, 1, first[0].OverNumber)
	assert.Equal(t, 1, first[0].BallNumber)
	assert.Equal(t, uint(101), first[0].StrikerID)
	assert.Equal(t, uint(102), first[0].NonStrikerID)
	assert.Equal(t, uint(201), first[0].BowlerID)
}

func TestRun_Deterministic(t *testing.T) {
	req := Request{First: lineup(1, 100, 11), Second: lineup(2, 200, 11), TotalOvers: 20}
	a, err := seeded(DefaultProfile(), 42).Run(req)
	require.NoError(t, err)
	b, err := seeded(DefaultProfile(), 42).Run(req)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

// Forcing a winner is statistical: it should hold in the large majority of
// runs, not every single one.
func TestRun_ForcedWinnerUsuallyWins(t *testing.T) {
	const runs = 60
	wins := 0
	for seed := int64(0); seed < runs; seed++ {
		forced := uint(2)
		if seed%2 == 0 {
			forced = 1
		}
		balls, err := seeded(DefaultProfile(), seed).Run(Request{
			First: lineup(1, 100, 11), Second: lineup(2, 200, 11),
			TotalOvers: 20, ForcedWinnerID: &forced,
		})
		require.NoError(t, err)
		require.LessOrEqual(t, len(balls), MaxDeliveries)

		first, second := scoring.SplitInnings(balls)
		res := scoring.Resolve(scoring.Side{TeamID: 1, Score: first}, scoring.Side{TeamID: 2, Score: second})
		if res.WinningTeamID != nil && *res.WinningTeamID == forced {
			wins++
		}
	}
	assert.GreaterOrEqual(t, wins, runs*8/10)
}

func TestProfileValidate(t *testing.T) {
	assert.NoError(t, DefaultProfile().Validate())

	p := DefaultProfile()
	p.Four = -1
	assert.Error(t, p.Validate())

	p = DefaultProfile()
	p.WicketChance = 1
	assert.Error(t, p.Validate())

	p = Profile{FavouredWicketFactor: 1, FavouredBoundaryFactor: 1}
	assert.Error(t, p.Validate(), "all-zero run weights")
}
