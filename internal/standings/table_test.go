package standings

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DhavalSuthar-24/crease/internal/models"
)

func teams(names ...string) []models.Team {
	out := make([]models.Team, len(names))
	for i, n := range names {
		out[i].ID = uint(i + 1)
		out[i].Name = n
	}
	return out
}

func played(team1, team2 uint, winner *uint, snaps models.Snapshots) models.Fixture {
	return models.Fixture{
		Team1ID:       models.UintPtr(team1),
		Team2ID:       models.UintPtr(team2),
		Status:        models.FixtureCompleted,
		Stage:         models.StageLeague,
		TotalOvers:    20,
		WinningTeamID: winner,
		Snapshots:     snaps,
	}
}

func byTeam(rows []models.StandingsRow) map[uint]models.StandingsRow {
	out := make(map[uint]models.StandingsRow, len(rows))
	for _, r := range rows {
		out[r.TeamID] = r
	}
	return out
}

func TestCompute_AllOutUsesFullQuota(t *testing.T) {
	f := played(1, 2, models.UintPtr(2), models.Snapshots{
		1: {Runs: 120, Wickets: 10, Overs: 14.3},
		2: {Runs: 121, Wickets: 3, Overs: 15.0},
	})
	rows := byTeam(Compute(9, teams("A", "B"), []models.Fixture{f}, 20))

	a, b := rows[1], rows[2]
	assert.Equal(t, 120, a.RunsFor)
	assert.Equal(t, 120, a.BallsFor, "bowled out side is charged 20 overs, not 87 balls")
	assert.Equal(t, 120, b.RunsAgainst)
	assert.Equal(t, 120, b.BallsAgainst)
	assert.Equal(t, 90, b.BallsFor)

	assert.InDelta(t, -2.067, a.NetRunRate, 0.0005)
	assert.InDelta(t, 2.067, b.NetRunRate, 0.0005)
	assert.Equal(t, 2, b.Points)
	assert.Equal(t, 1, a.Lost)
}

func TestCompute_PartialOversAreBallCounts(t *testing.T) {
	f := played(1, 2, models.UintPtr(1), models.Snapshots{
		1: {Runs: 150, Wickets: 5, Overs: 19.4},
		2: {Runs: 140, Wickets: 9, Overs: 20.0},
	})
	rows := byTeam(Compute(9, teams("A", "B"), []models.Fixture{f}, 20))
	assert.Equal(t, 118, rows[1].BallsFor)
	assert.Equal(t, 118, rows[2].BallsAgainst)
	assert.Equal(t, 120, rows[2].BallsFor)
}

func TestCompute_PointsAndOutcomes(t *testing.T) {
	snaps := models.Snapshots{1: {Runs: 100, Overs: 20}, 2: {Runs: 100, Overs: 20}}
	fixtures := []models.Fixture{
		played(1, 2, models.UintPtr(1), models.Snapshots{1: {Runs: 150, Overs: 20}, 2: {Runs: 100, Wickets: 10, Overs: 17.2}}),
		played(1, 2, nil, snaps),
		played(2, 3, nil, nil),
		played(1, 3, models.UintPtr(3), nil),
	}
	live := played(1, 3, models.UintPtr(1), nil)
	live.Status = models.FixtureLive
	playoff := played(1, 2, models.UintPtr(2), nil)
	playoff.Stage = models.StageFinal
	fixtures = append(fixtures, live, playoff)

	rows := byTeam(Compute(9, teams("A", "B", "C", "D"), fixtures, 20))

	a := rows[1]
	assert.Equal(t, 3, a.Played)
	assert.Equal(t, 1, a.Won)
	assert.Equal(t, 1, a.Lost)
	assert.Equal(t, 1, a.Tied)
	assert.Equal(t, 3, a.Points)

	b := rows[2]
	assert.Equal(t, 3, b.Played)
	assert.Equal(t, 1, b.Tied)
	assert.Equal(t, 1, b.NoResult)
	assert.Equal(t, 2, b.Points)

	c := rows[3]
	assert.Equal(t, 2, c.Played)
	assert.Equal(t, 3, c.Points)
	assert.Zero(t, c.BallsFor, "no snapshots, no run-rate components")

	d := rows[4]
	assert.Zero(t, d.Played)
	assert.Zero(t, d.NetRunRate)
}

func TestCompute_IgnoresUnknownTeams(t *testing.T) {
	f := played(1, 42, models.UintPtr(1), nil)
	rows := Compute(9, teams("A"), []models.Fixture{f}, 20)
	require.Len(t, rows, 1)
	assert.Zero(t, rows[0].Played)
}

func TestNetRunRate_ZeroGuarded(t *testing.T) {
	assert.Zero(t, NetRunRate(0, 0, 0, 0))
	assert.Equal(t, 6.0, NetRunRate(120, 120, 0, 0))
	assert.Equal(t, -6.0, NetRunRate(0, 0, 120, 120))
}

func TestSort(t *testing.T) {
	ts := teams("Zebras", "Ants", "Bees", "Cats")
	rows := []models.StandingsRow{
		{TeamID: 1, Team: &ts[0], Points: 4, NetRunRate: 0.5},
		{TeamID: 2, Team: &ts[1], Points: 4, NetRunRate: 0.5},
		{TeamID: 3, Team: &ts[2], Points: 4, NetRunRate: 1.2},
		{TeamID: 4, Team: &ts[3], Points: 6, NetRunRate: -2},
	}
	Sort(rows)

	order := make([]uint, len(rows))
	for i, r := range rows {
		order[i] = r.TeamID
	}
	assert.Equal(t, []uint{4, 3, 2, 1}, order)
}
