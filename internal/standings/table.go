// Package standings folds completed league fixtures into the points table.
package standings

import (
	"math"
	"sort"

	"github.com/DhavalSuthar-24/crease/internal/models"
	"github.com/DhavalSuthar-24/crease/internal/scoring"
)

const (
	PointsWin      = 2
	PointsTie      = 1
	PointsNoResult = 1
)

// Compute builds one row per team from the tournament's fixtures. Only
// completed league fixtures count. defaultOvers is used for fixtures that do
// not carry their own over limit.
func Compute(tournamentID uint, teams []models.Team, fixtures []models.Fixture, defaultOvers int) []models.StandingsRow {
	rows := make([]models.StandingsRow, len(teams))
	index := make(map[uint]*models.StandingsRow, len(teams))
	for i := range teams {
		rows[i] = models.StandingsRow{TournamentID: tournamentID, TeamID: teams[i].ID, Team: &teams[i]}
		index[teams[i].ID] = &rows[i]
	}

	for i := range fixtures {
		f := &fixtures[i]
		if f.Status != models.FixtureCompleted || f.Stage != models.StageLeague || !f.HasTeams() {
			continue
		}
		home, away := index[*f.Team1ID], index[*f.Team2ID]
		if home == nil || away == nil {
			continue
		}
		home.Played++
		away.Played++

		switch {
		case f.WinningTeamID != nil && *f.WinningTeamID == home.TeamID:
			home.Won++
			home.Points += PointsWin
			away.Lost++
		case f.WinningTeamID != nil && *f.WinningTeamID == away.TeamID:
			away.Won++
			away.Points += PointsWin
			home.Lost++
		case len(f.Snapshots) == 0:
			home.NoResult++
			away.NoResult++
			home.Points += PointsNoResult
			away.Points += PointsNoResult
		default:
			home.Tied++
			away.Tied++
			home.Points += PointsTie
			away.Points += PointsTie
		}

		overs := f.TotalOvers
		if overs <= 0 {
			overs = defaultOvers
		}
		accumulate(home, away, f.Snapshots, overs)
	}

	for i := range rows {
		rows[i].NetRunRate = NetRunRate(rows[i].RunsFor, rows[i].BallsFor, rows[i].RunsAgainst, rows[i].BallsAgainst)
	}
	return rows
}

// accumulate adds one fixture's run-rate components to both rows. Fixtures
// missing either snapshot contribute nothing.
func accumulate(home, away *models.StandingsRow, snaps models.Snapshots, totalOvers int) {
	hs, ok1 := snaps.For(home.TeamID)
	as, ok2 := snaps.For(away.TeamID)
	if !ok1 || !ok2 {
		return
	}
	hb := ballsFaced(hs, totalOvers)
	ab := ballsFaced(as, totalOvers)

	home.RunsFor += hs.Runs
	home.BallsFor += hb
	home.RunsAgainst += as.Runs
	home.BallsAgainst += ab

	away.RunsFor += as.Runs
	away.BallsFor += ab
	away.RunsAgainst += hs.Runs
	away.BallsAgainst += hb
}

// ballsFaced is the run-rate denominator of an innings. A side bowled out is
// charged its full quota of overs.
func ballsFaced(s models.TeamSnapshot, totalOvers int) int {
	if s.Wickets >= scoring.MaxWickets {
		return totalOvers * scoring.BallsPerOver
	}
	return scoring.OversToBalls(s.Overs)
}

// NetRunRate is runs per over scored minus runs per over conceded, rounded
// to three places. Zero balls on either side contribute zero.
func NetRunRate(runsFor, ballsFor, runsAgainst, ballsAgainst int) float64 {
	var scored, conceded float64
	if ballsFor > 0 {
		scored = float64(runsFor) / (float64(ballsFor) / scoring.BallsPerOver)
	}
	if ballsAgainst > 0 {
		conceded = float64(runsAgainst) / (float64(ballsAgainst) / scoring.BallsPerOver)
	}
	return math.Round((scored-conceded)*1000) / 1000
}

// Sort orders rows by points, then net run rate, then team name.
func Sort(rows []models.StandingsRow) {
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if a.Points != b.Points {
			return a.Points > b.Points
		}
		if a.NetRunRate != b.NetRunRate {
			return a.NetRunRate > b.NetRunRate
		}
		if an, bn := teamName(a), teamName(b); an != bn {
			return an < bn
		}
		return a.TeamID < b.TeamID
	})
}

func teamName(r models.StandingsRow) string {
	if r.Team == nil {
		return ""
	}
	return r.Team.Name
}
