package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DhavalSuthar-24/crease/internal/models"
)

func TestBattingFirst(t *testing.T) {
	const a, b = uint(1), uint(2)
	assert.Equal(t, a, BattingFirst(models.UintPtr(a), models.TossBat, a, b))
	assert.Equal(t, b, BattingFirst(models.UintPtr(a), models.TossBowl, a, b))
	assert.Equal(t, b, BattingFirst(models.UintPtr(b), models.TossBat, a, b))
	assert.Equal(t, a, BattingFirst(models.UintPtr(b), models.TossBowl, a, b))
	assert.Equal(t, a, BattingFirst(nil, models.TossBowl, a, b))
	assert.Equal(t, a, BattingFirst(models.UintPtr(99), models.TossBat, a, b))
}

func TestBattingOrder(t *testing.T) {
	f := &models.Fixture{Team1ID: models.UintPtr(1), Team2ID: models.UintPtr(2), TossWinnerID: models.UintPtr(1), TossDecision: models.TossBowl}
	first, second, ok := BattingOrder(f)
	require.True(t, ok)
	assert.Equal(t, uint(2), first)
	assert.Equal(t, uint(1), second)

	_, _, ok = BattingOrder(&models.Fixture{Team1ID: models.UintPtr(1)})
	assert.False(t, ok)
}

func TestResolve_DefendedByRuns(t *testing.T) {
	x := Side{TeamID: 1, Name: "Team X", Score: InningsScore{Runs: 160, Wickets: 6, LegalBalls: 120}}
	y := Side{TeamID: 2, Name: "Team Y", Score: InningsScore{Runs: 140, Wickets: 8, LegalBalls: 120}}

	res := Resolve(x, y)

	assert.Equal(t, "Team X won by 20 runs", res.Text)
	require.NotNil(t, res.WinningTeamID)
	assert.Equal(t, uint(1), *res.WinningTeamID)
	assert.Equal(t, 20, res.MarginRuns)
}

func TestResolve_ChasedByWickets(t *testing.T) {
	x := Side{TeamID: 1, Name: "Team X", Score: InningsScore{Runs: 99, Wickets: 10, LegalBalls: OversToBalls(18.2)}}
	y := Side{TeamID: 2, Name: "Team Y", Score: InningsScore{Runs: 101, Wickets: 4, LegalBalls: OversToBalls(19.0)}}

	res := Resolve(x, y)

	assert.Equal(t, "Team Y won by 6 wickets", res.Text)
	require.NotNil(t, res.WinningTeamID)
	assert.Equal(t, uint(2), *res.WinningTeamID)
	assert.Equal(t, uint(1), *res.LosingTeamID)
}

func TestResolve_Tie(t *testing.T) {
	x := Side{TeamID: 1, Name: "Team X", Score: InningsScore{Runs: 150}}
	y := Side{TeamID: 2, Name: "Team Y", Score: InningsScore{Runs: 150, Wickets: 3}}

	res := Resolve(x, y)

	assert.True(t, res.Tied)
	assert.Nil(t, res.WinningTeamID)
	assert.Equal(t, "Match tied", res.Text)
}

func TestResolve_Singular(t *testing.T) {
	res := Resolve(
		Side{TeamID: 1, Name: "A", Score: InningsScore{Runs: 120}},
		Side{TeamID: 2, Name: "B", Score: InningsScore{Runs: 119, Wickets: 10}},
	)
	assert.Equal(t, "A won by 1 run", res.Text)

	res = Resolve(
		Side{TeamID: 1, Name: "A", Score: InningsScore{Runs: 120}},
		Side{TeamID: 2, Name: "B", Score: InningsScore{Runs: 121, Wickets: 9}},
	)
	assert.Equal(t, "B won by 1 wicket", res.Text)
}

// Swapping which team is listed as team1 must not change who won.
func TestResolve_MirrorConsistent(t *testing.T) {
	scores := map[uint]InningsScore{
		1: {Runs: 171, Wickets: 5, LegalBalls: 120},
		2: {Runs: 172, Wickets: 7, LegalBalls: 117},
	}
	names := map[uint]string{1: "Alpha", 2: "Bravo"}

	resolveFor := func(team1, team2 uint) Result {
		f := &models.Fixture{Team1ID: models.UintPtr(team1), Team2ID: models.UintPtr(team2), TossWinnerID: models.UintPtr(1), TossDecision: models.TossBat}
		first, second, ok := BattingOrder(f)
		require.True(t, ok)
		return Resolve(
			Side{TeamID: first, Name: names[first], Score: scores[first]},
			Side{TeamID: second, Name: names[second], Score: scores[second]},
		)
	}

	a := resolveFor(1, 2)
	b := resolveFor(2, 1)

	require.NotNil(t, a.WinningTeamID)
	require.NotNil(t, b.WinningTeamID)
	assert.Equal(t, *a.WinningTeamID, *b.WinningTeamID)
	assert.Equal(t, "Bravo won by 3 wickets", a.Text)
	assert.Equal(t, a.Text, b.Text)
}
