package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DhavalSuthar-24/crease/internal/models"
)

func TestBuildScorecard(t *testing.T) {
	runOut := wicket(1, models.WicketRunOut, nil)
	runOut.DismissedPlayerID = models.UintPtr(2)

	events := []models.BallEvent{
		ball(1, 4),
		ball(1, 6),
		extra(1, models.ExtraWide, 1),
		extra(1, models.ExtraBye, 2),
		wicket(1, models.WicketBowled, nil),
		runOut,
	}

	card := BuildScorecard(1, events)
	assert.Equal(t, 1, card.Innings)
	assert.Equal(t, InningsScore{Runs: 13, Wickets: 2, LegalBalls: 5}, card.Score)
	assert.Equal(t, "0.5", card.Overs)
	assert.Equal(t, ExtrasLine{Wides: 1, Byes: 2, Total: 3}, card.Extras)

	require.Len(t, card.Batting, 2)
	striker := card.Batting[0]
	assert.Equal(t, uint(1), striker.PlayerID)
	assert.Equal(t, 10, striker.Runs)
	assert.Equal(t, 5, striker.Balls)
	assert.Equal(t, 1, striker.Fours)
	assert.Equal(t, 1, striker.Sixes)
	assert.True(t, striker.Out)
	assert.Equal(t, models.WicketBowled, striker.HowOut)
	assert.InDelta(t, 200.0, striker.StrikeRate, 1e-9)

	nonStriker := card.Batting[1]
	assert.Zero(t, nonStriker.Balls)
	assert.True(t, nonStriker.Out)
	assert.Equal(t, models.WicketRunOut, nonStriker.HowOut)

	require.Len(t, card.Bowling, 1)
	bowler := card.Bowling[0]
	assert.Equal(t, 11, bowler.Runs)
	assert.Equal(t, 5, bowler.LegalBalls)
	assert.Equal(t, "0.5", bowler.Overs)
	assert.Equal(t, 2, bowler.Dots)
	assert.Equal(t, 1, bowler.Wickets)
	assert.Equal(t, 1, bowler.Wides)
	assert.InDelta(t, 13.2, bowler.Economy, 1e-9)
}

func TestBuildScorecard_Empty(t *testing.T) {
	card := BuildScorecard(2, nil)
	assert.Equal(t, "0.0", card.Overs)
	assert.Empty(t, card.Batting)
	assert.Empty(t, card.Bowling)
}

func TestBuildScorecard_LegByesAndWides(t *testing.T) {
	events := []models.BallEvent{
		{Innings: 1, StrikerID: 1, NonStrikerID: 2, BowlerID: 11, Runs: 4},
		{Innings: 1, StrikerID: 1, NonStrikerID: 2, BowlerID: 11, ExtraKind: models.ExtraWide, Extras: 1},
		{Innings: 1, StrikerID: 1, NonStrikerID: 2, BowlerID: 11, ExtraKind: models.ExtraLegBye, Extras: 2},
		{Innings: 1, StrikerID: 1, NonStrikerID: 2, BowlerID: 11, IsWicket: true, WicketKind: models.WicketBowled},
	}

	card := BuildScorecard(1, events)

	assert.Equal(t, 7, card.Score.Runs)
	assert.Equal(t, "0.3", card.Overs)
	require.Len(t, card.Batting, 2)
	assert.Equal(t, BatterLine{PlayerID: 1, Runs: 4, Balls: 3, Fours: 1, Out: true, HowOut: models.WicketBowled, StrikeRate: 400.0 / 3}, card.Batting[0])
	require.Len(t, card.Bowling, 1)
	assert.Equal(t, 3, card.Bowling[0].LegalBalls)
	assert.Equal(t, 5, card.Bowling[0].Runs)
	assert.Equal(t, 1, card.Bowling[0].Wickets)
	assert.Equal(t, 1, card.Bowling[0].Dots)
	assert.Equal(t, ExtrasLine{Wides: 1, LegByes: 2, Total: 3}, card.Extras)
}

func TestBuildScorecard_FirstBallBoundary(t *testing.T) {
	card := BuildScorecard(1, []models.BallEvent{
		{Innings: 1, StrikerID: 1, NonStrikerID: 2, BowlerID: 11, Runs: 4},
	})

	require.Len(t, card.Batting, 2)
	assert.Equal(t, BatterLine{PlayerID: 1, Runs: 4, Balls: 1, Fours: 1, StrikeRate: 400}, card.Batting[0])
	assert.Equal(t, BatterLine{PlayerID: 2}, card.Batting[1])
}

func TestBuildScorecard_NewBattersEveryBall(t *testing.T) {
	var events []models.BallEvent
	for i := uint(0); i < 6; i++ {
		events = append(events, models.BallEvent{Innings: 1, StrikerID: 2*i + 1, NonStrikerID: 2*i + 2, BowlerID: 50, Runs: 6})
	}

	card := BuildScorecard(1, events)
	require.Len(t, card.Batting, 12)
	for i, line := range card.Batting {
		if i%2 == 0 {
			assert.Equal(t, 6, line.Runs, "striker %d", line.PlayerID)
			assert.Equal(t, 1, line.Sixes)
			assert.Equal(t, 1, line.Balls)
		} else {
			assert.Zero(t, line.Balls, "non-striker %d", line.PlayerID)
		}
	}
}
