package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DhavalSuthar-24/crease/internal/models"
)

func TestImpacts_Weights(t *testing.T) {
	events := []models.BallEvent{
		{StrikerID: 1, NonStrikerID: 2, BowlerID: 11, Runs: 4},
		{StrikerID: 1, NonStrikerID: 2, BowlerID: 11, Runs: 6},
		{StrikerID: 1, NonStrikerID: 2, BowlerID: 11, Runs: 1},
		{StrikerID: 2, NonStrikerID: 1, BowlerID: 11},
		{StrikerID: 2, NonStrikerID: 1, BowlerID: 11, IsWicket: true, WicketKind: models.WicketCaught, FielderID: models.UintPtr(12)},
		{StrikerID: 3, NonStrikerID: 1, BowlerID: 11, IsWicket: true, WicketKind: models.WicketRunOut, FielderID: models.UintPtr(12)},
		{StrikerID: 1, NonStrikerID: 4, BowlerID: 11, ExtraKind: models.ExtraWide, Extras: 1},
	}

	byID := map[uint]PlayerImpact{}
	for _, p := range Impacts(events) {
		byID[p.PlayerID] = p
	}

	assert.Equal(t, 4+1+6+2+1, byID[1].Points)
	// dots: balls 4, 5, 6 (wicket balls concede nothing); wicket: caught only
	assert.Equal(t, 25+3, byID[11].Points)
	assert.Equal(t, 20, byID[12].FieldingPoints)
	assert.Zero(t, byID[2].Points)
}

func TestMVP_TieGoesToFirstEncountered(t *testing.T) {
	events := []models.BallEvent{
		{StrikerID: 5, NonStrikerID: 6, BowlerID: 20, Runs: 2},
		{StrikerID: 6, NonStrikerID: 5, BowlerID: 20, Runs: 2},
	}
	best, ok := MVP(events)
	require.True(t, ok)
	assert.Equal(t, uint(5), best.PlayerID)
	assert.Equal(t, 2, best.Points)
}

func TestMVP_Empty(t *testing.T) {
	_, ok := MVP(nil)
	assert.False(t, ok)
}
