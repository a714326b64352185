package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLiveWinProbability_Bands(t *testing.T) {
	first := InningsScore{Runs: 179}
	cases := []struct {
		name    string
		second  InningsScore
		chasing int
	}{
		// target 180 with ten overs left
		{"rate above 12", InningsScore{Runs: 50, LegalBalls: 60}, 10},
		{"rate above 10", InningsScore{Runs: 70, LegalBalls: 60}, 20},
		{"rate above 8", InningsScore{Runs: 90, LegalBalls: 60}, 35},
		{"rate above 6", InningsScore{Runs: 110, LegalBalls: 60}, 60},
		{"rate at most 6", InningsScore{Runs: 120, LegalBalls: 60}, 80},
		{"six wickets down", InningsScore{Runs: 120, Wickets: 6, LegalBalls: 60}, 65},
		{"eight wickets down", InningsScore{Runs: 120, Wickets: 8, LegalBalls: 60}, 50},
		{"clamped at zero", InningsScore{Runs: 50, Wickets: 9, LegalBalls: 60}, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			wp := LiveWinProbability(first, tc.second, 20)
			assert.Equal(t, tc.chasing, wp.ChasingPct)
			assert.Equal(t, 100-tc.chasing, wp.DefendingPct)
			assert.Equal(t, 180, wp.Target)
		})
	}
}

func TestLiveWinProbability_Deterministic(t *testing.T) {
	first := InningsScore{Runs: 99, Wickets: 10, LegalBalls: 110}

	won := LiveWinProbability(first, InningsScore{Runs: 100, Wickets: 9, LegalBalls: 119}, 20)
	assert.Equal(t, 100, won.ChasingPct)
	assert.Equal(t, 0, won.DefendingPct)

	lost := LiveWinProbability(first, InningsScore{Runs: 90, Wickets: 2, LegalBalls: 120}, 20)
	assert.Equal(t, 0, lost.ChasingPct)
	assert.Equal(t, 100, lost.DefendingPct)
}

func TestLiveWinProbability_RequiredRate(t *testing.T) {
	wp := LiveWinProbability(InningsScore{Runs: 59}, InningsScore{Runs: 30, LegalBalls: 90}, 20)
	assert.Equal(t, 30, wp.RunsNeeded)
	assert.Equal(t, 30, wp.BallsRemaining)
	assert.InDelta(t, 6.0, wp.RequiredRunRate, 1e-9)
	assert.Equal(t, 80, wp.ChasingPct)
}
