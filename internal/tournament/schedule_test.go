package tournament

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DhavalSuthar-24/crease/internal/models"
)

func teams(n int) []models.Team {
	out := make([]models.Team, n)
	for i := range out {
		out[i].ID = uint(i + 1)
		out[i].Name = fmt.Sprintf("Team %d", i+1)
	}
	return out
}

func key(a, b uint) [2]uint {
	if a > b {
		a, b = b, a
	}
	return [2]uint{a, b}
}

func TestRoundRobin_EveryPairOnce(t *testing.T) {
	for _, n := range []int{2, 3, 4, 5, 8} {
		t.Run(fmt.Sprintf("%d teams", n), func(t *testing.T) {
			pairs := RoundRobin(teams(n))
			require.Len(t, pairs, n*(n-1)/2)

			seen := make(map[[2]uint]bool)
			perRound := make(map[int]map[uint]bool)
			for _, p := range pairs {
				k := key(p.Home.ID, p.Away.ID)
				assert.False(t, seen[k], "pair %v scheduled twice", k)
				seen[k] = true
				assert.NotEqual(t, p.Home.ID, p.Away.ID)

				if perRound[p.Round] == nil {
					perRound[p.Round] = make(map[uint]bool)
				}
				for _, id := range []uint{p.Home.ID, p.Away.ID} {
					assert.False(t, perRound[p.Round][id], "team %d plays twice in round %d", id, p.Round)
					perRound[p.Round][id] = true
				}
			}

			rounds := n - 1
			if n%2 == 1 {
				rounds = n
			}
			assert.Len(t, perRound, rounds)
		})
	}
}

func TestRoundRobin_OddFieldGivesEachTeamOneBye(t *testing.T) {
	pairs := RoundRobin(teams(5))
	played := make(map[uint]int)
	for _, p := range pairs {
		played[p.Home.ID]++
		played[p.Away.ID]++
	}
	for id := uint(1); id <= 5; id++ {
		assert.Equal(t, 4, played[id], "team %d sits out exactly one of five rounds", id)
	}
}

func TestRoundRobin_TooFewTeams(t *testing.T) {
	assert.Nil(t, RoundRobin(nil))
	assert.Nil(t, RoundRobin(teams(1)))
}

func TestLeagueFixtures_SpacesRounds(t *testing.T) {
	start := time.Date(2026, 3, 1, 14, 0, 0, 0, time.UTC)
	pairs := RoundRobin(teams(4))

	fixtures := LeagueFixtures(9, pairs, start, 48*time.Hour, 10, "Eden Gardens")
	require.Len(t, fixtures, 6)
	for i, f := range fixtures {
		want := start.Add(time.Duration(pairs[i].Round-1) * 48 * time.Hour)
		require.NotNil(t, f.ScheduledAt)
		assert.True(t, want.Equal(*f.ScheduledAt))
		assert.Equal(t, uint(9), f.TournamentID)
		assert.Equal(t, models.StageLeague, f.Stage)
		assert.Equal(t, models.FixtureScheduled, f.Status)
		assert.Equal(t, 10, f.TotalOvers)
		assert.Equal(t, "Eden Gardens", f.Venue)
	}
}
