package tournament

import (
	"time"

	"github.com/DhavalSuthar-24/crease/internal/models"
)

// Pairing is one league meeting.
type Pairing struct {
	Round int
	Home  models.Team
	Away  models.Team
}

// RoundRobin pairs every team with every other team once using the circle
// method. An odd field gets a bye slot each round; the team drawn against it
// sits the round out.
func RoundRobin(teams []models.Team) []Pairing {
	if len(teams) < 2 {
		return nil
	}
	working := make([]*models.Team, 0, len(teams)+1)
	for i := range teams {
		working = append(working, &teams[i])
	}
	if len(working)%2 == 1 {
		working = append(working, nil)
	}

	rounds := len(working) - 1
	pairs := make([]Pairing, 0, rounds*len(working)/2)
	for round := 0; round < rounds; round++ {
		for i := 0; i < len(working)/2; i++ {
			left, right := working[i], working[len(working)-1-i]
			if left == nil || right == nil {
				continue
			}
			home, away := *left, *right
			if i == 0 && round%2 == 1 {
				home, away = away, home
			}
			pairs = append(pairs, Pairing{Round: round + 1, Home: home, Away: away})
		}
		rotate(working)
	}
	return pairs
}

// rotate keeps the first slot fixed and turns the rest one place.
func rotate(teams []*models.Team) {
	if len(teams) <= 2 {
		return
	}
	last := teams[len(teams)-1]
	copy(teams[2:], teams[1:len(teams)-1])
	teams[1] = last
}

// LeagueFixtures lays pairings out as scheduled league fixtures, one round
// every interval starting at start.
func LeagueFixtures(tournamentID uint, pairs []Pairing, start time.Time, interval time.Duration, overs int, venue string) []models.Fixture {
	fixtures := make([]models.Fixture, 0, len(pairs))
	for _, p := range pairs {
		at := start.Add(time.Duration(p.Round-1) * interval)
		fixtures = append(fixtures, models.Fixture{
			TournamentID:   tournamentID,
			Team1ID:        models.UintPtr(p.Home.ID),
			Team2ID:        models.UintPtr(p.Away.ID),
			ScheduledAt:    &at,
			Venue:          venue,
			Status:         models.FixtureScheduled,
			Stage:          models.StageLeague,
			CurrentInnings: 1,
			TotalOvers:     overs,
		})
	}
	return fixtures
}
