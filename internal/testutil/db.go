// Package testutil provides an in-memory database and seed data for package tests.
package testutil

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/DhavalSuthar-24/crease/internal/models"
)

// NewDB opens a migrated in-memory SQLite database private to the test.
func NewDB(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Silent),
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// Every connection to :memory: is a fresh database.
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(models.All()...))
	return db
}

// Seed is a tournament with its teams and rosters.
type Seed struct {
	Tournament models.Tournament
	Teams      []models.Team
}

// SeedTournament creates a tournament with n teams of playersPerTeam players.
// Team names are "Team A", "Team B", and so on.
func SeedTournament(t testing.TB, db *gorm.DB, n, playersPerTeam int) Seed {
	t.Helper()

	s := Seed{Tournament: models.Tournament{
		Name:       "Test Cup",
		Slug:       fmt.Sprintf("test-cup-%d", n),
		TotalOvers: 20,
		Status:     models.TournamentOngoing,
	}}
	require.NoError(t, db.Create(&s.Tournament).Error)

	for i := 0; i < n; i++ {
		letter := string(rune('A' + i))
		team := models.Team{
			TournamentID: s.Tournament.ID,
			Name:         "Team " + letter,
			ShortName:    "T" + letter,
		}
		require.NoError(t, db.Create(&team).Error)
		for j := 0; j < playersPerTeam; j++ {
			p := models.Player{
				TeamID: team.ID,
				Name:   fmt.Sprintf("%s%d", letter, j+1),
				Role:   models.RoleAllRounder,
			}
			require.NoError(t, db.Create(&p).Error)
			team.Players = append(team.Players, p)
		}
		s.Teams = append(s.Teams, team)
	}
	return s
}

// Fixture creates a league fixture between two seeded teams.
func Fixture(t testing.TB, db *gorm.DB, tournamentID, team1ID, team2ID uint) models.Fixture {
	t.Helper()

	f := models.Fixture{
		TournamentID:   tournamentID,
		Team1ID:        models.UintPtr(team1ID),
		Team2ID:        models.UintPtr(team2ID),
		Status:         models.FixtureScheduled,
		Stage:          models.StageLeague,
		CurrentInnings: 1,
		TotalOvers:     20,
	}
	require.NoError(t, db.Create(&f).Error)
	return f
}
