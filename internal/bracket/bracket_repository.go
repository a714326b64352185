package bracket

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/DhavalSuthar-24/crease/internal/common"
	"github.com/DhavalSuthar-24/crease/internal/models"
)

// Slot names which side of a fixture a team is written into.
type Slot int

const (
	SlotTeam1 Slot = 1
	SlotTeam2 Slot = 2
)

// BracketRepository persists knockout fixtures and the tournament podium.
type BracketRepository interface {
	GetTournament(ctx context.Context, id uint) (*models.Tournament, error)
	ReplaceKnockouts(ctx context.Context, tournamentID uint, fixtures []models.Fixture) error
	GetStageFixture(ctx context.Context, tournamentID uint, stage models.Stage) (*models.Fixture, error)
	AssignTeam(ctx context.Context, fixtureID uint, slot Slot, teamID uint) error
	SetPodium(ctx context.Context, tournamentID, championID, runnerUpID uint) error
}

type bracketRepository struct {
	db *gorm.DB
}

func NewBracketRepository(db *gorm.DB) BracketRepository {
	return &bracketRepository{db: db}
}

func (r *bracketRepository) GetTournament(ctx context.Context, id uint) (*models.Tournament, error) {
	var t models.Tournament
	if err := r.db.WithContext(ctx).First(&t, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrTournamentNotFound
		}
		return nil, err
	}
	return &t, nil
}

// ReplaceKnockouts hard-deletes every non-league fixture of the tournament,
// with its balls, and creates fixtures in their place.
func (r *bracketRepository) ReplaceKnockouts(ctx context.Context, tournamentID uint, fixtures []models.Fixture) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		stale := tx.Unscoped().Model(&models.Fixture{}).
			Select("id").
			Where("tournament_id = ? AND stage <> ?", tournamentID, models.StageLeague)
		if err := tx.Unscoped().Where("fixture_id IN (?)", stale).Delete(&models.BallEvent{}).Error; err != nil {
			return err
		}
		if err := tx.Unscoped().
			Where("tournament_id = ? AND stage <> ?", tournamentID, models.StageLeague).
			Delete(&models.Fixture{}).Error; err != nil {
			return err
		}
		if len(fixtures) == 0 {
			return nil
		}
		return tx.Omit("Team1", "Team2").Create(&fixtures).Error
	})
}

// GetStageFixture returns the tournament's fixture for a knockout stage, or
// nil when the bracket has no such stage.
func (r *bracketRepository) GetStageFixture(ctx context.Context, tournamentID uint, stage models.Stage) (*models.Fixture, error) {
	var f models.Fixture
	err := r.db.WithContext(ctx).
		Where("tournament_id = ? AND stage = ?", tournamentID, stage).
		Order("id desc").
		First(&f).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &f, nil
}

// AssignTeam writes teamID into one side of the fixture. The full row is
// saved so the fixture's own validation sees both sides.
func (r *bracketRepository) AssignTeam(ctx context.Context, fixtureID uint, slot Slot, teamID uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var f models.Fixture
		if err := tx.First(&f, fixtureID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return common.ErrFixtureNotFound
			}
			return err
		}

		if slot == SlotTeam2 {
			f.Team2ID = models.UintPtr(teamID)
		} else {
			f.Team1ID = models.UintPtr(teamID)
		}
		if err := tx.Omit(clause.Associations).Save(&f).Error; err != nil {
			if errors.Is(err, models.ErrSameTeams) {
				return common.Validation("bracket slot would pair a team with itself", err)
			}
			return err
		}
		return nil
	})
}

func (r *bracketRepository) SetPodium(ctx context.Context, tournamentID, championID, runnerUpID uint) error {
	return r.db.WithContext(ctx).
		Model(&models.Tournament{}).
		Where("id = ?", tournamentID).
		Updates(map[string]interface{}{
			"champion_team_id":  championID,
			"runner_up_team_id": runnerUpID,
			"status":            models.TournamentCompleted,
		}).Error
}
