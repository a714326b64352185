package match

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/DhavalSuthar-24/crease/internal/common"
	"github.com/DhavalSuthar-24/crease/internal/models"
)

// MatchRepository defines methods to interact with fixtures and their ball ledger
type MatchRepository interface {
	// Fixture methods
	GetFixture(ctx context.Context, id uint) (*models.Fixture, error)
	UpdateFixture(ctx context.Context, fixture *models.Fixture) error
	GetTournament(ctx context.Context, id uint) (*models.Tournament, error)

	// Ledger methods
	AppendBall(ctx context.Context, ball *models.BallEvent) error
	AppendBalls(ctx context.Context, fixtureID uint, balls []models.BallEvent) error
	DeleteLastBall(ctx context.Context, fixtureID uint) (*models.BallEvent, error)
	ListBalls(ctx context.Context, fixtureID uint) ([]models.BallEvent, error)
	ListTournamentBalls(ctx context.Context, tournamentID uint) ([]models.BallEvent, error)

	// Transaction support
	WithTransaction(ctx context.Context, txFunc func(MatchRepository) error) error
}

// GormMatchRepository implements MatchRepository using GORM
type GormMatchRepository struct {
	db *gorm.DB
}

// NewGormMatchRepository creates a new GormMatchRepository
func NewGormMatchRepository(db *gorm.DB) *GormMatchRepository {
	return &GormMatchRepository{db: db}
}

// WithTransaction implements transaction support
func (r *GormMatchRepository) WithTransaction(ctx context.Context, txFunc func(MatchRepository) error) error {
	tx := r.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}

	txRepo := &GormMatchRepository{db: tx}
	if err := txFunc(txRepo); err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit().Error
}

// Fixture Repository Methods

// GetFixture loads a fixture with both teams.
func (r *GormMatchRepository) GetFixture(ctx context.Context, id uint) (*models.Fixture, error) {
	var fixture models.Fixture
	err := r.db.WithContext(ctx).
		Preload("Team1").
		Preload("Team2").
		First(&fixture, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrFixtureNotFound
		}
		return nil, err
	}
	return &fixture, nil
}

// UpdateFixture saves every column of the fixture but never its teams.
func (r *GormMatchRepository) UpdateFixture(ctx context.Context, fixture *models.Fixture) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(fixture).Error
}

func (r *GormMatchRepository) GetTournament(ctx context.Context, id uint) (*models.Tournament, error) {
	var tournament models.Tournament
	if err := r.db.WithContext(ctx).First(&tournament, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrTournamentNotFound
		}
		return nil, err
	}
	return &tournament, nil
}

// Ledger Repository Methods

// AppendBall stores one delivery at the end of the fixture's ledger.
func (r *GormMatchRepository) AppendBall(ctx context.Context, ball *models.BallEvent) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		balls := []models.BallEvent{*ball}
		if err := appendBalls(tx, ball.FixtureID, balls); err != nil {
			return err
		}
		*ball = balls[0]
		return nil
	})
}

// AppendBalls stores deliveries in order at the end of the ledger. IDs and
// sequence numbers are written back into balls.
func (r *GormMatchRepository) AppendBalls(ctx context.Context, fixtureID uint, balls []models.BallEvent) error {
	if len(balls) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return appendBalls(tx, fixtureID, balls)
	})
}

// appendBalls numbers balls after the current last sequence, inserts them
// and moves the fixture's cached innings pointer to the newest ball. The
// unique (fixture_id, sequence) index rejects a concurrent writer that
// read the same maximum.
func appendBalls(tx *gorm.DB, fixtureID uint, balls []models.BallEvent) error {
	var last int
	if err := tx.Unscoped().Model(&models.BallEvent{}).
		Where("fixture_id = ?", fixtureID).
		Select("COALESCE(MAX(sequence), 0)").
		Scan(&last).Error; err != nil {
		return err
	}
	for i := range balls {
		balls[i].FixtureID = fixtureID
		balls[i].Sequence = last + i + 1
	}
	if err := tx.CreateInBatches(&balls, 200).Error; err != nil {
		return err
	}

	innings := balls[len(balls)-1].Innings
	if err := tx.Model(&models.Fixture{}).
		Where("id = ?", fixtureID).
		Update("current_innings", innings).Error; err != nil {
		return err
	}
	return tx.Model(&models.Fixture{}).
		Where("id = ? AND status = ?", fixtureID, models.FixtureScheduled).
		Update("status", models.FixtureLive).Error
}

// DeleteLastBall removes the ball with the highest sequence and returns it.
func (r *GormMatchRepository) DeleteLastBall(ctx context.Context, fixtureID uint) (*models.BallEvent, error) {
	var removed models.BallEvent
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("fixture_id = ?", fixtureID).Order("sequence desc").First(&removed).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return common.ErrNoBalls
			}
			return err
		}
		if err := tx.Unscoped().Delete(&removed).Error; err != nil {
			return err
		}

		innings := 1
		var prev models.BallEvent
		err := tx.Where("fixture_id = ?", fixtureID).Order("sequence desc").First(&prev).Error
		switch {
		case err == nil:
			innings = prev.Innings
		case !errors.Is(err, gorm.ErrRecordNotFound):
			return err
		}
		return tx.Model(&models.Fixture{}).Where("id = ?", fixtureID).Update("current_innings", innings).Error
	})
	if err != nil {
		return nil, err
	}
	return &removed, nil
}

// ListBalls returns the ledger of a fixture in sequence order.
func (r *GormMatchRepository) ListBalls(ctx context.Context, fixtureID uint) ([]models.BallEvent, error) {
	var balls []models.BallEvent
	if err := r.db.WithContext(ctx).Where("fixture_id = ?", fixtureID).Order("sequence asc").Find(&balls).Error; err != nil {
		return nil, err
	}
	return balls, nil
}

// ListTournamentBalls returns every ball recorded in the tournament,
// fixture by fixture.
func (r *GormMatchRepository) ListTournamentBalls(ctx context.Context, tournamentID uint) ([]models.BallEvent, error) {
	var balls []models.BallEvent
	err := r.db.WithContext(ctx).
		Joins("JOIN fixtures ON fixtures.id = ball_events.fixture_id AND fixtures.deleted_at IS NULL").
		Where("fixtures.tournament_id = ?", tournamentID).
		Order("ball_events.fixture_id asc, ball_events.sequence asc").
		Find(&balls).Error
	if err != nil {
		return nil, err
	}
	return balls, nil
}
