package tournament

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/DhavalSuthar-24/crease/internal/common"
	"github.com/DhavalSuthar-24/crease/internal/models"
)

// TournamentRepository defines the data operations behind tournaments and their fixtures
type TournamentRepository interface {
	// Tournament operations
	CreateTournament(ctx context.Context, t *models.Tournament) error
	GetTournament(ctx context.Context, id uint) (*models.Tournament, error)
	SlugTaken(ctx context.Context, slug string) (bool, error)

	// Fixture operations
	CreateFixtures(ctx context.Context, fixtures []models.Fixture) error
	CountFixtures(ctx context.Context, tournamentID uint, stage models.Stage) (int64, error)
	ListFixtures(ctx context.Context, tournamentID uint, page, limit int, filters map[string]interface{}) ([]models.Fixture, int64, error)
}

type tournamentRepository struct {
	db *gorm.DB
}

// NewTournamentRepository creates a new instance of TournamentRepository
func NewTournamentRepository(db *gorm.DB) TournamentRepository {
	return &tournamentRepository{db: db}
}

func (r *tournamentRepository) CreateTournament(ctx context.Context, t *models.Tournament) error {
	return r.db.WithContext(ctx).Create(t).Error
}

// GetTournament loads a tournament with its teams.
func (r *tournamentRepository) GetTournament(ctx context.Context, id uint) (*models.Tournament, error) {
	var t models.Tournament
	err := r.db.WithContext(ctx).
		Preload("Teams", func(db *gorm.DB) *gorm.DB { return db.Order("id asc") }).
		First(&t, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrTournamentNotFound
		}
		return nil, err
	}
	return &t, nil
}

func (r *tournamentRepository) SlugTaken(ctx context.Context, slug string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Unscoped().Model(&models.Tournament{}).Where("slug = ?", slug).Count(&count).Error
	return count > 0, err
}

// CreateFixtures inserts fixtures in one transaction. Team rows are never touched.
func (r *tournamentRepository) CreateFixtures(ctx context.Context, fixtures []models.Fixture) error {
	if len(fixtures) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Omit(clause.Associations).CreateInBatches(&fixtures, 100).Error
	})
}

func (r *tournamentRepository) CountFixtures(ctx context.Context, tournamentID uint, stage models.Stage) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Fixture{}).
		Where("tournament_id = ? AND stage = ?", tournamentID, stage).
		Count(&count).Error
	return count, err
}

// ListFixtures pages through a tournament's fixtures in schedule order.
func (r *tournamentRepository) ListFixtures(ctx context.Context, tournamentID uint, page, limit int, filters map[string]interface{}) ([]models.Fixture, int64, error) {
	var fixtures []models.Fixture
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Fixture{}).Where("tournament_id = ?", tournamentID)
	if stage, ok := filters["stage"]; ok {
		query = query.Where("stage = ?", stage)
	}
	if status, ok := filters["status"]; ok {
		query = query.Where("status = ?", status)
	}

	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	offset := (page - 1) * limit
	err := query.
		Preload("Team1").
		Preload("Team2").
		Order("scheduled_at asc, id asc").
		Offset(offset).
		Limit(limit).
		Find(&fixtures).Error
	if err != nil {
		return nil, 0, err
	}
	return fixtures, total, nil
}
