package standings

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/DhavalSuthar-24/crease/internal/common"
	"github.com/DhavalSuthar-24/crease/internal/models"
)

// StandingsRepository reads the inputs of the points table and stores its rows.
type StandingsRepository interface {
	GetTournament(ctx context.Context, id uint) (*models.Tournament, error)
	GetTeams(ctx context.Context, tournamentID uint) ([]models.Team, error)
	GetCompletedLeagueFixtures(ctx context.Context, tournamentID uint) ([]models.Fixture, error)
	UpsertRows(ctx context.Context, rows []models.StandingsRow) error
	GetRows(ctx context.Context, tournamentID uint) ([]models.StandingsRow, error)
	SetStale(ctx context.Context, tournamentID uint, stale bool) error
	GetStaleTournamentIDs(ctx context.Context) ([]uint, error)
}

type standingsRepository struct {
	db *gorm.DB
}

func NewStandingsRepository(db *gorm.DB) StandingsRepository {
	return &standingsRepository{db: db}
}

func (r *standingsRepository) GetTournament(ctx context.Context, id uint) (*models.Tournament, error) {
	var t models.Tournament
	if err := r.db.WithContext(ctx).First(&t, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrTournamentNotFound
		}
		return nil, err
	}
	return &t, nil
}

func (r *standingsRepository) GetTeams(ctx context.Context, tournamentID uint) ([]models.Team, error) {
	var teams []models.Team
	err := r.db.WithContext(ctx).Where("tournament_id = ?", tournamentID).Order("id asc").Find(&teams).Error
	return teams, err
}

func (r *standingsRepository) GetCompletedLeagueFixtures(ctx context.Context, tournamentID uint) ([]models.Fixture, error) {
	var fixtures []models.Fixture
	err := r.db.WithContext(ctx).
		Where("tournament_id = ? AND status = ? AND stage = ?", tournamentID, models.FixtureCompleted, models.StageLeague).
		Order("id asc").
		Find(&fixtures).Error
	return fixtures, err
}

// UpsertRows writes every row, overwriting the stored row of the same
// (tournament, team).
func (r *standingsRepository) UpsertRows(ctx context.Context, rows []models.StandingsRow) error {
	if len(rows) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Omit(clause.Associations).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "tournament_id"}, {Name: "team_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"played", "won", "lost", "tied", "no_result", "points",
				"runs_for", "balls_for", "runs_against", "balls_against", "net_run_rate",
				"updated_at", "deleted_at",
			}),
		}).
		Create(&rows).Error
}

func (r *standingsRepository) GetRows(ctx context.Context, tournamentID uint) ([]models.StandingsRow, error) {
	var rows []models.StandingsRow
	err := r.db.WithContext(ctx).
		Preload("Team").
		Where("tournament_id = ?", tournamentID).
		Find(&rows).Error
	return rows, err
}

func (r *standingsRepository) SetStale(ctx context.Context, tournamentID uint, stale bool) error {
	return r.db.WithContext(ctx).
		Model(&models.Tournament{}).
		Where("id = ?", tournamentID).
		Update("standings_stale", stale).Error
}

func (r *standingsRepository) GetStaleTournamentIDs(ctx context.Context) ([]uint, error) {
	var ids []uint
	err := r.db.WithContext(ctx).
		Model(&models.Tournament{}).
		Where("standings_stale = ?", true).
		Order("id asc").
		Pluck("id", &ids).Error
	return ids, err
}
