package team

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/DhavalSuthar-24/crease/internal/common"
	"github.com/DhavalSuthar-24/crease/internal/models"
)

// TeamRepository defines the interface for team and roster data operations
type TeamRepository interface {
	// Team operations
	CreateTeam(ctx context.Context, team *models.Team) error
	GetTeamByID(ctx context.Context, id uint) (*models.Team, error)
	GetTeamsByIDs(ctx context.Context, ids []uint) (map[uint]models.Team, error)
	GetTournamentTeams(ctx context.Context, tournamentID uint) ([]models.Team, error)
	TournamentExists(ctx context.Context, tournamentID uint) (bool, error)

	// Player operations
	AddPlayer(ctx context.Context, player *models.Player) error
	GetPlayers(ctx context.Context, teamID uint) ([]models.Player, error)
	GetPlayersByIDs(ctx context.Context, ids []uint) (map[uint]models.Player, error)
}

type teamRepository struct {
	db *gorm.DB
}

// NewTeamRepository creates a new instance of TeamRepository
func NewTeamRepository(db *gorm.DB) TeamRepository {
	return &teamRepository{db: db}
}

// --- Team Operations ---

func (r *teamRepository) CreateTeam(ctx context.Context, team *models.Team) error {
	return r.db.WithContext(ctx).Create(team).Error
}

// GetTeamByID returns the team with its roster in batting order.
func (r *teamRepository) GetTeamByID(ctx context.Context, id uint) (*models.Team, error) {
	var team models.Team
	err := r.db.WithContext(ctx).
		Preload("Players", func(db *gorm.DB) *gorm.DB { return db.Order("id asc") }).
		First(&team, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrTeamNotFound
		}
		return nil, err
	}
	return &team, nil
}

func (r *teamRepository) GetTeamsByIDs(ctx context.Context, ids []uint) (map[uint]models.Team, error) {
	out := make(map[uint]models.Team, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	var teams []models.Team
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&teams).Error; err != nil {
		return nil, err
	}
	for _, t := range teams {
		out[t.ID] = t
	}
	return out, nil
}

func (r *teamRepository) GetTournamentTeams(ctx context.Context, tournamentID uint) ([]models.Team, error) {
	var teams []models.Team
	err := r.db.WithContext(ctx).
		Where("tournament_id = ?", tournamentID).
		Order("id asc").
		Find(&teams).Error
	if err != nil {
		return nil, err
	}
	return teams, nil
}

func (r *teamRepository) TournamentExists(ctx context.Context, tournamentID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Tournament{}).Where("id = ?", tournamentID).Count(&count).Error
	return count > 0, err
}

// --- Player Operations ---

func (r *teamRepository) AddPlayer(ctx context.Context, player *models.Player) error {
	return r.db.WithContext(ctx).Create(player).Error
}

// GetPlayers returns a roster in the order players were added.
func (r *teamRepository) GetPlayers(ctx context.Context, teamID uint) ([]models.Player, error) {
	var players []models.Player
	if err := r.db.WithContext(ctx).Where("team_id = ?", teamID).Order("id asc").Find(&players).Error; err != nil {
		return nil, err
	}
	return players, nil
}

func (r *teamRepository) GetPlayersByIDs(ctx context.Context, ids []uint) (map[uint]models.Player, error) {
	out := make(map[uint]models.Player, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	var players []models.Player
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&players).Error; err != nil {
		return nil, err
	}
	for _, p := range players {
		out[p.ID] = p
	}
	return out, nil
}
