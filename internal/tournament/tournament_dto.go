package tournament

import (
	"time"

	"github.com/DhavalSuthar-24/crease/internal/models"
)

// --- DTOs for requests ---

type CreateTournamentRequest struct {
	Name       string     `json:"name" binding:"required,min=3,max=120"`
	TotalOvers int        `json:"total_overs" binding:"omitempty,gte=1,lte=50"`
	StartDate  *time.Time `json:"start_date"`
}

type CreateFixtureRequest struct {
	Team1ID     uint         `json:"team1_id" binding:"required"`
	Team2ID     uint         `json:"team2_id" binding:"required,nefield=Team1ID"`
	ScheduledAt *time.Time   `json:"scheduled_at"`
	Venue       string       `json:"venue" binding:"max=120"`
	Stage       models.Stage `json:"stage" binding:"omitempty,oneof=league qualifier1 eliminator qualifier2 final"`
	TotalOvers  int          `json:"total_overs" binding:"omitempty,gte=1,lte=50"`
}

// ScheduleRequest configures league generation. Rounds are IntervalDays
// apart starting at StartDate.
type ScheduleRequest struct {
	StartDate    *time.Time `json:"start_date"`
	IntervalDays int        `json:"interval_days" binding:"omitempty,gte=1,lte=30"`
	Venue        string     `json:"venue" binding:"max=120"`
}
