package team

import "github.com/DhavalSuthar-24/crease/internal/models"

// --- DTOs for requests ---

type CreateTeamRequest struct {
	Name      string `json:"name" binding:"required,min=2,max=100"`
	ShortName string `json:"short_name" binding:"omitempty,max=10"`
	Logo      string `json:"logo"`
}

type AddPlayerRequest struct {
	Name string            `json:"name" binding:"required,min=2,max=100"`
	Role models.PlayerRole `json:"role" binding:"omitempty,oneof=batter bowler all_rounder wicket_keeper"`
}
