package handlers

import (
	"fmt"
	"net/http"

	"github.com/aaronzipp/rock-paper-showdown/internal/models"
)

type leaderboardResponse struct {
	ByName       []models.LeaderboardEntry `json:"by_name"`
	ByScore      []models.LeaderboardEntry `json:"by_score"`
	TotalPlayers int                       `json:"total_players"`
}

type registerRequest struct {
	Name string `json:"name"`
}

type registerResponse struct {
	Message string `json:"message"`
	Player  string `json:"player"`
}

// HandleLeaderboard returns both leaderboard projections
func (ctx *Context) HandleLeaderboard(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	byName, byScore, err := ctx.Service.Leaderboard(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if byName == nil {
		byName = []models.LeaderboardEntry{}
	}
	if byScore == nil {
		byScore = []models.LeaderboardEntry{}
	}

	writeJSON(w, http.StatusOK, leaderboardResponse{
		ByName:       byName,
		ByScore:      byScore,
		TotalPlayers: len(byName),
	})
}

// HandleRegisterPlayer creates a leaderboard entry for a new player
func (ctx *Context) HandleRegisterPlayer(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req registerRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	name, created, err := ctx.Service.RegisterPlayer(r.Context(), req.Name)
	if err != nil {
		writeError(w, err)
		return
	}

	status := http.StatusOK
	message := fmt.Sprintf("Player %s already exists", name)
	if created {
		status = http.StatusCreated
		message = fmt.Sprintf("Player %s registered successfully", name)
	}
	writeJSON(w, status, registerResponse{Message: message, Player: name})
}
