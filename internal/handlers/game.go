package handlers

import (
	"log"
	"net/http"
	"time"
)

type stateResponse struct {
	GameActive   bool    `json:"game_active"`
	LastWinner   *string `json:"last_winner"`
	Player1      string  `json:"player1"`
	Player2      string  `json:"player2"`
	Player1Score int     `json:"player1_score"`
	Player2Score int     `json:"player2_score"`
	RoundNumber  int     `json:"round_number"`
	StartedAt    *string `json:"started_at"` // RFC 3339, null before the first game
}

type startRequest struct {
	Player1 string `json:"player1"`
	Player2 string `json:"player2"`
}

type startResponse struct {
	Message string `json:"message"`
	Player1 string `json:"player1"`
	Player2 string `json:"player2"`
}

type playRequest struct {
	Player1Choice string `json:"player1_choice"`
}

type playResponse struct {
	RoundNumber   int     `json:"round_number"`
	Player1Choice string  `json:"player1_choice"`
	Player2Choice string  `json:"player2_choice"`
	RoundWinner   string  `json:"round_winner"`
	Player1Score  int     `json:"player1_score"`
	Player2Score  int     `json:"player2_score"`
	GameComplete  bool    `json:"game_complete"`
	GameWinner    *string `json:"game_winner,omitempty"`
	LastWinner    *string `json:"last_winner,omitempty"`
}

// HandleState reports whether a game is active, the current session
// snapshot, and the retained winner of the last completed game.
func (ctx *Context) HandleState(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	snap := ctx.Service.State()
	resp := stateResponse{
		GameActive:   snap.GameActive,
		LastWinner:   nullable(snap.LastWinner),
		Player1:      snap.Player1,
		Player2:      snap.Player2,
		Player1Score: snap.Player1Score,
		Player2Score: snap.Player2Score,
		RoundNumber:  snap.RoundNumber,
	}
	if !snap.StartedAt.IsZero() {
		started := snap.StartedAt.UTC().Format(time.RFC3339)
		resp.StartedAt = &started
	}
	writeJSON(w, http.StatusOK, resp)
}

// HandleStartGame starts a new game session
func (ctx *Context) HandleStartGame(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req startRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	session, err := ctx.Service.Start(r.Context(), req.Player1, req.Player2)
	if err != nil {
		if debug {
			log.Printf("HandleStartGame: %v", err)
		}
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, startResponse{
		Message: "Game started successfully",
		Player1: session.Player1,
		Player2: session.Player2,
	})
}

// HandlePlayRound resolves one round of the active game against the
// server's own choice.
func (ctx *Context) HandlePlayRound(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req playRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	result, err := ctx.Service.Play(r.Context(), req.Player1Choice)
	if err != nil {
		if debug {
			log.Printf("HandlePlayRound: %v", err)
		}
		writeError(w, err)
		return
	}

	resp := playResponse{
		RoundNumber:   result.RoundNumber,
		Player1Choice: string(result.Player1Choice),
		Player2Choice: string(result.Player2Choice),
		RoundWinner:   string(result.Outcome),
		Player1Score:  result.Player1Score,
		Player2Score:  result.Player2Score,
		GameComplete:  result.GameComplete,
	}
	if result.GameComplete {
		winner := result.GameWinner
		resp.GameWinner = &winner
		resp.LastWinner = nullable(result.LastWinner)
	}
	writeJSON(w, http.StatusOK, resp)
}
