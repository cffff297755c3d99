package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/aaronzipp/rock-paper-showdown/internal/game"
	"github.com/aaronzipp/rock-paper-showdown/internal/leaderboard"
	"github.com/aaronzipp/rock-paper-showdown/internal/models"
	"github.com/aaronzipp/rock-paper-showdown/internal/service"
	"github.com/aaronzipp/rock-paper-showdown/internal/sse"
	"github.com/aaronzipp/rock-paper-showdown/internal/store"
)

// fixedChooser always throws the same sign.
type fixedChooser struct {
	choice models.Choice
}

func (c fixedChooser) Choose() models.Choice { return c.choice }

func newTestContext(opponent models.Choice) *Context {
	hub := sse.NewHub()
	svc := service.New(
		store.NewSessionStore(),
		leaderboard.NewMemory(),
		game.Policy{Mode: game.PolicyTargetScore, TargetScore: 3},
		fixedChooser{choice: opponent},
		hub,
	)
	return &Context{
		Service: svc,
		Hub:     hub,
		BaseURL: "http://localhost:8080",
	}
}

func postJSON(t *testing.T, handler http.HandlerFunc, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func getJSON(t *testing.T, handler http.HandlerFunc, path string, out any) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	handler(rec, req)
	if out != nil {
		if err := json.Unmarshal(rec.Body.Bytes(), out); err != nil {
			t.Fatalf("decode response %q: %v", rec.Body.String(), err)
		}
	}
	return rec
}

func TestStateBeforeAnyGame(t *testing.T) {
	ctx := newTestContext(models.Scissors)

	var resp struct {
		GameActive bool    `json:"game_active"`
		LastWinner *string `json:"last_winner"`
		StartedAt  *string `json:"started_at"`
	}
	rec := getJSON(t, ctx.HandleState, "/api/game/state", &resp)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if resp.GameActive {
		t.Fatal("game_active = true before any start")
	}
	if resp.LastWinner != nil {
		t.Fatalf("last_winner = %v, want null", *resp.LastWinner)
	}
	if resp.StartedAt != nil {
		t.Fatalf("started_at = %v, want null", *resp.StartedAt)
	}
}

func TestStartGameValidationError(t *testing.T) {
	ctx := newTestContext(models.Scissors)

	rec := postJSON(t, ctx.HandleStartGame, "/api/game/start",
		map[string]string{"player1": "", "player2": "Bob"})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	if resp["error"] == "" {
		t.Fatal("expected error message in body")
	}
}

func TestStartGameCreated(t *testing.T) {
	ctx := newTestContext(models.Scissors)

	rec := postJSON(t, ctx.HandleStartGame, "/api/game/start",
		map[string]string{"player1": "Alice", "player2": "Bob"})
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", rec.Code, rec.Body.String())
	}

	var state struct {
		GameActive bool    `json:"game_active"`
		Player1    string  `json:"player1"`
		StartedAt  *string `json:"started_at"`
	}
	getJSON(t, ctx.HandleState, "/api/game/state", &state)
	if !state.GameActive || state.Player1 != "Alice" {
		t.Fatalf("state = %+v, want active game with Alice", state)
	}
	if state.StartedAt == nil {
		t.Fatal("started_at missing for active game")
	}
	if _, err := time.Parse(time.RFC3339, *state.StartedAt); err != nil {
		t.Fatalf("started_at %q is not RFC 3339: %v", *state.StartedAt, err)
	}
}

func TestPlayRoundWithoutGame(t *testing.T) {
	ctx := newTestContext(models.Scissors)

	rec := postJSON(t, ctx.HandlePlayRound, "/api/game/play_round",
		map[string]string{"player1_choice": "rock"})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestPlayRoundToCompletion(t *testing.T) {
	ctx := newTestContext(models.Scissors)

	postJSON(t, ctx.HandleStartGame, "/api/game/start",
		map[string]string{"player1": "Alice", "player2": "Bob"})

	var resp struct {
		RoundNumber   int     `json:"round_number"`
		Player1Choice string  `json:"player1_choice"`
		Player2Choice string  `json:"player2_choice"`
		RoundWinner   string  `json:"round_winner"`
		Player1Score  int     `json:"player1_score"`
		Player2Score  int     `json:"player2_score"`
		GameComplete  bool    `json:"game_complete"`
		GameWinner    *string `json:"game_winner"`
		LastWinner    *string `json:"last_winner"`
	}
	for i := 0; i < 3; i++ {
		rec := postJSON(t, ctx.HandlePlayRound, "/api/game/play_round",
			map[string]string{"player1_choice": "rock"})
		if rec.Code != http.StatusOK {
			t.Fatalf("play %d status = %d: %s", i+1, rec.Code, rec.Body.String())
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode play response: %v", err)
		}
		if resp.RoundWinner != "Player1" {
			t.Fatalf("round_winner = %q, want Player1", resp.RoundWinner)
		}
	}

	if resp.RoundNumber != 3 || resp.Player1Score != 3 || resp.Player2Score != 0 {
		t.Fatalf("final round = %+v, want round 3 at 3-0", resp)
	}
	if resp.Player1Choice != "rock" || resp.Player2Choice != "scissors" {
		t.Fatalf("choices = %s vs %s, want rock vs scissors", resp.Player1Choice, resp.Player2Choice)
	}
	if !resp.GameComplete {
		t.Fatal("game_complete = false after the winning round")
	}
	if resp.GameWinner == nil || *resp.GameWinner != "Alice" {
		t.Fatalf("game_winner = %v, want Alice", resp.GameWinner)
	}
	if resp.LastWinner == nil || *resp.LastWinner != "Alice" {
		t.Fatalf("last_winner = %v, want Alice", resp.LastWinner)
	}
}

func TestPlayRoundInvalidChoice(t *testing.T) {
	ctx := newTestContext(models.Scissors)

	postJSON(t, ctx.HandleStartGame, "/api/game/start",
		map[string]string{"player1": "Alice", "player2": "Bob"})

	rec := postJSON(t, ctx.HandlePlayRound, "/api/game/play_round",
		map[string]string{"player1_choice": "lizard"})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestLeaderboardAfterCompletedGame(t *testing.T) {
	ctx := newTestContext(models.Scissors)

	postJSON(t, ctx.HandleStartGame, "/api/game/start",
		map[string]string{"player1": "Alice", "player2": "Bob"})
	for i := 0; i < 3; i++ {
		postJSON(t, ctx.HandlePlayRound, "/api/game/play_round",
			map[string]string{"player1_choice": "rock"})
	}

	var resp struct {
		ByName       []models.LeaderboardEntry `json:"by_name"`
		ByScore      []models.LeaderboardEntry `json:"by_score"`
		TotalPlayers int                       `json:"total_players"`
	}
	rec := getJSON(t, ctx.HandleLeaderboard, "/api/leaderboard", &resp)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if resp.TotalPlayers != 2 {
		t.Fatalf("total_players = %d, want 2", resp.TotalPlayers)
	}
	top := resp.ByScore[0]
	if top.Name != "Alice" || top.Score != 3 || top.GamesWon != 1 {
		t.Fatalf("by_score[0] = %+v, want Alice score=3 games_won=1", top)
	}
}

func TestRegisterPlayerEndpoint(t *testing.T) {
	ctx := newTestContext(models.Scissors)

	rec := postJSON(t, ctx.HandleRegisterPlayer, "/api/player/register",
		map[string]string{"name": "Alice"})
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201", rec.Code)
	}

	rec = postJSON(t, ctx.HandleRegisterPlayer, "/api/player/register",
		map[string]string{"name": "Alice"})
	if rec.Code != http.StatusOK {
		t.Fatalf("repeat status = %d, want 200", rec.Code)
	}

	rec = postJSON(t, ctx.HandleRegisterPlayer, "/api/player/register",
		map[string]string{"name": ""})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("empty name status = %d, want 400", rec.Code)
	}
}

func TestShareQRReturnsPNG(t *testing.T) {
	ctx := newTestContext(models.Scissors)

	rec := getJSON(t, ctx.HandleShareQR, "/api/share/qr", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if got := rec.Header().Get("Content-Type"); got != "image/png" {
		t.Fatalf("content type = %q, want image/png", got)
	}
	if rec.Body.Len() == 0 {
		t.Fatal("empty PNG body")
	}
}

func TestMethodNotAllowed(t *testing.T) {
	ctx := newTestContext(models.Scissors)

	rec := httptest.NewRecorder()
	ctx.HandleStartGame(rec, httptest.NewRequest(http.MethodGet, "/api/game/start", nil))
	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("GET start status = %d, want 405", rec.Code)
	}

	rec = httptest.NewRecorder()
	ctx.HandleState(rec, httptest.NewRequest(http.MethodPost, "/api/game/state", nil))
	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("POST state status = %d, want 405", rec.Code)
	}
}
