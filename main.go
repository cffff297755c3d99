package main

import (
	"log"
	"net/http"

	"github.com/aaronzipp/rock-paper-showdown/internal/config"
	"github.com/aaronzipp/rock-paper-showdown/internal/game"
	"github.com/aaronzipp/rock-paper-showdown/internal/handlers"
	"github.com/aaronzipp/rock-paper-showdown/internal/leaderboard"
	"github.com/aaronzipp/rock-paper-showdown/internal/service"
	"github.com/aaronzipp/rock-paper-showdown/internal/sse"
	"github.com/aaronzipp/rock-paper-showdown/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	policy, err := game.NewPolicy(cfg.GamePolicy, cfg.TargetScore, cfg.TotalRounds)
	if err != nil {
		log.Fatal("Invalid game policy:", err)
	}

	board, err := leaderboard.OpenSQLite(cfg.DBPath)
	if err != nil {
		log.Fatal("Failed to open leaderboard store:", err)
	}
	defer board.Close()

	hub := sse.NewHub()
	svc := service.New(store.NewSessionStore(), board, policy, service.RandomChooser{}, hub)

	ctx := &handlers.Context{
		Service:   svc,
		Hub:       hub,
		BaseURL:   cfg.BaseURL,
		StaticDir: cfg.StaticDir,
	}

	// Routes
	http.HandleFunc("/", ctx.HandleIndex)
	http.HandleFunc("/api/game/state", ctx.HandleState)
	http.HandleFunc("/api/game/start", ctx.HandleStartGame)
	http.HandleFunc("/api/game/play_round", ctx.HandlePlayRound)
	http.HandleFunc("/api/leaderboard", ctx.HandleLeaderboard)
	http.HandleFunc("/api/player/register", ctx.HandleRegisterPlayer)
	http.HandleFunc("/api/events", ctx.HandleEvents)
	http.HandleFunc("/api/share/qr", ctx.HandleShareQR)

	// Static files
	http.Handle("/static/", http.StripPrefix("/static/", http.FileServer(http.Dir(cfg.StaticDir))))

	log.Printf("Server starting on http://localhost%s (policy=%s)", cfg.Addr, policy.Mode)
	log.Fatal(http.ListenAndServe(cfg.Addr, nil))
}
