package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/plus3/garden/config"
	"github.com/plus3/garden/scoreboard"
	"github.com/plus3/garden/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}

	addr := flag.String("addr", cfg.Addr, "Address to listen on.")
	dbPath := flag.String("db", cfg.DatabasePath, "SQLite scoreboard path. Empty disables the scoreboard.")
	flag.Parse()

	cfg.SetupLogging(os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var scores server.Scoreboard
	if *dbPath != "" {
		board, err := scoreboard.Open(ctx, *dbPath, log.Logger)
		if err != nil {
			log.Fatal().Err(err).Str("path", *dbPath).Msg("open scoreboard")
		}
		defer board.Close()
		scores = board
	}

	store := server.NewStore(log.Logger, cfg.GameOptions()...)
	srv := &http.Server{
		Addr:              *addr,
		Handler:           server.New(store, scores, log.Logger),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdown)
	}()

	log.Info().Str("addr", *addr).Bool("scoreboard", scores != nil).Msg("starting garden-server")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("server exited")
	}
	log.Info().Msg("garden-server stopped")
}
