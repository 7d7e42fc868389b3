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

	"github.com/finsift/smsparser/internal/api/handlers"
	"github.com/finsift/smsparser/internal/api/middleware"
	"github.com/finsift/smsparser/internal/bank"
	"github.com/finsift/smsparser/internal/logger"
	"github.com/finsift/smsparser/internal/parse"
)

func main() {
	addr := flag.String("addr", defaultAddr(), "listen address")
	flag.Parse()

	log := logger.New("api", os.Getenv("LOG_LEVEL"))

	engine := parse.NewEngine(bank.Catalog(), log)
	h := handlers.New(engine, log)

	var handler http.Handler = h.Routes()
	handler = middleware.CORS(handler)
	handler = middleware.Recovery(log)(handler)
	handler = middleware.Logger(log)(handler)
	handler = middleware.RequestID(handler)

	server := &http.Server{
		Addr:         *addr,
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info().Str("addr", *addr).Msg("API server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}

func defaultAddr() string {
	if port := os.Getenv("PORT"); port != "" {
		return ":" + port
	}
	return ":8080"
}
