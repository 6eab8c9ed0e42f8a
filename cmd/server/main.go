package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/ajharbinger/line-survival-mock/internal/api"
	"github.com/ajharbinger/line-survival-mock/internal/logger"
	"github.com/ajharbinger/line-survival-mock/internal/services"
	"github.com/ajharbinger/line-survival-mock/pkg/config"
)

func main() {
	// Load environment variables
	envErr := godotenv.Load()

	// Initialize configuration
	cfg := config.New()
	log := logger.New(cfg.LogLevel)
	if envErr != nil {
		log.Debug("No .env file found")
	}

	// Set Gin mode based on environment
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	svc := services.NewServices(cfg)
	router := api.NewRouter(cfg, svc, log)

	server := &http.Server{
		Addr:    cfg.ListenAddr(),
		Handler: router,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- server.ListenAndServe()
	}()

	printBanner(os.Stdout, cfg)

	select {
	case err := <-serveErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Failed to start server", err, "addr", cfg.ListenAddr())
		}
		return
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Graceful shutdown failed", err)
		_ = server.Close()
	}
	fmt.Fprintln(os.Stdout, "\nServer stopped.")
}

// printBanner tells a developer where the mock lives and how to call it
func printBanner(w io.Writer, cfg *config.Config) {
	fmt.Fprintf(w, "Mock Line Survival Server running on %s\n", cfg.PublicURL())
	fmt.Fprintln(w, "Endpoint: POST /predict")
	fmt.Fprintln(w, `Expected payload: {"lines": ["line1", "line2", ...]}`)
	fmt.Fprintln(w, `Response: {"probabilities": [0.1, 0.8, ...]}`)
	fmt.Fprintln(w, "\nPress Ctrl+C to stop the server")
}
