package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/savorspice/assistant/internal/ai"
	"github.com/savorspice/assistant/internal/chat"
	"github.com/savorspice/assistant/internal/config"
	"github.com/savorspice/assistant/internal/db"
	"github.com/savorspice/assistant/internal/httpapi"
	"github.com/savorspice/assistant/internal/httpapi/handlers"
	"github.com/savorspice/assistant/internal/reservation"
)

func main() {
	cfg := config.Load()

	gdb := db.Connect(cfg.DBDriver, cfg.DBDSN)

	repo := reservation.NewRepo(gdb)

	// Provider registry: gemini is production, ollama is local dev.
	reg := ai.NewRegistry()
	reg.Register("gemini", func(ctx context.Context, model string) (ai.Provider, error) {
		_ = ctx
		if strings.TrimSpace(cfg.GeminiAPIKey) == "" {
			return nil, ai.ErrNotConfigured
		}
		m := strings.TrimSpace(model)
		if m == "" {
			m = cfg.GeminiModel
		}
		return ai.NewGeminiProvider(cfg.GeminiBaseURL, cfg.GeminiAPIKey, m), nil
	})
	reg.Register("ollama", func(ctx context.Context, model string) (ai.Provider, error) {
		_ = ctx
		m := strings.TrimSpace(model)
		if m == "" {
			m = cfg.OllamaModel
		}
		return ai.NewOllamaProvider(cfg.OllamaBaseURL, m), nil
	})

	model := cfg.GeminiModel
	if strings.EqualFold(cfg.AIProvider, "ollama") {
		model = cfg.OllamaModel
	}
	chatSvc := chat.NewService(repo, reg, cfg.AIProvider, model)

	h := handlers.NewHandler(cfg, chatSvc, repo)
	r := httpapi.NewRouter(h)

	srv := &http.Server{Addr: cfg.HTTPAddr, Handler: r}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Printf("server listening on %s (provider=%s)", cfg.HTTPAddr, cfg.AIProvider)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	<-ctx.Done()
	log.Printf("server shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown: %v", err)
	}
}
