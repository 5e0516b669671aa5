package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	openai "github.com/sashabaranov/go-openai"

	"github.com/voicescribe/backend/internal/api"
	"github.com/voicescribe/backend/internal/config"
	"github.com/voicescribe/backend/internal/speech"
	"github.com/voicescribe/backend/internal/store"
	"github.com/voicescribe/backend/internal/summarize"
)

// Version info (set during build)
var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect to the document store, fail fast when unreachable
	connectCtx, cancel := context.WithTimeout(context.Background(),
		time.Duration(cfg.Mongo.ConnectTimeoutSeconds)*time.Second)
	st, err := store.Connect(connectCtx, cfg.Mongo.URL, cfg.Mongo.Database)
	cancel()
	if err != nil {
		log.Fatalf("Failed to connect to mongodb: %v", err)
	}

	// One OpenAI client shared by both adapters
	client := openai.NewClient(cfg.OpenAI.APIKey)
	recognizer := speech.NewOpenAIProvider(client, cfg.OpenAI.WhisperModel)
	summarizer := summarize.NewOpenAIProvider(client, cfg.OpenAI.SummaryModel)

	h := api.NewHandlerFromDeps(&api.Dependencies{
		Store:      st,
		Speech:     recognizer,
		Summarizer: summarizer,
		Version:    Version,
	})

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = api.ErrorHandler

	// Configure middleware
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Skipper: func(c echo.Context) bool {
			if !cfg.Server.EnableRequestLogging {
				return true
			}
			return c.Request().URL.Path == "/health"
		},
	}))

	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 1024 * 4,
	}))

	// Body limit middleware
	e.Use(middleware.BodyLimit(cfg.Server.BodyLimit))

	// CORS: any origin, all methods and headers
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{"*"},
	}))

	api.RegisterRoutes(e, h)

	s := &http.Server{
		Addr:         cfg.Server.Addr(),
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeoutSeconds) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeoutSeconds) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeoutSeconds) * time.Second,
	}

	go func() {
		if err := e.StartServer(s); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	log.Infof("Voicescribe backend %s (built %s) listening on %s", Version, BuildTime, cfg.Server.Addr())

	// Shut down cleanly and disconnect the store on SIGINT/SIGTERM
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Errorf("Server shutdown: %v", err)
	}
	if err := st.Close(shutdownCtx); err != nil {
		log.Errorf("Mongodb disconnect: %v", err)
	}
}
