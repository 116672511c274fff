package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"facilitywatch/internal/api"
	"facilitywatch/internal/config"
	"facilitywatch/internal/handlers"
	"facilitywatch/internal/middleware"
	"facilitywatch/internal/router"
	"facilitywatch/internal/session"
	"facilitywatch/internal/store"
	"facilitywatch/internal/view"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}
	gin.SetMode(cfg.Server.Mode)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Liked flags
	likes, err := store.Open(cfg.Likes)
	if err != nil {
		log.Fatalf("Failed to open likes store: %v", err)
	}
	defer likes.Close()

	client := api.New(cfg.API.URL, api.WithTimeout(cfg.APITimeout()))

	// Initialize Gin
	r := gin.Default()

	// Setup Sessions
	sessionStore, err := session.NewStore(cfg.Session)
	if err != nil {
		log.Fatalf("Failed to create session store: %v", err)
	}
	r.Use(sessions.Sessions(cfg.Session.Name, sessionStore))

	// Templates
	renderer, err := view.NewReloadable(cfg.Server.TemplatesDir)
	if err != nil {
		log.Fatalf("Failed to load templates: %v", err)
	}
	r.HTMLRender = renderer
	if gin.IsDebugging() {
		if err := view.Watch(ctx, cfg.Server.TemplatesDir, renderer.Reload); err != nil {
			log.Printf("Template watcher disabled: %v", err)
		}
	}

	// Static Assets
	r.Static("/static", cfg.Server.StaticDir)

	// Middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.LoadSession())

	router.RegisterRoutes(r, router.Deps{
		Reports: handlers.NewReportHandler(client, likes, cfg.MaxUploadBytes(), cfg.RefreshSeconds()),
		Auth:    handlers.NewAuthHandler(client),
		Admin:   handlers.NewAdminHandler(client, cfg.Feed.AdminSort),
		Health:  handlers.NewHealthHandler(client.BaseURL()),
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: r,
	}

	go func() {
		log.Printf("FacilityWatch server starting on :%s (api %s, likes %s)", cfg.Server.Port, cfg.API.URL, cfg.Likes.Backend)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown: %v", err)
	}
}
