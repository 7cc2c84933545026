// File: scheduly/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"scheduly/config"
	"scheduly/cron"
	"scheduly/database"
	"scheduly/handlers"
	"scheduly/middleware"
	"scheduly/routes"
	"scheduly/services/catalog"
	ai "scheduly/services/intelligence"
	"scheduly/services/requirements"
	"scheduly/services/schedule"
	"scheduly/services/session"
	"scheduly/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	if backend := config.AppConfig.SessionBackend; backend == "database" || backend == "mongo" {
		database.InitDB()
	}
	utils.InitCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// Collaborators.
	sessionStore := session.NewStoreFromConfig()
	sectionCache := catalog.NewSectionCache(
		utils.GetCacheClient(),
		time.Duration(config.AppConfig.CatalogCacheTTLMin)*time.Minute,
	)
	catalogSource := catalog.NewRegistrarSource(sectionCache)
	curatedSource := requirements.NewCuratedSource()

	// AI-backed collaborators come up only when a key is configured;
	// development mode works without one.
	var parser ai.PreferenceParser
	var prereqSearcher ai.PrereqSearcher
	var aiRequirements requirements.Source
	if key := config.AppConfig.GeminiAPIKey; key != "" {
		gemini, err := ai.NewGeminiClient(context.Background(), key)
		if err != nil {
			logger.Sugar().Fatalf("main: failed to initialize Gemini client: %v", err)
		}
		parser = gemini
		if !config.DevelopmentMode() {
			aiRequirements = gemini
			prereqSearcher = &ai.GeminiPrereqSearcher{
				Client: gemini,
				Cache: ai.NewPrereqCache(
					utils.GetCacheClient(),
					time.Duration(config.AppConfig.PrereqCacheTTLHours)*time.Hour,
				),
			}
		}
	} else if !config.DevelopmentMode() {
		logger.Sugar().Fatal("main: production mode requires GEMINI_API_KEY")
	}

	engine := &schedule.DefaultEngine{MaxCourses: config.AppConfig.MaxCoursesPerTerm}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Engine:         engine,
		Curated:        curatedSource,
		AIRequirements: aiRequirements,
		Catalog:        catalogSource,
		Parser:         parser,
		PrereqSearcher: prereqSearcher,
		Sessions:       sessionStore,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Background session cleanup.
	cron.InitCleanupWorker(sessionStore)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}
	if err := sessionStore.Close(context.Background()); err != nil {
		logger.Sugar().Warnf("main: failed to close session store: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
