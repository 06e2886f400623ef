package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"noteful/handler"
	"noteful/middleware"
	"noteful/repository"
	"noteful/utils"
)

func init() {
	if err := godotenv.Load(); err != nil && os.Getenv("GO_ENV") != "test" {
		log.Warn().Err(err).Msg("no .env file loaded")
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if level, err := zerolog.ParseLevel(utils.GetEnvAsString("LOG_LEVEL", "info")); err == nil {
		zerolog.SetGlobalLevel(level)
	}

	requiredEnvVars := []string{
		"MONGODB_URI",
		"MONGO_DB",
		"JWT_SECRET",
	}
	for _, envVar := range requiredEnvVars {
		if os.Getenv(envVar) == "" && os.Getenv("GO_ENV") != "test" {
			log.Fatal().Str("var", envVar).Msg("required environment variable is not set")
		}
	}

	utils.InitValidator()
	utils.InitJWT()
	utils.InitMongoClient(utils.LoadDatabaseConfig())

	db := utils.MongoClient.Database(os.Getenv("MONGO_DB"))
	if err := repository.SetupIndexes(db); err != nil {
		log.Fatal().Err(err).Msg("failed to create indexes")
	}
}

func setupRouter() *gin.Engine {
	router := gin.New()
	router.Use(middleware.RecoveryMiddleware())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.MetricsMiddleware())
	router.Use(middleware.CORSMiddleware())

	folderRepo := repository.GetFolderRepo(utils.MongoClient)
	tagRepo := repository.GetTagRepo(utils.MongoClient)
	noteRepo := repository.GetNoteRepo(utils.MongoClient)
	userRepo := repository.GetUserRepo(utils.MongoClient)

	foldersHandler := handler.NewFoldersHandler(folderRepo, noteRepo)
	tagsHandler := handler.NewTagsHandler(tagRepo, noteRepo)
	notesHandler := handler.NewNotesHandler(noteRepo, folderRepo, tagRepo)
	usersHandler := handler.NewUsersHandler(userRepo)
	loginHandler := handler.NewLoginHandler(userRepo)
	healthHandler := handler.NewHealthHandler(utils.MongoClient)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Public routes
	public := router.Group("/api")
	{
		public.POST("/login", loginHandler.Login)
		public.POST("/users", usersHandler.Create)
		public.GET("/health", healthHandler.Health)
	}

	// Protected routes
	protected := router.Group("/api")
	protected.Use(middleware.AuthMiddleware())
	{
		folders := protected.Group("/folders")
		{
			folders.GET("", foldersHandler.List)
			folders.GET("/:id", foldersHandler.Get)
			folders.POST("", foldersHandler.Create)
			folders.PUT("/:id", foldersHandler.Update)
			folders.DELETE("/:id", foldersHandler.Delete)
		}

		tags := protected.Group("/tags")
		{
			tags.GET("", tagsHandler.List)
			tags.GET("/:id", tagsHandler.Get)
			tags.POST("", tagsHandler.Create)
			tags.PUT("/:id", tagsHandler.Update)
			tags.DELETE("/:id", tagsHandler.Delete)
		}

		notes := protected.Group("/notes")
		{
			notes.GET("", notesHandler.List)
			notes.GET("/:id", notesHandler.Get)
			notes.POST("", notesHandler.Create)
			notes.PUT("/:id", notesHandler.Update)
			notes.DELETE("/:id", notesHandler.Delete)
		}
	}

	return router
}

func main() {
	router := setupRouter()

	port := utils.GetEnvAsString("PORT", "8080")
	server := &http.Server{
		Addr:    ":" + port,
		Handler: router,
	}

	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		sig := <-signalChan
		log.Info().Str("signal", sig.String()).Msg("shutting down")

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			log.Error().Err(err).Msg("server shutdown failed")
		}
		if err := utils.MongoClient.Disconnect(ctx); err != nil {
			log.Error().Err(err).Msg("mongo disconnect failed")
		}
	}()

	log.Info().Str("addr", server.Addr).Msg("server starting")
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}
