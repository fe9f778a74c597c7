package main

import (
	"database/sql"
	"fmt"
	"log"
	"net/http"

	_ "github.com/lib/pq"

	"speakerdirectory/config"
	"speakerdirectory/internal/adapters/auth"
	"speakerdirectory/internal/adapters/email"
	"speakerdirectory/internal/adapters/genai"
	delivery "speakerdirectory/internal/delivery/http"
	"speakerdirectory/internal/delivery/http/controllers"
	"speakerdirectory/internal/delivery/http/middleware"
	"speakerdirectory/internal/domain"
	"speakerdirectory/internal/repository/jsonfile"
	"speakerdirectory/internal/repository/postgres"
	"speakerdirectory/internal/services"
)

// @title           Speaker Directory API
// @version         1.0
// @description     Backend for the chapter speaker directory: speaker records, public nominations with admin review, speaker reviews, and AI-assisted suggestions.

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	logger := config.NewLogger()

	store, err := newStore(cfg)
	if err != nil {
		log.Fatalf("store: %v", err)
	}

	mailer, err := email.NewMailer(cfg.Mailer)
	if err != nil {
		log.Fatalf("mailer: %v", err)
	}
	renderer := email.NewTemplateRenderer()
	notifier := services.NewNotificationService(mailer, renderer)

	issuer := auth.NewJWTIssuer(cfg.Auth.JWTSecret)
	verifier := auth.NewJWTVerifier(cfg.Auth.JWTSecret)
	generator := genai.NewGeminiClient(cfg.GenAI)

	directoryService := services.NewDirectoryService(store)
	speakerService := services.NewSpeakerService(store)
	nominationService := services.NewNominationService(store, notifier, cfg.Mailer.AdminEmail, logger)
	suggestionService := services.NewSuggestionService(generator)
	adminService := services.NewAdminService(cfg.Admin.Username, cfg.Admin.PasswordHash, issuer, cfg.Auth.TokenTTL())

	directoryController := controllers.NewDirectoryController(logger, directoryService)
	speakerController := controllers.NewSpeakerController(logger, speakerService)
	nominationController := controllers.NewNominationController(logger, nominationService)
	suggestionController := controllers.NewSuggestionController(logger, suggestionService)
	authController := controllers.NewAuthController(logger, adminService)

	router := delivery.NewRouter(
		directoryController,
		speakerController,
		nominationController,
		suggestionController,
		authController,
		verifier,
	)

	handler := middleware.LoggingMiddleware(logger,
		middleware.CORS(cfg.AllowedOrigins, router),
	)

	addr := fmt.Sprintf(":%s", cfg.Port)
	logger.Info("server starting", "addr", addr, "env", cfg.Environment, "store", cfg.Store.Driver)
	if err := http.ListenAndServe(addr, handler); err != nil {
		log.Fatalf("server: %v", err)
	}
}

func newStore(cfg *config.Config) (domain.DirectoryStore, error) {
	switch cfg.Store.Driver {
	case "postgres":
		db, err := sql.Open("postgres", cfg.Store.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("open database: %w", err)
		}
		if err := db.Ping(); err != nil {
			return nil, fmt.Errorf("ping database: %w", err)
		}
		return postgres.NewStore(db), nil
	case "file", "":
		return jsonfile.NewStore(cfg.Store.FilePath), nil
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}
}
