package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"speakerdirectory/internal/delivery/http/controllers"
	"speakerdirectory/internal/delivery/http/middleware"
	"speakerdirectory/internal/domain"
)

// NewRouter initializes the HTTP router with all application routes.
// Mutating admin routes are wrapped with RequireAdmin; public routes
// (directory reads, nominations, reviews, suggestions) are open.
func NewRouter(
	directoryController *controllers.DirectoryController,
	speakerController *controllers.SpeakerController,
	nominationController *controllers.NominationController,
	suggestionController *controllers.SuggestionController,
	authController *controllers.AuthController,
	verifier domain.TokenVerifier,
) *http.ServeMux {
	mux := http.NewServeMux()
	admin := middleware.RequireAdmin(verifier)

	// Directory
	mux.HandleFunc("GET /data", directoryController.GetData)

	// Speakers
	mux.HandleFunc("GET /speakers", speakerController.List)
	mux.HandleFunc("POST /speakers", admin(speakerController.ReplaceAll))
	mux.HandleFunc("PUT /speakers/{speakerID}", admin(speakerController.Update))
	mux.HandleFunc("DELETE /speakers/{speakerID}", admin(speakerController.Delete))
	mux.HandleFunc("POST /speakers/review", speakerController.AddReview)

	// Nominations
	mux.HandleFunc("POST /nominations", nominationController.Create)
	mux.HandleFunc("POST /nominations/approve", admin(nominationController.Approve))
	mux.HandleFunc("POST /nominations/reject", admin(nominationController.Reject))

	// Suggestions
	mux.HandleFunc("POST /suggest-topics", suggestionController.SuggestTopics)
	mux.HandleFunc("POST /find-matching-speakers", suggestionController.FindMatchingSpeakers)
	mux.HandleFunc("POST /generate-event-ideas", suggestionController.GenerateEventIdeas)

	// Auth
	mux.HandleFunc("POST /auth/login", authController.Login)

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
