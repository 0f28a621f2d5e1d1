package routes

import (
	"net/http"
	"time"

	_ "github.com/Dosada05/swiss-tournament/docs"
	"github.com/Dosada05/swiss-tournament/handlers"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"
)

func SetupRoutes(
	router chi.Router,
	authenticate func(http.Handler) http.Handler,
	allowedOrigins []string,
	authHandler *handlers.AuthHandler,
	tournamentHandler *handlers.TournamentHandler,
	competitorHandler *handlers.CompetitorHandler,
	roundHandler *handlers.RoundHandler,
	webSocketHandler *handlers.WebSocketHandler,
) {
	router.Use(chiMiddleware.RequestID)
	router.Use(chiMiddleware.RealIP)
	router.Use(chiMiddleware.Logger)
	router.Use(chiMiddleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Websocket-соединения живут дольше любого таймаута запроса.
	router.Get("/ws/tournaments/{tournamentID}", webSocketHandler.ServeWs)
	router.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	router.Group(func(r chi.Router) {
		r.Use(chiMiddleware.Timeout(30 * time.Second))

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)
		})

		r.Route("/tournaments", func(r chi.Router) {
			// Публичные маршруты
			r.Get("/", tournamentHandler.ListHandler)
			r.Get("/{tournamentID}", tournamentHandler.GetByIDHandler)
			r.Get("/{tournamentID}/standings", tournamentHandler.StandingsHandler)
			r.Get("/{tournamentID}/rounds", roundHandler.ListHandler)

			// Защищенные маршруты; права организатора проверяются в сервисах
			r.Group(func(r chi.Router) {
				r.Use(authenticate)

				r.Post("/", tournamentHandler.CreateHandler)
				r.Delete("/{tournamentID}", tournamentHandler.DeleteHandler)

				r.Post("/{tournamentID}/competitors", competitorHandler.RegisterHandler)
				r.Patch("/{tournamentID}/competitors/{competitorID}", competitorHandler.UpdateHandler)
				r.Delete("/{tournamentID}/competitors/{competitorID}", competitorHandler.DeleteHandler)

				r.Post("/{tournamentID}/rounds", roundHandler.GenerateHandler)
				r.Delete("/{tournamentID}/rounds/{roundNumber}", roundHandler.DeleteHandler)

				r.Put("/{tournamentID}/pairings/{pairingID}/result", roundHandler.RecordResultHandler)
				r.Delete("/{tournamentID}/pairings/{pairingID}", roundHandler.DeletePairingHandler)
			})
		})
	})
}
