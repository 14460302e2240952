package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

// NewRouter assembles the full HTTP surface of the service.
func NewRouter(
	logger *zerolog.Logger,
	requestTimeout time.Duration,
	healthHandler *HealthHandler,
	accountHandler *AccountHandler,
	quizHandler *QuizHandler,
	registrationHandler *RegistrationHandler,
) chi.Router {
	r := chi.NewRouter()

	r.Use(RequestID)
	r.Use(middleware.RealIP)
	r.Use(RequestLogger(logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(requestTimeout))

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", healthHandler.Check)

		r.Route("/quizzes", func(r chi.Router) {
			r.Get("/", quizHandler.List)
			r.Post("/", quizHandler.Create)
			r.Get("/{id}", quizHandler.Get)
			r.Put("/{id}", quizHandler.Update)
			r.Delete("/{id}", quizHandler.Delete)
		})

		r.Route("/registrations", func(r chi.Router) {
			r.Get("/", registrationHandler.List)
			r.Post("/", registrationHandler.Create)
			r.Get("/quiz/{quizId}", registrationHandler.ListByQuiz)
		})

		r.Route("/accounts", func(r chi.Router) {
			r.Post("/check-email", accountHandler.CheckEmail)
			r.Post("/student", accountHandler.RegisterStudent)
			r.Post("/student/login", accountHandler.LoginStudent)
			r.Get("/student/{id}", accountHandler.GetStudent)
			r.Post("/admin", accountHandler.RegisterAdmin)
			r.Post("/admin/login", accountHandler.LoginAdmin)
			r.Post("/{kind}/{id}/password", accountHandler.ChangePassword)
		})

		r.Route("/admin", func(r chi.Router) {
			r.Get("/stats", quizHandler.Stats)
			r.Post("/seed", quizHandler.Seed)
		})
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, KindNotFound, "route not found")
	})

	return r
}
