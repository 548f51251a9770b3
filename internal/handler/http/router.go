package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/mohsinsultanriyad-crypto/Fastep-Work/internal/handler/http/middleware"
	"github.com/mohsinsultanriyad-crypto/Fastep-Work/internal/pkg/jwt"
)

func NewRouter(
	jwtService jwt.Service,
	authHandler AuthHandler,
	workHandler WorkHandler,
	leaveHandler LeaveHandler,
	advanceHandler AdvanceHandler,
	workerHandler WorkerHandler,
	announcementHandler AnnouncementHandler,
	payrollHandler PayrollHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "fastep-work"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.Refresh)

			// Registration is an admin action
			r.Group(func(r chi.Router) {
				r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
				r.Use(middleware.AuthRequired(jwtService.JWTAuth()))
				r.Use(middleware.AdminOnly)
				r.Post("/register", authHandler.Register)
			})
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/work", func(r chi.Router) {
				r.Post("/submit", workHandler.Submit)
				r.Get("/status/{workerId}/{date}", workHandler.Status)
				r.Get("/list-by-user/{userId}", workHandler.ListByUser)

				r.Post("/start", workHandler.Start)
				r.Post("/end", workHandler.End)
				r.Post("/request-ot", workHandler.RequestOT)
				r.Post("/end-ot", workHandler.EndOT)
			})

			r.Route("/admin", func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Get("/pending", workHandler.ListPending)
				r.Post("/approve/{id}", workHandler.Approve)
				r.Post("/ot/{id}/decide", workHandler.DecideOT)
				r.Delete("/clear-all", workHandler.ClearAll)
			})

			r.Route("/leaves", func(r chi.Router) {
				r.Post("/apply", leaveHandler.Apply)
				r.Get("/list-by-user/{userId}", leaveHandler.ListByUser)

				r.Route("/admin", func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/pending", leaveHandler.ListPending)
					r.Patch("/{id}/status", leaveHandler.Decide)
					r.Delete("/clear-all", leaveHandler.ClearAll)
				})
			})

			r.Route("/advances", func(r chi.Router) {
				r.Post("/request", advanceHandler.Request)
				r.Get("/list-by-user/{userId}", advanceHandler.ListByUser)

				r.Route("/admin", func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/pending", advanceHandler.ListPending)
					r.Get("/due", advanceHandler.ListDue)
					r.Patch("/{id}/status", advanceHandler.Decide)
					r.Delete("/clear-all", advanceHandler.ClearAll)
				})
			})

			r.Route("/workers", func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Get("/", workerHandler.List)
				r.Post("/", workerHandler.Create)
				r.Get("/expiring-documents", workerHandler.ListExpiringDocuments)
				r.Get("/{id}", workerHandler.Get)
				r.Patch("/{id}", workerHandler.Update)
				r.Delete("/{id}", workerHandler.Deactivate)
			})

			r.Route("/announcements", func(r chi.Router) {
				r.Get("/", announcementHandler.List)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", announcementHandler.Create)
				})
			})

			r.Route("/payroll", func(r chi.Router) {
				r.Get("/my", payrollHandler.My)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/{workerId}", payrollHandler.ForWorker)
				})
			})
		})
	})

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	return r
}
