package http

import (
	"log/slog"
	"os"

	"github.com/crewline/staffing-backend-go/internal/handler/http/middleware"
	"github.com/crewline/staffing-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

func NewRouter(
	JWTService jwt.Service,
	eventHandler EventHandler,
	payrollHandler PayrollHandler,
	timesheetHandler TimesheetHandler,
	allowedOrigins []string,
	env string,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "staffing-payroll"),
		slog.String("version", "v1.0.0"),
		slog.String("env", env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
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

	r.Route("/api/v1", func(r chi.Router) {
		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService.JWTAuth()))

			r.Get("/events/{eventID}", eventHandler.GetEventDetail)

			r.Route("/timesheets", func(r chi.Router) {
				r.Get("/events/{eventID}", timesheetHandler.GetEventTimesheet)
				r.Get("/events/{eventID}/workers/{userID}", timesheetHandler.GetWorkerSummary)
				r.Get("/workers/{userID}/prior-week-hours", timesheetHandler.GetPriorWeekHours)
			})

			r.Route("/payroll", func(r chi.Router) {
				r.Post("/events/{eventID}/compute", payrollHandler.ComputeEventPayroll)
				r.Post("/periods/compute", payrollHandler.ComputePeriodSummary)

				r.Route("/rates", func(r chi.Router) {
					r.Get("/", payrollHandler.ListStateRates)
					r.Get("/{stateCode}", payrollHandler.GetStateRate)

					// Admin only
					r.Group(func(r chi.Router) {
						r.Use(middleware.AdminOnly)
						r.Put("/{stateCode}", payrollHandler.UpsertStateRate)
						r.Delete("/{stateCode}", payrollHandler.DeleteStateRate)
					})
				})
			})
		})
	})
	return r
}
