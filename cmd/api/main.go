package main

import (
	"fmt"
	"net/http"

	"github.com/crewline/staffing-backend-go/internal/config"
	appHTTP "github.com/crewline/staffing-backend-go/internal/handler/http"
	"github.com/crewline/staffing-backend-go/internal/pkg/database"
	"github.com/crewline/staffing-backend-go/internal/pkg/jwt"
	"github.com/crewline/staffing-backend-go/internal/repository/postgresql"
	eventService "github.com/crewline/staffing-backend-go/internal/service/event"
	payrollService "github.com/crewline/staffing-backend-go/internal/service/payroll"
	timesheetService "github.com/crewline/staffing-backend-go/internal/service/timesheet"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	timeEntryRepo := postgresql.NewTimeEntryRepository(db)
	eventRepo := postgresql.NewEventRepository(db)
	rateRepo := postgresql.NewRateRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret)

	timesheetSvc := timesheetService.NewTimesheetService(db, timeEntryRepo)
	eventSvc := eventService.NewEventService(db, eventRepo)
	payrollSvc := payrollService.NewPayrollService(db, rateRepo, eventRepo, timesheetSvc)

	eventHandler := appHTTP.NewEventHandler(eventSvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)
	timesheetHandler := appHTTP.NewTimesheetHandler(timesheetSvc)

	router := appHTTP.NewRouter(
		JWTService,
		eventHandler,
		payrollHandler,
		timesheetHandler,
		cfg.App.AllowedOrigins,
		cfg.App.Env,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
