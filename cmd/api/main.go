package main

import (
	"fmt"
	"net/http"

	"github.com/mohsinsultanriyad-crypto/Fastep-Work/internal/config"
	appHTTP "github.com/mohsinsultanriyad-crypto/Fastep-Work/internal/handler/http"
	"github.com/mohsinsultanriyad-crypto/Fastep-Work/internal/pkg/cron"
	"github.com/mohsinsultanriyad-crypto/Fastep-Work/internal/pkg/database"
	"github.com/mohsinsultanriyad-crypto/Fastep-Work/internal/pkg/jwt"
	"github.com/mohsinsultanriyad-crypto/Fastep-Work/internal/repository/postgresql"
	advanceService "github.com/mohsinsultanriyad-crypto/Fastep-Work/internal/service/advance"
	announcementService "github.com/mohsinsultanriyad-crypto/Fastep-Work/internal/service/announcement"
	authService "github.com/mohsinsultanriyad-crypto/Fastep-Work/internal/service/auth"
	leaveService "github.com/mohsinsultanriyad-crypto/Fastep-Work/internal/service/leave"
	payrollService "github.com/mohsinsultanriyad-crypto/Fastep-Work/internal/service/payroll"
	workService "github.com/mohsinsultanriyad-crypto/Fastep-Work/internal/service/work"
	workerService "github.com/mohsinsultanriyad-crypto/Fastep-Work/internal/service/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	workerRepo := postgresql.NewWorkerRepository(db)
	workRepo := postgresql.NewWorkRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)
	advanceRepo := postgresql.NewAdvanceRepository(db)
	announcementRepo := postgresql.NewAnnouncementRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	authSvc := authService.NewAuthService(workerRepo, jwtService)
	workerSvc := workerService.NewWorkerService(db, workerRepo, workRepo)
	workSvc := workService.NewWorkService(workRepo, workerRepo, cfg.Payroll)
	leaveSvc := leaveService.NewLeaveService(leaveRepo, workerRepo)
	advanceSvc := advanceService.NewAdvanceService(advanceRepo, workerRepo)
	announcementSvc := announcementService.NewAnnouncementService(announcementRepo)
	payrollSvc := payrollService.NewPayrollService(workerRepo, workRepo, leaveRepo, advanceRepo, cfg.Payroll)

	authHandler := appHTTP.NewAuthHandler(authSvc, workerSvc)
	workHandler := appHTTP.NewWorkHandler(workSvc)
	leaveHandler := appHTTP.NewLeaveHandler(leaveSvc)
	advanceHandler := appHTTP.NewAdvanceHandler(advanceSvc)
	workerHandler := appHTTP.NewWorkerHandler(workerSvc)
	announcementHandler := appHTTP.NewAnnouncementHandler(announcementSvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)

	router := appHTTP.NewRouter(
		jwtService,
		authHandler,
		workHandler,
		leaveHandler,
		advanceHandler,
		workerHandler,
		announcementHandler,
		payrollHandler,
	)

	scheduler := cron.NewScheduler()
	cron.NewWorkJobs(workRepo, cfg.Payroll).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
