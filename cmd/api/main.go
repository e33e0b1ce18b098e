package main

import (
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/lengolf/lengolf-backend-go/internal/config"
	appHTTP "github.com/lengolf/lengolf-backend-go/internal/handler/http"
	"github.com/lengolf/lengolf-backend-go/internal/pkg/cron"
	"github.com/lengolf/lengolf-backend-go/internal/pkg/database"
	"github.com/lengolf/lengolf-backend-go/internal/pkg/jwt"
	"github.com/lengolf/lengolf-backend-go/internal/pkg/storage"
	"github.com/lengolf/lengolf-backend-go/internal/repository/postgresql"
	authService "github.com/lengolf/lengolf-backend-go/internal/service/auth"
	bookingService "github.com/lengolf/lengolf-backend-go/internal/service/booking"
	inventoryService "github.com/lengolf/lengolf-backend-go/internal/service/inventory"
	invoiceService "github.com/lengolf/lengolf-backend-go/internal/service/invoice"
	payrollService "github.com/lengolf/lengolf-backend-go/internal/service/payroll"
	posService "github.com/lengolf/lengolf-backend-go/internal/service/pos"
	staffService "github.com/lengolf/lengolf-backend-go/internal/service/staff"
	timesheetService "github.com/lengolf/lengolf-backend-go/internal/service/timesheet"
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

	staffRepo := postgresql.NewStaffRepository(db)
	entryRepo := postgresql.NewTimeEntryRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)
	orderRepo := postgresql.NewOrderRepository(db)
	splitRepo := postgresql.NewSplitRepository(db)
	bookingRepo := postgresql.NewBookingRepository(db)
	availabilityChecker := postgresql.NewAvailabilityChecker(db)
	inventoryRepo := postgresql.NewInventoryRepository(db)
	invoiceRepo := postgresql.NewInvoiceRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	fileStorage, err := storage.NewLocalStorage(cfg.Storage.BasePath, cfg.Storage.BaseURL)
	if err != nil {
		log.Fatal("Failed to initialize local storage:", err)
	}

	authSvc := authService.NewAuthService(db, staffRepo, JWTService)
	staffSvc := staffService.NewStaffService(db, staffRepo)
	timesheetSvc := timesheetService.NewTimesheetService(db, entryRepo, staffRepo, cfg.Payroll)
	payrollSvc := payrollService.NewPayrollService(db, payrollRepo, entryRepo, staffRepo, cfg.Payroll)
	posSvc := posService.NewPOSService(db, orderRepo, splitRepo)
	bookingSvc := bookingService.NewBookingService(db, bookingRepo, availabilityChecker, slog.Default())
	inventorySvc := inventoryService.NewInventoryService(db, inventoryRepo, staffRepo)
	invoiceSvc := invoiceService.NewInvoiceService(db, invoiceRepo, fileStorage)

	authHandler := appHTTP.NewAuthHandler(authSvc)
	staffHandler := appHTTP.NewStaffHandler(staffSvc)
	timesheetHandler := appHTTP.NewTimesheetHandler(timesheetSvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc, timesheetSvc)
	posHandler := appHTTP.NewPOSHandler(posSvc)
	bookingHandler := appHTTP.NewBookingHandler(bookingSvc)
	inventoryHandler := appHTTP.NewInventoryHandler(inventorySvc)
	invoiceHandler := appHTTP.NewInvoiceHandler(invoiceSvc)

	maxSession := time.Duration(cfg.Payroll.MaxSessionHours.InexactFloat64() * float64(time.Hour))
	scheduler := cron.NewScheduler()
	timesheetJobs := cron.NewTimesheetJobs(entryRepo, maxSession)
	timesheetJobs.RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(
		JWTService,
		authHandler,
		staffHandler,
		timesheetHandler,
		payrollHandler,
		posHandler,
		bookingHandler,
		inventoryHandler,
		invoiceHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
		os.Exit(1)
	}
}
