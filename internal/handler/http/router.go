package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/lengolf/lengolf-backend-go/internal/handler/http/middleware"
	"github.com/lengolf/lengolf-backend-go/internal/pkg/jwt"
)

func NewRouter(
	jwtService jwt.Service,
	authHandler AuthHandler,
	staffHandler StaffHandler,
	timesheetHandler TimesheetHandler,
	payrollHandler PayrollHandler,
	posHandler POSHandler,
	bookingHandler BookingHandler,
	inventoryHandler InventoryHandler,
	invoiceHandler InvoiceHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "lengolf-backend"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
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
			r.Post("/pin-login", authHandler.LoginWithPIN)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/timesheet", func(r chi.Router) {
				r.Post("/clock-in", timesheetHandler.ClockIn)
				r.Post("/clock-out", timesheetHandler.ClockOut)
			})

			r.Route("/pos", func(r chi.Router) {
				r.Route("/orders", func(r chi.Router) {
					r.Post("/", posHandler.CreateOrder)
					r.Get("/{id}", posHandler.GetOrder)
					r.Put("/{id}/items/{itemId}", posHandler.UpdateOrderItem)
					r.Post("/{id}/splits", posHandler.StartSplit)
				})
				r.Route("/splits", func(r chi.Router) {
					r.Put("/{id}/configure", posHandler.ConfigureSplit)
					r.Put("/{id}/payment-methods", posHandler.AllocatePayments)
					r.Delete("/{id}", posHandler.CancelSplit)
				})
				r.Route("/payments", func(r chi.Router) {
					r.Post("/process", posHandler.ProcessPayment)
				})
			})

			r.Route("/bookings", func(r chi.Router) {
				r.Post("/check-slot-for-all-bays", bookingHandler.CheckSlotForAllBays)
				r.Post("/", bookingHandler.CreateBooking)
				r.Get("/", bookingHandler.ListBookingsByDate)
				r.Get("/{id}", bookingHandler.GetBooking)
				r.Delete("/{id}", bookingHandler.CancelBooking)
			})

			r.Route("/inventory", func(r chi.Router) {
				r.Get("/products", inventoryHandler.ListProducts)
				r.Post("/submissions", inventoryHandler.SubmitStock)
				r.Get("/submissions", inventoryHandler.ListSubmissions)
				r.Get("/submissions/{id}", inventoryHandler.GetSubmission)
			})

			// Admin only
			r.Route("/admin", func(r chi.Router) {
				r.Use(middleware.AdminOnly)

				r.Route("/staff", func(r chi.Router) {
					r.Post("/", staffHandler.Create)
					r.Get("/", staffHandler.List)
					r.Get("/{id}", staffHandler.Get)
					r.Put("/{id}", staffHandler.Update)
					r.Delete("/{id}", staffHandler.Deactivate)
					r.Put("/{staffId}/compensation", payrollHandler.UpsertCompensation)
				})

				r.Route("/payroll", func(r chi.Router) {
					r.Get("/compensation", payrollHandler.ListCompensation)

					r.Route("/public-holidays", func(r chi.Router) {
						r.Get("/", payrollHandler.ListHolidays)
						r.Post("/", payrollHandler.CreateHoliday)
						r.Put("/{id}", payrollHandler.UpdateHoliday)
						r.Delete("/{id}", payrollHandler.DeleteHoliday)
					})

					r.Put("/time-entry/{id}", payrollHandler.UpdateTimeEntry)

					r.Route("/{month}", func(r chi.Router) {
						r.Get("/calculations", payrollHandler.GetCalculations)
						r.Get("/review-entries", payrollHandler.ReviewEntries)
						r.Get("/export", payrollHandler.ExportCSV)
						r.Post("/service-charge", payrollHandler.SetServiceCharge)
						r.Get("/service-charge", payrollHandler.GetServiceCharge)
					})
				})

				r.Route("/inventory", func(r chi.Router) {
					r.Get("/low-stock", inventoryHandler.LowStockReport)
				})

				r.Route("/invoices", func(r chi.Router) {
					r.Get("/settings", invoiceHandler.GetSettings)
					r.Put("/settings", invoiceHandler.UpdateSettings)
					r.Post("/suppliers", invoiceHandler.CreateSupplier)
					r.Get("/suppliers", invoiceHandler.ListSuppliers)
					r.Post("/generate", invoiceHandler.Generate)
					r.Get("/", invoiceHandler.ListGenerated)
					r.Get("/{fileName}", invoiceHandler.DownloadPDF)
				})
			})
		})
	})

	return r
}
