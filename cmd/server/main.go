package main

import (
	"database/sql"
	"log"
	"net/http"
	"os"
	"strconv"

	"villastay/internal/api"
	"villastay/internal/auth"
	"villastay/internal/repository"
	"villastay/internal/service"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/robfig/cron/v3"
)

func main() {
	godotenv.Load()
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL not set")
	}
	db, err := sql.Open("postgres", dbURL)
	if err != nil {
		log.Fatalf("Failed to open DB: %v", err)
	}
	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}

	villaRepo := repository.NewVillaRepository(db)
	adminRepo := repository.NewAdminRepository(db)
	adminAuthRepo := repository.NewAdminAuthRepository(db)
	jobRepo := repository.NewJobRepository(db)

	availabilitySvc := service.NewAvailabilityService(villaRepo)
	quoteSvc := service.NewQuoteService(villaRepo, gstRateFromEnv())
	adminAuthSvc := service.NewAdminAuthService(adminAuthRepo)
	jobSvc := service.NewJobService(jobRepo, service.NewNotifyService())

	villaHandler := api.NewVillaHandler(availabilitySvc, quoteSvc, villaRepo)
	adminHandler := api.NewAdminHandler(adminRepo, villaRepo)
	adminAuthHandler := api.NewAdminAuthHandler(adminAuthSvc)

	r := mux.NewRouter()

	// Public endpoints
	r.HandleFunc("/health", villaHandler.Health).Methods("GET")
	villas := r.PathPrefix("/v1/villas").Subrouter()
	villas.HandleFunc("/availability", villaHandler.SearchAvailability).Methods("GET")
	villas.HandleFunc("/{villa_id}/quote", villaHandler.GetQuote).Methods("GET")

	// Admin endpoints (protected)
	r.HandleFunc("/admin/login", adminAuthHandler.Login).Methods("POST")
	admin := r.PathPrefix("/admin").Subrouter()
	admin.Use(auth.AdminAuthMiddleware)
	admin.HandleFunc("/villas", adminHandler.ListVillas).Methods("GET")
	admin.HandleFunc("/villas/{villa_id}/calendar", adminHandler.GetCalendar).Methods("GET")
	admin.HandleFunc("/admins", adminAuthHandler.CreateAdmin).Methods("POST")

	// Nightly calendar retention
	c := cron.New()
	if _, err := c.AddFunc("0 3 * * *", func() {
		if err := jobSvc.PruneStaleCalendar(); err != nil {
			log.Printf("Calendar prune job failed: %v", err)
		}
	}); err != nil {
		log.Fatalf("Failed to schedule calendar prune job: %v", err)
	}
	c.Start()

	handler := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{"GET", "POST", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Authorization", "Content-Type"}),
	)(handlers.LoggingHandler(os.Stdout, r))

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Server running on port %s", port)
	log.Fatal(http.ListenAndServe(":"+port, handler))
}

func gstRateFromEnv() float64 {
	raw := os.Getenv("GST_RATE")
	if raw == "" {
		return service.DefaultGSTRate
	}
	rate, err := strconv.ParseFloat(raw, 64)
	if err != nil || rate <= 0 {
		log.Printf("Invalid GST_RATE %q, using default %.2f", raw, service.DefaultGSTRate)
		return service.DefaultGSTRate
	}
	return rate
}
