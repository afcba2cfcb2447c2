package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/xavierca1/lead-intake/internal/infra/database"
	"github.com/xavierca1/lead-intake/internal/infra/http/handlers"
	appmw "github.com/xavierca1/lead-intake/internal/infra/http/middleware"
	"github.com/xavierca1/lead-intake/internal/infra/mail"
	"github.com/xavierca1/lead-intake/internal/infra/queue"
	"github.com/xavierca1/lead-intake/internal/usecase"
)

func main() {
	godotenv.Load()

	db, err := database.NewDBConnection(os.Getenv("DATABASE_URL"))
	if err != nil {
		log.Fatalf("Failed to connect to the database: %v", err)
	}
	defer db.Close()

	// 1. Repository + schema bootstrap (fatal: no table, no service)
	leadRepo := database.NewLeadRepository(db)
	if err := leadRepo.CreateTable(context.Background()); err != nil {
		log.Fatalf("Failed to start system: %v", err)
	}
	log.Println("Database initialized.")

	// 2. Optional integrations
	var events usecase.LeadEventPublisher
	if amqpURL := os.Getenv("AMQP_URL"); amqpURL != "" {
		rabbitMQ, err := queue.NewRabbitMQ(amqpURL)
		if err != nil {
			log.Printf("RabbitMQ unavailable, lead events disabled: %v", err)
		} else {
			defer rabbitMQ.Close()
			events = queue.NewProducer(rabbitMQ.Ch)
		}
	}

	var notifier usecase.ImportNotifier
	if mailHost := os.Getenv("MAIL_HOST"); mailHost != "" {
		mailPort, _ := strconv.Atoi(getEnv("MAIL_PORT", "587"))
		notifier = mail.NewEmailSender(
			mailHost, mailPort,
			os.Getenv("MAIL_USER"), os.Getenv("MAIL_PASS"),
			getEnv("MAIL_FROM", "no-reply@lead-intake.local"),
			os.Getenv("MAIL_TO"),
		)
	}

	// 3. Upload spool dir
	uploadDir := getEnv("UPLOAD_DIR", "./temp_uploads")
	if err := os.MkdirAll(uploadDir, 0o755); err != nil {
		log.Fatalf("Failed to create upload dir %s: %v", uploadDir, err)
	}

	// 4. UseCases
	createLeadUC := usecase.NewCreateLeadUseCase(leadRepo, events)
	bulkImportUC := usecase.NewBulkImportUseCase(leadRepo, notifier)

	// 5. Handlers
	leadHandler := handlers.NewLeadHandler(createLeadUC, bulkImportUC, uploadDir)
	healthHandler := handlers.NewHealthHandler(db)

	// 6. Router
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(appmw.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
	}))

	r.Post("/post-entry", leadHandler.HandlePostEntry)
	r.Post("/bulk-upload", leadHandler.HandleBulkUpload)
	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())
	r.Handle("/*", http.FileServer(http.Dir(getEnv("STATIC_DIR", "./public"))))

	port := getEnv("PORT", "3000")
	log.Printf("Server is running non-stop on http://localhost:%s", port)
	if err := http.ListenAndServe(":"+port, r); err != nil {
		log.Fatal(err)
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
