package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"strconv"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mcalvora/leadflow/internal/infra/database"
	"github.com/mcalvora/leadflow/internal/infra/http/handlers"
	"github.com/mcalvora/leadflow/internal/infra/http/middleware"
	"github.com/mcalvora/leadflow/internal/infra/mail"
	"github.com/mcalvora/leadflow/internal/infra/queue"
	"github.com/mcalvora/leadflow/internal/infra/worker"
	"github.com/mcalvora/leadflow/internal/usecase"
)

func main() {
	godotenv.Load()

	db, err := database.NewDBConnection(os.Getenv("DATABASE_URL"))
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	rabbitMQ, err := queue.NewRabbitMQ(
		getenv("RABBITMQ_USER", "guest"),
		getenv("RABBITMQ_PASS", "guest"),
		getenv("RABBITMQ_HOST", "localhost"),
		getenv("RABBITMQ_PORT", "5672"),
	)
	if err != nil {
		log.Fatal(err)
	}
	defer rabbitMQ.Conn.Close()
	defer rabbitMQ.Ch.Close()

	// 1. Repositories
	leadRepo := database.NewLeadRepository(db)
	clientRepo := database.NewClientRepository(db)
	activityRepo := database.NewActivityRepository(db)

	// 2. Adapters
	producer := queue.NewProducer(rabbitMQ.Conn, rabbitMQ.Ch)
	mailPort, _ := strconv.Atoi(getenv("MAIL_PORT", "587"))
	mailSender := mail.NewEmailSender(
		os.Getenv("MAIL_HOST"), mailPort, os.Getenv("MAIL_USER"), os.Getenv("MAIL_PASS"),
		getenv("MAIL_FROM", "no-reply@leadflow.dev"),
		getenv("SALES_INBOX", "sales@leadflow.dev"),
	)

	// 3. Workers (queue consumer + follow-up reminders)
	notifWorker := queue.NewWorker(rabbitMQ.Ch, mailSender)
	go notifWorker.Start(queue.QueueName)

	followUp := worker.NewFollowUpWorker(leadRepo, producer)
	go followUp.Start(context.Background())

	// 4. UseCases
	createLeadUC := usecase.NewCreateLeadUseCase(leadRepo, activityRepo, producer)
	updateStatusUC := usecase.NewUpdateLeadStatusUseCase(leadRepo, activityRepo)
	deleteLeadUC := usecase.NewDeleteLeadUseCase(leadRepo, activityRepo)
	convertLeadUC := usecase.NewConvertLeadUseCase(leadRepo, clientRepo, activityRepo, producer)
	statsUC := usecase.NewComputeStatsUseCase(leadRepo, clientRepo)

	// 5. Handlers
	leadHandler := handlers.NewLeadHandler(createLeadUC, updateStatusUC, deleteLeadUC, convertLeadUC, leadRepo)
	clientHandler := handlers.NewClientHandler(clientRepo)
	activityHandler := handlers.NewActivityHandler(activityRepo)
	statsHandler := handlers.NewStatsHandler(statsUC)
	healthHandler := handlers.NewHealthHandler(db, rabbitMQ.Conn)

	// 6. Router
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"http://localhost:5173", "*"},
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
	}))

	r.Route("/api", func(r chi.Router) {
		r.Post("/leads", leadHandler.Create)
		r.Get("/leads", leadHandler.List)
		r.Get("/leads/{id}", leadHandler.Get)
		r.Patch("/leads/{id}/status", leadHandler.UpdateStatus)
		r.Delete("/leads/{id}", leadHandler.Delete)
		r.Post("/leads/{id}/convert", leadHandler.Convert)

		r.Get("/clients", clientHandler.List)
		r.Delete("/clients/{id}", clientHandler.Delete)

		r.Get("/activity", activityHandler.Recent)
		r.Get("/stats", statsHandler.Get)
	})

	r.Get("/healthz", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	port := ":" + getenv("PORT", "8080")
	log.Printf("🔥 leadflow API listening on %s", port)
	http.ListenAndServe(port, r)
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
