package main

import (
	"context"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rabbitmq/amqp091-go"

	"github.com/erino/leadcrm/internal/auth"
	"github.com/erino/leadcrm/internal/config"
	"github.com/erino/leadcrm/internal/infra/database"
	"github.com/erino/leadcrm/internal/infra/http/handlers"
	"github.com/erino/leadcrm/internal/infra/http/middleware"
	"github.com/erino/leadcrm/internal/infra/mail"
	"github.com/erino/leadcrm/internal/infra/queue"
	"github.com/erino/leadcrm/internal/usecase"
)

func main() {
	cfg := config.Load()

	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET must be set")
	}

	db, err := database.NewDBConnection(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	if err := database.RunMigrations(context.Background(), db); err != nil {
		log.Fatal(err)
	}

	// Repositories
	userRepo := database.NewUserRepository(db)
	leadRepo := database.NewLeadRepository(db)

	// Token codec shared by the login usecase and the auth gate.
	codec := auth.NewCodec(cfg.JWTSecret, cfg.TokenTTL)

	// Lead events are optional: without a broker the API runs standalone.
	var producer usecase.QueueProducerInterface
	var rabbit *queue.RabbitMQ
	if cfg.AMQPURL != "" {
		rabbit, err = queue.NewRabbitMQ(cfg.AMQPURL)
		if err != nil {
			log.Fatal(err)
		}
		defer rabbit.Conn.Close()
		defer rabbit.Ch.Close()

		producer = queue.NewProducer(rabbit.Ch)

		if cfg.MailHost != "" && cfg.SalesInbox != "" {
			sender := mail.NewEmailSender(cfg.MailHost, cfg.MailPort, cfg.MailUser, cfg.MailPass, cfg.SalesInbox)
			worker := queue.NewWorker(rabbit.Ch, sender)
			go worker.Start(queue.QueueName)
		}
	}

	// UseCases
	registerUC := usecase.NewRegisterUserUseCase(userRepo)
	loginUC := usecase.NewLoginUserUseCase(userRepo, codec)
	createLeadUC := usecase.NewCreateLeadUseCase(leadRepo, producer)
	listLeadsUC := usecase.NewListLeadsUseCase(leadRepo)
	updateLeadUC := usecase.NewUpdateLeadUseCase(leadRepo)

	// Handlers
	authHandler := handlers.NewAuthHandler(registerUC, loginUC, userRepo, cfg.Env == "production")
	leadHandler := handlers.NewLeadHandler(createLeadUC, listLeadsUC, updateLeadUC, leadRepo)

	var rabbitConn *amqp091.Connection
	if rabbit != nil {
		rabbitConn = rabbit.Conn
	}
	healthHandler := handlers.NewHealthHandler(db, rabbitConn)

	// Router
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.FrontendURL},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
	}))

	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("Lead Management API is running..."))
	})
	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/auth", func(r chi.Router) {
		r.Post("/register", authHandler.Register)
		r.Post("/login", authHandler.Login)
		r.Post("/logout", authHandler.Logout)

		r.With(middleware.Protect(codec)).Get("/me", authHandler.Me)
	})

	r.Route("/api/leads", func(r chi.Router) {
		r.Use(middleware.Protect(codec))

		r.Get("/", leadHandler.List)
		r.Post("/", leadHandler.Create)
		r.Get("/{id}", leadHandler.Get)
		r.Put("/{id}", leadHandler.Update)
		r.Delete("/{id}", leadHandler.Delete)
	})

	addr := ":" + cfg.Port
	log.Printf("server listening on %s", addr)
	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatal(err)
	}
}
