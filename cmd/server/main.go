package main

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"

	"Inkwell/internal/api/middleware"
	"Inkwell/internal/api/routes"
	"Inkwell/internal/config"
	"Inkwell/internal/core/comments"
	"Inkwell/internal/core/content"
	"Inkwell/internal/core/counters"
	"Inkwell/internal/core/engagement"
	"Inkwell/internal/db/migrations"
	postgresRepo "Inkwell/internal/db/postgres"
	"Inkwell/internal/realtime"
)

func main() {
	cfg, err := config.Load(os.Getenv("CONFIG_FILE"))
	if err != nil {
		log.Fatal("Failed to load configuration: ", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	db, err := sql.Open("postgres", cfg.Database.URL)
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: ", err)
	}

	log.Println("Connected to database")

	// Run migrations from the embedded filesystem
	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		log.Fatal("Failed to set goose dialect: ", err)
	}
	if err := goose.Up(db, "."); err != nil {
		log.Fatal("Failed to run migrations: ", err)
	}

	log.Println("Migrations completed successfully")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Fan-out bus and session registry
	hub := realtime.NewHub(logger)
	defer hub.Close()

	// Repositories: the content repo doubles as the counter store and the
	// existence checker the ledger and thread store validate against
	contentRepo := postgresRepo.NewContentRepository(db)
	engagementRepo := postgresRepo.NewEngagementRepository(db)
	commentRepo := postgresRepo.NewCommentRepository(db)

	reconciler := counters.NewReconciler(contentRepo, logger)
	if cfg.Reconcile.Interval > 0 {
		go reconciler.RunSweep(ctx, cfg.Reconcile.Interval)
	}

	engagementService := engagement.NewEngagementService(engagementRepo, contentRepo, reconciler, hub, logger)
	commentService := comments.NewCommentService(commentRepo, contentRepo, reconciler, hub, logger)
	contentService := content.NewContentService(contentRepo, commentRepo, engagementService, hub, logger)

	authMiddleware := middleware.NewAuthMiddleware([]byte(cfg.Auth.JWTSecret))

	r := chi.NewRouter()
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)

	rateLimiter := middleware.NewRateLimiter(cfg.RateLimit.Requests, cfg.RateLimit.Window)
	r.Use(rateLimiter.Middleware)

	routes.RegisterContentRoutes(r, contentService, authMiddleware)
	routes.RegisterEngagementRoutes(r, engagementService, authMiddleware)
	routes.RegisterCommentRoutes(r, commentService, authMiddleware)

	// Browsers can't set headers on websocket dials; the subscribe endpoint
	// accepts the identity token as a query parameter instead
	wsHandler := realtime.NewHandler(hub, logger, func(req *http.Request) string {
		return authMiddleware.ActorFromToken(req.URL.Query().Get("token"))
	})
	routes.RegisterRealtimeRoutes(r, wsHandler)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	server := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("Server listening on %s", cfg.Server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server failed: ", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Graceful shutdown failed: %v", err)
	}
	hub.Close()
}
