package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	firebase "firebase.google.com/go/v4"
	firebaseauth "firebase.google.com/go/v4/auth"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"google.golang.org/api/option"

	"github.com/jredh-dev/whereisit/config"
	"github.com/jredh-dev/whereisit/internal/database"
	"github.com/jredh-dev/whereisit/internal/handlers"
	"github.com/jredh-dev/whereisit/internal/token"
)

var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	flag.Parse()

	if *showVersion {
		fmt.Printf("whereisit-server %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", buildDate)
		os.Exit(0)
	}

	// Load .env if present; real environments set variables directly.
	_ = godotenv.Load()

	cfg := config.Load()

	if cfg.JWT.SigningKey == "" {
		log.Println("WARNING: JWT_SECRET is empty — using insecure default (set JWT_SECRET in production)")
		cfg.JWT.SigningKey = "insecure-dev-secret-change-me"
	}

	db, err := database.Open(cfg.DB.Path)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	authClient, err := newFirebaseAuthClient(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase: %v", err)
	}

	tokens := token.New(cfg.JWT.SigningKey, cfg.JWT.Issuer, authClient)
	h := handlers.New(db, tokens, cfg)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(handlers.CORS(cfg.CORS.Origin))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Public routes.
	r.Get("/", h.Home)
	r.Post("/jwt", h.IssueSession)
	r.Post("/logout", h.EndSession)
	r.Get("/items", h.ListItemsPublic)

	// Protected routes (credential required).
	r.Group(func(r chi.Router) {
		r.Use(handlers.AuthMiddleware(tokens))

		r.Get("/allItems", h.ListAllItems)
		r.Get("/items/{id}", h.GetItem)
		r.Post("/addItems", h.CreateItem)
		r.Put("/updateItems/{id}", h.UpdateItem)
		r.Patch("/items/{id}", h.PatchItemStatus)
		r.Delete("/items/{id}", h.DeleteItem)

		r.Get("/recoveredItems", h.ListRecoveriesByEmail)
		r.Post("/recoveredItems", h.CreateRecovery)
	})

	addr := ":" + cfg.Server.Port
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		sigint := make(chan os.Signal, 1)
		signal.Notify(sigint, os.Interrupt, syscall.SIGTERM)
		<-sigint

		log.Println("Shutting down server...")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			log.Printf("Server shutdown error: %v", err)
		}
	}()

	log.Printf("whereisit server starting on %s (env: %s)", addr, cfg.Server.Env)
	if err := srv.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatalf("Server error: %v", err)
	}
	log.Println("Server stopped")
}

// newFirebaseAuthClient returns a Firebase auth client when a project is
// configured, nil otherwise. With no client, session issuance signs the
// supplied claims without upstream verification.
func newFirebaseAuthClient(cfg *config.Config) (*firebaseauth.Client, error) {
	if cfg.Firebase.ProjectID == "" {
		return nil, nil
	}

	var opts []option.ClientOption
	if cfg.Firebase.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.Firebase.CredentialsPath))
	}

	app, err := firebase.NewApp(context.Background(), &firebase.Config{
		ProjectID: cfg.Firebase.ProjectID,
	}, opts...)
	if err != nil {
		return nil, fmt.Errorf("new firebase app: %w", err)
	}

	client, err := app.Auth(context.Background())
	if err != nil {
		return nil, fmt.Errorf("firebase auth client: %w", err)
	}

	log.Printf("Firebase ID-token verification enabled (project %s)", cfg.Firebase.ProjectID)
	return client, nil
}
