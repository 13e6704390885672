// Command bookshop-go runs the online bookstore backend: public catalog
// lookup and registration/login, plus session-protected review mutations.
// All state is memory-resident and lost on restart.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"

	"github.com/user/bookshop-go/apperror"
	"github.com/user/bookshop-go/auth"
	"github.com/user/bookshop-go/catalog"
	"github.com/user/bookshop-go/config"
	"github.com/user/bookshop-go/reviews"
	"github.com/user/bookshop-go/users"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or error loading it: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// The stores own all mutable state: the append-only user registry and
	// the seeded book catalog with its review maps.
	registry := users.NewRegistry()
	store := catalog.NewStore()

	authService := auth.NewService(registry, *cfg.Auth)
	authHandlers := auth.NewHandlers(authService)
	userHandlers := users.NewHandlers(registry)
	catalogHandlers := catalog.NewHandlers(store)
	reviewHandler := reviews.NewHandler(reviews.NewService(store))

	r := chi.NewRouter()

	// Global middleware. Chi requires all middleware to be registered
	// before any routes.
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Panic recovery that keeps the JSON error shape.
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			defer func() {
				if rvr := recover(); rvr != nil {
					log.Printf("Panic: %+v", rvr)
					writeError(ww, apperror.NewInternalError("internal server error", nil))
				}
			}()
			next.ServeHTTP(ww, r)
		})
	})

	// Public routes: registration, login, and the read-only catalog.
	r.Post("/register", userHandlers.HandleRegister())
	r.Post("/login", authHandlers.HandleLogin())
	catalogHandlers.RegisterRoutes(r)

	// Protected routes: review mutations require a resolved session identity.
	r.Route("/auth", func(r chi.Router) {
		r.Use(authService.Middleware())
		reviewHandler.RegisterRoutes(r)
	})

	addr := fmt.Sprintf(":%s", cfg.Server.Port)

	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Server shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server shutdown failed: %v", err)
	}
	log.Println("Server stopped gracefully")
}

// writeError is a local helper for the panic recovery middleware.
func writeError(w http.ResponseWriter, appErr *apperror.AppError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(appErr.StatusCode())
	if err := json.NewEncoder(w).Encode(appErr.ToResponse()); err != nil {
		http.Error(w, `{"message":"failed to encode error response"}`, http.StatusInternalServerError)
	}
}
