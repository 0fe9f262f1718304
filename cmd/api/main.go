// cmd/api/main.go
// Main entry point for the application
// This file bootstraps all components and starts the server

package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/aviato-app/aviato-backend/internal/auth"
	"github.com/aviato-app/aviato-backend/internal/chat"
	kvstore "github.com/aviato-app/aviato-backend/internal/common/store"
	"github.com/aviato-app/aviato-backend/internal/config"
	"github.com/aviato-app/aviato-backend/internal/matching"
	"github.com/aviato-app/aviato-backend/internal/reputation"
	"github.com/aviato-app/aviato-backend/internal/session"
	"github.com/aviato-app/aviato-backend/internal/users"
)

var startTime = time.Now()

func main() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	log.Println("========================================")
	log.Println("🚀 Starting Aviato Dating App API")
	log.Println("========================================")

	// 1. Load environment variables
	log.Println("📁 Step 1: Loading .env file...")
	if err := godotenv.Load(); err != nil {
		log.Printf("⚠️  Warning: No .env file found (%v), using environment variables", err)
	} else {
		log.Println("✅ .env file loaded successfully")
	}

	// 2. Load configuration
	log.Println("\n📋 Step 2: Loading configuration...")
	cfg := config.Load()
	log.Println("✅ Configuration loaded")

	// 3. Validate configuration
	log.Println("\n✔️  Step 3: Validating configuration...")
	if err := cfg.Validate(); err != nil {
		log.Fatal("❌ Configuration validation failed:", err)
	}
	log.Println("✅ Configuration is valid")

	// 4. Connect the key-value store
	log.Println("\n📮 Step 4: Connecting key-value store...")
	var kv kvstore.KVStore

	if cfg.RedisURL != "" {
		redisStore, err := kvstore.NewRedisStoreFromURL(cfg.RedisURL)
		if err != nil {
			log.Printf("⚠️  Redis unavailable (%v), falling back to in-memory store", err)
			kv = kvstore.NewMemoryStore()
		} else {
			defer redisStore.Close()
			kv = redisStore
			log.Println("✅ Connected to Redis successfully")
		}
	} else {
		kv = kvstore.NewMemoryStore()
		log.Println("⚠️  Redis URL not configured, using in-memory store")
	}

	// 5. Initialize Users module
	log.Println("\n👤 Step 5: Initializing Users module...")

	userRepo := users.NewRepository(kv)

	var uploadService users.UploadService
	if cfg.UseS3 {
		s3Upload, err := users.NewS3UploadService(cfg.S3Bucket, cfg.S3Region)
		if err != nil {
			log.Printf("⚠️  Failed to init S3 uploads, using local: %v", err)
			uploadService = users.NewLocalUploadService(cfg.LocalUploadDir, cfg.BaseURL+"/uploads")
		} else {
			uploadService = s3Upload
			log.Println("   ✅ Using S3 for profile uploads")
		}
	} else {
		uploadService = users.NewLocalUploadService(cfg.LocalUploadDir, cfg.BaseURL+"/uploads")
		log.Println("   ✅ Using local storage for profile uploads")
	}

	userService := users.NewService(userRepo, uploadService)
	userHandler := users.NewHandler(userService)
	log.Println("✅ Users module initialized")

	// 6. Initialize Session module
	log.Println("\n🗂️  Step 6: Initializing Session module...")
	sessionManager := session.NewManager(kv)
	sessionHandler := session.NewHandler(sessionManager)
	log.Println("✅ Session module initialized")

	// 7. Initialize Reputation module
	log.Println("\n⭐ Step 7: Initializing Reputation module...")
	reputationService := reputation.NewService(userRepo)
	reputationHandler := reputation.NewHandler(reputationService)
	log.Println("✅ Reputation module initialized")

	// 8. Initialize Matching module
	log.Println("\n💘 Step 8: Initializing Matching module...")
	matchingService := matching.NewService(userRepo, cfg.MaxSelections)
	matchingHandler := matching.NewHandler(matchingService)
	log.Println("✅ Matching module initialized")

	// 9. Initialize Chat module
	log.Println("\n💬 Step 9: Initializing Chat module...")

	chatStore := chat.NewStore(kv, cfg.ResponseWindow)

	chatHub := chat.NewHub()
	go chatHub.Run()
	log.Println("   ✅ WebSocket hub started")

	chatWatcher := chat.NewWatcher(chatStore, chatHub, cfg.TimerPollInterval)
	log.Println("   ✅ Response window watcher ready")

	chatService := chat.NewService(chatStore, userService, reputationService, chatHub, chat.AutoReplyConfig{
		UserID: cfg.AutoReplyUserID,
		Text:   cfg.AutoReplyText,
		Delay:  cfg.AutoReplyDelay,
	})
	chatHandler := chat.NewHandler(chatService, chatHub, chatWatcher)
	log.Println("✅ Chat module initialized")

	// 10. Initialize Auth module
	log.Println("\n🔐 Step 10: Initializing authentication...")
	authService := auth.NewService(userRepo, chatService, sessionManager, cfg)
	authHandler := auth.NewHandler(authService)
	authMiddleware := auth.NewMiddleware(authService)
	log.Println("✅ Authentication initialized")

	// 11. Setup routes
	log.Println("\n🛣️  Step 11: Setting up routes...")
	router := mux.NewRouter()

	// Static files for uploads
	if !cfg.UseS3 {
		router.PathPrefix("/uploads/").Handler(
			http.StripPrefix("/uploads/",
				http.FileServer(http.Dir(cfg.LocalUploadDir))))
		log.Println("   ✅ Static file server configured")
	}

	// Health check and metrics
	router.HandleFunc("/health", healthCheck).Methods("GET")
	router.HandleFunc("/api", apiInfo).Methods("GET")
	router.Handle("/metrics", promhttp.Handler()).Methods("GET")

	auth.RegisterRoutes(router, authHandler, authMiddleware.Authenticate)
	log.Println("   ✅ Auth routes registered")

	session.RegisterRoutes(router, sessionHandler, authMiddleware.Authenticate)
	log.Println("   ✅ Session routes registered")

	reputation.RegisterRoutes(router, reputationHandler, authMiddleware.Authenticate)
	log.Println("   ✅ Reputation routes registered")

	matching.RegisterRoutes(router, matchingHandler, authMiddleware.Authenticate)
	log.Println("   ✅ Matching routes registered")

	chat.RegisterRoutes(router, chatHandler, authMiddleware.Authenticate)
	log.Println("   ✅ Chat routes registered")

	// Users and profile routes live on a chi router mounted under mux.
	// Registered last so the more specific mux routes above win.
	userRouter := chi.NewRouter()
	users.RegisterRoutes(userRouter, userHandler, authMiddleware.Authenticate)
	router.PathPrefix("/api/v1/users").Handler(userRouter)
	router.PathPrefix("/api/v1/profile").Handler(userRouter)
	log.Println("   ✅ User routes registered")

	router.Use(loggingMiddleware)
	router.Use(corsMiddleware)

	// 12. Create and start HTTP server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Println("\n========================================")
		log.Printf("🚀 Server starting on http://localhost%s", srv.Addr)
		log.Printf("🌍 Environment: %s", cfg.Environment)
		log.Println("========================================")

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("❌ Failed to start server:", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("\n⚠️  Shutdown signal received...")

	log.Println("   - Stopping response window watcher...")
	chatWatcher.Stop()

	log.Println("   - Shutting down websocket hub...")
	chatHub.Shutdown()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("❌ Server forced to shutdown:", err)
	}

	log.Println("✅ Server exited gracefully")
}

func healthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
		"uptime":    time.Since(startTime).String(),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(response)
}

func apiInfo(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{
        "name": "Aviato Dating App API",
        "version": "1.0.0",
        "status": "running",
        "endpoints": {
            "health": "GET /health",
            "auth": {
                "login": "POST /api/v1/auth/login",
                "signup": "POST /api/v1/auth/signup",
                "logout": "POST /api/v1/auth/logout",
                "me": "GET /api/v1/me"
            },
            "users": {
                "list": "GET /api/v1/users",
                "get": "GET /api/v1/users/{id}",
                "availability": "GET /api/v1/users/{id}/availability",
                "reviews": "GET /api/v1/users/{id}/reviews"
            },
            "matching": {
                "interests": "GET /api/v1/interests",
                "selections": "GET /api/v1/selections",
                "matches": "GET /api/v1/matches"
            },
            "chat": {
                "conversations": "GET /api/v1/conversations",
                "send": "POST /api/v1/conversations/{userId}/messages",
                "window": "GET /api/v1/conversations/{userId}/window",
                "rate": "POST /api/v1/conversations/{userId}/rate",
                "ws": "GET /api/v1/ws"
            }
        }
    }`))
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		log.Printf("→ %s %s from %s", r.Method, r.RequestURI, r.RemoteAddr)

		wrapped := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(wrapped, r)

		duration := time.Since(start)
		log.Printf("← %s %s [%d] %v", r.Method, r.RequestURI, wrapped.statusCode, duration)
	})
}

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// Hijack lets websocket upgrades pass through the logging wrapper
func (rw *responseWriter) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	hj, ok := rw.ResponseWriter.(http.Hijacker)
	if !ok {
		return nil, nil, fmt.Errorf("response writer does not support hijacking")
	}
	return hj.Hijack()
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
