// File: cmd/server/main.go
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"chatapp-backend/internal/config"
	"chatapp-backend/internal/database"
	"chatapp-backend/internal/handlers"
	"chatapp-backend/internal/repository/conversation"
	"chatapp-backend/internal/repository/message"
	"chatapp-backend/internal/repository/user"
	"chatapp-backend/internal/services"
	"chatapp-backend/internal/services/ai"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Config error: %v", err)
	}

	db, err := database.Open(cfg)
	if err != nil {
		log.Fatalf("DB error: %v", err)
	}
	defer func() {
		if err := database.Close(db); err != nil {
			log.Printf("DB close error: %v", err)
		}
	}()

	logger := services.NewLogger("chatapp")

	// --- Repositories ---
	userRepo := user.NewGormUserRepository(db)
	conversationRepo := conversation.NewConversationRepository(db)
	messageRepo := message.NewMessageRepository(db)

	// --- Services ---
	aiConfig := ai.DefaultConfig()
	aiConfig.APIKey = cfg.OpenAIAPIKey
	aiConfig.BaseURL = cfg.OpenAIBaseURL
	aiConfig.Model = cfg.AIModel
	provider, err := ai.NewOpenAIProvider(aiConfig)
	if err != nil {
		log.Fatalf("AI provider error: %v", err)
	}

	userService := services.NewUserService(userRepo, cfg.JWTSecretKey, logger)
	replyService := services.NewReplyService(provider, logger)
	chatService := services.NewChatService(conversationRepo, messageRepo, replyService, logger)

	// --- Handlers & router ---
	router := handlers.NewRouter(handlers.RouterConfig{
		AuthHandler:       handlers.NewAuthHandler(userService),
		UserHandler:       handlers.NewUserHandler(userService, chatService),
		ChatHandler:       handlers.NewChatHandler(chatService),
		UserResolver:      userService,
		CORSAllowedOrigin: cfg.CORSAllowedOrigin,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server starting on port %s", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server startup failed: %v", err)
		}
	}()

	// --- Graceful shutdown ---
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	log.Println("Shutting down server gracefully...")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server shutdown failed: %v", err)
	}
	log.Println("Server stopped gracefully")
}
