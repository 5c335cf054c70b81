package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"

	"github.com/rs/cors"

	"github.com/IftekherAziz/MaxCoach-Sever-Side/internal/auth"
	"github.com/IftekherAziz/MaxCoach-Sever-Side/internal/config"
	"github.com/IftekherAziz/MaxCoach-Sever-Side/internal/database"
	"github.com/IftekherAziz/MaxCoach-Sever-Side/internal/middleware"
	"github.com/IftekherAziz/MaxCoach-Sever-Side/internal/payments"
	"github.com/IftekherAziz/MaxCoach-Sever-Side/internal/routes"
	"github.com/IftekherAziz/MaxCoach-Sever-Side/internal/store"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg := config.LoadConfig()

	client, err := database.ConnectMongoDB(cfg.MongoURI)
	if err != nil {
		logger.Error("failed to connect to MongoDB", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			logger.Error("failed to disconnect from MongoDB", slog.Any("error", err))
		}
	}()

	st := store.New(client, cfg.DatabaseName, cfg.Timeout)
	tokens := auth.NewTokenService(cfg.JWTSecret)
	provider := payments.NewStripeProvider(cfg.StripeSecretKey)

	router := routes.SetupRouter(st, tokens, provider)

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{cfg.Origin},
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	handler := c.Handler(middleware.RequestLogger(logger, router))

	logger.Info("MaxCoach server is running", slog.String("port", cfg.Port))
	if err := http.ListenAndServe(":"+cfg.Port, handler); err != nil {
		logger.Error("server stopped", slog.Any("error", err))
		os.Exit(1)
	}
}
