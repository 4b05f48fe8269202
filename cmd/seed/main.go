package main

import (
	"context"
	"time"

	"evently/internal/events/repository"
	"evently/internal/events/seed"
	"evently/internal/events/service"
	"evently/internal/events/validator"
	"evently/pkg/config"
)

const JobName = "seed"

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
	defer cancel()

	cfg := config.Load(JobName)
	cfg.SetMongo()

	mongoClient, err := cfg.Mongo.Connect(ctx)
	if err != nil {
		cfg.Log.Fatal("Failed to connect to MongoDB", "error", err)
	}
	defer func() {
		if err := cfg.Mongo.Disconnect(ctx); err != nil {
			cfg.Log.Error("MongoDB disconnect failed", "error", err)
		}
	}()

	eventValidator := validator.NewEventValidator(cfg.Log)
	eventRepo := repository.NewMongoEventRepository(cfg, mongoClient)
	eventService := service.NewEventService(eventRepo, eventValidator, cfg)

	cfg.Log.Info("Starting seed job", "database", cfg.MongoDatabaseName)
	if err := seed.Run(ctx, eventService, cfg.Log); err != nil {
		cfg.Log.Fatal("Seeding failed", "error", err)
	}
}
