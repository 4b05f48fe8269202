package main

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"evently/internal/events/handler"
	"evently/internal/events/repository"
	"evently/internal/events/service"
	"evently/internal/events/validator"
	"evently/pkg/app"
	"evently/pkg/config"
)

const ServiceName = "events"

func main() {
	cfg := config.Load(ServiceName)
	cfg.SetMongo()

	ctx, cancel := context.WithTimeout(context.Background(), cfg.MongoConnTimeout)
	defer cancel()

	mongoClient, err := cfg.Mongo.Connect(ctx)
	if err != nil {
		cfg.Log.Fatal("Failed to connect to MongoDB", "error", err)
	}

	cfg.Log.Info("Starting Events service")
	eventService := initServices(cfg, mongoClient)

	serverApp := app.NewApplication(cfg)
	serverApp.SetApp(
		handler.NewHealthHandler(cfg.Mongo, cfg.Log),
		handler.NewEventHandler(eventService, cfg.Log),
	)
	serverApp.Run()
}

func initServices(cfg *config.Config, mongoClient *mongo.Client) service.EventService {
	eventValidator := validator.NewEventValidator(cfg.Log)
	eventRepo := repository.NewMongoEventRepository(cfg, mongoClient)
	eventService := service.NewEventService(eventRepo, eventValidator, cfg)

	cfg.Log.Info("Event service initialized", "database", cfg.MongoDatabaseName)
	return eventService
}
