package main

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"evently/internal/bookings/handler"
	"evently/internal/bookings/repository"
	"evently/internal/bookings/service"
	"evently/internal/bookings/validator"
	eventshandler "evently/internal/events/handler"
	eventsrepository "evently/internal/events/repository"
	"evently/pkg/app"
	"evently/pkg/config"
	"evently/pkg/kafka"
)

const ServiceName = "bookings"

func main() {
	cfg := config.Load(ServiceName)
	cfg.SetMongo()

	ctx, cancel := context.WithTimeout(context.Background(), cfg.MongoConnTimeout)
	defer cancel()

	mongoClient, err := cfg.Mongo.Connect(ctx)
	if err != nil {
		cfg.Log.Fatal("Failed to connect to MongoDB", "error", err)
	}

	cfg.Log.Info("Starting Bookings service")
	bookingService := initServices(cfg, mongoClient)

	serverApp := app.NewApplication(cfg)
	serverApp.SetApp(
		eventshandler.NewHealthHandler(cfg.Mongo, cfg.Log),
		handler.NewBookingHandler(bookingService, cfg.Log),
	)
	serverApp.Run()
}

func initServices(cfg *config.Config, mongoClient *mongo.Client) service.BookingService {
	bookingValidator := validator.NewBookingValidator(cfg.Log)
	bookingRepo := repository.NewMongoBookingRepository(cfg, mongoClient)
	eventRepo := eventsrepository.NewMongoEventRepository(cfg, mongoClient)

	var publisher service.NotificationPublisher
	if len(cfg.KafkaBrokers) > 0 {
		producer, err := kafka.NewProducer(cfg.KafkaBrokers, cfg.KafkaBookingTopic, ServiceName)
		if err != nil {
			cfg.Log.Fatal("Failed to create Kafka producer", "error", err)
		}
		publisher = producer
		cfg.Log.Info("Booking notifications enabled",
			"brokers", cfg.KafkaBrokers,
			"topic", cfg.KafkaBookingTopic,
		)
	} else {
		cfg.Log.Info("Booking notifications disabled, no Kafka brokers configured")
	}

	bookingService := service.NewBookingService(
		bookingRepo,
		eventRepo,
		bookingValidator,
		publisher,
		cfg,
	)

	cfg.Log.Info("Booking service initialized", "database", cfg.MongoDatabaseName)
	return bookingService
}
