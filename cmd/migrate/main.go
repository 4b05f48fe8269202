package main

import (
	"context"
	"time"

	mongomigration "evently/internal/migrations/mongo"
	"evently/pkg/config"
)

const JobName = "mongo-migration"

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

	cfg.Log.Info("Starting Mongo migration job")
	if err := mongomigration.RunMigration(ctx, mongoClient, cfg.MongoDatabaseName); err != nil {
		cfg.Log.Fatal("Migration failed", "error", err)
	}

	cfg.Log.Info("Migration completed successfully")
}
