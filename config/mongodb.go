package config

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

const (
	MongoTimeout              = 20 * time.Second
	CollectionAnalyticsEvents = "analytics_events"
)

var (
	MongoClient *mongo.Client
	Mongo       *mongo.Database
)

// ConnectMongo opens the analytics event store
func ConnectMongo() {
	uri := getEnv("MONGODB_URI", "mongodb://localhost:27017")
	dbName := getEnv("MONGODB_DATABASE", "feauage")

	var err error
	MongoClient, err = mongo.Connect(options.Client().ApplyURI(uri))
	if err != nil {
		log.Fatalf("❌ Unable to connect to MongoDB: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), MongoTimeout)
	defer cancel()
	if err := MongoClient.Ping(ctx, nil); err != nil {
		log.Fatalf("❌ MongoDB ping failed: %v", err)
	}

	Mongo = MongoClient.Database(dbName)
	log.Printf("✅ MongoDB connected db=%s", dbName)
}

func CloseMongo() {
	if MongoClient == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := MongoClient.Disconnect(ctx); err != nil {
		log.Printf("⚠️ MongoDB disconnect: %v", err)
		return
	}
	log.Println("✅ MongoDB connection closed")
}
