// Package store bootstraps the MongoDB client that backs every collection.
package store

import (
	"context"
	"fmt"
	"time"

	"github.com/shashiranjanraj/bistro/config"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Connect opens the MongoDB client, pins the Stable API version, and
// verifies the connection with a ping. The caller owns the client and must
// Disconnect it on shutdown.
func Connect(ctx context.Context) (*mongo.Client, *mongo.Database, error) {
	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	opts := options.Client().
		ApplyURI(config.MongoURI()).
		SetServerAPIOptions(options.ServerAPI(options.ServerAPIVersion1)).
		SetConnectTimeout(5 * time.Second).
		SetServerSelectionTimeout(5 * time.Second).
		SetMaxPoolSize(25)

	client, err := mongo.Connect(pingCtx, opts)
	if err != nil {
		return nil, nil, fmt.Errorf("store: connect: %w", err)
	}

	if err := client.Ping(pingCtx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, fmt.Errorf("store: ping: %w", err)
	}

	return client, client.Database(config.MongoDB()), nil
}
