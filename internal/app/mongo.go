package app

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/marketdash/marketdash/config"
)

// InitMongo opens a MongoDB connection using the provided configuration
// and verifies connectivity with a ping.
//
// Returns the client (for disconnecting) and the handle of the configured
// database. Only the provisioning mode calls this.
func InitMongo(ctx context.Context, cfg config.Config) (*mongo.Client, *mongo.Database, error) {
	client, err := mongoConnector(ctx, options.Client().ApplyURI(cfg.Mongo.URI))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to mongo: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, nil, fmt.Errorf("failed to ping mongo: %w", err)
	}

	return client, client.Database(cfg.Mongo.Database), nil
}

// mongoConnector is an indirection for unit testing; defaults to
// mongo.Connect.
var mongoConnector = func(ctx context.Context, opts ...*options.ClientOptions) (*mongo.Client, error) {
	return mongo.Connect(ctx, opts...)
}
