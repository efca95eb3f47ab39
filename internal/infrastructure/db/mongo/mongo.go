// Package mongo backs the credential store and the audit trail with MongoDB
// collections.
package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/medroster/roster-system/internal/pkg/config"
)

const connectTimeout = 10 * time.Second

// Open dials MongoDB, verifies the deployment is reachable with a primary
// ping, and returns the client together with the roster database handle.
// Callers own the client lifetime and must Disconnect it on shutdown.
func Open(ctx context.Context, cfg config.MongoConfig) (*mongo.Client, *mongo.Database, error) {
	dialCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	opts := options.Client().
		ApplyURI(cfg.URI).
		SetServerSelectionTimeout(connectTimeout)

	client, err := mongo.Connect(dialCtx, opts)
	if err != nil {
		return nil, nil, fmt.Errorf("open credential store: %w", err)
	}

	if err := client.Ping(dialCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(dialCtx)
		return nil, nil, fmt.Errorf("ping credential store: %w", err)
	}

	return client, client.Database(cfg.Database), nil
}
