package database

import (
	"context"
	"fmt"
	"time"

	"sportswear-shop/internal/config"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Connect creates a MongoDB client and returns a handle to the configured
// database. An unreachable server is logged but not treated as fatal: the
// client connects lazily and the diagnostics endpoint reports store health
// as data, so the API stays up even when the store is down at boot.
func Connect(ctx context.Context, cfg config.DatabaseConfig, logger zerolog.Logger) (*mongo.Client, *mongo.Database, error) {
	connectCtx, cancel := context.WithTimeout(ctx, time.Duration(cfg.ConnectTimeout)*time.Second)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.URL))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create mongo client: %w", err)
	}

	logger.Info().
		Str("database", cfg.Name).
		Msg("created mongo client")

	pingCtx, pingCancel := context.WithTimeout(ctx, time.Duration(cfg.ConnectTimeout)*time.Second)
	defer pingCancel()

	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		logger.Warn().
			Err(err).
			Msg("mongo server not reachable at startup, continuing anyway")
	} else {
		logger.Info().Msg("mongo server reachable")
	}

	return client, client.Database(cfg.Name), nil
}

// Disconnect closes the client with a bounded timeout.
func Disconnect(client *mongo.Client, logger zerolog.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := client.Disconnect(ctx); err != nil {
		logger.Error().Err(err).Msg("failed to disconnect mongo client")
		return
	}
	logger.Info().Msg("mongo client disconnected")
}
