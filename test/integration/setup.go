package integration

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// TestDB represents a test database instance.
type TestDB struct {
	Container *mongodb.MongoDBContainer
	Client    *mongo.Client
	Database  *mongo.Database
	ConnStr   string
}

// SetupTestDB starts a MongoDB test container and returns a connected
// database handle. Tests using it are skipped in short mode because they
// need a container runtime.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()

	mongoContainer, err := mongodb.Run(ctx, "mongo:7")
	if err != nil {
		t.Fatalf("failed to start mongodb container: %v", err)
	}

	connStr, err := mongoContainer.ConnectionString(ctx)
	if err != nil {
		t.Fatalf("failed to get connection string: %v", err)
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(connStr))
	if err != nil {
		t.Fatalf("failed to connect to mongodb: %v", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		t.Fatalf("failed to ping mongodb: %v", err)
	}

	db := client.Database("sportswear_test")

	t.Cleanup(func() {
		if err := client.Disconnect(ctx); err != nil {
			t.Logf("failed to disconnect client: %v", err)
		}
		if err := mongoContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	return &TestDB{
		Container: mongoContainer,
		Client:    client,
		Database:  db,
		ConnStr:   connStr,
	}
}

// NopLogger returns a disabled logger for test wiring.
func NopLogger() zerolog.Logger {
	return zerolog.Nop()
}
