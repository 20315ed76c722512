package service

import (
	"context"
	"time"

	"sportswear-shop/internal/config"
	"sportswear-shop/internal/model"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	maxReportedCollections = 10
	diagnosticsTimeout     = 5 * time.Second
	maxErrorLength         = 80
)

// systemService implements SystemService against a live database handle.
type systemService struct {
	db     *mongo.Database
	dbCfg  config.DatabaseConfig
	logger zerolog.Logger
}

// NewSystemService creates a new system service.
func NewSystemService(db *mongo.Database, dbCfg config.DatabaseConfig, logger zerolog.Logger) SystemService {
	return &systemService{
		db:     db,
		dbCfg:  dbCfg,
		logger: logger.With().Str("service", "system").Logger(),
	}
}

// Diagnostics produces a best-effort store health report. Every sub-check is
// guarded individually so a failure degrades one field instead of the whole
// response.
func (s *systemService) Diagnostics(ctx context.Context) model.DiagnosticsReport {
	report := model.DiagnosticsReport{
		Backend:          "running",
		Database:         "not available",
		DatabaseURL:      "not set",
		DatabaseName:     s.dbCfg.Name,
		ConnectionStatus: "not connected",
		Collections:      []string{},
	}

	if s.dbCfg.URLSet {
		report.DatabaseURL = "set"
	}

	if s.db == nil {
		return report
	}

	checkCtx, cancel := context.WithTimeout(ctx, diagnosticsTimeout)
	defer cancel()

	if err := s.db.Client().Ping(checkCtx, readpref.Primary()); err != nil {
		s.logger.Warn().Err(err).Msg("diagnostics ping failed")
		report.Database = "error: " + truncate(err.Error(), maxErrorLength)
		return report
	}

	report.Database = "available"
	report.ConnectionStatus = "connected"

	names, err := s.db.ListCollectionNames(checkCtx, bson.M{})
	if err != nil {
		s.logger.Warn().Err(err).Msg("diagnostics collection listing failed")
		report.Database = "connected but error: " + truncate(err.Error(), maxErrorLength)
		return report
	}

	if names == nil {
		names = []string{}
	}
	if len(names) > maxReportedCollections {
		names = names[:maxReportedCollections]
	}
	report.Collections = names
	report.Database = "connected and working"

	return report
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
