// internal/app/bootstrap/db.go
package bootstrap

import (
	"context"

	catalogstore "github.com/dalemusser/impacthub/internal/app/store/catalogs"
	recordstore "github.com/dalemusser/impacthub/internal/app/store/records"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// EnsureSchema sets up indexes and seed data as needed.
//
// The memory backend seeds itself at construction time, so there is nothing
// to do here unless Mongo is in play.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	if deps.ImpactHubMongoDatabase == nil {
		return nil
	}

	catalogs := catalogstore.NewMongo(deps.ImpactHubMongoDatabase)
	if err := catalogs.EnsureIndexes(ctx); err != nil {
		logger.Error("researcher index setup failed", zap.Error(err))
		return err
	}
	if err := catalogs.EnsureSeed(ctx); err != nil {
		logger.Error("researcher seed failed", zap.Error(err))
		return err
	}

	records := recordstore.NewMongo(deps.ImpactHubMongoDatabase)
	if err := records.EnsureIndexes(ctx); err != nil {
		logger.Error("record index setup failed", zap.Error(err))
		return err
	}

	return nil
}
