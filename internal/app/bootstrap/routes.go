// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	healthfeature "github.com/dalemusser/impacthub/internal/app/features/health"
	metadatafeature "github.com/dalemusser/impacthub/internal/app/features/metadata"
	recordsfeature "github.com/dalemusser/impacthub/internal/app/features/records"
	reportsfeature "github.com/dalemusser/impacthub/internal/app/features/reports"
	"github.com/dalemusser/impacthub/internal/app/reports"
	catalogstore "github.com/dalemusser/impacthub/internal/app/store/catalogs"
	recordstore "github.com/dalemusser/impacthub/internal/app/store/records"
	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed. At this point you have access to:
//   - coreCfg: WAFFLE core configuration (ports, env, timeouts, etc.)
//   - appCfg: app-specific configuration defined in AppConfig
//   - deps: any DB or backend clients bundled in DBDeps
//   - logger: the fully configured zap.Logger for this app
//
// impacthub picks the store backend from config, builds the aggregation
// service on top of the stores, and mounts the JSON API feature routers:
// metadata, records, reports, and health.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	var (
		catalogs catalogstore.Store
		records  recordstore.Store
	)
	if deps.ImpactHubMongoDatabase != nil {
		catalogs = catalogstore.NewMongo(deps.ImpactHubMongoDatabase)
		records = recordstore.NewMongo(deps.ImpactHubMongoDatabase)
	} else {
		catalogs = catalogstore.NewMemorySeeded()
		records = recordstore.NewMemorySeeded()
	}

	svc := reports.NewService(records, catalogs)

	r := chi.NewRouter()

	r.Mount("/health", healthfeature.Routes(
		healthfeature.NewHandler(deps.ImpactHubMongoClient, logger)))

	r.Route("/api", func(api chi.Router) {
		api.Mount("/metadata", metadatafeature.Routes(
			metadatafeature.NewHandler(catalogs, logger)))
		api.Mount("/records", recordsfeature.Routes(
			recordsfeature.NewHandler(records, catalogs, svc, logger)))
		api.Mount("/reports", reportsfeature.Routes(
			reportsfeature.NewHandler(svc, logger)))
	})

	return r, nil
}
