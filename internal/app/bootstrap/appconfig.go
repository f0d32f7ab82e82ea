// internal/app/bootstrap/appconfig.go
package bootstrap

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). WAFFLE's CoreConfig handles
// framework-level settings (ports, TLS, logging level, CORS, body limits);
// AppConfig is everything specific to impacthub.
type AppConfig struct {
	// StoreBackend selects where records and researchers live:
	// "memory" (default; seeded, no external dependency) or "mongo".
	StoreBackend string

	// MongoDB connection configuration (only used when StoreBackend is "mongo")
	MongoURI         string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase    string // Database name within MongoDB
	MongoMaxPoolSize uint64 // Max connection pool size
	MongoMinPoolSize uint64 // Min connection pool size

	// BaseURL is the externally visible URL of this API, used in logs and
	// export links.
	BaseURL string
}
