package migrate

import (
	"net/url"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/marketplace-indexer/internal/config"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

const (
	marketplaceMigrationSource = "modules/marketplace/database/postgresql/migrations"
	marketplaceMigrationTable  = "marketplace_schema_migrations"
)

type migrateOptions struct {
	DatabaseURL string
	Source      string
}

// newMigrate falls back to the configured marketplace Postgres when no database URL is given.
func (opts *migrateOptions) newMigrate() (*migrate.Migrate, error) {
	rawURL := opts.DatabaseURL
	if rawURL == "" {
		rawURL = config.Load().Modules.Marketplace.Postgres.URLString()
	}
	databaseURL, err := url.Parse(rawURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse database URL")
	}
	if _, ok := supportedDrivers[databaseURL.Scheme]; !ok {
		return nil, errors.Errorf("unsupported database driver: %s", databaseURL.Scheme)
	}

	newDatabaseURL := cloneURLWithQuery(databaseURL, url.Values{"x-migrations-table": {marketplaceMigrationTable}})
	m, err := migrate.New("file://"+opts.Source, newDatabaseURL.String())
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Migrate instance")
	}
	m.Log = &migrateLogger{
		module: "marketplace",
	}
	return m, nil
}

func cloneURLWithQuery(u *url.URL, newQuery url.Values) *url.URL {
	clone := *u
	query := clone.Query()
	for key, values := range newQuery {
		for _, value := range values {
			query.Add(key, value)
		}
	}
	clone.RawQuery = query.Encode()
	return &clone
}

var supportedDrivers = map[string]struct{}{
	"postgres":   {},
	"postgresql": {},
}
