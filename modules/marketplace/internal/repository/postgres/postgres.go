package postgres

import (
	"github.com/gaze-network/marketplace-indexer/internal/postgres"
	"github.com/gaze-network/marketplace-indexer/modules/marketplace/internal/datagateway"
	"github.com/gaze-network/marketplace-indexer/modules/marketplace/internal/repository/postgres/gen"
	"github.com/jackc/pgx/v5"
)

var _ datagateway.MarketplaceDataGatewayWithTx = (*Repository)(nil)

type Repository struct {
	db      postgres.DB
	queries *gen.Queries
	tx      pgx.Tx
}

func NewRepository(db postgres.DB) *Repository {
	return &Repository{
		db:      db,
		queries: gen.New(db),
	}
}
