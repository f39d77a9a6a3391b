package knowledge_fx

import (
	"context"
	"time"

	"github.com/bxttttt/AI-TravelPlanner/internal/config"
	"github.com/bxttttt/AI-TravelPlanner/internal/infra"
	"github.com/bxttttt/AI-TravelPlanner/internal/repositories"
	"github.com/bxttttt/AI-TravelPlanner/internal/services"
	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

const catalogLoadTimeout = 10 * time.Second

var Module = fx.Provide(
	ProvideKnowledgeStore,
	ProvideKnowledgeService)

// ProvideKnowledgeStore builds the venue catalog once at startup, from the built-in seed or
// from postgres when CATALOG_SOURCE=postgres.
func ProvideKnowledgeStore(lc fx.Lifecycle, cfg *config.Config, log zerolog.Logger) (*services.KnowledgeStore, error) {
	if cfg.CatalogSource != config.CatalogPostgres {
		log.Info().Str("source", config.CatalogBuiltin).Msg("Using built-in venue catalog")
		return services.NewKnowledgeStore(services.BuiltinCatalog()), nil
	}

	db, err := infra.InitPostgresql(cfg.PostgresURL, log)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			infra.ClosePostgresql(db, log)
			return nil
		},
	})

	ctx, cancel := context.WithTimeout(context.Background(), catalogLoadTimeout)
	defer cancel()
	return services.NewKnowledgeStoreFromRepository(ctx, repositories.NewVenueRepository(db), log)
}

func ProvideKnowledgeService(store *services.KnowledgeStore) services.KnowledgeServiceInterface {
	return store
}
