package services

import (
	"fmt"
	"log/slog"

	"github.com/light-bringer/source-service/internal/app/source/domain"
	"github.com/light-bringer/source-service/internal/app/source/queries/get_source"
	"github.com/light-bringer/source-service/internal/app/source/queries/latest_prices"
	"github.com/light-bringer/source-service/internal/app/source/queries/list_sources"
	"github.com/light-bringer/source-service/internal/app/source/queries/price_across_sources"
	"github.com/light-bringer/source-service/internal/app/source/queries/price_history"
	"github.com/light-bringer/source-service/internal/app/source/store"
	"github.com/light-bringer/source-service/internal/app/source/usecases/add_price"
	"github.com/light-bringer/source-service/internal/app/source/usecases/create_source"
	"github.com/light-bringer/source-service/internal/app/source/usecases/update_source"
	"github.com/light-bringer/source-service/internal/pkg/clock"
	"github.com/light-bringer/source-service/internal/pkg/filestore"
	sourcegrpc "github.com/light-bringer/source-service/internal/transport/grpc/source"
)

// ServiceOptions holds all dependencies for the application.
type ServiceOptions struct {
	Store         *store.EntityStore
	SourceHandler *sourcegrpc.Handler
}

// NewServiceOptions creates and wires up all application dependencies.
// Records are loaded from dataDir eagerly, so a corrupt store fails the
// process at startup rather than mid-request.
func NewServiceOptions(dataDir string, logger *slog.Logger) (*ServiceOptions, error) {
	// 1. Load the record pack from disk
	pack, err := filestore.LoadOrInit[*domain.Source](dataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load record store from %q: %w", dataDir, err)
	}

	// 2. Create infrastructure components
	clk := clock.NewRealClock()
	entityStore := store.New(pack, clk, logger)

	// 3. Create command use cases (write operations)
	createSourceUseCase := create_source.NewInteractor(entityStore)
	updateSourceUseCase := update_source.NewInteractor(entityStore)
	addPriceUseCase := add_price.NewInteractor(entityStore, clk)

	// 4. Create query use cases (read operations)
	getSourceQuery := get_source.NewQuery(entityStore)
	listSourcesQuery := list_sources.NewQuery(entityStore)
	latestPricesQuery := latest_prices.NewQuery(entityStore)
	priceAcrossSourcesQuery := price_across_sources.NewQuery(entityStore)
	priceHistoryQuery := price_history.NewQuery(entityStore)

	// 5. Create gRPC handler
	sourceHandler := sourcegrpc.NewHandler(
		createSourceUseCase,
		updateSourceUseCase,
		addPriceUseCase,
		getSourceQuery,
		listSourcesQuery,
		latestPricesQuery,
		priceAcrossSourcesQuery,
		priceHistoryQuery,
		logger,
	)

	return &ServiceOptions{
		Store:         entityStore,
		SourceHandler: sourceHandler,
	}, nil
}
