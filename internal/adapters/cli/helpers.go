package cli

import (
	"context"
	"fmt"

	"github.com/stationforge/station-planner/internal/domain/catalog"
	"github.com/stationforge/station-planner/internal/domain/station"
	"github.com/stationforge/station-planner/internal/infrastructure/config"
)

// openDocument loads the catalog and a station document in one step,
// the setup every file-reading command shares.
func openDocument(cfg *config.Config, path string) (*catalog.Catalog, *station.Station, error) {
	cat, err := catalog.Load(cfg.Data.Dir)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load game data: %w", err)
	}

	st, err := station.Load(cat, path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open station file: %w", err)
	}

	return cat, st, nil
}

// touchRecent records a successful open in the workspace store. Best
// effort: a broken workspace database never fails the command.
func touchRecent(path, name string) {
	repo, closeFn, err := openWorkspace()
	if err != nil {
		return
	}
	defer closeFn()
	_ = repo.Touch(context.Background(), path, name)
}

// productName resolves a product id to its localized display name,
// falling back to the id for unknown products.
func productName(cfg *config.Config, cat *catalog.Catalog, id string) string {
	p, err := cat.Product(id)
	if err != nil {
		return id
	}
	return p.Name.In(cfg.Data.Locale, cfg.Data.DefaultLocale)
}
