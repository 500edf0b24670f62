package agentsgen

import (
	"context"

	internalLoader "github.com/goliatone/go-agentsgen/internal/catalog/loader"
	"github.com/goliatone/go-agentsgen/pkg/catalog"
)

// NewCatalogLoader constructs an asset loader using the internal
// implementation while keeping the concrete type hidden from consumers.
func NewCatalogLoader(options ...catalog.LoaderOption) catalog.Loader {
	cfg := catalog.NewLoaderOptions(options...)
	return internalLoader.New(cfg)
}

// LoadCatalog resolves location (a directory or an http(s) base URL) and
// loads the asset bundle, falling back to the embedded catalog on any error.
// An empty location yields the embedded catalog.
func LoadCatalog(ctx context.Context, location string, options ...catalog.LoaderOption) *catalog.Catalog {
	cfg := catalog.NewLoaderOptions(options...)
	if location == "" {
		return catalog.Default()
	}
	src, err := catalog.ParseSource(location)
	if err != nil {
		cfg.Logger.Warn().Err(err).Str("source", location).Msg("invalid asset source, using embedded defaults")
		return catalog.Default()
	}
	return catalog.LoadOrDefault(ctx, internalLoader.New(cfg), src, cfg.Logger)
}
