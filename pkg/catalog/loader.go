package catalog

import (
	"context"
	"errors"
	"io/fs"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// ErrNoSource is returned when a loader is asked to read without a source.
var ErrNoSource = errors.New("catalog: source is required")

// Loader fetches asset bundles. Implementations live under internal/catalog
// but satisfy this contract.
type Loader interface {
	Load(ctx context.Context, src Source) (*Catalog, error)
}

// LoaderOptions configures how a Loader resolves sources. HTTP stays disabled
// unless a client is supplied or AllowHTTP is set.
type LoaderOptions struct {
	// FileSystem backs SourceKindFS sources.
	FileSystem fs.FS

	// HTTPClient is used for URL sources.
	HTTPClient *http.Client

	// AllowHTTP enables URL sources with a default client when HTTPClient is
	// nil.
	AllowHTTP bool

	// RequestTimeout caps each remote fetch.
	RequestTimeout time.Duration

	// Logger receives fallback warnings from LoadOrDefault.
	Logger zerolog.Logger
}

// LoaderOption mutates LoaderOptions prior to construction.
type LoaderOption func(*LoaderOptions)

// WithFileSystem injects the fs.FS used for SourceKindFS.
func WithFileSystem(files fs.FS) LoaderOption {
	return func(opts *LoaderOptions) {
		opts.FileSystem = files
	}
}

// WithHTTPClient injects a custom HTTP client for remote bundles.
func WithHTTPClient(client *http.Client) LoaderOption {
	return func(opts *LoaderOptions) {
		opts.HTTPClient = client
	}
}

// WithHTTP enables remote bundles with the default client and a timeout.
func WithHTTP(timeout time.Duration) LoaderOption {
	return func(opts *LoaderOptions) {
		opts.AllowHTTP = true
		opts.RequestTimeout = timeout
	}
}

// WithLogger sets the logger used for fallback warnings.
func WithLogger(logger zerolog.Logger) LoaderOption {
	return func(opts *LoaderOptions) {
		opts.Logger = logger
	}
}

// NewLoaderOptions applies options over the defaults.
func NewLoaderOptions(options ...LoaderOption) LoaderOptions {
	cfg := LoaderOptions{
		Logger: zerolog.Nop(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	return cfg
}

// LoadOrDefault loads src and falls back to the embedded catalog when src is
// nil or loading fails. It never returns nil.
func LoadOrDefault(ctx context.Context, loader Loader, src Source, logger zerolog.Logger) *Catalog {
	if src == nil || loader == nil {
		return Default()
	}
	cat, err := loader.Load(ctx, src)
	if err != nil {
		logger.Warn().
			Err(err).
			Str("source", src.Location()).
			Str("kind", string(src.Kind())).
			Msg("asset bundle unavailable, using embedded defaults")
		return Default()
	}
	return cat
}
