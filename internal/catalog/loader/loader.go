package loader

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"time"

	"github.com/goliatone/go-agentsgen/pkg/catalog"
)

// Loader implements catalog.Loader by delegating to directory, fs.FS or HTTP
// strategies.
type Loader struct {
	fs        fs.FS
	http      *http.Client
	allowHTTP bool
	timeout   time.Duration
}

var _ catalog.Loader = (*Loader)(nil)

// New constructs a Loader from pre-resolved options.
func New(options catalog.LoaderOptions) *Loader {
	timeout := options.RequestTimeout

	var httpClient *http.Client
	switch {
	case options.HTTPClient != nil:
		clone := *options.HTTPClient
		if timeout > 0 && clone.Timeout == 0 {
			clone.Timeout = timeout
		}
		httpClient = &clone
	case options.AllowHTTP:
		httpClient = &http.Client{Timeout: timeout}
	}

	return &Loader{
		fs:        options.FileSystem,
		http:      httpClient,
		allowHTTP: httpClient != nil,
		timeout:   timeout,
	}
}

// Load reads every bundle file from src and parses them into a Catalog.
func (l *Loader) Load(ctx context.Context, src catalog.Source) (*catalog.Catalog, error) {
	if src == nil {
		return nil, catalog.ErrNoSource
	}
	if ctx == nil {
		return nil, errors.New("catalog loader: context is required")
	}

	var read func(name string) ([]byte, error)
	switch src.Kind() {
	case catalog.SourceKindDir:
		read = func(name string) ([]byte, error) {
			return loadFile(ctx, src.Location(), name)
		}
	case catalog.SourceKindFS:
		read = func(name string) ([]byte, error) {
			return loadFromFS(ctx, l.fs, src.Location(), name)
		}
	case catalog.SourceKindURL:
		if !l.allowHTTP {
			return nil, errors.New("catalog loader: http support disabled")
		}
		read = func(name string) ([]byte, error) {
			return loadHTTP(ctx, l.http, src.Location(), name, l.timeout)
		}
	default:
		return nil, fmt.Errorf("catalog loader: unsupported source kind %q", src.Kind())
	}

	files, err := catalog.ReadFiles(read)
	if err != nil {
		return nil, err
	}
	return catalog.NewCatalog(files, src.Location())
}
