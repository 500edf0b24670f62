package loader

import (
	"context"
	"errors"
	"io/fs"
	"path"
)

func loadFromFS(ctx context.Context, files fs.FS, root, name string) ([]byte, error) {
	if files == nil {
		return nil, errors.New("catalog loader: fs is nil")
	}
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}
	return fs.ReadFile(files, path.Join(root, name))
}
