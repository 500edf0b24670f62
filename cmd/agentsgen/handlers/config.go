package handlers

import (
	"fmt"
	"io"

	"github.com/goliatone/go-agentsgen/internal/config"
)

// ConfigInit writes a sample settings file.
func ConfigInit(out io.Writer, path string) error {
	if path == "" {
		path = config.FileName
	}
	if err := config.Init(path); err != nil {
		return err
	}
	fmt.Fprintf(out, "Wrote %s\n", path)
	return nil
}

// ConfigShow prints the effective settings.
func ConfigShow(app *App) {
	cfg := app.Config
	fmt.Fprintf(app.Stdout, "output.dir        = %s\n", cfg.Output.Dir)
	fmt.Fprintf(app.Stdout, "output.format     = %s\n", cfg.Output.Format)
	fmt.Fprintf(app.Stdout, "output.copy       = %t\n", cfg.Output.Copy)
	fmt.Fprintf(app.Stdout, "assets.source     = %s\n", cfg.Assets.Source)
	fmt.Fprintf(app.Stdout, "assets.timeout    = %s\n", cfg.Assets.Timeout)
	fmt.Fprintf(app.Stdout, "preview.debounce  = %s\n", cfg.Preview.Debounce)
	fmt.Fprintf(app.Stdout, "preview.file      = %s\n", cfg.Preview.File)
	fmt.Fprintf(app.Stdout, "render.prune      = %t\n", cfg.Render.Prune)
	fmt.Fprintf(app.Stdout, "render.exempt     = %v\n", cfg.Render.Exempt)
	fmt.Fprintf(app.Stdout, "log.level         = %s\n", cfg.Log.Level)
	fmt.Fprintf(app.Stdout, "log.json          = %t\n", cfg.Log.JSON)
}
