package generator

import (
	"io"
	"log/slog"

	"github.com/isometry/event-schema/internal/assets"
	"github.com/spf13/afero"
)

// WithFs sets the filesystem generated documents are written to.
func WithFs(fs afero.Fs) Option {
	return func(g *Generator) {
		g.fs = fs
	}
}

// WithLoader sets the asset loader providing the base schema and deployment template.
func WithLoader(loader *assets.Loader) Option {
	return func(g *Generator) {
		g.loader = loader
	}
}

// WithStdout sets the writer rendered deployment templates are echoed to.
func WithStdout(w io.Writer) Option {
	return func(g *Generator) {
		g.stdout = w
	}
}

// WithLogger sets a custom slog.Logger instance for the Generator.
func WithLogger(logger *slog.Logger) Option {
	return func(g *Generator) {
		g.logger = logger
	}
}
