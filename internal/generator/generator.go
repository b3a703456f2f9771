// Package generator runs the create-event-schema pipeline: build the schema, optionally render the
// deployment template, and write the result.
package generator

import (
	"io"
	"log/slog"

	"github.com/isometry/event-schema/internal/assets"
	"github.com/isometry/event-schema/internal/helpers"
	"github.com/isometry/event-schema/internal/models"
	"github.com/isometry/event-schema/internal/render"
	"github.com/isometry/event-schema/internal/schema"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

// FileMode is the permission used for generated files.
const FileMode = 0o644

// Generator produces event schema documents and writes them to a filesystem.
type Generator struct {
	fs     afero.Fs
	loader *assets.Loader
	stdout io.Writer
	logger *slog.Logger
}

// Option defines a function type used to configure a Generator.
type Option func(*Generator)

// New returns a Generator writing to the OS filesystem with the embedded assets unless overridden.
func New(opts ...Option) *Generator {
	_inst := &Generator{}
	for _, opt := range opts {
		opt(_inst)
	}
	if _inst.logger == nil {
		_inst.logger = helpers.NewNoopLogger()
	}
	_inst.logger = _inst.logger.With("component", "generator")
	if _inst.fs == nil {
		_inst.fs = afero.NewOsFs()
	}
	if _inst.loader == nil {
		_inst.loader = assets.NewLoader(assets.WithLogger(_inst.logger))
	}
	if _inst.stdout == nil {
		_inst.stdout = io.Discard
	}
	return _inst
}

// Generate builds the document selected by opts and writes it. It returns the written path.
func (g *Generator) Generate(opts models.Options) (string, error) {
	logger := g.logger.With("event", opts.Event, "template", opts.Template)

	var (
		data []byte
		err  error
	)
	switch opts.Template {
	case models.TemplateJSON:
		data, err = g.JSON(opts.Event)
	case models.TemplateServerlessJS:
		data, err = g.ServerlessJS(opts.Event)
		if err == nil {
			if _, err = g.stdout.Write(data); err != nil {
				err = errors.Wrap(err, "failed to echo deployment template")
			}
		}
	default:
		err = &models.UnknownTemplateError{Kind: string(opts.Template)}
	}
	if err != nil {
		return "", err
	}

	path := OutputPath(opts)
	logger.Debug("writing document...", "path", path, "bytes", len(data))
	if err = afero.WriteFile(g.fs, path, data, FileMode); err != nil {
		return "", errors.Wrapf(err, "failed to write %s", path)
	}
	logger.Info("document written", "path", path)
	return path, nil
}

// JSON returns the bare event schema document for event.
func (g *Generator) JSON(event string) ([]byte, error) {
	doc, err := g.build(event)
	if err != nil {
		return nil, err
	}
	return doc.Marshal()
}

// ServerlessJS returns the deployment template carrying the event schema for event.
func (g *Generator) ServerlessJS(event string) ([]byte, error) {
	doc, err := g.build(event)
	if err != nil {
		return nil, err
	}
	tpl, err := g.loader.DeploymentTemplate()
	if err != nil {
		return nil, err
	}
	g.logger.Debug("rendering deployment template...", "resource", render.ResourceName(event))
	return render.RenderDeploymentTemplate(tpl, doc, event)
}

func (g *Generator) build(event string) (schema.Document, error) {
	base, err := g.loader.BaseSchema()
	if err != nil {
		return nil, err
	}
	return schema.BuildEventSchema(base, event), nil
}
