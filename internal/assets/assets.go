// Package assets provides the base event schema and deployment template shipped with event-schema.
package assets

import (
	"embed"
	"log/slog"
	"path/filepath"
	"sync"

	"github.com/isometry/event-schema/internal/helpers"
	"github.com/isometry/event-schema/internal/schema"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"go.yaml.in/yaml/v3"
)

const (
	// BaseSchemaFile is the file name of the base AWSEvent document.
	BaseSchemaFile = "AWSEvent.template.json"
	// DeploymentTemplateFile is the file name of the Serverless Framework resources template.
	DeploymentTemplateFile = "serverlessjs.template.yml"
)

//go:embed templates/AWSEvent.template.json templates/serverlessjs.template.yml
var embedded embed.FS

// Loader reads template assets, either from the embedded copies or from a replacement directory.
type Loader struct {
	fs     afero.Fs
	dir    string
	logger *slog.Logger

	baseOnce func() (schema.Document, error)
}

// Option defines a function type used to configure a Loader.
type Option func(*Loader)

// WithDir reads assets from dir instead of the embedded copies.
func WithDir(dir string) Option {
	return func(l *Loader) {
		l.dir = dir
	}
}

// WithFs sets the filesystem used when reading from a replacement directory.
func WithFs(fs afero.Fs) Option {
	return func(l *Loader) {
		l.fs = fs
	}
}

// WithLogger sets a custom slog.Logger instance for the Loader.
func WithLogger(logger *slog.Logger) Option {
	return func(l *Loader) {
		l.logger = logger
	}
}

// NewLoader returns a Loader. Without options it serves the embedded assets.
func NewLoader(opts ...Option) *Loader {
	_inst := &Loader{}
	for _, opt := range opts {
		opt(_inst)
	}
	if _inst.fs == nil {
		_inst.fs = afero.NewOsFs()
	}
	if _inst.logger == nil {
		_inst.logger = helpers.NewNoopLogger()
	}
	_inst.logger = _inst.logger.With("component", "assets")
	_inst.baseOnce = sync.OnceValues(_inst.loadBaseSchema)
	return _inst
}

// BaseSchema returns the base AWSEvent document. It is parsed once per Loader;
// callers receive the shared value and must treat it as read-only.
func (l *Loader) BaseSchema() (schema.Document, error) {
	return l.baseOnce()
}

// DeploymentTemplate parses and returns a fresh copy of the deployment template.
func (l *Loader) DeploymentTemplate() (*yaml.Node, error) {
	content, err := l.read(DeploymentTemplateFile)
	if err != nil {
		return nil, err
	}
	var doc yaml.Node
	if err = yaml.Unmarshal(content, &doc); err != nil {
		return nil, errors.Wrapf(err, "failed to parse %s", DeploymentTemplateFile)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, errors.Errorf("%s is empty", DeploymentTemplateFile)
	}
	return &doc, nil
}

func (l *Loader) loadBaseSchema() (schema.Document, error) {
	content, err := l.read(BaseSchemaFile)
	if err != nil {
		return nil, err
	}
	doc, err := schema.Parse(content)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse %s", BaseSchemaFile)
	}
	return doc, nil
}

func (l *Loader) read(name string) ([]byte, error) {
	if l.dir == "" {
		l.logger.Debug("reading embedded asset", "name", name)
		content, err := embedded.ReadFile("templates/" + name)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read embedded asset %s", name)
		}
		return content, nil
	}

	path := filepath.Join(l.dir, name)
	l.logger.Debug("reading asset", "path", path)
	content, err := afero.ReadFile(l.fs, path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read asset %s", path)
	}
	return content, nil
}
