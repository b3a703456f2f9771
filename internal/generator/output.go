package generator

import (
	"github.com/isometry/event-schema/internal/helpers"
	"github.com/isometry/event-schema/internal/models"
)

// OutputPath returns the file a generated document is written to.
// An explicit Output wins; otherwise the name derives from the event and template.
func OutputPath(opts models.Options) string {
	if opts.Output != "" {
		return opts.Output
	}
	if opts.Template == models.TemplateServerlessJS {
		return helpers.Capitalize(opts.Event) + ".yml"
	}
	return opts.Event + ".json"
}
