package cmd

import (
	"github.com/isometry/event-schema/internal/config"
	"github.com/isometry/event-schema/internal/helpers"
)

var createEnvMapString = map[*string]boundEnvVar[string]{
	&config.Generator.Template: {
		Name:        "template",
		Description: "The template used to generate the event schema. Supported values are 'json' and 'serverlessjs'",
		Env:         helpers.Ptr("EVENT_SCHEMA_TEMPLATE"),
		Short:       helpers.Ptr("t"),
	},
}
