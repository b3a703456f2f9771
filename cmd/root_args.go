package cmd

import (
	"github.com/isometry/event-schema/internal/config"
	"github.com/isometry/event-schema/internal/helpers"
)

var envMapString = map[*string]boundEnvVar[string]{
	&config.Generator.TemplatesDir: {
		Name:        "templates-dir",
		Description: "Directory holding replacement AWSEvent.template.json and serverlessjs.template.yml assets",
		Env:         helpers.Ptr("EVENT_SCHEMA_TEMPLATES_DIR"),
	},
}

var envMapBool = map[*bool]boundEnvVar[bool]{
	&config.Global.Logging.CallerTrace: {
		Name:        "verbosity-caller-trace",
		Description: "Enable caller trace in logs",
		Short:       helpers.Ptr("V"),
	},
}

var envMapCount = map[*int]boundEnvVar[int]{
	&config.Global.Logging.Verbosity: {
		Name:        "verbosity",
		Description: "Increase logger verbosity (default WarnLevel)",
		Short:       helpers.Ptr("v"),
	},
}
