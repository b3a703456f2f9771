// Package cmd provides the entrypoint for the event-schema cli.
package cmd

import (
	"errors"
	"log/slog"

	"github.com/isometry/event-schema/internal/config"
	"github.com/isometry/event-schema/internal/helpers"
	"github.com/spf13/cobra"
)

var (
	configFilePath string
	logger         = helpers.NewNoopLogger()
)

type boundEnvVar[T argType] struct {
	Name, Description string
	Env, Short        *string
	Hidden            bool
}

// New returns the root command for event-schema.
func New() *cobra.Command {
	// Configuration defaults back the flag defaults below
	if err := config.Reset(); err != nil {
		panic(err)
	}

	cmd := &cobra.Command{
		Use:   "event-schema",
		Short: "Scaffold AWS EventBridge event schemas",
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			overrides := lookupOverrides(cmd)
			if err := errors.Join(
				config.LoadFromFile(configFilePath),
				config.SetDefaults(),
			); err != nil {
				return err
			}
			if err := applyOverrides(overrides); err != nil {
				return err
			}
			logger = helpers.NewLogger(cmd.ErrOrStderr(),
				config.Global.Logging.Verbosity,
				config.Global.Logging.CallerTrace)
			logger.Debug("configuration loaded", slog.String("config", configFilePath))
			return nil
		},
	}

	// Root command flags
	cmd.PersistentFlags().StringVarP(&configFilePath, "config", "c", "config.yaml", "path to the configuration file")

	// Dynamic flags
	bindEnvMap(cmd, envMapString)
	bindEnvMap(cmd, envMapBool)
	bindEnvMap(cmd, envMapCount)

	// Subcommands
	cmd.AddCommand(
		cmdCreateEventSchema(),
	)

	return cmd
}
