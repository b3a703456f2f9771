package cmd

import (
	"github.com/isometry/event-schema/internal/assets"
	"github.com/isometry/event-schema/internal/config"
	"github.com/isometry/event-schema/internal/generator"
	"github.com/isometry/event-schema/internal/models"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

func cmdCreateEventSchema() *cobra.Command {
	var (
		output   string
		template models.TemplateKind
	)

	cmd := &cobra.Command{
		Use:   "create-event-schema <event>",
		Short: "Generate an event schema from template",
		Example: `  event-schema create-event-schema UserSignedUpEvent --output=event.yml --template=serverlessjs
  event-schema create-event-schema UserSignedUpEvent --output=event.json --template=json`,
		Args: cobra.ExactArgs(1),
		PreRunE: func(_ *cobra.Command, _ []string) (err error) {
			template, err = models.ParseTemplateKind(config.Generator.Template)
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			log := logger.With("command", "create-event-schema")

			fs := afero.NewOsFs()
			var loaderOpts []assets.Option
			if dir := config.Generator.TemplatesDir; dir != "" {
				log.Debug("using replacement templates", "dir", dir)
				loaderOpts = append(loaderOpts, assets.WithDir(dir))
			}
			loaderOpts = append(loaderOpts,
				assets.WithFs(fs),
				assets.WithLogger(log))

			gen := generator.New(
				generator.WithFs(fs),
				generator.WithLoader(assets.NewLoader(loaderOpts...)),
				generator.WithStdout(cmd.OutOrStdout()),
				generator.WithLogger(log))

			path, err := gen.Generate(models.Options{
				Event:    args[0],
				Output:   output,
				Template: template,
			})
			if err != nil {
				log.Error("failed to generate event schema", "error", err)
				return err
			}
			log.Info("event schema generated", "path", path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", `Filename of output. Defaults to "<event>.json", or "<Event>.yml" with the serverlessjs template`)
	bindEnvMap(cmd, createEnvMapString)

	return cmd
}
