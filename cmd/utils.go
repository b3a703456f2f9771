package cmd

import (
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var replacer = strings.NewReplacer(".", "_", "-", "_")

type argType interface {
	string | bool | int
}

// boundFlags records every flag bound through bindEnvMap so that environment overrides can be applied after parsing.
var boundFlags = map[string]struct{}{}

func bindEnvMap[T argType](cmd *cobra.Command, m map[*T]boundEnvVar[T]) {
	for v, cfg := range m {
		env := strings.ToUpper(replacer.Replace(cfg.Name))
		if cfg.Env != nil {
			env = *cfg.Env
		}
		desc := fmt.Sprintf("[%s] %s", env, cfg.Description)

		switch vt := any(v).(type) {
		case *string:
			if cfg.Short == nil {
				cmd.PersistentFlags().StringVar(vt, cfg.Name, *vt, desc)
			} else {
				cmd.PersistentFlags().StringVarP(vt, cfg.Name, *cfg.Short, *vt, desc)
			}
		case *bool:
			if cfg.Short == nil {
				cmd.PersistentFlags().BoolVar(vt, cfg.Name, *vt, desc)
			} else {
				cmd.PersistentFlags().BoolVarP(vt, cfg.Name, *cfg.Short, *vt, desc)
			}
		case *int:
			def := *vt
			if cfg.Short == nil {
				cmd.PersistentFlags().CountVar(vt, cfg.Name, desc)
			} else {
				cmd.PersistentFlags().CountVarP(vt, cfg.Name, *cfg.Short, desc)
			}
			_ = cmd.PersistentFlags().Lookup(cfg.Name).Value.Set(strconv.Itoa(def))
		default:
			log.Panicf("command-args parsing error: unhandled default case for type %T", vt)
		}

		_ = viper.BindPFlag(cfg.Name, cmd.PersistentFlags().Lookup(cfg.Name))
		_ = viper.BindEnv(cfg.Name, env)
		boundFlags[cfg.Name] = struct{}{}

		if cfg.Hidden {
			_ = cmd.PersistentFlags().MarkHidden(cfg.Name)
		}
	}
}

// lookupOverrides captures the flags set on the command line or through the environment.
// It must run before the configuration file is loaded, as the flags share storage with the configuration.
func lookupOverrides(cmd *cobra.Command) map[*pflag.Flag]string {
	overrides := map[*pflag.Flag]string{}
	for name := range boundFlags {
		flag := cmd.Flags().Lookup(name)
		if flag == nil || !viper.IsSet(name) {
			continue
		}
		overrides[flag] = viper.GetString(name)
	}
	return overrides
}

// applyOverrides re-applies captured overrides, giving them precedence over the configuration file.
func applyOverrides(overrides map[*pflag.Flag]string) error {
	for flag, value := range overrides {
		if err := flag.Value.Set(value); err != nil {
			return fmt.Errorf("invalid value for --%s: %w", flag.Name, err)
		}
	}
	return nil
}
