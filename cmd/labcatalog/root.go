package main

import (
	"io"
	"strings"
	"time"

	"github.com/mugiliam/labcatalog/internal/config"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	configFile string
	logLevel   string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           "labcatalog",
		Short:         "Validate and render labware catalog documentation",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			c, err := config.Load(opts.configFile)
			if err != nil {
				return err
			}
			if opts.logLevel != "" {
				c.Log.Level = opts.logLevel
			}
			config.Set(c)
			if err := setupLogging(cmd.ErrOrStderr(), c.Log); err != nil {
				return err
			}
			cmd.SetContext(log.Logger.WithContext(cmd.Context()))
			return nil
		},
	}
	cmd.PersistentFlags().StringVar(&opts.configFile, "config", "", "path to a TOML config file (default $"+config.EnvConfigFile+")")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level: trace, debug, info, warn, error")

	cmd.AddCommand(
		newValidateCmd(),
		newBuildCmd(),
		newPreviewCmd(),
		newServeCmd(),
	)
	return cmd
}

func setupLogging(w io.Writer, c config.LogConfig) error {
	level, err := zerolog.ParseLevel(strings.ToLower(c.Level))
	if err != nil {
		return config.ErrInvalidConfig.Err(err)
	}
	zerolog.SetGlobalLevel(level)
	if c.Format == "json" {
		log.Logger = zerolog.New(w).With().Timestamp().Logger()
	} else {
		log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}).With().Timestamp().Logger()
	}
	zerolog.DefaultContextLogger = &log.Logger
	return nil
}

// exitError reports err on stderr and returns it so cobra exits non-zero.
func exitError(cmd *cobra.Command, err error) error {
	log.Ctx(cmd.Context()).Error().Msg(err.Error())
	return err
}
