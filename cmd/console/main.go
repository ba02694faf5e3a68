package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-metadata-console/internal/client"
	"github.com/MKhiriev/go-metadata-console/internal/config"
	"github.com/MKhiriev/go-metadata-console/internal/logger"
	"github.com/MKhiriev/go-metadata-console/internal/tui"
	"github.com/MKhiriev/go-metadata-console/models"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var flags *config.Flags

	root := &cobra.Command{
		Use:   "metadata-console",
		Short: "Terminal console for the metadata catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), flags, tui.NavigateTo{Page: tui.PageList})
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	flags = config.BindFlags(root.PersistentFlags())

	root.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "Open the metadata listing",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), flags, tui.NavigateTo{Page: tui.PageList})
		},
	})
	root.AddCommand(&cobra.Command{
		Use:   "detail <metadataId>",
		Short: "Open one metadata record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), flags, tui.NavigateTo{Page: tui.PageDetail, MetadataID: args[0]})
		},
	})
	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), buildInfo().String())
		},
	})

	return root
}

func run(parent context.Context, flags *config.Flags, route tui.NavigateTo) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(flags)
	if err != nil {
		return fmt.Errorf("error getting configs: %w", err)
	}

	log := logger.NewClientLogger("metadata-console", cfg.App.LogFile, logger.ParseLevel(cfg.App.LogLevel))
	log.Debug().Any("config", cfg).Msg("received configs")

	app, err := client.NewApp(ctx, cfg, route, buildInfo(), log)
	if err != nil {
		log.Error().Err(err).Msg("init client app error")
		return err
	}
	defer func() {
		if closeErr := app.Close(); closeErr != nil {
			log.Error().Err(closeErr).Msg("close client app")
		}
	}()

	if err = app.Run(ctx); err != nil {
		log.Error().Err(err).Msg("client run error")
		return err
	}
	return nil
}

func buildInfo() models.AppBuildInfo {
	return models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
}
