package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/themetools/vsixpack/internal/config"
	"github.com/themetools/vsixpack/internal/packager"
	"github.com/themetools/vsixpack/internal/watcher"
)

type buildOptions struct {
	ConfigPath string
	OutputName string
	Watch      bool
	Verbose    bool
}

var buildCmdRunner = runBuild

func newBuildCmd(root *rootFlags) *cobra.Command {
	opts := buildOptions{}

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Package a theme configuration into an extension archive",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Verbose = root.verbose

			if err := validateBuildOptions(opts); err != nil {
				return err
			}

			return buildCmdRunner(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.ConfigPath, "input", "i", "", "Path to theme configuration file")
	cmd.Flags().StringVarP(&opts.OutputName, "output", "o", "", "Base name for the produced archive")
	cmd.Flags().BoolVarP(&opts.Watch, "watch", "w", false, "Rebuild whenever the configuration or icon changes")
	cmd.MarkFlagRequired("input")  //nolint:errcheck
	cmd.MarkFlagRequired("output") //nolint:errcheck

	return cmd
}

func runBuild(ctx context.Context, opts buildOptions) error {
	log, err := newLogger(opts.Verbose)
	if err != nil {
		return err
	}

	build := func() error {
		_, err := packager.Package(packager.Options{
			ConfigPath: opts.ConfigPath,
			OutputName: opts.OutputName,
			Logger:     log,
		})
		return err
	}

	if !opts.Watch {
		return build()
	}

	if err := build(); err != nil {
		log.Error(err, "initial build failed")
	}

	paths := []string{opts.ConfigPath}
	if cfg, err := config.ParseConfig(opts.ConfigPath); err == nil && cfg.Icon != "" {
		paths = append(paths, packager.IconPath(opts.ConfigPath, cfg.Icon))
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.WithFields(map[string]any{"paths": paths}).Info("watching for changes")

	return watcher.Watch(ctx, paths, log, func(string) {
		if err := build(); err != nil {
			log.Error(err, "rebuild failed")
		}
	})
}
