package main

import (
	"github.com/spf13/cobra"

	"github.com/themetools/vsixpack/internal/config"
)

type validateOptions struct {
	ConfigPath string
	Verbose    bool
}

func newValidateCmd(root *rootFlags) *cobra.Command {
	opts := validateOptions{}

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Parse and validate a theme configuration without packaging it",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Verbose = root.verbose

			if err := validateInputFlag(opts.ConfigPath); err != nil {
				return err
			}

			return runValidate(opts)
		},
	}

	cmd.Flags().StringVarP(&opts.ConfigPath, "input", "i", "", "Path to theme configuration file")
	cmd.MarkFlagRequired("input") //nolint:errcheck

	return cmd
}

func runValidate(opts validateOptions) error {
	log, err := newLogger(opts.Verbose)
	if err != nil {
		return err
	}

	cfg, err := config.ParseConfig(opts.ConfigPath)
	if err != nil {
		return err
	}

	log.WithFields(map[string]any{
		"name":     cfg.Name,
		"sections": len(cfg.Sections),
		"entries":  cfg.Sections.EntryCount(),
	}).Info("configuration valid")

	return nil
}
