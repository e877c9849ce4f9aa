package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

func validateInputFlag(configPath string) error {
	if strings.TrimSpace(configPath) == "" {
		return fmt.Errorf("input file is required")
	}

	abs, err := filepath.Abs(configPath)
	if err != nil {
		return fmt.Errorf("resolve input path: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return fmt.Errorf("input file does not exist: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("input path %s is a directory", abs)
	}

	return nil
}

func validateBuildOptions(opts buildOptions) error {
	if err := validateInputFlag(opts.ConfigPath); err != nil {
		return err
	}

	if strings.TrimSpace(opts.OutputName) == "" {
		return fmt.Errorf("output name is required")
	}

	return nil
}
