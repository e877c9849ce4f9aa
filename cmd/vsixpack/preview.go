package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/themetools/vsixpack/internal/config"
	"github.com/themetools/vsixpack/internal/theme"
)

var (
	sectionStyle   = lipgloss.NewStyle().Bold(true)
	entryNameStyle = lipgloss.NewStyle().Width(36)
)

func newPreviewCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Render the configured colors as terminal swatches",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateInputFlag(configPath); err != nil {
				return err
			}

			cfg, err := config.ParseConfig(configPath)
			if err != nil {
				return err
			}

			renderPreview(cmd.OutOrStdout(), cfg)
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "input", "i", "", "Path to theme configuration file")
	cmd.MarkFlagRequired("input") //nolint:errcheck

	return cmd
}

func renderPreview(w io.Writer, cfg *config.Config) {
	for i, section := range cfg.Sections {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintln(w, sectionStyle.Render(section.Name))
		for _, entry := range section.Entries {
			fmt.Fprintf(w, "  %s %s  %s\n",
				entryNameStyle.Render(entry.Name),
				swatch(entry.Foreground),
				swatch(entry.Background))
		}
	}
}

// swatch renders one value slot as a colored block plus its hex form. Slots
// that hold no color render as plain text.
func swatch(slot *string) string {
	if slot == nil {
		return "────────   "
	}

	value, err := theme.ParseValue(*slot)
	if err != nil || value.Kind != theme.KindColor {
		return fmt.Sprintf("%-11s", *slot)
	}

	hex := value.Hex()
	block := lipgloss.NewStyle().Background(lipgloss.Color(hex[:7])).Render("  ")
	return fmt.Sprintf("%s %s", block, hex)
}
