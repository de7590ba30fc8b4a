package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/san-kum/plotlab/internal/config"
	"github.com/san-kum/plotlab/internal/functions"
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#fabd2f")).Bold(true)
	nameStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#ebdbb2"))
)

func listFuncs(cmd *cobra.Command, args []string) error {
	reg := functions.NewRegistry()
	fmt.Println(headerStyle.Render("functions"))
	for _, name := range reg.ListFuncs() {
		fmt.Printf("  %s\n", nameStyle.Render(name))
	}
	fmt.Println(headerStyle.Render("relations"))
	for _, name := range reg.ListRelations() {
		fmt.Printf("  %s\n", nameStyle.Render(name))
	}
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tWINDOW\tINPUT\tGRID\tHUD")
	for _, name := range config.ListPresets() {
		cfg, err := config.GetPreset(name)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s\t%dx%d\t%s\t%s\t%v\n", name, cfg.Window.Width, cfg.Window.Height, cfg.Input, cfg.Grid.Policy, cfg.HUD)
	}
	return w.Flush()
}

func initConfig(cmd *cobra.Command, args []string) error {
	path := "plotlab.yaml"
	if len(args) > 0 {
		path = args[0]
	}
	if exists(path) && !overwrite {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := config.Save(path, cfg); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	logger.Info("config written", "path", path)
	fmt.Printf("wrote %s\n", path)
	return nil
}
