package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/san-kum/plotlab/internal/config"
	"github.com/san-kum/plotlab/internal/functions"
	"github.com/san-kum/plotlab/internal/plot"
)

var (
	configFile string
	preset     string
	inputMode  string
	gridPolicy string
	verbose    bool

	// export
	outFile   string
	outWidth  int
	outHeight int

	// ascii
	xFrom, xTo  float64
	graphWidth  int
	graphHeight int

	// config init
	overwrite bool

	logger = slog.Default()
)

// main registers the commands and opens the window when no subcommand is
// given. It exits with status 1 if the command returns an error.
func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "plotlab",
		Short:        "interactive function and relation plotter",
		SilenceUsage: true,
		RunE:         runGUI,
	}
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
		slog.SetDefault(logger)
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset configuration")
	rootCmd.PersistentFlags().StringVar(&inputMode, "mode", "", "input mode: drag, keys or both")
	rootCmd.PersistentFlags().StringVar(&gridPolicy, "grid", "", "grid policy: step or count")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "open the plot window",
		Args:  cobra.NoArgs,
		RunE:  runGUI,
	}

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "plot in the terminal",
		Args:  cobra.NoArgs,
		RunE:  runTUI,
	}

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "render one frame to png or svg, or sample the curves to csv",
		Args:  cobra.NoArgs,
		RunE:  runExport,
	}
	exportCmd.Flags().StringVarP(&outFile, "output", "o", "plot.png", "output file (.png, .svg or .csv)")
	exportCmd.Flags().IntVar(&outWidth, "width", 0, "image width (default: window width)")
	exportCmd.Flags().IntVar(&outHeight, "height", 0, "image height (default: window height)")

	asciiCmd := &cobra.Command{
		Use:   "ascii [func]",
		Short: "print an ascii graph of a function",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runASCII,
	}
	asciiCmd.Flags().Float64Var(&xFrom, "from", -5, "start of the x range")
	asciiCmd.Flags().Float64Var(&xTo, "to", 5, "end of the x range")
	asciiCmd.Flags().IntVar(&graphWidth, "width", 80, "graph width")
	asciiCmd.Flags().IntVar(&graphHeight, "height", 15, "graph height")

	funcsCmd := &cobra.Command{
		Use:   "funcs",
		Short: "list registered functions and relations",
		Args:  cobra.NoArgs,
		RunE:  listFuncs,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list configuration presets",
		Args:  cobra.NoArgs,
		RunE:  listPresets,
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "manage the config file",
	}
	initCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "write the default config",
		Args:  cobra.MaximumNArgs(1),
		RunE:  initConfig,
	}
	initCmd.Flags().BoolVar(&overwrite, "force", false, "overwrite an existing file")
	configCmd.AddCommand(initCmd)

	rootCmd.AddCommand(guiCmd, tuiCmd, exportCmd, asciiCmd, funcsCmd, presetsCmd, configCmd)
	return rootCmd
}

// loadConfig resolves the preset, then the config file over it, then any
// flags the user set explicitly.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if preset != "" {
		p, err := config.GetPreset(preset)
		if err != nil {
			return nil, err
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.LoadOver(configFile, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
		logger.Debug("config loaded", "path", configFile)
	}

	if cmd.Flags().Changed("mode") {
		cfg.Input = inputMode
	}
	if cmd.Flags().Changed("grid") {
		cfg.Grid.Policy = gridPolicy
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadScene loads the config and resolves its curves and relations.
func loadScene(cmd *cobra.Command) (*config.Config, plot.Scene, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, plot.Scene{}, err
	}
	scene, err := cfg.Scene(functions.NewRegistry())
	if err != nil {
		return nil, plot.Scene{}, err
	}
	return cfg, scene, nil
}
