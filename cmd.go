package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"PerfectCircle/internal/config"
	"PerfectCircle/internal/export"
	"PerfectCircle/internal/geom"
	"PerfectCircle/internal/logging"
	"PerfectCircle/internal/render"
	"PerfectCircle/internal/score"
	"PerfectCircle/internal/state"
	"PerfectCircle/internal/ui"
)

// Version is overridden at build time with -ldflags "-X main.Version=...".
var Version = "dev"

var rootCmd = &cobra.Command{
	Use:   "perfectcircle",
	Short: "Draw a perfect circle",
	Long:  "Trace a circle around the dot with the mouse; the closer to a perfect circle, the higher the score.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := setup(cmd)
		if err != nil {
			return err
		}
		ui.RunApp(cfg)
		return nil
	},
	SilenceUsage: true,
}

var scoreCmd = &cobra.Command{
	Use:   "score FILE",
	Short: "Validate and score an exported attempt",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := setup(cmd)
		if err != nil {
			return err
		}
		pngPath, _ := cmd.Flags().GetString("png")
		return runScore(cmd.OutOrStdout(), args[0], pngPath, cfg)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "perfectcircle", Version)
	},
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to config file (overrides "+config.EnvPath+")")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error")

	scoreCmd.Flags().String("png", "", "Also render the attempt to this PNG file")

	rootCmd.AddCommand(scoreCmd)
	rootCmd.AddCommand(versionCmd)
}

// setup loads the config and installs the logger. An explicit --config must
// exist; the default location may be absent. Config loading logs at the
// --log-level flag's level (info when unset) before the configured level
// takes over.
func setup(cmd *cobra.Command) (config.Config, error) {
	flagLevel, _ := cmd.Flags().GetString("log-level")
	level, err := logging.ParseLevel(flagLevel)
	if err != nil {
		return config.Config{}, err
	}
	logging.SetLogger(logging.NewText(cmd.ErrOrStderr(), level))

	flagPath, _ := cmd.Flags().GetString("config")
	path, err := config.ResolvePath(flagPath)
	if err != nil {
		return config.Config{}, err
	}
	cfg, err := config.Load(path, flagPath != "")
	if err != nil {
		return config.Config{}, err
	}
	if flagLevel != "" {
		cfg.Log.Level = flagLevel
	}
	if level, err = logging.ParseLevel(cfg.Log.Level); err != nil {
		return config.Config{}, err
	}
	logging.SetLogger(logging.NewText(cmd.ErrOrStderr(), level))
	return cfg, nil
}

func runScore(out io.Writer, path, pngPath string, cfg config.Config) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open attempt: %w", err)
	}
	defer f.Close()

	attempt, err := export.ReadJSON(f)
	if err != nil {
		return err
	}

	opts := state.DefaultOptions()
	opts.MinRadius = cfg.Game.MinRadius
	opts.CloseEnough = cfg.Game.CloseEnough
	center := attempt.Center()
	res := state.Evaluate(attempt.Points, center, opts)
	st := score.Measure(attempt.Points, center)

	fmt.Fprintf(out, "points:        %d\n", len(attempt.Points))
	fmt.Fprintf(out, "surface:       %gx%g (center %g,%g)\n", attempt.Width, attempt.Height, center.X, center.Y)
	box := geom.BoundsOf(attempt.Points)
	surface := geom.Bounds{Max: geom.Pt(attempt.Width, attempt.Height)}
	off := 0
	for _, p := range attempt.Points {
		if !surface.Contains(p) {
			off++
		}
	}
	fmt.Fprintf(out, "extent:        %.1fx%.1f", box.Width(), box.Height())
	if !box.Empty() {
		fmt.Fprintf(out, " (aspect %.3f)", box.Width()/box.Height())
	}
	fmt.Fprintln(out)
	fmt.Fprintf(out, "off-surface:   %d\n", off)
	fmt.Fprintf(out, "outcome:       %s\n", res.Outcome)
	fmt.Fprintf(out, "ideal radius:  %.2f\n", st.Ideal)
	fmt.Fprintf(out, "mean abs dev:  %.2f\n", st.MeanAbsDeviation)
	fmt.Fprintf(out, "std dev:       %.2f\n", st.StdDeviation)
	if res.Outcome == state.Accepted {
		fmt.Fprintf(out, "accuracy:      %s\n", state.FormatAccuracy(res.Accuracy))
	} else {
		fmt.Fprintf(out, "accuracy:      %s\n", state.FormatAccuracy(0))
	}

	if pngPath == "" {
		return nil
	}
	pf, err := os.Create(pngPath)
	if err != nil {
		return fmt.Errorf("create png: %w", err)
	}
	style := render.Style{LineWidth: cfg.Render.LineWidth, MarkerRadius: cfg.Render.MarkerRadius}
	if err := export.PNG(pf, attempt, style); err != nil {
		pf.Close()
		return err
	}
	return pf.Close()
}
