package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/pkg/profile"
	"github.com/san-kum/gradviz/internal/config"
	"github.com/san-kum/gradviz/internal/export"
	"github.com/san-kum/gradviz/internal/surface"
	"github.com/san-kum/gradviz/internal/viz"
	"github.com/spf13/cobra"
)

const (
	debugLogFile  = "gradviz-debug.log"
	sliceSamples  = 101
	tangentWindow = 1.0
)

var (
	// Inputs
	function string
	pointX   float64
	pointY   float64
	preset   string
	// Display
	theme     string
	width     int
	height    int
	azimuth   float64
	elevation float64
	zoom      float64
	noColor   bool
	// Config file
	configFile string
	// Output
	jsonOut    bool
	csvOut     bool
	axis       string
	outDir     string
	allPresets bool
	// Diagnostics
	debug      bool
	profileCPU bool

	prof interface{ Stop() }
)

// main registers the gradviz commands and flags. With no subcommand the
// interactive view starts.
func main() {
	rootCmd := &cobra.Command{
		Use:               "gradviz",
		Short:             "interactive gradient and steepest ascent visualizer",
		SilenceUsage:      true,
		PersistentPreRunE: startProfile,
		PersistentPostRun: func(cmd *cobra.Command, args []string) { stopProfile() },
		RunE:              runInteractive,
	}
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml or hjson)")
	rootCmd.PersistentFlags().StringVar(&theme, "theme", config.DefaultTheme, "color theme")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "log to "+debugLogFile)
	rootCmd.PersistentFlags().BoolVar(&profileCPU, "profile", false, "write a CPU profile to the working directory")
	addInputFlags(rootCmd)
	addCameraFlags(rootCmd)

	evalCmd := &cobra.Command{
		Use:   "eval",
		Short: "evaluate f and its gradient at P",
		Args:  cobra.NoArgs,
		RunE:  runEval,
	}
	addInputFlags(evalCmd)
	evalCmd.Flags().BoolVar(&jsonOut, "json", false, "print JSON")

	renderCmd := &cobra.Command{
		Use:   "render",
		Short: "print one frame of the 3D view",
		Args:  cobra.NoArgs,
		RunE:  runRender,
	}
	addInputFlags(renderCmd)
	addCameraFlags(renderCmd)
	addSizeFlags(renderCmd)
	renderCmd.Flags().BoolVar(&noColor, "no-color", false, "plain text output")

	sliceCmd := &cobra.Command{
		Use:   "slice",
		Short: "plot the cross-section through P with its tangent line",
		Args:  cobra.NoArgs,
		RunE:  runSlice,
	}
	addInputFlags(sliceCmd)
	sliceCmd.Flags().StringVar(&axis, "axis", "x", "slice along x or y")
	sliceCmd.Flags().BoolVar(&csvOut, "csv", false, "print CSV instead of a plot")

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "write scene SVG, slice SVG, grid CSV and result JSON",
		Args:  cobra.NoArgs,
		RunE:  runExport,
	}
	addInputFlags(exportCmd)
	addCameraFlags(exportCmd)
	addSizeFlags(exportCmd)
	exportCmd.Flags().StringVar(&axis, "axis", "x", "slice along x or y")
	exportCmd.Flags().StringVarP(&outDir, "out", "o", "gradviz-export", "output directory")
	exportCmd.Flags().BoolVar(&allPresets, "all-presets", false, "export every preset into its own subdirectory")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tFUNCTION\tPOINT")
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Fprintf(w, "%s\t%s\t%s\n", name, p.Function, p.Point())
			}
			w.Flush()
		},
	}

	themesCmd := &cobra.Command{
		Use:   "themes",
		Short: "list color themes",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range viz.ThemeNames() {
				if name == config.DefaultTheme {
					fmt.Printf("  %s (default)\n", name)
					continue
				}
				fmt.Printf("  %s\n", name)
			}
		},
	}

	initCmd := &cobra.Command{
		Use:   "init-config [path]",
		Short: "write the resolved settings to a yaml config file",
		Args:  cobra.ExactArgs(1),
		RunE:  runInitConfig,
	}
	addInputFlags(initCmd)
	addCameraFlags(initCmd)
	addSizeFlags(initCmd)

	rootCmd.AddCommand(evalCmd, renderCmd, sliceCmd, exportCmd, presetsCmd, themesCmd, initCmd)

	if err := rootCmd.Execute(); err != nil {
		stopProfile()
		os.Exit(1)
	}
}

func addInputFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&function, "function", "f", config.DefaultFunction, "function: "+strings.Join(surface.VariantKeys(), ", "))
	cmd.Flags().Float64Var(&pointX, "x", surface.DefaultX, "x coordinate of P in [-2, 2]")
	cmd.Flags().Float64Var(&pointY, "y", surface.DefaultY, "y coordinate of P in [-2, 2]")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
}

func addCameraFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&azimuth, "azimuth", config.DefaultAzimuth, "camera azimuth (radians)")
	cmd.Flags().Float64Var(&elevation, "elevation", config.DefaultElevation, "camera elevation (radians)")
	cmd.Flags().Float64Var(&zoom, "zoom", config.DefaultZoom, "camera zoom")
}

func addSizeFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&width, "width", config.DefaultWidth, "canvas width (cells)")
	cmd.Flags().IntVar(&height, "height", config.DefaultHeight, "canvas height (cells)")
}

func startProfile(cmd *cobra.Command, args []string) error {
	if profileCPU {
		prof = profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.Quiet)
	}
	return nil
}

func stopProfile() {
	if prof != nil {
		prof.Stop()
		prof = nil
	}
}

// resolveConfig merges the inputs: defaults or the config file, then the
// preset, then any flag set on the command line.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg.Apply(p)
	}

	flags := cmd.Flags()
	if flags.Changed("function") {
		cfg.Function = function
	}
	if flags.Changed("x") {
		cfg.X = pointX
	}
	if flags.Changed("y") {
		cfg.Y = pointY
	}
	if flags.Changed("theme") {
		cfg.Theme = theme
	}
	if flags.Changed("width") {
		cfg.View.Width = width
	}
	if flags.Changed("height") {
		cfg.View.Height = height
	}
	if flags.Changed("azimuth") {
		cfg.Camera.Azimuth = azimuth
	}
	if flags.Changed("elevation") {
		cfg.Camera.Elevation = elevation
	}
	if flags.Changed("zoom") {
		cfg.Camera.Zoom = zoom
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if _, ok := viz.GetTheme(cfg.Theme); !ok {
		return nil, fmt.Errorf("unknown theme: %s (available: %v)", cfg.Theme, viz.ThemeNames())
	}
	return cfg, nil
}

func evaluate(cfg *config.Config) (*surface.Result, error) {
	v, err := cfg.Variant()
	if err != nil {
		return nil, err
	}
	return surface.Evaluate(v, cfg.Point())
}

func camera(cfg *config.Config) *viz.Camera {
	return viz.NewCamera(cfg.Camera.Azimuth, cfg.Camera.Elevation, cfg.Camera.Zoom)
}

func themeOf(cfg *config.Config) viz.Theme {
	th, _ := viz.GetTheme(cfg.Theme)
	return th
}

func runInteractive(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	v, err := cfg.Variant()
	if err != nil {
		return err
	}

	logger := log.New(io.Discard, "", 0)
	if debug {
		f, err := tea.LogToFile(debugLogFile, "gradviz")
		if err != nil {
			return fmt.Errorf("failed to open debug log: %w", err)
		}
		defer f.Close()
		logger = log.Default()
	}

	return viz.Run(viz.Options{
		Variant:   v,
		Point:     cfg.Point(),
		Theme:     cfg.Theme,
		Azimuth:   cfg.Camera.Azimuth,
		Elevation: cfg.Camera.Elevation,
		Zoom:      cfg.Camera.Zoom,
		Logger:    logger,
	})
}

func runEval(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	r, err := evaluate(cfg)
	if err != nil {
		return err
	}
	if jsonOut {
		return export.WriteResultJSON(os.Stdout, r)
	}

	g := r.Gradient
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "function\t%s\n", r.Variant.Label())
	fmt.Fprintf(w, "equation\t%s\n", r.Variant.Equation())
	fmt.Fprintf(w, "point\t%s\n", r.Point)
	fmt.Fprintf(w, "f(P)\t%s\n", surface.Fixed2(r.Z))
	fmt.Fprintf(w, "gradient\t%s\n", viz.GradientVector(g))
	fmt.Fprintf(w, "|gradient|\t%.2f\n", g.Magnitude())
	fmt.Fprintf(w, "ascent dir\t%s\n", g.Direction())
	fmt.Fprintf(w, "descent\t%s\n", g.Descent())
	i, j, z := r.Grid.Nearest(r.Point)
	fmt.Fprintf(w, "grid node\tz = %s at (%.2f, %.2f), spacing %.3f\n",
		surface.Fixed2(z), r.Grid.Xs[j], r.Grid.Ys[i], r.Grid.Spacing())
	if g.IsCritical() {
		fmt.Fprintln(w, "note\tcritical point")
	}
	return w.Flush()
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	r, err := evaluate(cfg)
	if err != nil {
		return err
	}
	fmt.Print(viz.Frame(r, camera(cfg), themeOf(cfg), cfg.View.Width, cfg.View.Height, !noColor))
	return nil
}

func runSlice(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	ax, err := surface.ParseAxis(axis)
	if err != nil {
		return err
	}
	r, err := evaluate(cfg)
	if err != nil {
		return err
	}

	ts, zs := r.Variant.Slice(ax, r.Point, sliceSamples)
	tangent := r.TangentLine(ax, ts, tangentWindow)
	if csvOut {
		return export.WriteSliceCSV(os.Stdout, ax, ts, zs, tangent)
	}

	slope := r.Gradient.X
	if ax == surface.AxisY {
		slope = r.Gradient.Y
	}
	caption := fmt.Sprintf("%s along %s through %s, tangent slope %.2f",
		r.Variant.Equation(), ax, r.Point, slope)
	graph := asciigraph.PlotMany([][]float64{zs, tangent},
		asciigraph.Height(15),
		asciigraph.Width(80),
		asciigraph.SeriesColors(asciigraph.Default, asciigraph.Red),
		asciigraph.Caption(caption),
	)
	fmt.Println(graph)
	fmt.Println()
	return nil
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	ax, err := surface.ParseAxis(axis)
	if err != nil {
		return err
	}
	if allPresets {
		return exportPresets(cfg, ax)
	}
	r, err := evaluate(cfg)
	if err != nil {
		return err
	}

	ex := export.New(outDir, camera(cfg), themeOf(cfg))
	ex.Width, ex.Height, ex.Axis = cfg.View.Width, cfg.View.Height, ax
	paths, err := ex.Export(r)
	if err != nil {
		return err
	}
	for _, p := range paths {
		fmt.Printf("wrote %s\n", p)
	}
	return nil
}

func exportPresets(base *config.Config, ax surface.Axis) error {
	names := config.ListPresets()
	jobs := make([]export.Job, 0, len(names))
	for _, name := range names {
		cfg := *base
		cfg.Apply(config.GetPreset(name))
		r, err := evaluate(&cfg)
		if err != nil {
			return fmt.Errorf("preset %s: %w", name, err)
		}
		jobs = append(jobs, export.Job{Name: name, Result: r, Camera: camera(&cfg)})
	}

	b := export.NewBatch(outDir, themeOf(base))
	b.Width, b.Height, b.Axis = base.View.Width, base.View.Height, ax
	paths, err := b.Run(jobs)
	if err != nil {
		return err
	}
	for i, set := range paths {
		fmt.Printf("%s:\n", jobs[i].Name)
		for _, p := range set {
			fmt.Printf("  wrote %s\n", p)
		}
	}
	return nil
}

func runInitConfig(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	if err := config.Save(args[0], cfg); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", args[0])
	return nil
}
