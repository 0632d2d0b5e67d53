package main

import (
	"context"
	"fmt"
	"image/png"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/faultsim/internal/config"
	"github.com/san-kum/faultsim/internal/export"
	"github.com/san-kum/faultsim/internal/geom"
	"github.com/san-kum/faultsim/internal/playback"
	"github.com/san-kum/faultsim/internal/storage"
	"github.com/san-kum/faultsim/internal/viz"
	"github.com/spf13/cobra"
)

var (
	dataDir string
	// Animation overrides
	maxDisp    float64
	durationMs float64
	easing     string
	frameRate  int
	// Config file
	configFile string
	// Preset name
	preset string
	// Live view
	theme string
	// Render / animate
	displacement float64
	outPath      string
	width        int
	height       int
	workers      int
	// Playback
	scriptFile string
	lengthMs   float64
	save       bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "faultsim",
		Short: "animated plate boundary and fault diagrams",
		RunE: func(cmd *cobra.Command, args []string) error {
			return viz.RunInteractive(frameRate, theme)
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".faultsim", "data directory")
	rootCmd.Flags().IntVar(&frameRate, "fps", config.DefaultFPS, "frame rate")
	rootCmd.Flags().StringVar(&theme, "theme", "basalt", "color theme ("+strings.Join(viz.ThemeNames(), ", ")+")")

	liveCmd := &cobra.Command{
		Use:   "live [type...]",
		Short: "animate in the terminal; no type opens the fault board",
		RunE:  runLive,
	}
	addConfigFlags(liveCmd)
	liveCmd.Flags().StringVar(&theme, "theme", "basalt", "color theme")

	renderCmd := &cobra.Command{
		Use:   "render [type]",
		Short: "render one frame as SVG or PNG",
		Args:  cobra.MaximumNArgs(1),
		RunE:  renderFrame,
	}
	addConfigFlags(renderCmd)
	renderCmd.Flags().Float64Var(&displacement, "disp", 0, "displacement to render")
	renderCmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (.svg or .png); stdout SVG if empty")
	renderCmd.Flags().IntVar(&width, "width", 0, "output width (default: viewBox width)")
	renderCmd.Flags().IntVar(&height, "height", 0, "output height (default: viewBox height)")

	animateCmd := &cobra.Command{
		Use:   "animate [type]",
		Short: "play the animation headless and write a GIF",
		Args:  cobra.MaximumNArgs(1),
		RunE:  animateGIF,
	}
	addConfigFlags(animateCmd)
	addPlaybackFlags(animateCmd)
	animateCmd.Flags().StringVarP(&outPath, "out", "o", "", "output GIF (default: <type>.gif)")
	animateCmd.Flags().IntVar(&width, "width", 0, "output width (default: viewBox width)")
	animateCmd.Flags().IntVar(&height, "height", 0, "output height (default: viewBox height)")
	animateCmd.Flags().IntVar(&workers, "workers", 0, "rasterizer workers (default: GOMAXPROCS)")

	timelineCmd := &cobra.Command{
		Use:   "timeline [type]",
		Short: "play the animation headless and plot displacement over time",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runTimeline,
	}
	addConfigFlags(timelineCmd)
	addPlaybackFlags(timelineCmd)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a saved run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run timeline to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run data to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}
	exportJSONCmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (stdout if empty)")

	presetsCmd := &cobra.Command{
		Use:   "presets [type]",
		Short: "list available presets for a boundary type",
		Args:  cobra.MaximumNArgs(1),
		RunE:  listPresets,
	}

	typesCmd := &cobra.Command{
		Use:   "types",
		Short: "list boundary types",
		Run: func(cmd *cobra.Command, args []string) {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "TYPE\tKIND\tPRESETS")
			for _, t := range geom.Types() {
				kind := "fault"
				if t.IsScenario() {
					kind = "scenario"
				}
				fmt.Fprintf(w, "%s\t%s\t%s\n", t, kind, strings.Join(config.ListPresets(t.String()), ", "))
			}
			w.Flush()
		},
	}

	rootCmd.AddCommand(liveCmd, renderCmd, animateCmd, timelineCmd, listCmd, plotCmd, exportCSVCmd, exportJSONCmd, presetsCmd, typesCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addConfigFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	cmd.Flags().Float64Var(&maxDisp, "max", config.DefaultMaxDisplacement, "maximum displacement")
	cmd.Flags().Float64Var(&durationMs, "duration", config.DefaultDurationMs, "animation duration in ms")
	cmd.Flags().StringVar(&easing, "easing", "", "easing curve (ease-out-cubic, linear)")
	cmd.Flags().IntVar(&frameRate, "fps", config.DefaultFPS, "frame rate")
}

func addPlaybackFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&scriptFile, "script", "", "playback script (yaml); default presses play at 0")
	cmd.Flags().Float64Var(&lengthMs, "length", 0, "sampled length in ms (default: duration + 500)")
	cmd.Flags().BoolVar(&save, "save", true, "save the run under the data directory")
}

// resolveConfig layers the sources for one boundary type: built-in preset,
// then the config file, then flags the user actually set.
func resolveConfig(cmd *cobra.Command, typeArg string) (*config.Config, error) {
	var cfg *config.Config

	if configFile != "" {
		fileCfg, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = fileCfg
	}

	name := typeArg
	if name == "" && cfg != nil {
		name = cfg.Type
	}
	if name == "" {
		name = config.DefaultType
	}
	t, err := geom.ParseType(name)
	if err != nil {
		return nil, err
	}
	name = t.String()

	switch {
	case cfg != nil && preset == "":
		cfg.Type = name
	case preset != "":
		p, err := config.MustPreset(name, preset)
		if err != nil {
			return nil, err
		}
		cfg = p
	default:
		if cfg = config.DefaultPreset(name); cfg == nil {
			cfg = config.DefaultConfig()
			cfg.Type = name
		}
	}

	if cmd.Flags().Changed("max") {
		cfg.MaxDisplacement = maxDisp
	}
	if cmd.Flags().Changed("duration") {
		cfg.DurationMs = durationMs
	}
	if cmd.Flags().Changed("easing") {
		cfg.Easing = easing
	}
	if cmd.Flags().Changed("fps") {
		cfg.FPS = frameRate
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func typeArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return ""
}

func runLive(cmd *cobra.Command, args []string) error {
	if len(args) == 0 && configFile == "" {
		for _, t := range geom.FaultTypes() {
			args = append(args, t.String())
		}
	}
	if len(args) == 0 {
		args = []string{""}
	}

	specs := make([]viz.PanelSpec, 0, len(args))
	fps := frameRate
	for _, a := range args {
		cfg, err := resolveConfig(cmd, a)
		if err != nil {
			return err
		}
		spec, err := viz.SpecFromConfig(cfg)
		if err != nil {
			return err
		}
		specs = append(specs, spec)
		fps = cfg.FPS
	}
	return viz.RunLive(specs, fps, theme)
}

func renderFrame(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, typeArg(args))
	if err != nil {
		return err
	}
	v, err := cfg.Geometry()
	if err != nil {
		return err
	}
	f := geom.Map(displacement, v)

	if outPath == "" {
		fmt.Println(export.FrameSVG(f, width, height))
		return nil
	}

	file, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer file.Close()

	switch strings.ToLower(filepath.Ext(outPath)) {
	case ".png":
		w, h := width, height
		if w <= 0 {
			w = int(f.Width)
		}
		if h <= 0 {
			h = int(f.Height)
		}
		if err := png.Encode(file, export.Rasterize(f, w, h)); err != nil {
			return err
		}
	default:
		if _, err := file.WriteString(export.FrameSVG(f, width, height)); err != nil {
			return err
		}
	}
	fmt.Printf("wrote %s (%s, displacement %.2f, d=%.3f)\n", outPath, f.Type, f.Displacement, f.D)
	return nil
}

// playScript runs the headless playback for cfg and, when requested, saves it.
func playScript(ctx context.Context, cfg *config.Config) (*playback.Result, string, error) {
	var script *playback.Script
	if scriptFile != "" {
		s, err := playback.LoadScript(scriptFile)
		if err != nil {
			return nil, "", err
		}
		script = s
	}

	length := lengthMs
	if length <= 0 {
		length = cfg.DurationMs + 500
	}

	runner := playback.New(cfg.Animation())
	result, err := runner.Run(ctx, script, playback.Config{FPS: cfg.FPS, LengthMs: length})
	if err != nil {
		return nil, "", err
	}

	if !save {
		return result, "", nil
	}
	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return nil, "", err
	}
	runID, err := st.Save(storage.RunMeta{
		Type:            cfg.Type,
		Variant:         cfg.Variant,
		MaxDisplacement: cfg.MaxDisplacement,
		DurationMs:      cfg.DurationMs,
		FPS:             cfg.FPS,
	}, result)
	if err != nil {
		return nil, "", err
	}
	return result, runID, nil
}

func animateGIF(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cfg, err := resolveConfig(cmd, typeArg(args))
	if err != nil {
		return err
	}
	v, err := cfg.Geometry()
	if err != nil {
		return err
	}

	result, runID, err := playScript(ctx, cfg)
	if err != nil {
		return err
	}

	out := outPath
	if out == "" {
		out = cfg.Type + ".gif"
	}
	w, h := width, height
	if w <= 0 {
		w = int(v.Style.Width)
	}
	if h <= 0 {
		h = int(v.Style.Height)
	}

	file, err := os.Create(out)
	if err != nil {
		return err
	}
	defer file.Close()

	frames := export.Frames(v, result.Samples)
	opts := export.GIFOptions{Width: w, Height: h, DelayCs: 100 / cfg.FPS, Workers: workers}
	if err := export.WriteGIF(ctx, file, frames, opts); err != nil {
		return err
	}

	fmt.Printf("wrote %s: %d frames at %d fps\n", out, len(frames), cfg.FPS)
	if runID != "" {
		fmt.Printf("run saved: %s\n", runID)
	}
	return nil
}

func runTimeline(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cfg, err := resolveConfig(cmd, typeArg(args))
	if err != nil {
		return err
	}
	result, runID, err := playScript(ctx, cfg)
	if err != nil {
		return err
	}

	final := result.Final()
	fmt.Printf("type: %s\n", cfg.Type)
	fmt.Printf("samples: %d\n", len(result.Samples))
	fmt.Printf("final displacement: %.4f / %g\n\n", final.Displacement, cfg.MaxDisplacement)
	printTimeline(result, cfg.MaxDisplacement)

	if runID != "" {
		fmt.Printf("\nrun saved: %s\n", runID)
	}
	return nil
}

func printTimeline(result *playback.Result, maxValue float64) {
	graph := asciigraph.Plot(result.Displacements(),
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.LowerBound(0),
		asciigraph.UpperBound(maxValue),
		asciigraph.Caption("displacement vs time"),
	)
	fmt.Println(graph)
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTYPE\tVARIANT\tTIME\tMAX\tDURATION\tFPS\tFINAL")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%g\t%.0fms\t%d\t%.3f\n",
			run.ID,
			run.Type,
			run.Variant,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.MaxDisplacement,
			run.DurationMs,
			run.FPS,
			run.FinalDisplacement,
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	result, err := st.LoadTimeline(runID)
	if err != nil {
		return err
	}

	if len(result.Samples) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("type: %s\n", meta.Type)
	fmt.Printf("samples: %d\n\n", len(result.Samples))
	printTimeline(result, meta.MaxDisplacement)
	return nil
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	result, err := st.LoadTimeline(args[0])
	if err != nil {
		return err
	}
	if len(result.Samples) == 0 {
		return fmt.Errorf("no data to export")
	}
	return export.TimelineCSV(os.Stdout, result)
}

func exportJSON(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	result, err := st.LoadTimeline(runID)
	if err != nil {
		return err
	}

	if outPath == "" {
		return storage.ExportJSONStdout(*meta, result)
	}
	if err := storage.ExportJSON(outPath, *meta, result); err != nil {
		return err
	}
	fmt.Printf("exported %s to %s\n", runID, outPath)
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	types := geom.Types()
	if len(args) > 0 {
		t, err := geom.ParseType(args[0])
		if err != nil {
			return err
		}
		types = []geom.Type{t}
	}

	for _, t := range types {
		names := config.ListPresets(t.String())
		if len(names) == 0 {
			fmt.Printf("no presets for type: %s\n", t)
			continue
		}
		fmt.Printf("presets for %s:\n", t)
		for _, n := range names {
			p := config.GetPreset(t.String(), n)
			desc := p.Text.Title
			if desc == "" {
				desc = fmt.Sprintf("max %g, %gms", p.MaxDisplacement, p.DurationMs)
			}
			fmt.Printf("  %-16s %s\n", n, desc)
		}
	}
	return nil
}
