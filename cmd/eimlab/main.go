package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/eimlab/internal/config"
	"github.com/san-kum/eimlab/internal/grid"
	"github.com/san-kum/eimlab/internal/optic"
	"github.com/san-kum/eimlab/internal/slab"
	"github.com/san-kum/eimlab/internal/slot"
	"github.com/san-kum/eimlab/internal/storage"
	"github.com/san-kum/eimlab/internal/sweep"
	"github.com/san-kum/eimlab/internal/viz"
	"github.com/san-kum/eimlab/internal/waveguide"
	"github.com/spf13/cobra"
)

var (
	dataDir     string
	device      string
	mode        string
	tCore       float64
	tSlab       float64
	widths      []float64
	gaps        []float64
	wavelengths []float64
	orders      []int
	indices     string
	workers     int
	// Config file and preset
	configFile string
	preset     string
	// Persist run to the data directory
	saveRun bool
	// Field map sampling
	fieldPoints int
	fieldExtent float64
	outFile     string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "eimlab",
		Short: "effective index method waveguide lab",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".eimlab", "data directory")

	solveCmd := &cobra.Command{
		Use:   "solve",
		Short: "sweep effective indices over geometry and wavelength",
		RunE:  runSolve,
	}
	addSolveFlags(solveCmd)
	solveCmd.Flags().BoolVar(&saveRun, "save", false, "save results to the data directory")

	slabCmd := &cobra.Command{
		Use:   "slab",
		Short: "solve a three-layer slab",
		RunE:  runSlab,
	}
	slabCmd.Flags().StringVar(&indices, "index", "1.44,3.47,1.44", "layer indices n1,n2,n3")
	slabCmd.Flags().Float64Var(&tCore, "thickness", config.DefaultTCore, "core thickness (um)")
	slabCmd.Flags().Float64SliceVar(&wavelengths, "lambda", []float64{config.DefaultWavelength}, "wavelength (um)")
	slabCmd.Flags().IntSliceVar(&orders, "order", []int{0}, "mode order")

	slotSlabCmd := &cobra.Command{
		Use:   "slot-slab",
		Short: "solve a five-layer slot slab",
		RunE:  runSlotSlab,
	}
	slotSlabCmd.Flags().StringVar(&indices, "index", "1.44,3.47,1.44", "indices n_clad,n_core,n_slot")
	slotSlabCmd.Flags().Float64SliceVar(&widths, "width", []float64{0.18}, "core width (um)")
	slotSlabCmd.Flags().Float64SliceVar(&gaps, "gap", []float64{0.1}, "slot width (um)")
	slotSlabCmd.Flags().Float64SliceVar(&wavelengths, "lambda", []float64{config.DefaultWavelength}, "wavelength (um)")
	slotSlabCmd.Flags().IntSliceVar(&orders, "order", []int{0}, "mode order")

	fieldCmd := &cobra.Command{
		Use:   "field",
		Short: "compute a 2D mode field map",
		RunE:  runField,
	}
	addSolveFlags(fieldCmd)
	fieldCmd.Flags().IntVar(&fieldPoints, "points", 128, "samples per axis")
	fieldCmd.Flags().Float64Var(&fieldExtent, "extent", 2.0, "half-extent of the map (um)")
	fieldCmd.Flags().StringVar(&outFile, "out", "", "write CSV to file instead of the data directory")

	profileCmd := &cobra.Command{
		Use:   "profile",
		Short: "plot a 1D slab mode profile",
		RunE:  runProfile,
	}
	profileCmd.Flags().StringVar(&indices, "index", "1.44,3.47,1.44", "layer indices n1,n2,n3")
	profileCmd.Flags().Float64Var(&tCore, "thickness", config.DefaultTCore, "core thickness (um)")
	profileCmd.Flags().Float64SliceVar(&wavelengths, "lambda", []float64{config.DefaultWavelength}, "wavelength (um)")
	profileCmd.Flags().IntSliceVar(&orders, "order", []int{0}, "mode order")
	profileCmd.Flags().StringVar(&mode, "mode", "TE", "polarization (TE or TM)")
	profileCmd.Flags().IntVar(&fieldPoints, "points", 256, "samples")
	profileCmd.Flags().Float64Var(&fieldExtent, "extent", 1.0, "half-extent beyond the core (um)")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "interactive strip waveguide explorer",
		RunE:  runLive,
	}
	addSolveFlags(liveCmd)
	liveCmd.Flags().IntVar(&fieldPoints, "points", 64, "samples per axis")
	liveCmd.Flags().Float64Var(&fieldExtent, "extent", 1.5, "half-extent of the field cut (um)")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		RunE:  listRuns,
	}

	showCmd := &cobra.Command{
		Use:   "show [run_id]",
		Short: "show run metadata",
		Args:  cobra.ExactArgs(1),
		RunE:  showRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run results to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run results to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets [device]",
		Short: "list available presets for a device",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			presets := config.ListPresets(args[0])
			if len(presets) == 0 {
				fmt.Printf("no presets for device: %s\n", args[0])
				return nil
			}
			fmt.Printf("presets for %s:\n", args[0])
			for _, p := range presets {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	rootCmd.AddCommand(solveCmd, slabCmd, slotSlabCmd, fieldCmd, profileCmd, liveCmd, listCmd, showCmd, exportCSVCmd, exportJSONCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addSolveFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&device, "device", "strip", "device type (strip or slot)")
	cmd.Flags().StringVar(&mode, "mode", "TE", "polarization (TE or TM)")
	cmd.Flags().Float64Var(&tCore, "t-core", config.DefaultTCore, "core thickness (um)")
	cmd.Flags().Float64Var(&tSlab, "t-slab", 0, "slab thickness outside the rib (um)")
	cmd.Flags().Float64SliceVar(&widths, "width", []float64{config.DefaultWidth}, "core widths (um)")
	cmd.Flags().Float64SliceVar(&gaps, "gap", nil, "slot widths (um)")
	cmd.Flags().Float64SliceVar(&wavelengths, "lambda", []float64{config.DefaultWavelength}, "wavelengths (um)")
	cmd.Flags().IntSliceVar(&orders, "order", []int{0}, "mode orders")
	cmd.Flags().StringVar(&indices, "index", "", "indices n_box,n_core,n_clad[,n_slot]")
	cmd.Flags().IntVar(&workers, "workers", 0, "worker goroutines (0 = sequential)")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
}

// buildConfig resolves one effective configuration from preset, config
// file and flags, in increasing precedence.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(device, preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(device))
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("device") || cfg.Device == "" {
		cfg.Device = device
	}
	if cmd.Flags().Changed("mode") || cfg.Mode == "" {
		cfg.Mode = mode
	}
	if cmd.Flags().Changed("t-core") {
		cfg.Geometry.TCore = tCore
	}
	if cmd.Flags().Changed("t-slab") {
		cfg.Geometry.TSlab = tSlab
	}
	if cmd.Flags().Changed("width") {
		cfg.Widths = widths
	}
	if cmd.Flags().Changed("gap") {
		cfg.Gaps = gaps
	}
	if cmd.Flags().Changed("lambda") {
		cfg.Wavelengths = wavelengths
	}
	if cmd.Flags().Changed("order") {
		cfg.Orders = orders
	}
	if cmd.Flags().Changed("workers") {
		cfg.Workers = workers
	}
	if cmd.Flags().Changed("index") {
		n, err := parseIndices(indices)
		if err != nil {
			return nil, err
		}
		if len(n) < 3 {
			return nil, fmt.Errorf("need at least three indices: n_box,n_core,n_clad")
		}
		cfg.Indices.Box = n[0]
		cfg.Indices.Core = n[1]
		cfg.Indices.Clad = n[2]
		if len(n) > 3 {
			cfg.Indices.Slot = n[3]
		}
	}
	if cmd.Flags().Changed("points") {
		cfg.Field.Points = fieldPoints
	}
	if cmd.Flags().Changed("extent") {
		cfg.Field.Extent = fieldExtent
	}
	if cfg.Field.Points == 0 {
		cfg.Field.Points = fieldPoints
	}
	if cfg.Field.Extent == 0 {
		cfg.Field.Extent = fieldExtent
	}

	return cfg, nil
}

func parseIndices(s string) ([]float64, error) {
	parts := strings.Split(s, ",")
	out := make([]float64, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("bad refractive index %q: %w", p, err)
		}
		if v <= 0 {
			return nil, fmt.Errorf("refractive index must be positive, got %g", v)
		}
		out = append(out, v)
	}
	return out, nil
}

func runSolve(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	job, err := sweep.FromConfig(cfg)
	if err != nil {
		return err
	}

	start := time.Now()
	rows, err := job.Run()
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	records := make([][]string, len(rows))
	for i, r := range rows {
		records[i] = job.Record(r)
	}

	w := csv.NewWriter(os.Stdout)
	if err := w.Write(job.Header()); err != nil {
		return err
	}
	if err := w.WriteAll(records); err != nil {
		return err
	}
	w.Flush()

	if saveRun {
		st := storage.New(dataDir)
		if err := st.Init(); err != nil {
			return err
		}
		runID, err := st.Save(cfg, job.Header(), records)
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "solved %d points in %v\n", len(rows), elapsed)
		fmt.Fprintf(os.Stderr, "run id: %s\n", runID)
	}

	return nil
}

func runSlab(cmd *cobra.Command, args []string) error {
	n, err := parseIndices(indices)
	if err != nil {
		return err
	}
	if len(n) != 3 {
		return fmt.Errorf("slab needs exactly three indices: n1,n2,n3")
	}

	for _, lambda := range wavelengths {
		for _, order := range orders {
			r := slab.Solve(n[0], n[1], n[2], lambda, tCore, order)
			fmt.Printf("TE%d: %g\n", order, r.TE)
			fmt.Printf("TM%d: %g\n", order, r.TM)
		}
	}
	return nil
}

func runSlotSlab(cmd *cobra.Command, args []string) error {
	n, err := parseIndices(indices)
	if err != nil {
		return err
	}
	if len(n) != 3 {
		return fmt.Errorf("slot-slab needs exactly three indices: n_clad,n_core,n_slot")
	}

	for _, lambda := range wavelengths {
		for _, g := range gaps {
			for _, w := range widths {
				for _, order := range orders {
					r := slot.Solve(n[0], n[1], n[2], lambda, g, w, order)
					fmt.Printf("even%d: %g\n", order, r.Even)
					fmt.Printf("odd%d: %g\n", order, r.Odd)
				}
			}
		}
	}
	return nil
}

func runField(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	if err := cfg.ValidateField(); err != nil {
		return err
	}

	job, err := sweep.FromConfig(cfg)
	if err != nil {
		return err
	}

	x := grid.Linspace(-cfg.Field.Extent, cfg.Field.Extent, cfg.Field.Points)

	header := []string{"t_slab", "t_rib", "width", "mode", "transverse", "lateral", "amplitude"}
	var records [][]string

	for _, r := range job.Points() {
		field, err := job.Waveguide(r).ModeField2D(x, x, cfg.Workers)
		if err != nil {
			return err
		}
		modeLabel := fmt.Sprintf("%s%d", job.Mode, r.Order)
		for i, xi := range x {
			for jj, xj := range x {
				amp := field[i][jj]
				records = append(records, []string{
					strconv.FormatFloat(job.TSlab, 'g', 3, 64),
					strconv.FormatFloat(job.TCore, 'g', 3, 64),
					strconv.FormatFloat(r.Width, 'g', 3, 64),
					modeLabel,
					strconv.FormatFloat(xi, 'g', 6, 64),
					strconv.FormatFloat(xj, 'g', 6, 64),
					strconv.FormatFloat(real(amp), 'g', 6, 64),
				})
			}
		}
	}

	out := outFile
	if out == "" {
		out = cfg.Field.Output
	}
	if out != "" {
		return storage.WriteCSV(out, header, records)
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	runID, err := st.SaveField(cfg, header, records)
	if err != nil {
		return err
	}
	fmt.Printf("run id: %s\n", runID)
	return nil
}

func runProfile(cmd *cobra.Command, args []string) error {
	n, err := parseIndices(indices)
	if err != nil {
		return err
	}
	if len(n) != 3 {
		return fmt.Errorf("profile needs exactly three indices: n1,n2,n3")
	}
	m, err := optic.ParseMode(mode)
	if err != nil {
		return err
	}

	lambda := wavelengths[0]
	order := orders[0]

	r := slab.Solve(n[0], n[1], n[2], lambda, tCore, order)
	neff := r.Index(m)

	x := grid.Linspace(-fieldExtent, tCore+fieldExtent, fieldPoints)
	p := slab.Mode1D(m, x, neff, n[0], n[1], n[2], lambda, tCore, order, workers)

	fmt.Printf("%s%d  neff = %.6g\n\n", m, order, neff)
	fmt.Println(viz.RenderProfile(p, fmt.Sprintf("%s%d amplitude", m, order)))
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	if cfg.Device != "strip" {
		return fmt.Errorf("live mode supports strip devices only")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	m, err := optic.ParseMode(cfg.Mode)
	if err != nil {
		return err
	}

	s := waveguide.Strip{
		Wavelength: cfg.Wavelengths[0],
		TRib:       cfg.Geometry.TCore,
		TSlab:      cfg.Geometry.TSlab,
		WRib:       cfg.Widths[0],
		NBox:       cfg.Indices.Box,
		NCore:      cfg.Indices.Core,
		NClad:      cfg.Indices.Clad,
		Order:      cfg.Orders[0],
		Mode:       m,
	}

	p := tea.NewProgram(viz.NewModel(s, cfg.Field.Points, cfg.Field.Extent))
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
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
	fmt.Fprintln(w, "ID\tDEVICE\tMODE\tTIME")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			run.ID,
			run.Device,
			run.Mode,
			run.Timestamp.Format("2006-01-02 15:04:05"),
		)
	}

	return w.Flush()
}

func showRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	header, records, err := st.LoadCSV(args[0], storage.ResultsFile)
	if err != nil {
		return err
	}

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	if err := w.Write(header); err != nil {
		return err
	}
	return w.WriteAll(records)
}

func exportJSON(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	header, records, err := st.LoadCSV(args[0], storage.ResultsFile)
	if err != nil {
		return err
	}

	return storage.ExportJSONStdout(meta, header, records)
}
