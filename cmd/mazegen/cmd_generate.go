package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvmaze/export"
	"github.com/katalvlaran/lvmaze/grid"
	"github.com/katalvlaran/lvmaze/maze"
	"github.com/katalvlaran/lvmaze/store"
	"github.com/spf13/cobra"
)

// outputs selects what a command writes for a finished maze.
type outputs struct {
	yamlPath string
	pngPath  string
	ascii    bool
	solution bool
	scale    float64
}

func (o *outputs) register(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVar(&o.yamlPath, "yaml", "", "write the YAML document to this file")
	f.StringVar(&o.pngPath, "png", "", "write a PNG preview to this file")
	f.BoolVar(&o.ascii, "ascii", false, "print an ASCII drawing (square and weave grids)")
	f.BoolVar(&o.solution, "solution", false, "draw the diameter path on the PNG")
	f.Float64Var(&o.scale, "scale", 24, "PNG pixels per grid unit")
}

// generateFlags mirror maze.Config; only flags the user set override the file.
type generateFlags struct {
	topology  string
	wrap      string
	weave     string
	masks     []string
	rows      int
	cols      int
	levels    int
	cellSize  float64
	algorithm string
	seed      int64
	maxSteps  int
	bias      float64
	relWeight float64
	braid     float64
	sparse    float64
	save      bool
}

func newGenerateCmd(a *app) *cobra.Command {
	var (
		gf  generateFlags
		out outputs
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate one maze",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := gf.apply(cmd, a.cfg.Generate)
			if err != nil {
				return a.failure("config", err)
			}
			res, err := maze.Generate(cfg, a.log)
			if err != nil {
				return a.failure("generate", err)
			}
			if a.metrics != nil {
				a.metrics.Observe(res)
			}
			fmt.Fprintln(cmd.OutOrStdout(), summary(res))

			if gf.save {
				id, err := a.archive(cmd, res)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "saved run", id)
			}
			return a.emit(cmd, res, out)
		},
	}

	f := cmd.Flags()
	f.StringVar(&gf.topology, "topology", "", "square, triangle, hex, polar or weave")
	f.StringVar(&gf.wrap, "wrap", "", "none, cylinder, mobius or torus")
	f.StringVar(&gf.weave, "weave", "", "weave strategy: tunnels or crossings")
	f.StringArrayVar(&gf.masks, "mask", nil, "mask rectangle x0,y0,x1,y1 (repeatable)")
	f.IntVar(&gf.rows, "rows", 0, "rows (rings for polar)")
	f.IntVar(&gf.cols, "cols", 0, "columns (ignored for polar)")
	f.IntVar(&gf.levels, "levels", 0, "levels (square only)")
	f.Float64Var(&gf.cellSize, "cell-size", 0, "cell edge length in grid units")
	f.StringVar(&gf.algorithm, "algorithm", "", "carving algorithm (see 'mazegen algorithms')")
	f.Int64Var(&gf.seed, "seed", 0, "random seed (0 selects the default seed)")
	f.IntVar(&gf.maxSteps, "max-steps", 0, "step budget for carving")
	f.Float64Var(&gf.bias, "bias", 0, "choice bias in [-1,1]")
	f.Float64Var(&gf.relWeight, "relative-weight", 0, "scale applied to bias (<= 0 selects 1)")
	f.Float64Var(&gf.braid, "braid", 0, "fraction of dead ends to braid away")
	f.Float64Var(&gf.sparse, "sparse", 0, "fraction of cells to cull as dead ends")
	f.BoolVar(&gf.save, "save", false, "archive the run in the configured store")
	out.register(cmd)
	return cmd
}

// apply overlays the changed flags on base.
func (gf generateFlags) apply(cmd *cobra.Command, base maze.Config) (maze.Config, error) {
	cfg := base
	changed := cmd.Flags().Changed
	var err error
	if changed("topology") {
		if cfg.Topology, err = grid.ParseTopology(gf.topology); err != nil {
			return cfg, err
		}
	}
	if changed("wrap") {
		if cfg.Wrap, err = grid.ParseWrap(gf.wrap); err != nil {
			return cfg, err
		}
	}
	if changed("weave") {
		if cfg.Weave, err = grid.ParseWeaveStrategy(gf.weave); err != nil {
			return cfg, err
		}
	}
	if changed("mask") {
		cfg.Masks = nil
		for _, m := range gf.masks {
			rect, err := parseMask(m)
			if err != nil {
				return cfg, err
			}
			cfg.Masks = append(cfg.Masks, rect)
		}
	}
	if changed("rows") {
		cfg.Rows = gf.rows
	}
	if changed("cols") {
		cfg.Columns = gf.cols
	}
	if changed("levels") {
		cfg.Levels = gf.levels
	}
	if changed("cell-size") {
		cfg.CellSize = gf.cellSize
	}
	if changed("algorithm") {
		cfg.Algorithm = gf.algorithm
	}
	if changed("seed") {
		cfg.Seed = gf.seed
	}
	if changed("max-steps") {
		cfg.MaxSteps = gf.maxSteps
	}
	if changed("bias") {
		cfg.Bias = gf.bias
	}
	if changed("relative-weight") {
		cfg.RelativeWeight = gf.relWeight
	}
	if changed("braid") {
		cfg.Braid = gf.braid
	}
	if changed("sparse") {
		cfg.Sparse = gf.sparse
	}
	return cfg, cfg.Validate()
}

func parseMask(s string) ([4]int, error) {
	var rect [4]int
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return rect, fmt.Errorf("%w: mask %q wants x0,y0,x1,y1", maze.ErrInvalidConfig, s)
	}
	for k, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return rect, fmt.Errorf("%w: mask %q: %w", maze.ErrInvalidConfig, s, err)
		}
		rect[k] = v
	}
	return rect, nil
}

func summary(res *maze.Result) string {
	return fmt.Sprintf("%s %s seed=%d cells=%d links=%d dead_ends=%d diameter=%d steps=%d exhausted=%t",
		res.Config.Topology, res.Carve.Algorithm, res.Config.Seed, res.Stats.Cells, res.Stats.Links,
		res.Stats.DeadEnds, res.Diameter.Length, res.Carve.Steps, res.Carve.Exhausted)
}

func (a *app) archive(cmd *cobra.Command, res *maze.Result) (string, error) {
	s, err := a.openStore(cmd.Context())
	if err != nil {
		return "", err
	}
	defer s.Close()
	run, err := store.NewRun(res)
	if err != nil {
		return "", a.failure("store", err)
	}
	if err := s.Save(cmd.Context(), &run); err != nil {
		return "", a.failure("store", err)
	}
	a.log.Info("run archived", "id", run.ID)
	return run.ID, nil
}

// emit writes the requested artifacts for res.
func (a *app) emit(cmd *cobra.Command, res *maze.Result, out outputs) error {
	if out.ascii {
		text, err := export.ASCII(res)
		if err != nil {
			return a.failure("export", err)
		}
		fmt.Fprint(cmd.OutOrStdout(), text)
	}
	if out.yamlPath != "" {
		if err := writeFile(out.yamlPath, func(f *os.File) error { return export.WriteYAML(f, res) }); err != nil {
			return a.failure("export", err)
		}
		a.log.Info("yaml written", "path", out.yamlPath)
	}
	if out.pngPath != "" {
		write := func(f *os.File) error {
			return export.WritePNG(f, res, export.WithScale(out.scale), export.WithSolution(out.solution))
		}
		if err := writeFile(out.pngPath, write); err != nil {
			return a.failure("export", err)
		}
		a.log.Info("png written", "path", out.pngPath)
	}
	return nil
}

func writeFile(path string, write func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
