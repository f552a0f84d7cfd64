package main

import (
	"errors"
	"os"

	"github.com/katalvlaran/lvmaze/export"
	"github.com/katalvlaran/lvmaze/maze"
	"github.com/spf13/cobra"
)

func newRenderCmd(a *app) *cobra.Command {
	var (
		runID string
		from  string
		out   outputs
	)
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Regenerate an archived run or a YAML document and write its artifacts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := a.sourceConfig(cmd, runID, from)
			if err != nil {
				return err
			}
			res, err := maze.Generate(cfg, a.log)
			if err != nil {
				return a.failure("generate", err)
			}
			return a.emit(cmd, res, out)
		},
	}
	cmd.Flags().StringVar(&runID, "run", "", "archived run id")
	cmd.Flags().StringVar(&from, "from", "", "YAML document written by 'generate --yaml'")
	cmd.MarkFlagsMutuallyExclusive("run", "from")
	cmd.MarkFlagsOneRequired("run", "from")
	out.register(cmd)
	return cmd
}

// sourceConfig recovers the maze.Config of an archived run or a document.
func (a *app) sourceConfig(cmd *cobra.Command, runID, from string) (maze.Config, error) {
	if runID != "" {
		s, err := a.openStore(cmd.Context())
		if err != nil {
			return maze.Config{}, err
		}
		defer s.Close()
		run, err := s.Get(cmd.Context(), runID)
		if err != nil {
			return maze.Config{}, a.failure("store", err)
		}
		cfg, err := run.MazeConfig()
		if err != nil {
			return maze.Config{}, a.failure("store", err)
		}
		return cfg, nil
	}

	f, err := os.Open(from)
	if err != nil {
		return maze.Config{}, a.failure("config", err)
	}
	defer f.Close()
	doc, err := export.ReadYAML(f)
	if err != nil {
		return maze.Config{}, a.failure("config", err)
	}
	if doc.Config.Rows == 0 {
		return maze.Config{}, a.failure("config", errors.New("document has no generate config"))
	}
	return doc.Config, nil
}
