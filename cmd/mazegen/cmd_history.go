package main

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/katalvlaran/lvmaze/store"
	"github.com/spf13/cobra"
)

func newHistoryCmd(a *app) *cobra.Command {
	var opts store.ListOptions
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List archived runs, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := a.openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer s.Close()
			runs, err := s.List(cmd.Context(), opts)
			if err != nil {
				return a.failure("store", err)
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tCREATED\tTOPOLOGY\tALGORITHM\tSEED\tCELLS\tDEAD ENDS\tDIAMETER")
			for _, r := range runs {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\t%d\t%d\t%d\n",
					r.ID, r.CreatedAt.Format(time.DateTime), r.Topology, r.Algorithm,
					r.Seed, r.Cells, r.DeadEnds, r.Diameter)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().StringVar(&opts.Algorithm, "algorithm", "", "only runs of this algorithm")
	cmd.Flags().StringVar(&opts.Topology, "topology", "", "only runs on this topology")
	cmd.Flags().IntVar(&opts.Limit, "limit", 20, "maximum rows")

	cmd.AddCommand(&cobra.Command{
		Use:   "delete ID",
		Short: "Remove an archived run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer s.Close()
			if err := s.Delete(cmd.Context(), args[0]); err != nil {
				return a.failure("store", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "deleted run", args[0])
			return nil
		},
	})
	return cmd
}
