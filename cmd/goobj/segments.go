package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSegmentsCmd(opts *options) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "segments [file]",
		Short: "Print the projected wireframe as 2D line segments",
		Long: `Print one line "x1 y1 x2 y2" per face edge in viewport coordinates, after
applying the transforms given with -t and the viewport projection.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := opts.openSession(args[0], cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			segments, err := session.Segments()
			if err != nil {
				return err
			}
			if limit > 0 && len(segments) > limit {
				segments = segments[:limit]
			}

			out := cmd.OutOrStdout()
			for _, s := range segments {
				fmt.Fprintf(out, "%.3f %.3f %.3f %.3f\n", s.X1, s.Y1, s.X2, s.Y2)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Print at most this many segments (0 for all)")
	return cmd
}
