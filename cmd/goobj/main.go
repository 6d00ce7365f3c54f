package main

import (
	"fmt"
	"os"

	"github.com/philipparndt/goobj/pkg/transform"
	"github.com/philipparndt/goobj/version"
	"github.com/spf13/cobra"
)

// options holds the flags shared by every subcommand
type options struct {
	width      float64
	height     float64
	scale      float64
	fit        bool
	transforms []string
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "goobj",
		Short: "Inspect, transform and draw Wavefront OBJ wireframes",
		Long: `goobj loads the vertices and faces of a Wavefront OBJ file, applies a
sequence of rotations, translations and scalings to it and projects the
result onto a 2D surface as a wireframe.

Transforms are given with -t and applied in order, each in the model's
current frame:

  -t rotate:<x|y|z>[:<degrees>]     (default 15 degrees)
  -t translate:<x|y|z>[:<distance>] (default 1)
  -t scale:<factor>|up|down
  -t reset`,
		Version:       version.GetFullVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.Float64Var(&opts.width, "width", transform.DefaultViewWidth, "Viewport width in pixels")
	flags.Float64Var(&opts.height, "height", transform.DefaultViewHeight, "Viewport height in pixels")
	flags.Float64Var(&opts.scale, "scale", transform.DefaultViewScale, "Pixels per model unit")
	flags.BoolVar(&opts.fit, "fit", false, "Choose the scale so the model fills the viewport")
	flags.StringArrayVarP(&opts.transforms, "transform", "t", nil, "Transform to apply (repeatable)")

	rootCmd.AddCommand(
		newInfoCmd(opts),
		newEdgesCmd(opts),
		newSegmentsCmd(opts),
		newRenderCmd(opts),
		newViewCmd(opts),
	)

	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
