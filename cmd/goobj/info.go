package main

import (
	"fmt"

	"github.com/philipparndt/goobj/pkg/analysis"
	"github.com/spf13/cobra"
)

func newInfoCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "info [file]",
		Short: "Display general information about an OBJ file",
		Long:  "Show vertex, face and edge counts, model-space dimensions, edge length statistics and the transform built from -t.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(cmd, opts, args[0])
		},
	}
}

func runInfo(cmd *cobra.Command, opts *options, filename string) error {
	session, err := opts.openSession(filename, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	result := analysis.AnalyzeMesh(session.Mesh())

	fmt.Fprintln(out, "OBJ File Information")
	fmt.Fprintln(out, "====================")
	fmt.Fprintf(out, "File: %s\n\n", filename)

	fmt.Fprintln(out, "Model Statistics:")
	fmt.Fprintf(out, "  Vertices: %d\n", result.VertexCount)
	fmt.Fprintf(out, "  Faces: %d\n", result.FaceCount)
	fmt.Fprintf(out, "  Edges: %d\n\n", result.EdgeCount)

	if !result.BoundingBox.Empty() {
		fmt.Fprintln(out, "Bounding Box:")
		fmt.Fprintf(out, "  Min: %s\n", analysis.FormatVector(result.BoundingBox.Min))
		fmt.Fprintf(out, "  Max: %s\n", analysis.FormatVector(result.BoundingBox.Max))
		fmt.Fprintf(out, "  Center: %s\n", analysis.FormatVector(result.BoundingBox.Center()))
		fmt.Fprintf(out, "  Diagonal: %.6f units\n\n", result.BoundingBox.Diagonal())
	}

	if result.EdgeCount > 0 {
		fmt.Fprintln(out, "Edge Lengths:")
		fmt.Fprintf(out, "  Minimum: %.6f units\n", result.MinEdgeLength)
		fmt.Fprintf(out, "  Maximum: %.6f units\n", result.MaxEdgeLength)
		fmt.Fprintf(out, "  Average: %.6f units\n\n", result.AvgEdgeLength)
	}

	vp := session.Viewport()
	fmt.Fprintf(out, "Viewport: %gx%g, scale %g\n\n", vp.Width, vp.Height, vp.Scale)

	fmt.Fprintln(out, "Current Transform:")
	fmt.Fprintln(out, session.Current())
	return nil
}
