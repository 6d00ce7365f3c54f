package main

import (
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/philipparndt/goobj/pkg/render"
	"github.com/spf13/cobra"
)

func newRenderCmd(opts *options) *cobra.Command {
	var (
		output  string
		caption bool
	)

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Draw the wireframe into a PNG image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := args[0]
			session, err := opts.openSession(filename, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			vp := session.Viewport()
			raster := render.NewRaster(int(math.Round(vp.Width)), int(math.Round(vp.Height)))
			count, err := session.Render(raster)
			if err != nil {
				return err
			}
			if caption {
				m := session.Mesh()
				raster.Caption(fmt.Sprintf("%s  %d vertices  %d faces", filepath.Base(filename), m.VertexCount(), m.FaceCount()))
			}

			file, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("failed to create %s: %w", output, err)
			}
			if err := raster.WritePNG(file); err != nil {
				file.Close()
				return err
			}
			if err := file.Close(); err != nil {
				return fmt.Errorf("failed to write %s: %w", output, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Rendered %d segments to %s\n", count, output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "out", "o", "wireframe.png", "Output PNG file")
	cmd.Flags().BoolVar(&caption, "caption", false, "Write the file name and counts into the image")
	return cmd
}
