package main

import (
	"fmt"
	"path/filepath"
	"time"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
	"github.com/philipparndt/goobj/internal/app"
	"github.com/philipparndt/goobj/pkg/viewer"
	"github.com/philipparndt/goobj/pkg/watcher"
	"github.com/spf13/cobra"
)

const reloadDebounce = 300 * time.Millisecond

func newViewCmd(opts *options) *cobra.Command {
	var watch bool

	cmd := &cobra.Command{
		Use:   "view [file]",
		Short: "Show the wireframe in a window",
		Long: `Open a window showing the wireframe. The viewport follows the window size.
With --watch the file is reloaded whenever it changes; if the new content
cannot be loaded the last good model stays on screen.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := opts.openSession(args[0], cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			return runView(cmd, session, watch)
		},
	}

	cmd.Flags().BoolVarP(&watch, "watch", "w", true, "Reload the model when the file changes")
	return cmd
}

func runView(cmd *cobra.Command, session *app.Session, watch bool) error {
	stderr := cmd.ErrOrStderr()
	filename := session.Path()

	a := fyneapp.New()
	w := a.NewWindow("goobj - " + filepath.Base(filename))

	view := viewer.NewWireframeView()
	redraw := func() {
		if _, err := session.Render(view); err != nil {
			fmt.Fprintf(stderr, "Error rendering %s: %v\n", filename, err)
		}
	}
	view.OnResize = func(width, height float64) {
		session.Resize(width, height)
		redraw()
	}

	if watch {
		fw, err := watcher.NewFileWatcher(reloadDebounce)
		if err != nil {
			return err
		}
		defer fw.Close()

		err = fw.Watch(filename, func(string) {
			fyne.Do(func() {
				if err := session.Reload(); err != nil {
					fmt.Fprintf(stderr, "Error reloading %s: %v\n", filename, err)
					return
				}
				m := session.Mesh()
				fmt.Fprintf(stderr, "Reloaded %s: %d vertices and %d faces.\n", filename, m.VertexCount(), m.FaceCount())
				redraw()
			})
		})
		if err != nil {
			return err
		}
		fw.Start()
		fmt.Fprintf(stderr, "Watching %s for changes\n", filename)
	}

	vp := session.Viewport()
	w.SetContent(view)
	w.Resize(fyne.NewSize(float32(vp.Width), float32(vp.Height)))
	redraw()
	w.ShowAndRun()
	return nil
}
