package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/philipparndt/goobj/internal/app"
	"github.com/philipparndt/goobj/pkg/obj"
	"github.com/philipparndt/goobj/pkg/transform"
)

// fitFill is the share of the viewport a model covers with --fit
const fitFill = 0.8

func (o *options) viewport() (app.Viewport, error) {
	vp := app.Viewport{Width: o.width, Height: o.height, Scale: o.scale}
	if err := vp.Validate(); err != nil {
		return app.Viewport{}, err
	}
	return vp, nil
}

func (o *options) requests() ([]transform.Request, error) {
	requests := make([]transform.Request, 0, len(o.transforms))
	for _, s := range o.transforms {
		req, err := transform.ParseRequest(s)
		if err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}
	return requests, nil
}

// openSession loads filename and applies the requested transforms. A
// status line is written to status.
func (o *options) openSession(filename string, status io.Writer) (*app.Session, error) {
	vp, err := o.viewport()
	if err != nil {
		return nil, err
	}
	requests, err := o.requests()
	if err != nil {
		return nil, err
	}

	session := app.NewSession(vp)
	if err := session.Load(filename); err != nil {
		return nil, describeLoadError(filename, err)
	}

	m := session.Mesh()
	fmt.Fprintf(status, "A total of %d vertices and %d faces has been loaded.\n", m.VertexCount(), m.FaceCount())

	if o.fit {
		session.SetScale(vp.FitScale(m.BoundingBox(), fitFill))
	}
	for _, req := range requests {
		if err := session.Apply(req); err != nil {
			return nil, fmt.Errorf("failed to apply %v: %w", req, err)
		}
	}

	return session, nil
}

func describeLoadError(filename string, err error) error {
	switch {
	case errors.Is(err, obj.ErrWrongFileFormat):
		return fmt.Errorf("%s is not a usable OBJ file: %w", filename, err)
	case errors.Is(err, obj.ErrSourceUnavailable):
		return fmt.Errorf("there was a problem opening %s: %w", filename, err)
	}
	return fmt.Errorf("failed to load %s: %w", filename, err)
}
