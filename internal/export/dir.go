package export

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/san-kum/gradviz/internal/surface"
	"github.com/san-kum/gradviz/internal/viz"
)

// File names written by Exporter.Export.
const (
	SceneFile  = "scene.svg"
	SliceFile  = "slice.svg"
	GridFile   = "grid.csv"
	ResultFile = "result.json"
)

const (
	svgScale    = 4.0
	plotWidth   = 640
	plotHeight  = 360
	sliceWindow = 1.0
)

// Exporter writes the artifacts of one evaluation into a directory.
type Exporter struct {
	baseDir string
	Camera  *viz.Camera
	Theme   viz.Theme
	Width   int
	Height  int
	Axis    surface.Axis
}

func New(baseDir string, cam *viz.Camera, th viz.Theme) *Exporter {
	return &Exporter{baseDir: baseDir, Camera: cam, Theme: th, Width: 80, Height: 32, Axis: surface.AxisX}
}

func (e *Exporter) Init() error {
	return os.MkdirAll(e.baseDir, 0755)
}

// Export writes the scene, the cross-section plot, the sampled grid and
// the evaluation, and returns the paths written.
func (e *Exporter) Export(r *surface.Result) ([]string, error) {
	if err := e.Init(); err != nil {
		return nil, err
	}

	canvas := viz.RenderScene(viz.BuildScene(r), e.Camera, e.Width, e.Height)
	ts, zs := r.Variant.Slice(e.Axis, r.Point, surface.GridSize)
	tangent := r.TangentLine(e.Axis, ts, sliceWindow)

	files := []struct {
		name  string
		write func(io.Writer) error
	}{
		{SceneFile, writeString(CanvasToSVG(canvas, svgScale, e.Theme))},
		{SliceFile, writeString(PlotToSVG(ts, []Series{
			{Ys: zs, Stroke: string(e.Theme.Primary)},
			{Ys: tangent, Stroke: string(e.Theme.Arrow)},
		}, plotWidth, plotHeight))},
		{GridFile, func(w io.Writer) error { return WriteGridCSV(w, r.Grid) }},
		{ResultFile, func(w io.Writer) error { return WriteResultJSON(w, r) }},
	}

	paths := make([]string, 0, len(files))
	for _, f := range files {
		path := filepath.Join(e.baseDir, f.name)
		if err := writeFile(path, f.write); err != nil {
			return paths, fmt.Errorf("export %s: %w", f.name, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func writeString(s string) func(io.Writer) error {
	return func(w io.Writer) error {
		_, err := io.WriteString(w, s)
		return err
	}
}

// writeFile buffers the output; nothing is written if encoding fails.
func writeFile(path string, write func(io.Writer) error) error {
	var buf bytes.Buffer
	if err := write(&buf); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0644)
}
