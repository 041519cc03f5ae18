package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/san-kum/gradviz/internal/surface"
	"github.com/san-kum/gradviz/internal/viz"
)

func mustEvaluate(t *testing.T, v surface.Variant, x, y float64) *surface.Result {
	t.Helper()
	r, err := surface.Evaluate(v, surface.Point{X: x, Y: y})
	if err != nil {
		t.Fatal(err)
	}
	return r
}

func TestCanvasToSVG(t *testing.T) {
	if CanvasToSVG(nil, 1, viz.ThemeViridis) != "" {
		t.Error("nil canvas should produce no output")
	}

	c := viz.NewCanvas(2, 1)
	c.Set(0, 0, viz.LayerMarker)
	c.Set(3, 3, viz.SurfaceLayer(0))
	svg := CanvasToSVG(c, 2, viz.ThemeViridis)

	if !strings.HasPrefix(svg, "<?xml") || !strings.HasSuffix(svg, "</svg>\n") {
		t.Fatalf("malformed svg:\n%s", svg)
	}
	if n := strings.Count(svg, "<circle"); n != 2 {
		t.Errorf("circles = %d, want 2", n)
	}
	if !strings.Contains(svg, `fill="`+string(viz.ThemeViridis.Marker)+`"`) {
		t.Error("marker dot not colored with the theme marker color")
	}
	if !strings.Contains(svg, `fill="`+string(viz.ThemeViridis.Ramp[0])+`"`) {
		t.Error("surface dot not colored with the lowest ramp color")
	}
	if !strings.Contains(svg, `width="8" height="8"`) {
		t.Errorf("unexpected size:\n%s", svg)
	}
}

func TestPlotToSVG(t *testing.T) {
	ts := []float64{0, 1, 2, 3}
	svg := PlotToSVG(ts, []Series{
		{Ys: []float64{0, 1, 4, 9}, Stroke: "#fff"},
		{Ys: []float64{math.NaN(), 1, 2, math.NaN()}, Stroke: "#f00"},
	}, 100, 50)
	if n := strings.Count(svg, "<path"); n != 2 {
		t.Fatalf("paths = %d, want 2:\n%s", n, svg)
	}
	if !strings.Contains(svg, `stroke="#f00"`) {
		t.Error("second series stroke missing")
	}
	if PlotToSVG(ts[:1], nil, 10, 10) != "" {
		t.Error("single sample should produce no plot")
	}
}

func TestWriteResultJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteResultJSON(&buf, mustEvaluate(t, surface.Saddle, 1, 1)); err != nil {
		t.Fatal(err)
	}
	var got ResultData
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	if got.Function != "saddle" || got.Gradient != [2]float64{2, -2} || got.Value != 0 {
		t.Errorf("decoded = %+v", got)
	}
	if got.Arrow != [3]float64{1, -1, 2} {
		t.Errorf("arrow = %v, want [1 -1 2]", got.Arrow)
	}
	if got.Descent != [2]float64{-2, 2} || got.Critical {
		t.Errorf("descent = %v critical = %v", got.Descent, got.Critical)
	}
	if got.GridSize != surface.GridSize {
		t.Errorf("grid size = %d", got.GridSize)
	}
}

func TestWriteGridCSV(t *testing.T) {
	r := mustEvaluate(t, surface.Paraboloid, 0, 0)
	var buf bytes.Buffer
	if err := WriteGridCSV(&buf, r.Grid); err != nil {
		t.Fatal(err)
	}
	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 1+surface.GridSize*surface.GridSize {
		t.Fatalf("rows = %d", len(rows))
	}
	if strings.Join(rows[0], ",") != "x,y,z" {
		t.Errorf("header = %v", rows[0])
	}
	if strings.Join(rows[1], ",") != "-2.500000,-2.500000,12.500000" {
		t.Errorf("first row = %v", rows[1])
	}
}

func TestWriteSliceCSV(t *testing.T) {
	var buf bytes.Buffer
	err := WriteSliceCSV(&buf, surface.AxisY, []float64{0, 1}, []float64{1, 2}, []float64{math.NaN(), 2})
	if err != nil {
		t.Fatal(err)
	}
	want := "y,z,tangent\n0.000000,1.000000,\n1.000000,2.000000,2.000000\n"
	if buf.String() != want {
		t.Errorf("csv =\n%s\nwant\n%s", buf.String(), want)
	}
}

func TestExporter(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	e := New(dir, viz.NewCamera(-0.6, 0.5, 1), viz.ThemeOcean)
	paths, err := e.Export(mustEvaluate(t, surface.Wave, 1, 1))
	if err != nil {
		t.Fatal(err)
	}
	want := []string{SceneFile, SliceFile, GridFile, ResultFile}
	if len(paths) != len(want) {
		t.Fatalf("paths = %v", paths)
	}
	for i, name := range want {
		if paths[i] != filepath.Join(dir, name) {
			t.Errorf("path %d = %s, want %s", i, paths[i], name)
		}
		info, err := os.Stat(paths[i])
		if err != nil {
			t.Fatal(err)
		}
		if info.Size() == 0 {
			t.Errorf("%s is empty", name)
		}
	}
}

func TestBatch(t *testing.T) {
	dir := t.TempDir()
	jobs := []Job{
		{Name: "bowl", Result: mustEvaluate(t, surface.Paraboloid, 0, 0), Camera: viz.NewCamera(0, 0.5, 1)},
		{Name: "saddle", Result: mustEvaluate(t, surface.Saddle, 1, 1), Camera: viz.NewCamera(0.5, 0.4, 1)},
		{Name: "wave", Result: mustEvaluate(t, surface.Wave, -1, 2), Camera: viz.NewCamera(-1, 0.3, 1.2)},
	}
	b := NewBatch(dir, viz.ThemeRetroGreen)
	b.Width, b.Height = 30, 12

	paths, err := b.Run(jobs)
	if err != nil {
		t.Fatal(err)
	}
	if len(paths) != len(jobs) {
		t.Fatalf("got %d path sets", len(paths))
	}
	for i, job := range jobs {
		want := filepath.Join(dir, job.Name, ResultFile)
		if paths[i][3] != want {
			t.Errorf("job %s wrote %v", job.Name, paths[i])
		}
		data, err := os.ReadFile(want)
		if err != nil {
			t.Fatal(err)
		}
		var got ResultData
		if err := json.Unmarshal(data, &got); err != nil {
			t.Fatal(err)
		}
		if got.Function != job.Result.Variant.String() {
			t.Errorf("%s: function = %s", job.Name, got.Function)
		}
	}
}
