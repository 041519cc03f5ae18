package export

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"math"
	"strconv"

	"github.com/san-kum/gradviz/internal/surface"
	"github.com/san-kum/gradviz/internal/viz"
)

// ResultData is the JSON form of one evaluation.
type ResultData struct {
	Function  string     `json:"function"`
	Equation  string     `json:"equation"`
	Point     [2]float64 `json:"point"`
	Value     float64    `json:"value"`
	Gradient  [2]float64 `json:"gradient"`
	Magnitude float64    `json:"magnitude"`
	Critical  bool       `json:"critical"`
	Descent   [2]float64 `json:"descent"`
	Arrow     [3]float64 `json:"arrow"`
	GridSize  int        `json:"grid_size"`
	ZMin      float64    `json:"z_min"`
	ZMax      float64    `json:"z_max"`
}

// NewResultData flattens r for encoding.
func NewResultData(r *surface.Result) ResultData {
	g := r.Gradient
	d := g.Descent()
	zmin, zmax := r.Grid.ZRange()
	return ResultData{
		Function:  r.Variant.String(),
		Equation:  r.Variant.Equation(),
		Point:     [2]float64{r.Point.X, r.Point.Y},
		Value:     r.Z,
		Gradient:  [2]float64{g.X, g.Y},
		Magnitude: g.Magnitude(),
		Critical:  g.IsCritical(),
		Descent:   [2]float64{d.X, d.Y},
		Arrow:     arrow(g),
		GridSize:  r.Grid.Size(),
		ZMin:      zmin,
		ZMax:      zmax,
	}
}

func arrow(g surface.Gradient) [3]float64 {
	a := viz.ArrowVector(g)
	return [3]float64{a.X, a.Y, a.Z}
}

// WriteResultJSON writes r as indented JSON.
func WriteResultJSON(w io.Writer, r *surface.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(NewResultData(r))
}

// WriteGridCSV writes the sampled surface as x,y,z rows, y-major.
func WriteGridCSV(w io.Writer, g *surface.Grid) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"x", "y", "z"}); err != nil {
		return err
	}
	for i, y := range g.Ys {
		for j, x := range g.Xs {
			row := []string{
				strconv.FormatFloat(x, 'f', 6, 64),
				strconv.FormatFloat(y, 'f', 6, 64),
				strconv.FormatFloat(g.Z[i][j], 'f', 6, 64),
			}
			if err := cw.Write(row); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteSliceCSV writes a cross-section and its tangent line. Tangent
// values outside the window are left empty.
func WriteSliceCSV(w io.Writer, axis surface.Axis, ts, zs, tangent []float64) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{axis.String(), "z", "tangent"}); err != nil {
		return err
	}
	for i := range ts {
		tan := ""
		if i < len(tangent) && !math.IsNaN(tangent[i]) {
			tan = strconv.FormatFloat(tangent[i], 'f', 6, 64)
		}
		row := []string{
			strconv.FormatFloat(ts[i], 'f', 6, 64),
			strconv.FormatFloat(zs[i], 'f', 6, 64),
			tan,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
