package export

import (
	"path/filepath"
	"sync"

	"github.com/san-kum/gradviz/internal/surface"
	"github.com/san-kum/gradviz/internal/viz"
)

// Job is one named evaluation to export.
type Job struct {
	Name   string
	Result *surface.Result
	Camera *viz.Camera
}

// Batch exports each job into its own subdirectory of baseDir, in
// parallel. Paths are returned in job order.
type Batch struct {
	baseDir string
	Theme   viz.Theme
	Width   int
	Height  int
	Axis    surface.Axis
}

func NewBatch(baseDir string, th viz.Theme) *Batch {
	return &Batch{baseDir: baseDir, Theme: th, Width: 80, Height: 32, Axis: surface.AxisX}
}

func (b *Batch) Run(jobs []Job) ([][]string, error) {
	paths := make([][]string, len(jobs))
	errs := make([]error, len(jobs))

	var wg sync.WaitGroup
	for i := range jobs {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			job := jobs[idx]
			e := New(filepath.Join(b.baseDir, job.Name), job.Camera, b.Theme)
			e.Width, e.Height, e.Axis = b.Width, b.Height, b.Axis
			paths[idx], errs[idx] = e.Export(job.Result)
		}(i)
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return paths, nil
}
