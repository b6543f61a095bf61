package batch

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"redfa/internal/render"
	"redfa/regexdfa"
)

// Result describes one executed job.
type Result struct {
	Name   string
	Path   string
	States int
}

// Runner executes job files against a renderer. Per-job `format = dot`
// skips graphviz and saves the DOT text itself.
type Runner struct {
	Renderer *render.Renderer
	Logger   *slog.Logger
}

func NewRunner(r *render.Renderer, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{Renderer: r, Logger: logger}
}

// Run executes every job in order, stopping at the first failure.
func (r *Runner) Run(ctx context.Context, file *File) ([]Result, error) {
	results := make([]Result, 0, len(file.Jobs))
	for _, job := range file.Jobs {
		res, err := r.runJob(ctx, job)
		if err != nil {
			return results, err
		}
		results = append(results, res)
	}
	return results, nil
}

func (r *Runner) runJob(ctx context.Context, job *Job) (Result, error) {
	s, err := job.resolve()
	if err != nil {
		return Result{}, err
	}

	a, err := regexdfa.Convert(s.pattern)
	if err != nil {
		return Result{}, fmt.Errorf("job %s: pattern %q: %w", s.name, s.pattern, err)
	}

	path := s.out
	if !filepath.IsAbs(path) {
		path = filepath.Join(r.Renderer.Dir, s.out)
	}

	if s.format == "dot" {
		if err := r.Renderer.WriteDOT(a, path); err != nil {
			return Result{}, fmt.Errorf("job %s: %w", s.name, err)
		}
	} else {
		rr := *r.Renderer
		rr.Format = s.format
		if err := rr.RenderTo(ctx, a, path); err != nil {
			return Result{}, fmt.Errorf("job %s: %w", s.name, err)
		}
	}

	r.Logger.Info("job done", "job", s.name, "states", len(a.States), "out", path)
	return Result{Name: s.name, Path: path, States: len(a.States)}, nil
}
