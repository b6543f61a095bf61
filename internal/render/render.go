// Package render draws automata as image files by piping Graphviz DOT text
// through the external `dot` binary.
package render

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/google/uuid"

	"redfa/regexdfa"
)

// Supported output formats (anything `dot -T` accepts would work; these are
// the ones the hosts expose).
const (
	FormatPNG = "png"
	FormatSVG = "svg"
)

// Renderer renders automata into Dir, one uniquely named file per call.
type Renderer struct {
	DotBinary string // graphviz binary, "dot" if empty
	Dir       string // output directory, created on demand
	Format    string // png or svg
}

// New returns a PNG renderer writing into dir.
func New(dir string) *Renderer {
	return &Renderer{DotBinary: "dot", Dir: dir, Format: FormatPNG}
}

func (r *Renderer) binary() string {
	if r.DotBinary == "" {
		return "dot"
	}
	return r.DotBinary
}

// ValidFormat reports whether format is one the renderer supports.
func ValidFormat(format string) bool {
	return format == FormatPNG || format == FormatSVG
}

// Render draws the automaton under a fresh unique name and returns the base
// name of the written file. The full path is Dir joined with the returned
// name.
func (r *Renderer) Render(ctx context.Context, a *regexdfa.Automaton) (string, error) {
	name := uuid.New().String() + "." + r.Format
	if err := r.RenderTo(ctx, a, filepath.Join(r.Dir, name)); err != nil {
		return "", err
	}
	return name, nil
}

// RenderTo draws the automaton to an explicit file path.
func (r *Renderer) RenderTo(ctx context.Context, a *regexdfa.Automaton, path string) error {
	if !ValidFormat(r.Format) {
		return fmt.Errorf("unsupported format %q", r.Format)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	var dot bytes.Buffer
	regexdfa.ExportDOT(&dot, a)

	cmd := exec.CommandContext(ctx, r.binary(), "-T"+r.Format, "-o", path)
	cmd.Stdin = &dot
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if stderr.Len() > 0 {
			return fmt.Errorf("dot failed: %v: %s", err, stderr.String())
		}
		return fmt.Errorf("dot failed: %w", err)
	}
	return nil
}

// WriteDOT saves the DOT text itself to path, creating parent directories.
func (r *Renderer) WriteDOT(a *regexdfa.Automaton, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	regexdfa.ExportDOT(f, a)
	return nil
}
