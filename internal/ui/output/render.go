package output

import (
	"fmt"
	"io"
	"sync"

	"github.com/muesli/termenv"
	"go.trai.ch/sift/internal/core/domain"
	"go.trai.ch/sift/internal/ui/style"
)

// Renderer writes scan results: one line per dispatched file on the result
// stream, and a styled per-root summary on the summary stream. File lines
// are serialized so concurrent per-root scans do not interleave.
type Renderer struct {
	mu      sync.Mutex
	files   io.Writer
	summary *termenv.Output
}

// NewRenderer creates a Renderer. Per-file lines go to files (typically
// stdout), the summary to summary (typically stderr).
func NewRenderer(files, summary io.Writer) *Renderer {
	return &Renderer{
		files:   files,
		summary: New(summary),
	}
}

// File writes one relative path.
func (r *Renderer) File(rel string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fmt.Fprintln(r.files, rel)
}

// HashedFile writes one content hash and relative path.
func (r *Renderer) HashedFile(hash, rel string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fmt.Fprintf(r.files, "%s  %s\n", hash, rel)
}

// Summary writes one line per root and, for multi-root scans, a totals line.
func (r *Renderer) Summary(reports []domain.Report) {
	totalFiles := 0
	totalErrors := 0

	for _, rep := range reports {
		totalFiles += rep.Files
		totalErrors += rep.Errors
		r.writeLine(rep.Root, rep.Files, rep.Errors)
	}

	if len(reports) > 1 {
		r.writeLine("total", totalFiles, totalErrors)
	}
}

func (r *Renderer) writeLine(label string, files, errors int) {
	var line string
	var color termenv.Color

	switch {
	case errors > 0:
		line = fmt.Sprintf("%s %s: %d files, %d errors", style.Warning, label, files, errors)
		color = termenv.RGBColor(string(style.Yellow))
	default:
		line = fmt.Sprintf("%s %s: %d files", style.Check, label, files)
		color = termenv.RGBColor(string(style.Green))
	}

	styled := r.summary.String(line).Foreground(color)
	_, _ = r.summary.WriteString(styled.String() + "\n")
}
