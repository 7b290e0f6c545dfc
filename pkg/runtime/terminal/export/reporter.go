package export

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/de-tools/playbill/pkg/models/domain"
)

var extensions = map[string]string{
	"text":  "txt",
	"table": "txt",
}

type Renderer interface {
	Render(ctx context.Context, w io.Writer, stmt domain.Statement, format string) error
}

// Reporter writes rendered statements either to a single writer or, when an
// output directory is set, to one file per statement.
type Reporter struct {
	writer    io.Writer
	renderer  Renderer
	outputDir string
	count     int
	used      map[string]bool
}

func NewReporter(writer io.Writer, renderer Renderer, outputDir string) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{
		writer:    writer,
		renderer:  renderer,
		outputDir: outputDir,
		used:      make(map[string]bool),
	}
}

// Handle renders stmt and returns the file it was written to, or "" when it
// went to the writer.
func (r *Reporter) Handle(ctx context.Context, stmt domain.Statement, format string) (string, error) {
	defer func() { r.count++ }()

	if r.outputDir == "" {
		if r.count > 0 {
			if _, err := io.WriteString(r.writer, "\n"); err != nil {
				return "", err
			}
		}
		return "", r.renderer.Render(ctx, r.writer, stmt, format)
	}

	if err := os.MkdirAll(r.outputDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output dir: %w", err)
	}

	path := filepath.Join(r.outputDir, r.fileName(stmt.Customer(), format))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create %s: %w", path, err)
	}

	if err := r.renderer.Render(ctx, f, stmt, format); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("failed to close %s: %w", path, err)
	}
	return path, nil
}

func (r *Reporter) fileName(customer, format string) string {
	ext, ok := extensions[format]
	if !ok {
		ext = format
	}

	base := slug(customer)
	name := base + "." + ext
	for n := 2; r.used[name]; n++ {
		name = fmt.Sprintf("%s-%d.%s", base, n, ext)
	}
	r.used[name] = true
	return name
}

func slug(s string) string {
	var b strings.Builder
	dash := false
	for _, c := range strings.ToLower(s) {
		if unicode.IsLetter(c) || unicode.IsDigit(c) {
			b.WriteRune(c)
			dash = false
			continue
		}
		if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}
	out := strings.TrimSuffix(b.String(), "-")
	if out == "" {
		return "statement"
	}
	return out
}
