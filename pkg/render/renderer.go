package render

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"slices"
	"sync"

	"github.com/de-tools/playbill/pkg/models/domain"
)

// ErrUnknownFormat is returned when no renderer is registered for a format.
var ErrUnknownFormat = errors.New("unknown statement format")

// MoneyFormatter turns an amount in cents into a display string.
type MoneyFormatter func(cents int64) string

// Renderer writes a computed statement in one output format. Renderers only read
// the statement; they never price anything.
type Renderer interface {
	Format() string
	ContentType() string
	Render(w io.Writer, stmt domain.Statement, money MoneyFormatter) error
}

// String renders stmt into a string.
func String(r Renderer, stmt domain.Statement, money MoneyFormatter) (string, error) {
	var buf bytes.Buffer
	if err := r.Render(&buf, stmt, money); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Registry holds renderers keyed by format name.
type Registry struct {
	mu        sync.RWMutex
	renderers map[string]Renderer
}

func NewRegistry(renderers ...Renderer) (*Registry, error) {
	r := &Registry{renderers: make(map[string]Renderer)}
	for _, renderer := range renderers {
		if err := r.Register(renderer); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// DefaultRegistry returns a registry with every built-in format. currency is
// the ISO code reported by the json format.
func DefaultRegistry(currency string) *Registry {
	r, _ := NewRegistry(
		NewTextRenderer(),
		NewHTMLRenderer(),
		NewTableRenderer(DefaultTableConfig()),
		NewJSONRenderer(currency),
		NewPDFRenderer(),
		NewXLSXRenderer(),
	)
	return r
}

func (r *Registry) Register(renderer Renderer) error {
	if renderer == nil {
		return fmt.Errorf("renderer cannot be nil")
	}
	format := renderer.Format()
	if format == "" {
		return fmt.Errorf("renderer format cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.renderers[format]; exists {
		return fmt.Errorf("duplicate renderer for format: %s", format)
	}
	r.renderers[format] = renderer
	return nil
}

func (r *Registry) Get(format string) (Renderer, error) {
	r.mu.RLock()
	renderer, ok := r.renderers[format]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	return renderer, nil
}

func (r *Registry) Formats() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	formats := make([]string, 0, len(r.renderers))
	for format := range r.renderers {
		formats = append(formats, format)
	}
	slices.Sort(formats)
	return formats
}

// moneyOrDefault falls back to a plain major-unit amount when no formatter is given.
func moneyOrDefault(money MoneyFormatter) MoneyFormatter {
	if money != nil {
		return money
	}
	return func(cents int64) string {
		return MajorUnits(cents).StringFixed(2)
	}
}
