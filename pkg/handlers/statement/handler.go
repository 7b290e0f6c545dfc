package statement

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/de-tools/playbill/pkg/adapters"
	"github.com/de-tools/playbill/pkg/models/api"
	"github.com/de-tools/playbill/pkg/models/domain"
	"github.com/de-tools/playbill/pkg/render"
	"github.com/de-tools/playbill/pkg/services/catalog"
	"github.com/rs/zerolog"
)

const maxBodyBytes = 1 << 20

type Service interface {
	Generate(ctx context.Context, invoice domain.Invoice, plays catalog.Catalog) (domain.Statement, error)
	Render(ctx context.Context, w io.Writer, stmt domain.Statement, format string) error
	Renderer(format string) (render.Renderer, error)
	PlayTypes() []domain.PlayType
	Formats() []string
}

type Handler struct {
	svc           Service
	plays         catalog.Catalog
	defaultFormat string
}

// NewHandler creates the statement handler. plays is the catalog used when a
// request does not carry its own; it may be nil.
func NewHandler(svc Service, plays catalog.Catalog, defaultFormat string) *Handler {
	if defaultFormat == "" {
		defaultFormat = "json"
	}
	return &Handler{
		svc:           svc,
		plays:         plays,
		defaultFormat: defaultFormat,
	}
}

func (h *Handler) CreateStatement(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	format := r.URL.Query().Get("format")
	if format == "" {
		format = h.defaultFormat
	}
	renderer, err := h.svc.Renderer(format)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var req api.StatementRequest
	if err := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes)).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	invoice, err := adapters.MapInvoiceApiToDomain(req.Invoice)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	plays, err := h.catalogFor(req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	stmt, err := h.svc.Generate(ctx, invoice, plays)
	if err != nil {
		http.Error(w, err.Error(), statusFor(err))
		return
	}

	var buf bytes.Buffer
	if err := h.svc.Render(ctx, &buf, stmt, format); err != nil {
		http.Error(w, "failed to render statement", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", renderer.ContentType())
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		logger.Error().
			Err(err).
			Str("customer", invoice.Customer).
			Msg("failed to write statement")
	}
}

func (h *Handler) ListPlayTypes(w http.ResponseWriter, r *http.Request) {
	writeJSON(r.Context(), w, adapters.MapPlayTypesDomainToApi(h.svc.PlayTypes()))
}

func (h *Handler) ListFormats(w http.ResponseWriter, r *http.Request) {
	writeJSON(r.Context(), w, api.Formats{Formats: h.svc.Formats()})
}

func (h *Handler) catalogFor(req api.StatementRequest) (catalog.Catalog, error) {
	if len(req.Plays) == 0 {
		if h.plays == nil {
			return nil, fmt.Errorf("request has no plays and no catalog is configured")
		}
		return h.plays, nil
	}

	plays, err := adapters.MapPlayRecordsToDomain(adapters.MapPlaysApiToStore(req.Plays))
	if err != nil {
		return nil, err
	}
	return catalog.NewMap(plays...)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrUnknownPlayID),
		errors.Is(err, domain.ErrUnsupportedPlayType),
		errors.Is(err, domain.ErrInvalidInvoice):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(ctx context.Context, w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zerolog.Ctx(ctx).Error().
			Err(err).
			Msg("failed to encode response")
	}
}
