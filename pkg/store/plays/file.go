package plays

import (
	"context"
	"fmt"
	"io"

	"github.com/de-tools/playbill/pkg/models/store"
	"github.com/de-tools/playbill/pkg/store/source"
	"github.com/rs/zerolog"
)

// Opener opens a document by location.
type Opener interface {
	Open(ctx context.Context, location string) (io.ReadCloser, error)
}

// DecoderFor picks a decoder by file extension. Documents without an
// extension, such as stdin, are read as JSON.
func DecoderFor(location string) (Decoder, error) {
	switch ext := source.Ext(location); ext {
	case "", ".json":
		return DecodeJSON, nil
	case ".yaml", ".yml":
		return DecodeYAML, nil
	case ".ini":
		return DecodeINI, nil
	default:
		return nil, fmt.Errorf("unsupported plays format %q", ext)
	}
}

// FileStore lists plays from a catalog document.
type FileStore struct {
	opener   Opener
	location string
	decode   Decoder
}

func NewFileStore(opener Opener, location string) (*FileStore, error) {
	decode, err := DecoderFor(location)
	if err != nil {
		return nil, err
	}
	return &FileStore{opener: opener, location: location, decode: decode}, nil
}

func (s *FileStore) List(ctx context.Context) ([]store.PlayRecord, error) {
	logger := zerolog.Ctx(ctx)

	rc, err := s.opener.Open(ctx, s.location)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := rc.Close(); err != nil {
			logger.Warn().Err(err).Str("location", s.location).Msg("failed to close plays document")
		}
	}()

	records, err := s.decode(rc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.location, err)
	}

	logger.Debug().Str("location", s.location).Int("plays", len(records)).Msg("read plays document")
	return records, nil
}
