package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MikhailRaia/slugid"
	"github.com/MikhailRaia/slugid/internal/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// ErrInvalidCount is returned for batch sizes outside 1..maxBatch.
var ErrInvalidCount = errors.New("invalid slugid count")

// SlugService generates slugids for the transports. It keeps no record of
// issued identifiers.
type SlugService struct {
	source   slugid.Source
	maxBatch int
}

// NewSlugService constructs a SlugService drawing randomness from src.
func NewSlugService(src slugid.Source, maxBatch int) *SlugService {
	return &SlugService{
		source:   src,
		maxBatch: maxBatch,
	}
}

// Generate returns one slugid in the given mode.
func (s *SlugService) Generate(ctx context.Context, mode slugid.Mode) (string, error) {
	id, err := slugid.Generate(s.source, mode)
	if err != nil {
		if errors.Is(err, slugid.ErrRandomness) {
			withClient(ctx, log.Error()).Err(err).Str("mode", mode.String()).Msg("Failed to generate slugid")
		}
		return "", err
	}
	return id, nil
}

// GenerateBatch returns count slugids in the given mode. Either all of them
// are returned or none.
func (s *SlugService) GenerateBatch(ctx context.Context, mode slugid.Mode, count int) ([]string, error) {
	if count < 1 || count > s.maxBatch {
		return nil, fmt.Errorf("%w: %d not in 1..%d", ErrInvalidCount, count, s.maxBatch)
	}

	ids := make([]string, 0, count)
	for i := 0; i < count; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		id, err := s.Generate(ctx, mode)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	withClient(ctx, log.Debug()).Str("mode", mode.String()).Int("count", count).Msg("Generated batch")

	return ids, nil
}

// withClient tags e with the authenticated client, if any.
func withClient(ctx context.Context, e *zerolog.Event) *zerolog.Event {
	if clientID, ok := middleware.GetClientIDFromContext(ctx); ok {
		return e.Str("clientID", clientID)
	}
	return e
}
