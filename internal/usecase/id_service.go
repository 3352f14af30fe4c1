package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/assetid/internal/platform/id"
	"github.com/sourcegraph/conc/iter"
	"go.opentelemetry.io/otel/attribute"
)

// NormalizedID pairs a decoded identifier with the literal it came from.
type NormalizedID struct {
	Input string
	ID    id.U64ID
}

type IDService struct {
	generator id.Generator
	maxBatch  int
}

func NewIDService(generator id.Generator, maxBatch int) *IDService {
	if generator == nil {
		generator = id.NewRandomGenerator(nil)
	}
	if maxBatch < 1 {
		maxBatch = 1
	}
	return &IDService{
		generator: generator,
		maxBatch:  maxBatch,
	}
}

func (s *IDService) MaxBatch() int {
	return s.maxBatch
}

// Mint returns count fresh non-null identifiers. A count of zero mints one.
func (s *IDService) Mint(ctx context.Context, count int) ([]id.U64ID, error) {
	_, span := startUsecaseSpan(ctx, "usecase.IDService.Mint")
	defer span.End()

	if count == 0 {
		count = 1
	}
	if count < 0 || count > s.maxBatch {
		return nil, fmt.Errorf("%w: count must be between 1 and %d", ErrInvalidInput, s.maxBatch)
	}
	span.SetAttributes(attribute.Int("ids.count", count))

	out := make([]id.U64ID, count)
	for i := range out {
		out[i] = s.generator.NewID()
	}

	return out, nil
}

type normalizeOutcome struct {
	item NormalizedID
	err  error
}

// Normalize decodes tokens through the human-readable rules, so legacy
// integer tokens come back in canonical form. The first invalid token in
// input order fails the whole batch.
func (s *IDService) Normalize(ctx context.Context, tokens []id.Token) ([]NormalizedID, error) {
	_, span := startUsecaseSpan(ctx, "usecase.IDService.Normalize")
	defer span.End()

	if len(tokens) == 0 {
		return []NormalizedID{}, nil
	}
	if len(tokens) > s.maxBatch {
		return nil, fmt.Errorf("%w: at most %d ids per request", ErrInvalidInput, s.maxBatch)
	}
	span.SetAttributes(attribute.Int("ids.count", len(tokens)))

	indexed := make([]indexedToken, len(tokens))
	for i, tok := range tokens {
		indexed[i] = indexedToken{index: i, tok: tok}
	}

	outcomes := iter.Map(indexed, func(in *indexedToken) normalizeOutcome {
		decoded, err := id.Decode(in.tok, true)
		if err != nil {
			return normalizeOutcome{err: fmt.Errorf("%w: ids[%d]: %w", ErrInvalidInput, in.index, err)}
		}
		return normalizeOutcome{item: NormalizedID{Input: in.tok.Literal(), ID: decoded}}
	})

	out := make([]NormalizedID, 0, len(outcomes))
	for _, outcome := range outcomes {
		if outcome.err != nil {
			return nil, outcome.err
		}
		out = append(out, outcome.item)
	}

	return out, nil
}

type indexedToken struct {
	index int
	tok   id.Token
}
