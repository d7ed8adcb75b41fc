package usecase

import (
	"context"
	"errors"
	"time"

	"svw.info/keypad/internal/domain"
	"svw.info/keypad/internal/ports"
)

type Service struct {
	Costing ports.Costing
	Storage ports.Storage
}

func NewService(c ports.Costing, st ports.Storage) *Service {
	return &Service{Costing: c, Storage: st}
}

var errNotConfigured = errors.New("usecase dependency not configured")

func (u *Service) Presses(ctx context.Context, code domain.Code, depth int) (int, ports.Stats, error) {
	if u.Costing == nil {
		return 0, ports.Stats{}, errNotConfigured
	}
	return u.Costing.Presses(ctx, code, depth)
}

func (u *Service) Complexity(ctx context.Context, codes []domain.Code, depth int) (int, ports.Stats, error) {
	if u.Costing == nil {
		return 0, ports.Stats{}, errNotConfigured
	}
	return u.Costing.Complexity(ctx, codes, depth)
}

// Solve computes press counts and the complexity score for a batch of codes
// and archives the result under a content-addressed report ID.
func (u *Service) Solve(ctx context.Context, codes []domain.Code, depth int) (*domain.Report, ports.Stats, error) {
	if u.Costing == nil || u.Storage == nil {
		return nil, ports.Stats{}, errNotConfigured
	}
	start := time.Now()
	var agg ports.Stats
	texts := make([]string, len(codes))
	presses := make([]int, len(codes))
	complexity := 0
	for i, code := range codes {
		n, st, err := u.Costing.Presses(ctx, code, depth)
		agg.Expansions += st.Expansions
		agg.CacheHits += st.CacheHits
		if err != nil {
			return nil, agg, err
		}
		texts[i] = code.Text
		presses[i] = n
		complexity += n * code.Value
	}
	agg.Duration = time.Since(start)
	r := &domain.Report{
		ID:         domain.ReportID(texts, depth),
		Depth:      depth,
		Codes:      texts,
		Presses:    presses,
		Complexity: complexity,
		DurationMs: agg.Duration.Milliseconds(),
		CreatedAt:  time.Now().Unix(),
	}
	if err := u.Storage.Save(ctx, r); err != nil {
		return nil, agg, err
	}
	return r, agg, nil
}

// Persistence
func (u *Service) Load(ctx context.Context, id string) (*domain.Report, error) {
	if u.Storage == nil {
		return nil, errNotConfigured
	}
	return u.Storage.Load(ctx, id)
}

func (u *Service) List(ctx context.Context) ([]domain.ReportMeta, error) {
	if u.Storage == nil {
		return nil, errNotConfigured
	}
	return u.Storage.List(ctx)
}
