package ports

import (
	"context"
	"time"

	"svw.info/keypad/internal/domain"
)

// Stats captures performance characteristics of an operation.
type Stats struct {
	Expansions int
	CacheHits  int
	Duration   time.Duration
}

// Costing computes minimal press counts through a keypad chain.
type Costing interface {
	Presses(ctx context.Context, code domain.Code, depth int) (int, Stats, error)
	Complexity(ctx context.Context, codes []domain.Code, depth int) (int, Stats, error)
}

// Storage persists and retrieves computed reports.
type Storage interface {
	Save(ctx context.Context, r *domain.Report) error
	Load(ctx context.Context, id string) (*domain.Report, error)
	List(ctx context.Context) ([]domain.ReportMeta, error)
}
