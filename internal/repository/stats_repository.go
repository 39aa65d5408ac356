package repository

import "context"

// Totals holds row counts per entity kind.
type Totals struct {
	Questions int64
	Answers   int64
	Comments  int64
}

type StatsRepository interface {
	Count(ctx context.Context) (Totals, error)
}
