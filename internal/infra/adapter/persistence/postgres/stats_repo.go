package postgres

import (
	"context"
	"fmt"

	"qa-forum/internal/repository"
)

type StatsRepo struct{ db DBTX }

func NewStatsRepo(db DBTX) repository.StatsRepository {
	return &StatsRepo{db: db}
}

func (repo *StatsRepo) Count(ctx context.Context) (repository.Totals, error) {
	const query = `
SELECT
  (SELECT COUNT(*) FROM questions),
  (SELECT COUNT(*) FROM answers),
  (SELECT COUNT(*) FROM comments)`
	var t repository.Totals
	if err := repo.db.QueryRowContext(ctx, query).Scan(&t.Questions, &t.Answers, &t.Comments); err != nil {
		return repository.Totals{}, fmt.Errorf("Count: %w", err)
	}
	return t, nil
}
