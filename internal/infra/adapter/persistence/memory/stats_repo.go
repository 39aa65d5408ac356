package memory

import (
	"context"

	"qa-forum/internal/repository"
)

type StatsRepo struct{ s *Store }

func (r *StatsRepo) Count(_ context.Context) (repository.Totals, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return repository.Totals{
		Questions: int64(len(r.s.questions)),
		Answers:   int64(len(r.s.answers)),
		Comments:  int64(len(r.s.comments)),
	}, nil
}
