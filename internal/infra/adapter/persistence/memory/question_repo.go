package memory

import (
	"context"
	"fmt"
	"sort"

	"qa-forum/internal/domain/entity"
)

type QuestionRepo struct{ s *Store }

func (r *QuestionRepo) Get(_ context.Context, id int64) (*entity.Question, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	q, ok := r.s.questions[id]
	if !ok {
		return nil, nil
	}
	return &q, nil
}

func (r *QuestionRepo) List(_ context.Context, offset, limit int) ([]*entity.Question, error) {
	r.s.mu.RLock()
	all := make([]*entity.Question, 0, len(r.s.questions))
	for _, q := range r.s.questions {
		all = append(all, &q)
	}
	r.s.mu.RUnlock()

	sort.Slice(all, func(i, j int) bool {
		if !all[i].Date.Equal(all[j].Date) {
			return all[i].Date.After(all[j].Date)
		}
		return all[i].ID > all[j].ID
	})

	if offset >= len(all) {
		return []*entity.Question{}, nil
	}
	all = all[offset:]
	if limit > 0 && limit < len(all) {
		all = all[:limit]
	}
	return all, nil
}

func (r *QuestionRepo) Create(_ context.Context, q *entity.Question) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.nextQuestion++
	q.ID = r.s.nextQuestion
	r.s.questions[q.ID] = *q
	return nil
}

func (r *QuestionRepo) Update(_ context.Context, q *entity.Question) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	cur, ok := r.s.questions[q.ID]
	if !ok {
		return fmt.Errorf("Update: %w", ErrNoRows)
	}
	cur.Title = q.Title
	cur.Body = q.Body
	r.s.questions[q.ID] = cur
	return nil
}

func (r *QuestionRepo) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.questions[id]; !ok {
		return fmt.Errorf("Delete: %w", ErrNoRows)
	}
	for _, a := range r.s.answers {
		if a.QuestionID == id {
			return fmt.Errorf("Delete: question %d still has answers: %w", id, ErrForeignKey)
		}
	}
	if r.s.hasComments(entity.QuestionParent(id)) {
		return fmt.Errorf("Delete: question %d still has comments: %w", id, ErrForeignKey)
	}
	delete(r.s.questions, id)
	return nil
}
