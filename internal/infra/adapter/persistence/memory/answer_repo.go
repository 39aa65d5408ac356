package memory

import (
	"context"
	"fmt"
	"sort"

	"qa-forum/internal/domain/entity"
)

type AnswerRepo struct{ s *Store }

func (r *AnswerRepo) Get(_ context.Context, id int64) (*entity.Answer, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	a, ok := r.s.answers[id]
	if !ok {
		return nil, nil
	}
	return &a, nil
}

func (r *AnswerRepo) ListByQuestion(_ context.Context, questionID int64) ([]*entity.Answer, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	answers := make([]*entity.Answer, 0)
	for _, a := range r.s.answers {
		if a.QuestionID == questionID {
			answers = append(answers, &a)
		}
	}
	sort.Slice(answers, func(i, j int) bool { return answers[i].ID < answers[j].ID })
	return answers, nil
}

func (r *AnswerRepo) Create(_ context.Context, a *entity.Answer) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.questions[a.QuestionID]; !ok {
		return fmt.Errorf("Create: question %d: %w", a.QuestionID, ErrForeignKey)
	}
	r.s.nextAnswer++
	a.ID = r.s.nextAnswer
	r.s.answers[a.ID] = *a
	return nil
}

func (r *AnswerRepo) Update(_ context.Context, a *entity.Answer) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	cur, ok := r.s.answers[a.ID]
	if !ok {
		return fmt.Errorf("Update: %w", ErrNoRows)
	}
	cur.Body = a.Body
	r.s.answers[a.ID] = cur
	return nil
}

func (r *AnswerRepo) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.answers[id]; !ok {
		return fmt.Errorf("Delete: %w", ErrNoRows)
	}
	if r.s.hasComments(entity.AnswerParent(id)) {
		return fmt.Errorf("Delete: answer %d still has comments: %w", id, ErrForeignKey)
	}
	delete(r.s.answers, id)
	return nil
}
