package memory

import (
	"context"
	"fmt"
	"sort"

	"qa-forum/internal/domain/entity"
)

type CommentRepo struct{ s *Store }

func (r *CommentRepo) Get(_ context.Context, id int64) (*entity.Comment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	c, ok := r.s.comments[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (r *CommentRepo) ListByParent(_ context.Context, parent entity.Parent) ([]*entity.Comment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	comments := make([]*entity.Comment, 0)
	for _, c := range r.s.comments {
		if c.Parent == parent {
			comments = append(comments, &c)
		}
	}
	sort.Slice(comments, func(i, j int) bool { return comments[i].ID < comments[j].ID })
	return comments, nil
}

func (r *CommentRepo) Create(_ context.Context, c *entity.Comment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if !r.s.parentExists(c.Parent) {
		return fmt.Errorf("Create: parent %s: %w", c.Parent, ErrForeignKey)
	}
	r.s.nextComment++
	c.ID = r.s.nextComment
	r.s.comments[c.ID] = *c
	return nil
}

func (r *CommentRepo) Update(_ context.Context, c *entity.Comment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	cur, ok := r.s.comments[c.ID]
	if !ok {
		return fmt.Errorf("Update: %w", ErrNoRows)
	}
	cur.Body = c.Body
	r.s.comments[c.ID] = cur
	return nil
}

func (r *CommentRepo) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.comments[id]; !ok {
		return fmt.Errorf("Delete: %w", ErrNoRows)
	}
	delete(r.s.comments, id)
	return nil
}

func (r *CommentRepo) DeleteBatch(_ context.Context, ids []int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, id := range ids {
		delete(r.s.comments, id)
	}
	return nil
}
