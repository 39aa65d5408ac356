package repository

import (
	"context"

	"qa-forum/internal/domain/entity"
)

type AnswerRepository interface {
	// Get returns (nil, nil) if the answer does not exist.
	Get(ctx context.Context, id int64) (*entity.Answer, error)
	// ListByQuestion returns the answers linked to a question in storage order.
	ListByQuestion(ctx context.Context, questionID int64) ([]*entity.Answer, error)
	// Create inserts the answer together with its question link and sets its ID.
	Create(ctx context.Context, answer *entity.Answer) error
	// Update persists Body only. The question link is immutable.
	Update(ctx context.Context, answer *entity.Answer) error
	Delete(ctx context.Context, id int64) error
}
