package repository

import (
	"context"

	"qa-forum/internal/domain/entity"
)

type QuestionRepository interface {
	// Get returns (nil, nil) if the question does not exist.
	Get(ctx context.Context, id int64) (*entity.Question, error)
	// List returns questions ordered by date DESC.
	// A limit of 0 returns every row starting at offset.
	List(ctx context.Context, offset, limit int) ([]*entity.Question, error)
	// Create inserts the question and sets its ID.
	Create(ctx context.Context, question *entity.Question) error
	Update(ctx context.Context, question *entity.Question) error
	Delete(ctx context.Context, id int64) error
}
