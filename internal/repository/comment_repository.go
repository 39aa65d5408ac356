package repository

import (
	"context"

	"qa-forum/internal/domain/entity"
)

type CommentRepository interface {
	// Get returns (nil, nil) if the comment does not exist.
	Get(ctx context.Context, id int64) (*entity.Comment, error)
	// ListByParent returns the comments owned by a question or an answer in storage order.
	ListByParent(ctx context.Context, parent entity.Parent) ([]*entity.Comment, error)
	// Create inserts the comment together with its parent link and sets its ID.
	Create(ctx context.Context, comment *entity.Comment) error
	// Update persists Body only. The parent link is immutable.
	Update(ctx context.Context, comment *entity.Comment) error
	Delete(ctx context.Context, id int64) error
	// DeleteBatch removes the given comments in one statement.
	// An empty batch is a no-op.
	DeleteBatch(ctx context.Context, ids []int64) error
}
