package forum

import (
	"errors"
	"fmt"

	"qa-forum/internal/domain/entity"
)

// Sentinel errors for forum operations.
//
// The NotFound errors wrap entity.ErrNotFound. A child reached through a parent
// that does not own it reports the same error as a child that does not exist.
var (
	ErrQuestionNotFound = fmt.Errorf("question %w", entity.ErrNotFound)
	ErrAnswerNotFound   = fmt.Errorf("answer %w", entity.ErrNotFound)
	ErrCommentNotFound  = fmt.Errorf("comment %w", entity.ErrNotFound)

	// ErrStorage marks every failure reported by a repository.
	ErrStorage = errors.New("storage failure")
)

func storageErr(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrStorage, err)
}
