package forum

import (
	"context"
	"strconv"

	"qa-forum/internal/domain/entity"
)

// ParseID converts a path segment into an entity ID.
// Only plain decimal digits are accepted; signs, spaces and overflow are rejected
// with a ValidationError naming field.
func ParseID(field, raw string) (int64, error) {
	id, err := strconv.ParseUint(raw, 10, 63)
	if err != nil {
		return 0, &entity.ValidationError{Field: field, Message: "must be a non-negative integer"}
	}
	return int64(id), nil
}

func (s *Service) findQuestion(ctx context.Context, raw string) (*entity.Question, error) {
	id, err := ParseID("question_id", raw)
	if err != nil {
		return nil, err
	}
	q, err := s.Questions.Get(ctx, id)
	if err != nil {
		return nil, storageErr("get question", err)
	}
	if q == nil {
		return nil, ErrQuestionNotFound
	}
	return q, nil
}

func (s *Service) findAnswer(ctx context.Context, raw string) (*entity.Answer, error) {
	id, err := ParseID("answer_id", raw)
	if err != nil {
		return nil, err
	}
	a, err := s.Answers.Get(ctx, id)
	if err != nil {
		return nil, storageErr("get answer", err)
	}
	if a == nil {
		return nil, ErrAnswerNotFound
	}
	return a, nil
}

func (s *Service) findComment(ctx context.Context, raw string) (*entity.Comment, error) {
	id, err := ParseID("comment_id", raw)
	if err != nil {
		return nil, err
	}
	c, err := s.Comments.Get(ctx, id)
	if err != nil {
		return nil, storageErr("get comment", err)
	}
	if c == nil {
		return nil, ErrCommentNotFound
	}
	return c, nil
}
