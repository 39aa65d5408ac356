package forum

import (
	"context"
	"time"

	"qa-forum/internal/domain/entity"
)

// QuestionView is the public projection of a question.
type QuestionView struct {
	Title         string
	Body          string
	Date          time.Time
	AnswersCount  int
	CommentsCount int
}

// AnswerView is the public projection of an answer.
type AnswerView struct {
	Body          string
	Date          time.Time
	CommentsCount int
}

// CommentView is the public projection of a comment.
type CommentView struct {
	Body string
	Date time.Time
}

// Counts are the sizes of the child collections; nothing is denormalized.
func (s *Service) encodeQuestion(ctx context.Context, q *entity.Question) (QuestionView, error) {
	answers, err := s.Answers.ListByQuestion(ctx, q.ID)
	if err != nil {
		return QuestionView{}, storageErr("count answers", err)
	}
	comments, err := s.Comments.ListByParent(ctx, entity.QuestionParent(q.ID))
	if err != nil {
		return QuestionView{}, storageErr("count comments", err)
	}
	return QuestionView{
		Title:         q.Title,
		Body:          q.Body,
		Date:          q.Date,
		AnswersCount:  len(answers),
		CommentsCount: len(comments),
	}, nil
}

func (s *Service) encodeAnswer(ctx context.Context, a *entity.Answer) (AnswerView, error) {
	comments, err := s.Comments.ListByParent(ctx, entity.AnswerParent(a.ID))
	if err != nil {
		return AnswerView{}, storageErr("count comments", err)
	}
	return AnswerView{
		Body:          a.Body,
		Date:          a.Date,
		CommentsCount: len(comments),
	}, nil
}

func encodeComment(c *entity.Comment) CommentView {
	return CommentView{Body: c.Body, Date: c.Date}
}

// encodeAll keeps input order and returns nothing if any element fails.
func encodeAll[E any, V any](ctx context.Context, items []E, encode func(context.Context, E) (V, error)) ([]V, error) {
	views := make([]V, 0, len(items))
	for _, item := range items {
		v, err := encode(ctx, item)
		if err != nil {
			return nil, err
		}
		views = append(views, v)
	}
	return views, nil
}
