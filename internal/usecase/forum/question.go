package forum

import (
	"context"
	"time"

	"qa-forum/internal/common/pagination"
	"qa-forum/internal/domain/entity"
	"qa-forum/internal/observability/metrics"
)

// CreateQuestion validates and stores a new question.
func (s *Service) CreateQuestion(ctx context.Context, in QuestionInput) (Ref, error) {
	q := &entity.Question{
		Title: in.Title,
		Body:  in.Body,
		Date:  s.now(),
	}
	if err := q.Validate(); err != nil {
		return Ref{}, err
	}

	if err := s.Questions.Create(ctx, q); err != nil {
		return Ref{}, storageErr("create question", err)
	}
	metrics.RecordCreated(metrics.KindQuestion)
	return Ref{QuestionID: q.ID}, nil
}

// ListQuestions returns the questions selected by the range, newest first.
// Ordering and windowing happen in storage.
func (s *Service) ListQuestions(ctx context.Context, query pagination.Query) ([]QuestionView, error) {
	start := time.Now()
	r, err := parseRange(collectionQuestions, query)
	if err != nil {
		return nil, err
	}

	questions, err := s.Questions.List(ctx, r.Offset, r.Limit)
	if err != nil {
		return nil, storageErr("list questions", err)
	}

	views, err := encodeAll(ctx, questions, s.encodeQuestion)
	if err != nil {
		return nil, err
	}
	pagination.RecordReturned(collectionQuestions, len(views))
	pagination.LogResponse(loggerFrom(ctx), collectionQuestions, r, len(views), time.Since(start))
	return views, nil
}

// GetQuestion returns the question with its answer and comment counts.
func (s *Service) GetQuestion(ctx context.Context, questionID string) (QuestionView, error) {
	q, err := s.findQuestion(ctx, questionID)
	if err != nil {
		return QuestionView{}, err
	}
	return s.encodeQuestion(ctx, q)
}

// UpdateQuestion applies the supplied fields and saves the question.
func (s *Service) UpdateQuestion(ctx context.Context, questionID string, patch QuestionPatch) error {
	q, err := s.findQuestion(ctx, questionID)
	if err != nil {
		return err
	}

	if supplied(patch.Title) {
		q.Title = *patch.Title
	}
	if supplied(patch.Body) {
		q.Body = *patch.Body
	}
	if err := q.Validate(); err != nil {
		return err
	}

	if err := s.Questions.Update(ctx, q); err != nil {
		return storageErr("update question", err)
	}
	return nil
}

// DeleteQuestion removes the question together with its answers and comments.
func (s *Service) DeleteQuestion(ctx context.Context, questionID string) error {
	q, err := s.findQuestion(ctx, questionID)
	if err != nil {
		return err
	}
	return s.removeQuestion(ctx, q)
}
