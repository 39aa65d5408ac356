package forum

import (
	"context"
	"time"

	"qa-forum/internal/common/pagination"
	"qa-forum/internal/domain/entity"
	"qa-forum/internal/observability/metrics"
)

// CreateAnswer adds an answer to the question.
// The question is resolved before the body is validated.
func (s *Service) CreateAnswer(ctx context.Context, questionID string, in BodyInput) (Ref, error) {
	q, err := s.findQuestion(ctx, questionID)
	if err != nil {
		return Ref{}, err
	}

	a := &entity.Answer{
		QuestionID: q.ID,
		Body:       in.Body,
		Date:       s.now(),
	}
	if err := a.Validate(); err != nil {
		return Ref{}, err
	}

	if err := s.Answers.Create(ctx, a); err != nil {
		return Ref{}, storageErr("create answer", err)
	}
	metrics.RecordCreated(metrics.KindAnswer)
	return Ref{QuestionID: q.ID, AnswerID: a.ID}, nil
}

// ListAnswers returns the question's answers, newest first, windowed by the range.
// A missing question is reported before an invalid range.
func (s *Service) ListAnswers(ctx context.Context, questionID string, query pagination.Query) ([]AnswerView, error) {
	start := time.Now()
	q, err := s.findQuestion(ctx, questionID)
	if err != nil {
		return nil, err
	}
	r, err := parseRange(collectionAnswers, query)
	if err != nil {
		return nil, err
	}

	answers, err := s.Answers.ListByQuestion(ctx, q.ID)
	if err != nil {
		return nil, storageErr("list answers", err)
	}
	newestFirst(answers, func(a *entity.Answer) time.Time { return a.Date })

	views, err := encodeAll(ctx, pagination.Window(answers, r), s.encodeAnswer)
	if err != nil {
		return nil, err
	}
	pagination.RecordReturned(collectionAnswers, len(views))
	pagination.LogResponse(loggerFrom(ctx), collectionAnswers, r, len(views), time.Since(start))
	return views, nil
}

// GetAnswer returns the answer if it belongs to the question.
func (s *Service) GetAnswer(ctx context.Context, questionID, answerID string) (AnswerView, error) {
	_, a, err := s.resolveAnswer(ctx, questionID, answerID)
	if err != nil {
		return AnswerView{}, err
	}
	return s.encodeAnswer(ctx, a)
}

// UpdateAnswer applies the supplied body and saves the answer.
func (s *Service) UpdateAnswer(ctx context.Context, questionID, answerID string, patch BodyPatch) error {
	_, a, err := s.resolveAnswer(ctx, questionID, answerID)
	if err != nil {
		return err
	}

	if supplied(patch.Body) {
		a.Body = *patch.Body
	}
	if err := a.Validate(); err != nil {
		return err
	}

	if err := s.Answers.Update(ctx, a); err != nil {
		return storageErr("update answer", err)
	}
	return nil
}

// DeleteAnswer removes the answer and its comments.
func (s *Service) DeleteAnswer(ctx context.Context, questionID, answerID string) error {
	_, a, err := s.resolveAnswer(ctx, questionID, answerID)
	if err != nil {
		return err
	}
	return s.removeAnswer(ctx, a)
}
