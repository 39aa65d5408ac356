package forum

import (
	"context"

	"qa-forum/internal/domain/entity"
	"qa-forum/internal/observability/metrics"
)

// ParentPath identifies a comment collection by raw path segments.
// AnswerID is empty for comments placed directly on a question.
type ParentPath struct {
	QuestionID string
	AnswerID   string
}

// verifyAnswerOf checks a against the answers of q.
func (s *Service) verifyAnswerOf(ctx context.Context, q *entity.Question, a *entity.Answer) error {
	answers, err := s.Answers.ListByQuestion(ctx, q.ID)
	if err != nil {
		return storageErr("list answers", err)
	}
	for _, candidate := range answers {
		if candidate.ID == a.ID {
			return nil
		}
	}
	metrics.RecordMembershipRejection(metrics.KindAnswer)
	return ErrAnswerNotFound
}

// verifyCommentOf checks c against the comments of parent.
func (s *Service) verifyCommentOf(ctx context.Context, parent entity.Parent, c *entity.Comment) error {
	comments, err := s.Comments.ListByParent(ctx, parent)
	if err != nil {
		return storageErr("list comments", err)
	}
	for _, candidate := range comments {
		if candidate.ID == c.ID {
			return nil
		}
	}
	metrics.RecordMembershipRejection(metrics.KindComment)
	return ErrCommentNotFound
}

func (s *Service) resolveAnswer(ctx context.Context, questionID, answerID string) (*entity.Question, *entity.Answer, error) {
	q, err := s.findQuestion(ctx, questionID)
	if err != nil {
		return nil, nil, err
	}
	a, err := s.findAnswer(ctx, answerID)
	if err != nil {
		return nil, nil, err
	}
	if err := s.verifyAnswerOf(ctx, q, a); err != nil {
		return nil, nil, err
	}
	return q, a, nil
}

// resolveParent returns the comment owner named by p and its canonical location.
func (s *Service) resolveParent(ctx context.Context, p ParentPath) (entity.Parent, Ref, error) {
	if p.AnswerID == "" {
		q, err := s.findQuestion(ctx, p.QuestionID)
		if err != nil {
			return entity.Parent{}, Ref{}, err
		}
		return entity.QuestionParent(q.ID), Ref{QuestionID: q.ID}, nil
	}

	q, a, err := s.resolveAnswer(ctx, p.QuestionID, p.AnswerID)
	if err != nil {
		return entity.Parent{}, Ref{}, err
	}
	return entity.AnswerParent(a.ID), Ref{QuestionID: q.ID, AnswerID: a.ID}, nil
}

func (s *Service) resolveComment(ctx context.Context, p ParentPath, commentID string) (*entity.Comment, error) {
	parent, _, err := s.resolveParent(ctx, p)
	if err != nil {
		return nil, err
	}
	c, err := s.findComment(ctx, commentID)
	if err != nil {
		return nil, err
	}
	if err := s.verifyCommentOf(ctx, parent, c); err != nil {
		return nil, err
	}
	return c, nil
}
