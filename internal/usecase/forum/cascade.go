package forum

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"qa-forum/internal/domain/entity"
	"qa-forum/internal/observability/logging"
	"qa-forum/internal/observability/metrics"
	"qa-forum/internal/observability/tracing"
)

// Cascade stages, used as metric labels and span events.
const (
	stageFetchAnswers   = "fetch_answers"
	stageFetchComments  = "fetch_comments"
	stageRemoveComments = "remove_comments"
	stageRemoveAnswer   = "remove_answer"
	stageRemoveQuestion = "remove_question"
)

// removeQuestion deletes q after its answers (each with its comments) and its own comments.
//
// Children always go before their parent. On failure the steps already taken stay
// done: removed answers remain removed while the question and its comments survive.
func (s *Service) removeQuestion(ctx context.Context, q *entity.Question) (err error) {
	ctx, span := tracing.StartSpan(ctx, "forum.removeQuestion",
		trace.WithAttributes(attribute.Int64("question.id", q.ID)))
	defer func() { endSpan(span, err) }()

	answers, err := s.Answers.ListByQuestion(ctx, q.ID)
	if err != nil {
		return cascadeFailure(ctx, stageFetchAnswers, storageErr("fetch answers", err))
	}

	for _, a := range answers {
		if err := s.removeAnswer(ctx, a); err != nil {
			return err
		}
	}

	if err := s.removeComments(ctx, entity.QuestionParent(q.ID)); err != nil {
		return err
	}

	if err := s.Questions.Delete(ctx, q.ID); err != nil {
		return cascadeFailure(ctx, stageRemoveQuestion, storageErr("remove question", err))
	}
	metrics.RecordCascadeDeleted(metrics.KindQuestion, 1)

	logging.FromContext(ctx).Debug("question removed",
		"question_id", q.ID,
		"answers", len(answers))
	return nil
}

// removeAnswer deletes the comments of a, then a itself.
// a is kept if its comments could not be removed.
func (s *Service) removeAnswer(ctx context.Context, a *entity.Answer) (err error) {
	ctx, span := tracing.StartSpan(ctx, "forum.removeAnswer",
		trace.WithAttributes(attribute.Int64("answer.id", a.ID)))
	defer func() { endSpan(span, err) }()

	if err := s.removeComments(ctx, entity.AnswerParent(a.ID)); err != nil {
		return err
	}

	if err := s.Answers.Delete(ctx, a.ID); err != nil {
		return cascadeFailure(ctx, stageRemoveAnswer, storageErr("remove answer", err))
	}
	metrics.RecordCascadeDeleted(metrics.KindAnswer, 1)
	return nil
}

// removeComments deletes every comment owned by parent in one batch.
func (s *Service) removeComments(ctx context.Context, parent entity.Parent) error {
	comments, err := s.Comments.ListByParent(ctx, parent)
	if err != nil {
		return cascadeFailure(ctx, stageFetchComments, storageErr("fetch comments", err))
	}
	if len(comments) == 0 {
		return nil
	}

	ids := make([]int64, len(comments))
	for i, c := range comments {
		ids[i] = c.ID
	}
	if err := s.Comments.DeleteBatch(ctx, ids); err != nil {
		return cascadeFailure(ctx, stageRemoveComments, storageErr("remove comments", err))
	}
	metrics.RecordCascadeDeleted(metrics.KindComment, len(ids))
	return nil
}

func cascadeFailure(ctx context.Context, stage string, err error) error {
	metrics.RecordCascadeFailure(stage)
	trace.SpanFromContext(ctx).AddEvent("cascade aborted",
		trace.WithAttributes(attribute.String("stage", stage)))
	logging.FromContext(ctx).Warn("cascade aborted",
		"stage", stage,
		"error", err)
	return err
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
