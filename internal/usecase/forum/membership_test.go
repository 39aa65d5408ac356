package forum

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"qa-forum/internal/domain/entity"
	"qa-forum/internal/observability/metrics"
)

func TestAnswer_ThroughWrongQuestionIsNotFound(t *testing.T) {
	s, _ := newTestService(t)
	ctx := context.Background()
	q1 := mustQuestion(t, s, "q1")
	mustQuestion(t, s, "q2")
	a := mustAnswer(t, s, q1, "belongs to q1")

	before := testutil.ToFloat64(metrics.MembershipRejectionsTotal.WithLabelValues(metrics.KindAnswer))

	_, err := s.GetAnswer(ctx, "2", id(a.AnswerID))
	assert.ErrorIs(t, err, ErrAnswerNotFound)

	err = s.UpdateAnswer(ctx, "2", id(a.AnswerID), BodyPatch{Body: ptr("hijack")})
	assert.ErrorIs(t, err, ErrAnswerNotFound)

	err = s.DeleteAnswer(ctx, "2", id(a.AnswerID))
	assert.ErrorIs(t, err, ErrAnswerNotFound)

	after := testutil.ToFloat64(metrics.MembershipRejectionsTotal.WithLabelValues(metrics.KindAnswer))
	assert.Equal(t, before+3, after)

	// The answer is untouched and still reachable through its own question.
	got, err := s.GetAnswer(ctx, "1", id(a.AnswerID))
	require.NoError(t, err)
	assert.Equal(t, "belongs to q1", got.Body)
}

func TestComment_ThroughWrongParentIsNotFound(t *testing.T) {
	s, _ := newTestService(t)
	ctx := context.Background()
	q1 := mustQuestion(t, s, "q1")
	q2 := mustQuestion(t, s, "q2")
	a1 := mustAnswer(t, s, q1, "a1")
	a2 := mustAnswer(t, s, q1, "a2")

	onQuestion := mustComment(t, s, q1, "on q1")
	onAnswer := mustComment(t, s, a1, "on a1")

	tests := []struct {
		name      string
		parent    ParentPath
		commentID int64
	}{
		{"question comment via other question", ParentPath{QuestionID: id(q2.QuestionID)}, onQuestion.CommentID},
		{"question comment via answer", ParentPath{QuestionID: "1", AnswerID: id(a1.AnswerID)}, onQuestion.CommentID},
		{"answer comment via question", ParentPath{QuestionID: "1"}, onAnswer.CommentID},
		{"answer comment via sibling answer", ParentPath{QuestionID: "1", AnswerID: id(a2.AnswerID)}, onAnswer.CommentID},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.GetComment(ctx, tt.parent, id(tt.commentID))
			assert.ErrorIs(t, err, ErrCommentNotFound)
			assert.ErrorIs(t, err, entity.ErrNotFound)
		})
	}

	// Right answer, wrong question.
	_, err := s.GetComment(ctx, ParentPath{QuestionID: "2", AnswerID: id(a1.AnswerID)}, id(onAnswer.CommentID))
	assert.ErrorIs(t, err, ErrAnswerNotFound)
}

func TestResolution_OuterSegmentFailsFirst(t *testing.T) {
	s, _ := newTestService(t)
	ctx := context.Background()
	q := mustQuestion(t, s, "q")
	mustAnswer(t, s, q, "a")

	// Missing question wins over a malformed answer id.
	_, err := s.GetAnswer(ctx, "7", "bad")
	assert.ErrorIs(t, err, ErrQuestionNotFound)

	// Malformed question id wins over everything.
	_, err = s.GetComment(ctx, ParentPath{QuestionID: "bad", AnswerID: "9"}, "9")
	assert.ErrorIs(t, err, entity.ErrValidationFailed)

	// Nested list: a missing parent is reported before a bad range.
	_, err = s.ListAnswers(ctx, "7", query("0", "", ""))
	assert.ErrorIs(t, err, ErrQuestionNotFound)
	_, err = s.ListComments(ctx, ParentPath{QuestionID: "1", AnswerID: "9"}, query("", "3", "1"))
	assert.ErrorIs(t, err, ErrAnswerNotFound)
}
