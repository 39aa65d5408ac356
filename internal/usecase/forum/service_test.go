package forum

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"qa-forum/internal/common/pagination"
	"qa-forum/internal/domain/entity"
	"qa-forum/internal/infra/adapter/persistence/memory"
	"qa-forum/internal/repository"
)

/* ──────────────────────────────── helpers ──────────────────────────────── */

// tick returns a clock that advances one minute per call.
func tick() func() time.Time {
	t0 := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	n := 0
	return func() time.Time {
		n++
		return t0.Add(time.Duration(n) * time.Minute)
	}
}

func newTestService(t *testing.T) (*Service, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	return &Service{
		Questions: store.Questions(),
		Answers:   store.Answers(),
		Comments:  store.Comments(),
		Now:       tick(),
	}, store
}

func id(v int64) string { return strconv.FormatInt(v, 10) }

func ptr(s string) *string { return &s }

func mustQuestion(t *testing.T, s *Service, title string) Ref {
	t.Helper()
	ref, err := s.CreateQuestion(context.Background(), QuestionInput{Title: title, Body: title + " body"})
	require.NoError(t, err)
	return ref
}

func mustAnswer(t *testing.T, s *Service, q Ref, body string) Ref {
	t.Helper()
	ref, err := s.CreateAnswer(context.Background(), id(q.QuestionID), BodyInput{Body: body})
	require.NoError(t, err)
	return ref
}

func mustComment(t *testing.T, s *Service, parent Ref, body string) Ref {
	t.Helper()
	p := ParentPath{QuestionID: id(parent.QuestionID)}
	if parent.AnswerID != 0 {
		p.AnswerID = id(parent.AnswerID)
	}
	ref, err := s.CreateComment(context.Background(), p, BodyInput{Body: body})
	require.NoError(t, err)
	return ref
}

func query(count, start, end string) pagination.Query {
	var q pagination.Query
	if count != "" {
		q.Count = &count
	}
	if start != "" {
		q.Start = &start
	}
	if end != "" {
		q.End = &end
	}
	return q
}

// untouchedQuestions fails the test if storage is reached.
type untouchedQuestions struct {
	repository.QuestionRepository
	t *testing.T
}

func (r untouchedQuestions) Get(context.Context, int64) (*entity.Question, error) {
	r.t.Fatal("storage reached")
	return nil, nil
}

func (r untouchedQuestions) List(context.Context, int, int) ([]*entity.Question, error) {
	r.t.Fatal("storage reached")
	return nil, nil
}

/* ──────────────────────────────── Ref ──────────────────────────────── */

func TestRef_Path(t *testing.T) {
	tests := []struct {
		ref  Ref
		want string
	}{
		{Ref{QuestionID: 1}, "/questions/1"},
		{Ref{QuestionID: 1, AnswerID: 2}, "/questions/1/answers/2"},
		{Ref{QuestionID: 1, CommentID: 3}, "/questions/1/comments/3"},
		{Ref{QuestionID: 1, AnswerID: 2, CommentID: 3}, "/questions/1/answers/2/comments/3"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.ref.Path())
		})
	}
}

/* ──────────────────────────────── ParseID ──────────────────────────────── */

func TestParseID(t *testing.T) {
	tests := []struct {
		raw     string
		want    int64
		wantErr bool
	}{
		{"0", 0, false},
		{"42", 42, false},
		{"007", 7, false},
		{"", 0, true},
		{"abc", 0, true},
		{"-1", 0, true},
		{"+1", 0, true},
		{" 1", 0, true},
		{"1.5", 0, true},
		{"99999999999999999999", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParseID("question_id", tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, entity.ErrValidationFailed)
				var ve *entity.ValidationError
				require.ErrorAs(t, err, &ve)
				assert.Equal(t, "question_id", ve.Field)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

/* ──────────────────────────────── questions ──────────────────────────────── */

func TestCreateQuestion(t *testing.T) {
	s, _ := newTestService(t)
	ctx := context.Background()

	ref, err := s.CreateQuestion(ctx, QuestionInput{Title: "How?", Body: "Like this"})
	require.NoError(t, err)
	assert.Equal(t, "/questions/1", ref.Path())

	got, err := s.GetQuestion(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "How?", got.Title)
	assert.Equal(t, "Like this", got.Body)
	assert.Zero(t, got.AnswersCount)
	assert.Zero(t, got.CommentsCount)
	assert.False(t, got.Date.IsZero())
}

func TestCreateQuestion_Validation(t *testing.T) {
	tests := []struct {
		name  string
		in    QuestionInput
		field string
	}{
		{"missing title", QuestionInput{Body: "b"}, "title"},
		{"missing body", QuestionInput{Title: "t"}, "body"},
		{"title too long", QuestionInput{Title: strings.Repeat("x", 101), Body: "b"}, "title"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, store := newTestService(t)
			_, err := s.CreateQuestion(context.Background(), tt.in)

			var ve *entity.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.field, ve.Field)

			totals, err := store.Stats().Count(context.Background())
			require.NoError(t, err)
			assert.Zero(t, totals.Questions)
		})
	}
}

func TestGetQuestion_Errors(t *testing.T) {
	s, _ := newTestService(t)
	mustQuestion(t, s, "q")

	_, err := s.GetQuestion(context.Background(), "2")
	assert.ErrorIs(t, err, ErrQuestionNotFound)
	assert.ErrorIs(t, err, entity.ErrNotFound)

	_, err = s.GetQuestion(context.Background(), "one")
	assert.ErrorIs(t, err, entity.ErrValidationFailed)
}

func TestGetQuestion_MalformedIDDoesNotReachStorage(t *testing.T) {
	s, _ := newTestService(t)
	s.Questions = untouchedQuestions{QuestionRepository: s.Questions, t: t}

	_, err := s.GetQuestion(context.Background(), "x1")
	assert.ErrorIs(t, err, entity.ErrValidationFailed)

	err = s.DeleteQuestion(context.Background(), "-3")
	assert.ErrorIs(t, err, entity.ErrValidationFailed)
}

func TestGetQuestion_Counts(t *testing.T) {
	s, _ := newTestService(t)
	q := mustQuestion(t, s, "q")
	mustAnswer(t, s, q, "a1")
	a2 := mustAnswer(t, s, q, "a2")
	for _, body := range []string{"c1", "c2", "c3"} {
		mustComment(t, s, q, body)
	}
	mustComment(t, s, a2, "answer comment")

	got, err := s.GetQuestion(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, 2, got.AnswersCount)
	assert.Equal(t, 3, got.CommentsCount)

	answer, err := s.GetAnswer(context.Background(), "1", id(a2.AnswerID))
	require.NoError(t, err)
	assert.Equal(t, 1, answer.CommentsCount)
}

func TestUpdateQuestion_Partial(t *testing.T) {
	s, _ := newTestService(t)
	ctx := context.Background()
	mustQuestion(t, s, "original")

	require.NoError(t, s.UpdateQuestion(ctx, "1", QuestionPatch{Body: ptr("new body")}))
	got, err := s.GetQuestion(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "original", got.Title)
	assert.Equal(t, "new body", got.Body)

	// Empty values are treated as absent.
	require.NoError(t, s.UpdateQuestion(ctx, "1", QuestionPatch{Title: ptr(""), Body: ptr("")}))
	got, err = s.GetQuestion(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "original", got.Title)
	assert.Equal(t, "new body", got.Body)

	// An empty patch still succeeds.
	require.NoError(t, s.UpdateQuestion(ctx, "1", QuestionPatch{}))
}

func TestUpdateQuestion_Errors(t *testing.T) {
	s, _ := newTestService(t)
	mustQuestion(t, s, "q")

	err := s.UpdateQuestion(context.Background(), "9", QuestionPatch{Title: ptr("t")})
	assert.ErrorIs(t, err, ErrQuestionNotFound)

	tooLong := strings.Repeat("y", 1001)
	err = s.UpdateQuestion(context.Background(), "1", QuestionPatch{Body: &tooLong})
	assert.ErrorIs(t, err, entity.ErrValidationFailed)
}

func TestListQuestions_NewestFirstAndRanges(t *testing.T) {
	s, _ := newTestService(t)
	ctx := context.Background()
	for _, title := range []string{"q1", "q2", "q3", "q4", "q5"} {
		mustQuestion(t, s, title)
	}

	titles := func(views []QuestionView) []string {
		out := make([]string, len(views))
		for i, v := range views {
			out[i] = v.Title
		}
		return out
	}

	tests := []struct {
		name  string
		query pagination.Query
		want  []string
	}{
		{"all", query("", "", ""), []string{"q5", "q4", "q3", "q2", "q1"}},
		{"count", query("2", "", ""), []string{"q5", "q4"}},
		{"count beyond size", query("10", "", ""), []string{"q5", "q4", "q3", "q2", "q1"}},
		{"window", query("", "1", "3"), []string{"q4", "q3", "q2"}},
		{"single item window", query("", "2", "2"), []string{"q3"}},
		{"window after last item", query("", "5", "9"), []string{}},
		{"window past end", query("", "4", "9"), []string{"q1"}},
		{"pair wins over count", query("1", "0", "2"), []string{"q5", "q4", "q3"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			views, err := s.ListQuestions(ctx, tt.query)
			require.NoError(t, err)
			assert.Equal(t, tt.want, titles(views))
		})
	}
}

func TestListQuestions_InvalidRangeDoesNotReachStorage(t *testing.T) {
	s, _ := newTestService(t)
	s.Questions = untouchedQuestions{QuestionRepository: s.Questions, t: t}

	for _, q := range []pagination.Query{
		query("0", "", ""),
		query("-1", "", ""),
		query("", "0", "-1"),
		query("", "3", "1"),
		query("", "1", ""),
		query("", "", "2"),
	} {
		_, err := s.ListQuestions(context.Background(), q)
		assert.ErrorIs(t, err, entity.ErrValidationFailed)
	}
}

func TestService_StorageErrorsAreMarked(t *testing.T) {
	s, _ := newTestService(t)
	boom := errors.New("connection reset")
	s.Questions = failingQuestions{QuestionRepository: s.Questions, err: boom}

	_, err := s.CreateQuestion(context.Background(), QuestionInput{Title: "t", Body: "b"})
	assert.ErrorIs(t, err, ErrStorage)
	assert.ErrorIs(t, err, boom)

	_, err = s.GetQuestion(context.Background(), "1")
	assert.ErrorIs(t, err, ErrStorage)

	_, err = s.ListQuestions(context.Background(), pagination.Query{})
	assert.ErrorIs(t, err, ErrStorage)
}

type failingQuestions struct {
	repository.QuestionRepository
	err error
}

func (r failingQuestions) Get(context.Context, int64) (*entity.Question, error) { return nil, r.err }
func (r failingQuestions) Create(context.Context, *entity.Question) error       { return r.err }
func (r failingQuestions) List(context.Context, int, int) ([]*entity.Question, error) {
	return nil, r.err
}
