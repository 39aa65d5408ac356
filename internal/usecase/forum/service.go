// Package forum implements the question, answer and comment use cases.
//
// Every nested operation resolves its path outer to inner (question, then answer,
// then comment). Each step is a lookup followed, for children, by a membership
// check against the parent's children. Storage calls run one after another and
// the first failure aborts the operation. Nothing is retried and no transaction
// spans the steps.
package forum

import (
	"fmt"
	"time"

	"qa-forum/internal/repository"
)

// Service provides the forum use cases over the three repositories.
type Service struct {
	Questions repository.QuestionRepository
	Answers   repository.AnswerRepository
	Comments  repository.CommentRepository

	// Now stamps new entities. Defaults to time.Now.
	Now func() time.Time
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Ref is the canonical location of a stored entity.
// Zero fields are absent from the path.
type Ref struct {
	QuestionID int64
	AnswerID   int64
	CommentID  int64
}

// Path returns the resource path for r, e.g. /questions/1/answers/2/comments/3.
func (r Ref) Path() string {
	p := fmt.Sprintf("/questions/%d", r.QuestionID)
	if r.AnswerID != 0 {
		p += fmt.Sprintf("/answers/%d", r.AnswerID)
	}
	if r.CommentID != 0 {
		p += fmt.Sprintf("/comments/%d", r.CommentID)
	}
	return p
}

// QuestionInput holds the fields of a new question.
type QuestionInput struct {
	Title string
	Body  string
}

// QuestionPatch holds a partial question update.
// Nil and empty fields are left unchanged.
type QuestionPatch struct {
	Title *string
	Body  *string
}

// BodyInput holds the field of a new answer or comment.
type BodyInput struct {
	Body string
}

// BodyPatch holds a partial answer or comment update.
// A nil or empty Body is left unchanged.
type BodyPatch struct {
	Body *string
}

// supplied reports whether a patch field carries a value.
func supplied(v *string) bool {
	return v != nil && *v != ""
}
