package entity

import (
	"fmt"
	"time"
)

// ParentKind identifies which kind of entity owns a comment.
type ParentKind string

const (
	ParentQuestion ParentKind = "question"
	ParentAnswer   ParentKind = "answer"
)

// Parent is the owner of a comment: exactly one question or exactly one answer.
type Parent struct {
	Kind ParentKind
	ID   int64
}

// QuestionParent returns the Parent for a question-level comment.
func QuestionParent(id int64) Parent { return Parent{Kind: ParentQuestion, ID: id} }

// AnswerParent returns the Parent for an answer-level comment.
func AnswerParent(id int64) Parent { return Parent{Kind: ParentAnswer, ID: id} }

func (p Parent) String() string {
	return fmt.Sprintf("%s/%d", p.Kind, p.ID)
}

// Comment is owned by a single parent. The link is immutable after creation.
type Comment struct {
	ID     int64
	Parent Parent
	Body   string `validate:"required,max=1000"`
	Date   time.Time
}

// Validate checks the user-supplied fields of the comment and its parent link.
func (c *Comment) Validate() error {
	switch c.Parent.Kind {
	case ParentQuestion, ParentAnswer:
	default:
		return &ValidationError{Field: "parent", Message: fmt.Sprintf("invalid parent kind %q", c.Parent.Kind)}
	}
	return validateStruct(c)
}
