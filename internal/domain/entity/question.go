// Package entity defines the core domain entities and validation logic for the forum.
// It contains the Question, Answer and Comment records, the ownership link between a
// comment and its parent, and the domain-specific errors shared by every layer.
package entity

import "time"

// Question is the root of the forum hierarchy.
// It exclusively owns its answers and its question-level comments.
type Question struct {
	ID    int64
	Title string `validate:"required,max=100"`
	Body  string `validate:"required,max=1000"`
	Date  time.Time
}

// Validate checks the user-supplied fields of the question.
func (q *Question) Validate() error {
	return validateStruct(q)
}
