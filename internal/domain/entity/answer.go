package entity

import "time"

// Answer belongs to exactly one Question. QuestionID is set at creation and never changes.
type Answer struct {
	ID         int64
	QuestionID int64
	Body       string `validate:"required,max=1000"`
	Date       time.Time
}

// Validate checks the user-supplied fields of the answer.
func (a *Answer) Validate() error {
	return validateStruct(a)
}
