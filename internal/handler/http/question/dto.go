package question

import (
	"time"

	"qa-forum/internal/usecase/forum"
)

// DTO is the JSON representation of a question.
type DTO struct {
	Title         string    `json:"title"`
	Body          string    `json:"body"`
	Date          time.Time `json:"date"`
	AnswersCount  int       `json:"answers_count"`
	CommentsCount int       `json:"comments_count"`
}

func toDTO(v forum.QuestionView) DTO {
	return DTO{
		Title:         v.Title,
		Body:          v.Body,
		Date:          v.Date,
		AnswersCount:  v.AnswersCount,
		CommentsCount: v.CommentsCount,
	}
}

// payload is the request body of create and update.
// Pointers tell an absent field from a supplied one.
type payload struct {
	Title *string `json:"title"`
	Body  *string `json:"body"`
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
