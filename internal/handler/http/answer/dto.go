package answer

import (
	"time"

	"qa-forum/internal/usecase/forum"
)

// DTO is the JSON representation of an answer.
type DTO struct {
	Body          string    `json:"body"`
	Date          time.Time `json:"date"`
	CommentsCount int       `json:"comments_count"`
}

func toDTO(v forum.AnswerView) DTO {
	return DTO{Body: v.Body, Date: v.Date, CommentsCount: v.CommentsCount}
}

type payload struct {
	Body *string `json:"body"`
}
