package comment

import (
	"time"

	"qa-forum/internal/usecase/forum"
)

// DTO is the JSON representation of a comment.
type DTO struct {
	Body string    `json:"body"`
	Date time.Time `json:"date"`
}

func toDTO(v forum.CommentView) DTO {
	return DTO{Body: v.Body, Date: v.Date}
}

type payload struct {
	Body *string `json:"body"`
}
