package forum

import (
	"slices"
	"time"

	"qa-forum/internal/common/pagination"
)

// Collection names used as list metric labels.
const (
	collectionQuestions = "questions"
	collectionAnswers   = "answers"
	collectionComments  = "comments"
)

func parseRange(collection string, q pagination.Query) (pagination.Range, error) {
	r, err := q.Parse()
	if err != nil {
		pagination.RecordError(collection)
		return pagination.Range{}, err
	}
	pagination.RecordRequest(collection, r)
	return r, nil
}

// newestFirst sorts items by date descending. Items with equal dates keep their storage order.
func newestFirst[T any](items []T, date func(T) time.Time) {
	slices.SortStableFunc(items, func(a, b T) int {
		return date(b).Compare(date(a))
	})
}
