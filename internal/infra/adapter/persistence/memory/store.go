// Package memory provides an in-process implementation of the forum repositories.
//
// It mirrors the relational schema closely enough to be a drop-in for Postgres:
// IDs are assigned per table starting at 1, child rows must reference an
// existing parent, and a parent with remaining children cannot be deleted.
package memory

import (
	"errors"
	"sync"

	"qa-forum/internal/domain/entity"
	"qa-forum/internal/repository"
)

var (
	// ErrNoRows is returned by Update and Delete when the target row is absent.
	ErrNoRows = errors.New("no rows affected")
	// ErrForeignKey is returned when a write would break a parent link.
	ErrForeignKey = errors.New("foreign key violation")
)

// Store holds all forum tables behind one lock.
type Store struct {
	mu sync.RWMutex

	questions map[int64]entity.Question
	answers   map[int64]entity.Answer
	comments  map[int64]entity.Comment

	nextQuestion int64
	nextAnswer   int64
	nextComment  int64
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{
		questions: make(map[int64]entity.Question),
		answers:   make(map[int64]entity.Answer),
		comments:  make(map[int64]entity.Comment),
	}
}

func (s *Store) Questions() repository.QuestionRepository { return &QuestionRepo{s: s} }
func (s *Store) Answers() repository.AnswerRepository     { return &AnswerRepo{s: s} }
func (s *Store) Comments() repository.CommentRepository   { return &CommentRepo{s: s} }
func (s *Store) Stats() repository.StatsRepository        { return &StatsRepo{s: s} }

// parentExists must be called with s.mu held.
func (s *Store) parentExists(p entity.Parent) bool {
	switch p.Kind {
	case entity.ParentQuestion:
		_, ok := s.questions[p.ID]
		return ok
	case entity.ParentAnswer:
		_, ok := s.answers[p.ID]
		return ok
	}
	return false
}

// hasComments must be called with s.mu held.
func (s *Store) hasComments(p entity.Parent) bool {
	for _, c := range s.comments {
		if c.Parent == p {
			return true
		}
	}
	return false
}
