package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"qa-forum/internal/domain/entity"
	"qa-forum/internal/repository"
)

type QuestionRepo struct{ db DBTX }

func NewQuestionRepo(db DBTX) repository.QuestionRepository {
	return &QuestionRepo{db: db}
}

func (repo *QuestionRepo) Get(ctx context.Context, id int64) (*entity.Question, error) {
	const query = `
SELECT id, title, body, date
FROM questions
WHERE id = $1
LIMIT 1`
	var q entity.Question
	err := repo.db.QueryRowContext(ctx, query, id).Scan(&q.ID, &q.Title, &q.Body, &q.Date)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	return &q, nil
}

func (repo *QuestionRepo) List(ctx context.Context, offset, limit int) ([]*entity.Question, error) {
	const (
		queryAll = `
SELECT id, title, body, date
FROM questions
ORDER BY date DESC, id DESC
OFFSET $1`
		queryWindow = `
SELECT id, title, body, date
FROM questions
ORDER BY date DESC, id DESC
LIMIT $1 OFFSET $2`
	)

	var (
		rows *sql.Rows
		err  error
	)
	if limit == 0 {
		rows, err = repo.db.QueryContext(ctx, queryAll, offset)
	} else {
		rows, err = repo.db.QueryContext(ctx, queryWindow, limit, offset)
	}
	if err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	defer func() { _ = rows.Close() }()

	questions := make([]*entity.Question, 0, 16)
	for rows.Next() {
		var q entity.Question
		if err := rows.Scan(&q.ID, &q.Title, &q.Body, &q.Date); err != nil {
			return nil, fmt.Errorf("List: Scan: %w", err)
		}
		questions = append(questions, &q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	return questions, nil
}

func (repo *QuestionRepo) Create(ctx context.Context, q *entity.Question) error {
	const query = `
INSERT INTO questions (title, body, date)
VALUES ($1, $2, $3)
RETURNING id`
	if err := repo.db.QueryRowContext(ctx, query, q.Title, q.Body, q.Date).Scan(&q.ID); err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	return nil
}

func (repo *QuestionRepo) Update(ctx context.Context, q *entity.Question) error {
	const query = `
UPDATE questions SET
       title = $1,
       body  = $2
WHERE id = $3`
	res, err := repo.db.ExecContext(ctx, query, q.Title, q.Body, q.ID)
	if err != nil {
		return fmt.Errorf("Update: %w", err)
	}
	return affectOne(res, "Update")
}

func (repo *QuestionRepo) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM questions WHERE id = $1`
	res, err := repo.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("Delete: %w", err)
	}
	return affectOne(res, "Delete")
}
