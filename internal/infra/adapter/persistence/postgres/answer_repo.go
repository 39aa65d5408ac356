package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"qa-forum/internal/domain/entity"
	"qa-forum/internal/repository"
)

type AnswerRepo struct{ db DBTX }

func NewAnswerRepo(db DBTX) repository.AnswerRepository {
	return &AnswerRepo{db: db}
}

func (repo *AnswerRepo) Get(ctx context.Context, id int64) (*entity.Answer, error) {
	const query = `
SELECT id, question_id, body, date
FROM answers
WHERE id = $1
LIMIT 1`
	var a entity.Answer
	err := repo.db.QueryRowContext(ctx, query, id).Scan(&a.ID, &a.QuestionID, &a.Body, &a.Date)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	return &a, nil
}

func (repo *AnswerRepo) ListByQuestion(ctx context.Context, questionID int64) ([]*entity.Answer, error) {
	const query = `
SELECT id, question_id, body, date
FROM answers
WHERE question_id = $1
ORDER BY id ASC`
	rows, err := repo.db.QueryContext(ctx, query, questionID)
	if err != nil {
		return nil, fmt.Errorf("ListByQuestion: %w", err)
	}
	defer func() { _ = rows.Close() }()

	answers := make([]*entity.Answer, 0, 16)
	for rows.Next() {
		var a entity.Answer
		if err := rows.Scan(&a.ID, &a.QuestionID, &a.Body, &a.Date); err != nil {
			return nil, fmt.Errorf("ListByQuestion: Scan: %w", err)
		}
		answers = append(answers, &a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListByQuestion: %w", err)
	}
	return answers, nil
}

func (repo *AnswerRepo) Create(ctx context.Context, a *entity.Answer) error {
	const query = `
INSERT INTO answers (question_id, body, date)
VALUES ($1, $2, $3)
RETURNING id`
	if err := repo.db.QueryRowContext(ctx, query, a.QuestionID, a.Body, a.Date).Scan(&a.ID); err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	return nil
}

func (repo *AnswerRepo) Update(ctx context.Context, a *entity.Answer) error {
	const query = `UPDATE answers SET body = $1 WHERE id = $2`
	res, err := repo.db.ExecContext(ctx, query, a.Body, a.ID)
	if err != nil {
		return fmt.Errorf("Update: %w", err)
	}
	return affectOne(res, "Update")
}

func (repo *AnswerRepo) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM answers WHERE id = $1`
	res, err := repo.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("Delete: %w", err)
	}
	return affectOne(res, "Delete")
}
