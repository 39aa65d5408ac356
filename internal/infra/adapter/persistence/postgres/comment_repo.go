package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"qa-forum/internal/domain/entity"
	"qa-forum/internal/repository"
)

type CommentRepo struct{ db DBTX }

func NewCommentRepo(db DBTX) repository.CommentRepository {
	return &CommentRepo{db: db}
}

// A comment row carries exactly one non-NULL parent column.
func scanComment(scan func(dest ...any) error) (*entity.Comment, error) {
	var (
		c          entity.Comment
		questionID sql.NullInt64
		answerID   sql.NullInt64
	)
	if err := scan(&c.ID, &questionID, &answerID, &c.Body, &c.Date); err != nil {
		return nil, err
	}
	switch {
	case questionID.Valid:
		c.Parent = entity.QuestionParent(questionID.Int64)
	case answerID.Valid:
		c.Parent = entity.AnswerParent(answerID.Int64)
	default:
		return nil, fmt.Errorf("comment %d has no parent", c.ID)
	}
	return &c, nil
}

func parentColumns(p entity.Parent) (questionID, answerID sql.NullInt64, err error) {
	switch p.Kind {
	case entity.ParentQuestion:
		questionID = sql.NullInt64{Int64: p.ID, Valid: true}
	case entity.ParentAnswer:
		answerID = sql.NullInt64{Int64: p.ID, Valid: true}
	default:
		err = fmt.Errorf("unknown parent kind %q", p.Kind)
	}
	return questionID, answerID, err
}

func (repo *CommentRepo) Get(ctx context.Context, id int64) (*entity.Comment, error) {
	const query = `
SELECT id, question_id, answer_id, body, date
FROM comments
WHERE id = $1
LIMIT 1`
	c, err := scanComment(repo.db.QueryRowContext(ctx, query, id).Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	return c, nil
}

func (repo *CommentRepo) ListByParent(ctx context.Context, parent entity.Parent) ([]*entity.Comment, error) {
	const (
		byQuestion = `
SELECT id, question_id, answer_id, body, date
FROM comments
WHERE question_id = $1
ORDER BY id ASC`
		byAnswer = `
SELECT id, question_id, answer_id, body, date
FROM comments
WHERE answer_id = $1
ORDER BY id ASC`
	)

	var query string
	switch parent.Kind {
	case entity.ParentQuestion:
		query = byQuestion
	case entity.ParentAnswer:
		query = byAnswer
	default:
		return nil, fmt.Errorf("ListByParent: unknown parent kind %q", parent.Kind)
	}

	rows, err := repo.db.QueryContext(ctx, query, parent.ID)
	if err != nil {
		return nil, fmt.Errorf("ListByParent: %w", err)
	}
	defer func() { _ = rows.Close() }()

	comments := make([]*entity.Comment, 0, 16)
	for rows.Next() {
		c, err := scanComment(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("ListByParent: Scan: %w", err)
		}
		comments = append(comments, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListByParent: %w", err)
	}
	return comments, nil
}

func (repo *CommentRepo) Create(ctx context.Context, c *entity.Comment) error {
	const query = `
INSERT INTO comments (question_id, answer_id, body, date)
VALUES ($1, $2, $3, $4)
RETURNING id`
	questionID, answerID, err := parentColumns(c.Parent)
	if err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	if err := repo.db.QueryRowContext(ctx, query, questionID, answerID, c.Body, c.Date).Scan(&c.ID); err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	return nil
}

func (repo *CommentRepo) Update(ctx context.Context, c *entity.Comment) error {
	const query = `UPDATE comments SET body = $1 WHERE id = $2`
	res, err := repo.db.ExecContext(ctx, query, c.Body, c.ID)
	if err != nil {
		return fmt.Errorf("Update: %w", err)
	}
	return affectOne(res, "Update")
}

func (repo *CommentRepo) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM comments WHERE id = $1`
	res, err := repo.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("Delete: %w", err)
	}
	return affectOne(res, "Delete")
}

func (repo *CommentRepo) DeleteBatch(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}

	var sb strings.Builder
	sb.WriteString("DELETE FROM comments WHERE id IN (")
	args := make([]interface{}, len(ids))
	for i, id := range ids {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString("$" + strconv.Itoa(i+1))
		args[i] = id
	}
	sb.WriteString(")")

	if _, err := repo.db.ExecContext(ctx, sb.String(), args...); err != nil {
		return fmt.Errorf("DeleteBatch: %w", err)
	}
	return nil
}
