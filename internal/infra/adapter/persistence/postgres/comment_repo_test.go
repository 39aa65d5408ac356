package postgres_test

import (
	"context"
	"database/sql/driver"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/go-cmp/cmp"

	"qa-forum/internal/domain/entity"
	"qa-forum/internal/infra/adapter/persistence/postgres"
)

var commentColumns = []string{"id", "question_id", "answer_id", "body", "date"}

func TestCommentRepo_Get(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name string
		row  []driver.Value
		want *entity.Comment
	}{
		{
			name: "question comment",
			row:  []driver.Value{int64(1), int64(10), nil, "on question", now},
			want: &entity.Comment{ID: 1, Parent: entity.QuestionParent(10), Body: "on question", Date: now},
		},
		{
			name: "answer comment",
			row:  []driver.Value{int64(2), nil, int64(20), "on answer", now},
			want: &entity.Comment{ID: 2, Parent: entity.AnswerParent(20), Body: "on answer", Date: now},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, _ := sqlmock.New()
			defer func() { _ = db.Close() }()

			mock.ExpectQuery(regexp.QuoteMeta(`FROM comments`)).
				WillReturnRows(sqlmock.NewRows(commentColumns).AddRow(tt.row...))

			repo := postgres.NewCommentRepo(db)
			got, err := repo.Get(context.Background(), tt.want.ID)
			if err != nil {
				t.Fatalf("Get err=%v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCommentRepo_Get_NotFound(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery(`FROM comments`).WillReturnRows(sqlmock.NewRows(commentColumns))

	repo := postgres.NewCommentRepo(db)
	got, err := repo.Get(context.Background(), 1)
	if err != nil || got != nil {
		t.Fatalf("Get = (%v, %v), want (nil, nil)", got, err)
	}
}

func TestCommentRepo_Get_Orphan(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery(`FROM comments`).
		WillReturnRows(sqlmock.NewRows(commentColumns).AddRow(int64(1), nil, nil, "x", time.Now()))

	repo := postgres.NewCommentRepo(db)
	if _, err := repo.Get(context.Background(), 1); err == nil {
		t.Fatal("expected error for a comment without parent")
	}
}

func TestCommentRepo_ListByParent(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name    string
		parent  entity.Parent
		pattern string
	}{
		{name: "question", parent: entity.QuestionParent(3), pattern: `WHERE question_id = $1`},
		{name: "answer", parent: entity.AnswerParent(3), pattern: `WHERE answer_id = $1`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, _ := sqlmock.New()
			defer func() { _ = db.Close() }()

			rows := sqlmock.NewRows(commentColumns)
			if tt.parent.Kind == entity.ParentQuestion {
				rows.AddRow(int64(1), int64(3), nil, "c1", now)
			} else {
				rows.AddRow(int64(1), nil, int64(3), "c1", now)
			}
			mock.ExpectQuery(regexp.QuoteMeta(tt.pattern)).
				WithArgs(int64(3)).
				WillReturnRows(rows)

			repo := postgres.NewCommentRepo(db)
			got, err := repo.ListByParent(context.Background(), tt.parent)
			if err != nil {
				t.Fatalf("ListByParent err=%v", err)
			}
			want := []*entity.Comment{{ID: 1, Parent: tt.parent, Body: "c1", Date: now}}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Fatalf("mismatch (-want +got):\n%s", diff)
			}
			if err := mock.ExpectationsWereMet(); err != nil {
				t.Fatal(err)
			}
		})
	}
}

func TestCommentRepo_Create(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name     string
		parent   entity.Parent
		question interface{}
		answer   interface{}
	}{
		{name: "question parent", parent: entity.QuestionParent(1), question: int64(1), answer: nil},
		{name: "answer parent", parent: entity.AnswerParent(2), question: nil, answer: int64(2)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, _ := sqlmock.New()
			defer func() { _ = db.Close() }()

			mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO comments`)).
				WithArgs(tt.question, tt.answer, "hello", now).
				WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(11)))

			repo := postgres.NewCommentRepo(db)
			c := &entity.Comment{Parent: tt.parent, Body: "hello", Date: now}
			if err := repo.Create(context.Background(), c); err != nil {
				t.Fatalf("Create err=%v", err)
			}
			if c.ID != 11 {
				t.Errorf("ID = %d, want 11", c.ID)
			}
			if err := mock.ExpectationsWereMet(); err != nil {
				t.Fatal(err)
			}
		})
	}
}

func TestCommentRepo_DeleteBatch(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM comments WHERE id IN ($1, $2, $3)`)).
		WithArgs(int64(4), int64(5), int64(6)).
		WillReturnResult(sqlmock.NewResult(0, 3))

	repo := postgres.NewCommentRepo(db)
	if err := repo.DeleteBatch(context.Background(), []int64{4, 5, 6}); err != nil {
		t.Fatalf("DeleteBatch err=%v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestCommentRepo_DeleteBatch_Empty(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	repo := postgres.NewCommentRepo(db)
	if err := repo.DeleteBatch(context.Background(), nil); err != nil {
		t.Fatalf("DeleteBatch err=%v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestCommentRepo_UpdateAndDelete(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectExec(`UPDATE comments SET body`).
		WithArgs("edited", int64(8)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM comments WHERE id = \$1`).
		WithArgs(int64(8)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := postgres.NewCommentRepo(db)
	if err := repo.Update(context.Background(), &entity.Comment{ID: 8, Parent: entity.QuestionParent(1), Body: "edited"}); err != nil {
		t.Fatalf("Update err=%v", err)
	}
	if err := repo.Delete(context.Background(), 8); err != nil {
		t.Fatalf("Delete err=%v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}
