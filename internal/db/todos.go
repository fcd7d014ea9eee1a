package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
)

const todosTable = "todos"

var ErrNotFound = errors.New("not found")

type Todo struct {
	ID        int64
	Title     string
	Done      bool
	CreatedAt time.Time
}

type TodoStore struct {
	client *Client
	now    func() time.Time
}

func NewTodoStore(client *Client) *TodoStore {
	return &TodoStore{client: client, now: time.Now}
}

func (s *TodoStore) List(ctx context.Context) ([]Todo, error) {
	rows, err := s.client.Builder.
		Select("id", "title", "done", "created_at").
		From(todosTable).
		OrderBy("id").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("list todos: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var todos []Todo
	for rows.Next() {
		var t Todo
		var created int64
		if err := rows.Scan(&t.ID, &t.Title, &t.Done, &created); err != nil {
			return nil, fmt.Errorf("scan todo: %w", err)
		}
		t.CreatedAt = time.Unix(created, 0).UTC()
		todos = append(todos, t)
	}
	return todos, rows.Err()
}

func (s *TodoStore) Create(ctx context.Context, title string) (Todo, error) {
	if title == "" {
		return Todo{}, fmt.Errorf("create todo: title cannot be empty")
	}

	created := s.now().UTC().Truncate(time.Second)
	var id int64
	err := s.client.Builder.
		Insert(todosTable).
		Columns("title", "done", "created_at").
		Values(title, false, created.Unix()).
		Suffix("RETURNING id").
		QueryRowContext(ctx).
		Scan(&id)
	if err != nil {
		return Todo{}, fmt.Errorf("create todo: %w", err)
	}
	return Todo{ID: id, Title: title, CreatedAt: created}, nil
}

func (s *TodoStore) Toggle(ctx context.Context, id int64) (Todo, error) {
	res, err := s.client.Builder.
		Update(todosTable).
		Set("done", sq.Expr("NOT done")).
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)
	if err != nil {
		return Todo{}, fmt.Errorf("toggle todo %d: %w", id, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return Todo{}, fmt.Errorf("toggle todo %d: %w", id, ErrNotFound)
	}
	return s.Get(ctx, id)
}

func (s *TodoStore) Get(ctx context.Context, id int64) (Todo, error) {
	var t Todo
	var created int64
	err := s.client.Builder.
		Select("id", "title", "done", "created_at").
		From(todosTable).
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx).
		Scan(&t.ID, &t.Title, &t.Done, &created)
	if errors.Is(err, sql.ErrNoRows) {
		return Todo{}, fmt.Errorf("get todo %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return Todo{}, fmt.Errorf("get todo %d: %w", id, err)
	}
	t.CreatedAt = time.Unix(created, 0).UTC()
	return t, nil
}

func (s *TodoStore) Delete(ctx context.Context, id int64) error {
	res, err := s.client.Builder.
		Delete(todosTable).
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("delete todo %d: %w", id, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("delete todo %d: %w", id, ErrNotFound)
	}
	return nil
}
