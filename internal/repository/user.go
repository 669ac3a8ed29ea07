package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mmeshcher/backoffice-system/internal/model"
)

// Users предоставляет CRUD-доступ к таблице пользователей.
type Users struct {
	pool *pgxpool.Pool
}

// GetAll возвращает всех пользователей.
func (r *Users) GetAll(ctx context.Context) ([]model.User, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, user_name, password, full_name, role FROM users`,
	)
	if err != nil {
		return nil, fmt.Errorf("select users: %w", err)
	}
	defer rows.Close()

	var users []model.User
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.ID, &u.UserName, &u.Password, &u.FullName, &u.Role); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, u)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return users, nil
}

// GetByID возвращает пользователя по идентификатору либо nil, если записи нет.
func (r *Users) GetByID(ctx context.Context, id int64) (*model.User, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT id, user_name, password, full_name, role FROM users WHERE id = $1`,
		id,
	)

	var u model.User
	err := row.Scan(&u.ID, &u.UserName, &u.Password, &u.FullName, &u.Role)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	return &u, nil
}

// Create сохраняет нового пользователя и возвращает его с присвоенным идентификатором.
// Имя пользователя уникально; при конфликте возвращается ErrDuplicateUserName.
func (r *Users) Create(ctx context.Context, u *model.User) (*model.User, error) {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO users (user_name, password, full_name, role)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		u.UserName, u.Password, u.FullName, u.Role,
	).Scan(&u.ID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateUserName, u.UserName)
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}

	return u, nil
}

// Update сохраняет изменения ранее полученного пользователя.
func (r *Users) Update(ctx context.Context, u *model.User) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE users
		 SET user_name = $2, password = $3, full_name = $4, role = $5
		 WHERE id = $1`,
		u.ID, u.UserName, u.Password, u.FullName, u.Role,
	)
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

// Delete удаляет пользователя.
func (r *Users) Delete(ctx context.Context, u *model.User) (bool, error) {
	_, err := r.pool.Exec(ctx, `DELETE FROM users WHERE id = $1`, u.ID)
	if err != nil {
		return false, fmt.Errorf("delete user: %w", err)
	}
	return true, nil
}
