package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"bookvault/internal/core"
)

const userColumns = `id, username, email, password_hash, created_at, updated_at`

func (a *Adapter) CreateUser(ctx context.Context, user *core.User) error {
	q := `INSERT INTO users (username, email, password_hash)
	      VALUES ($1, $2, $3)
	      RETURNING id, created_at, updated_at`

	err := a.pool.QueryRow(ctx, q, user.Username, user.Email, user.PasswordHash).
		Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return core.ErrUserExists
		}
		return err
	}

	return nil
}

func (a *Adapter) GetUserByID(ctx context.Context, id string) (*core.User, error) {
	q := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return a.getUser(ctx, q, id)
}

func (a *Adapter) GetUserByUsername(ctx context.Context, username string) (*core.User, error) {
	q := `SELECT ` + userColumns + ` FROM users WHERE username = $1`
	return a.getUser(ctx, q, username)
}

func (a *Adapter) GetUserByEmail(ctx context.Context, email string) (*core.User, error) {
	q := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	return a.getUser(ctx, q, email)
}

func (a *Adapter) GetUserByLogin(ctx context.Context, login string) (*core.User, error) {
	q := `SELECT ` + userColumns + ` FROM users WHERE username = $1 OR email = $1`
	return a.getUser(ctx, q, login)
}

func (a *Adapter) getUser(ctx context.Context, query string, arg any) (*core.User, error) {
	user := &core.User{}
	err := a.pool.QueryRow(ctx, query, arg).
		Scan(&user.ID, &user.Username, &user.Email, &user.PasswordHash, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, core.ErrUserNotFound
		}
		return nil, err
	}

	books, err := a.loadSavedBooks(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	user.SavedBooks = books

	return user, nil
}
