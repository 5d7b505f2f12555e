package postgres

import (
	"context"

	"bookvault/internal/core"
)

func (a *Adapter) AddSavedBook(ctx context.Context, userID string, book core.Book) (*core.User, error) {
	// ON CONFLICT DO NOTHING gives the collection its set semantics:
	// re-adding an existing (user_id, book_id) pair changes nothing.
	q := `INSERT INTO saved_books (user_id, book_id, title, authors, description, image, link)
	      VALUES ($1, $2, $3, $4, $5, $6, $7)
	      ON CONFLICT (user_id, book_id) DO NOTHING`

	_, err := a.pool.Exec(ctx, q,
		userID, book.BookID, book.Title, book.Authors, book.Description, book.Image, book.Link)
	if err != nil {
		return nil, err
	}

	return a.GetUserByID(ctx, userID)
}

func (a *Adapter) RemoveSavedBook(ctx context.Context, userID string, bookID string) (*core.User, error) {
	q := `DELETE FROM saved_books WHERE user_id = $1 AND book_id = $2`

	// Zero rows affected is fine: removal is idempotent.
	if _, err := a.pool.Exec(ctx, q, userID, bookID); err != nil {
		return nil, err
	}

	return a.GetUserByID(ctx, userID)
}

func (a *Adapter) loadSavedBooks(ctx context.Context, userID string) ([]core.Book, error) {
	q := `SELECT book_id, title, authors, description, image, link
	      FROM saved_books
	      WHERE user_id = $1
	      ORDER BY saved_at`

	rows, err := a.pool.Query(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	books := []core.Book{}
	for rows.Next() {
		var b core.Book
		if err := rows.Scan(&b.BookID, &b.Title, &b.Authors, &b.Description, &b.Image, &b.Link); err != nil {
			return nil, err
		}
		books = append(books, b)
	}

	return books, rows.Err()
}
