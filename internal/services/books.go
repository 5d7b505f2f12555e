package services

import (
	"context"
	"fmt"

	"bookvault/internal/auth"
	"bookvault/internal/core"
)

// BookService serves the caller's own record and saved-book collection.
// Every operation passes the authorization gate before touching storage
// and can only target the resolved identity's own collection.
type BookService struct {
	db core.UserStorage
}

func NewBookService(db core.UserStorage) *BookService {
	return &BookService{db: db}
}

// Me returns the caller's own user record.
func (s *BookService) Me(ctx context.Context) (*core.User, error) {
	claims, err := auth.RequireIdentity(ctx)
	if err != nil {
		return nil, err
	}

	user, err := s.db.GetUserByID(ctx, claims.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return user, nil
}

// SaveBook adds a book to the caller's collection. Saving a book that is
// already present by BookID leaves the collection unchanged.
func (s *BookService) SaveBook(ctx context.Context, book core.Book) (*core.User, error) {
	claims, err := auth.RequireIdentity(ctx)
	if err != nil {
		return nil, err
	}

	if book.BookID == "" {
		return nil, core.ErrBookIDRequired
	}
	if book.Title == "" {
		return nil, core.ErrBookTitleMissing
	}

	user, err := s.db.AddSavedBook(ctx, claims.ID, book)
	if err != nil {
		return nil, fmt.Errorf("failed to save book: %w", err)
	}

	return user, nil
}

// RemoveBook deletes a book from the caller's collection. Removing an
// absent BookID is a no-op.
func (s *BookService) RemoveBook(ctx context.Context, bookID string) (*core.User, error) {
	claims, err := auth.RequireIdentity(ctx)
	if err != nil {
		return nil, err
	}

	if bookID == "" {
		return nil, core.ErrBookIDRequired
	}

	user, err := s.db.RemoveSavedBook(ctx, claims.ID, bookID)
	if err != nil {
		return nil, fmt.Errorf("failed to remove book: %w", err)
	}

	return user, nil
}
