package core

import "context"

// UserStorage defines the persistence port for user records and their
// saved-book collections. Implementations own atomicity: concurrent
// mutations of the same collection are serialized by the store, not here.
type UserStorage interface {
	CreateUser(ctx context.Context, u *User) error

	GetUserByID(ctx context.Context, id string) (*User, error)
	GetUserByUsername(ctx context.Context, username string) (*User, error)
	GetUserByEmail(ctx context.Context, email string) (*User, error)

	// GetUserByLogin resolves a user by username or email.
	GetUserByLogin(ctx context.Context, login string) (*User, error)

	// AddSavedBook inserts a book into the user's collection unless an
	// entry with the same BookID is already present, then returns the
	// updated user. Re-adding an existing BookID is a no-op.
	AddSavedBook(ctx context.Context, userID string, book Book) (*User, error)

	// RemoveSavedBook deletes every entry matching bookID from the user's
	// collection and returns the updated user. Removing an absent entry
	// is a no-op, not a failure.
	RemoveSavedBook(ctx context.Context, userID string, bookID string) (*User, error)
}
