package services

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"bookvault/internal/core"
)

// FakeUserStorage is a test-only fake implementing core.UserStorage.
// It stores users in a map and exposes error fields for behavior injection.
type FakeUserStorage struct {
	mu        sync.RWMutex
	users     map[string]*core.User
	createErr error
	getErr    error
	updateErr error
}

var _ core.UserStorage = (*FakeUserStorage)(nil)

func NewFakeUserStorage() *FakeUserStorage {
	return &FakeUserStorage{
		users: make(map[string]*core.User),
	}
}

func (f *FakeUserStorage) CreateUser(_ context.Context, u *core.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.createErr != nil {
		return f.createErr
	}

	for _, existing := range f.users {
		if existing.Username == u.Username || existing.Email == u.Email {
			return core.ErrUserExists
		}
	}

	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	f.users[u.ID] = cloneUser(u)
	return nil
}

func (f *FakeUserStorage) GetUserByID(_ context.Context, id string) (*core.User, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if f.getErr != nil {
		return nil, f.getErr
	}
	if u, ok := f.users[id]; ok {
		return cloneUser(u), nil
	}
	return nil, core.ErrUserNotFound
}

func (f *FakeUserStorage) GetUserByUsername(_ context.Context, username string) (*core.User, error) {
	return f.findUser(func(u *core.User) bool { return u.Username == username })
}

func (f *FakeUserStorage) GetUserByEmail(_ context.Context, email string) (*core.User, error) {
	return f.findUser(func(u *core.User) bool { return u.Email == email })
}

func (f *FakeUserStorage) GetUserByLogin(_ context.Context, login string) (*core.User, error) {
	return f.findUser(func(u *core.User) bool { return u.Username == login || u.Email == login })
}

func (f *FakeUserStorage) AddSavedBook(_ context.Context, userID string, book core.Book) (*core.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	u, ok := f.users[userID]
	if !ok {
		return nil, core.ErrUserNotFound
	}
	if !u.HasBook(book.BookID) {
		u.SavedBooks = append(u.SavedBooks, book)
	}
	return cloneUser(u), nil
}

func (f *FakeUserStorage) RemoveSavedBook(_ context.Context, userID string, bookID string) (*core.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	u, ok := f.users[userID]
	if !ok {
		return nil, core.ErrUserNotFound
	}
	kept := u.SavedBooks[:0]
	for _, b := range u.SavedBooks {
		if b.BookID != bookID {
			kept = append(kept, b)
		}
	}
	u.SavedBooks = kept
	return cloneUser(u), nil
}

func (f *FakeUserStorage) findUser(match func(*core.User) bool) (*core.User, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if f.getErr != nil {
		return nil, f.getErr
	}
	for _, u := range f.users {
		if match(u) {
			return cloneUser(u), nil
		}
	}
	return nil, core.ErrUserNotFound
}

func cloneUser(u *core.User) *core.User {
	c := *u
	c.SavedBooks = append([]core.Book(nil), u.SavedBooks...)
	return &c
}
