package core

import "time"

// User represents a registered account and its saved-book collection.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Never expose in JSON
	SavedBooks   []Book    `json:"savedBooks"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// BookCount reports the size of the user's saved collection.
func (u *User) BookCount() int {
	return len(u.SavedBooks)
}

// HasBook reports whether the collection already holds a book with the
// given external catalog id.
func (u *User) HasBook(bookID string) bool {
	for _, b := range u.SavedBooks {
		if b.BookID == bookID {
			return true
		}
	}
	return false
}

// Book is a user-owned reference to an externally sourced catalog entry.
//
// BookID identifies the entry in the external catalog; it is unique within
// one user's collection, not globally.
type Book struct {
	BookID      string   `json:"bookId"`
	Title       string   `json:"title"`
	Authors     []string `json:"authors"`
	Description string   `json:"description"`
	Image       string   `json:"image,omitempty"`
	Link        string   `json:"link,omitempty"`
}

// Claims is the minimal authenticated-principal record carried inside a
// session token. It is trusted for the token's validity window and never
// re-derived from storage per request.
type Claims struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// AuthPayload is returned by register and login on both transports.
type AuthPayload struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}
