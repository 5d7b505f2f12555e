// Package graphql exposes the saved-book catalog over a GraphQL schema.
// Transport is owned by the web package; resolvers read identity from the
// execution context only.
package graphql

import (
	"context"

	graphqlgo "github.com/graph-gophers/graphql-go"

	"bookvault/internal/core"
	"bookvault/internal/services"
)

// Resolver is the schema root.
type Resolver struct {
	authSvc *services.AuthService
	bookSvc *services.BookService
}

func NewResolver(authSvc *services.AuthService, bookSvc *services.BookService) *Resolver {
	return &Resolver{authSvc: authSvc, bookSvc: bookSvc}
}

// BookInput mirrors the BookInput schema type.
type BookInput struct {
	BookID      string
	Title       string
	Authors     *[]string
	Description *string
	Image       *string
	Link        *string
}

func (in BookInput) toBook() core.Book {
	book := core.Book{
		BookID: in.BookID,
		Title:  in.Title,
	}
	if in.Authors != nil {
		book.Authors = *in.Authors
	}
	if in.Description != nil {
		book.Description = *in.Description
	}
	if in.Image != nil {
		book.Image = *in.Image
	}
	if in.Link != nil {
		book.Link = *in.Link
	}
	return book
}

// Me resolves the logged-in user, or reports "not authenticated".
func (r *Resolver) Me(ctx context.Context) (*UserResolver, error) {
	user, err := r.bookSvc.Me(ctx)
	if err != nil {
		return nil, err
	}
	return &UserResolver{user: user}, nil
}

func (r *Resolver) Login(ctx context.Context, args struct{ Email, Password string }) (*AuthResolver, error) {
	payload, err := r.authSvc.Login(ctx, args.Email, args.Password)
	if err != nil {
		return nil, err
	}
	return &AuthResolver{payload: payload}, nil
}

func (r *Resolver) AddUser(ctx context.Context, args struct{ Username, Email, Password string }) (*AuthResolver, error) {
	payload, err := r.authSvc.Register(ctx, services.RegisterInput{
		Username: args.Username,
		Email:    args.Email,
		Password: args.Password,
	})
	if err != nil {
		return nil, err
	}
	return &AuthResolver{payload: payload}, nil
}

func (r *Resolver) SaveBook(ctx context.Context, args struct{ BookData BookInput }) (*UserResolver, error) {
	user, err := r.bookSvc.SaveBook(ctx, args.BookData.toBook())
	if err != nil {
		return nil, err
	}
	return &UserResolver{user: user}, nil
}

func (r *Resolver) RemoveBook(ctx context.Context, args struct{ BookID string }) (*UserResolver, error) {
	user, err := r.bookSvc.RemoveBook(ctx, args.BookID)
	if err != nil {
		return nil, err
	}
	return &UserResolver{user: user}, nil
}

// UserResolver resolves the User schema type.
type UserResolver struct {
	user *core.User
}

func (r *UserResolver) ID() graphqlgo.ID {
	return graphqlgo.ID(r.user.ID)
}

func (r *UserResolver) Username() string {
	return r.user.Username
}

func (r *UserResolver) Email() string {
	return r.user.Email
}

func (r *UserResolver) BookCount() int32 {
	return int32(r.user.BookCount())
}

func (r *UserResolver) SavedBooks() []*BookResolver {
	books := make([]*BookResolver, 0, len(r.user.SavedBooks))
	for _, b := range r.user.SavedBooks {
		books = append(books, &BookResolver{book: b})
	}
	return books
}

// BookResolver resolves the Book schema type.
type BookResolver struct {
	book core.Book
}

func (r *BookResolver) BookID() string {
	return r.book.BookID
}

func (r *BookResolver) Title() string {
	return r.book.Title
}

func (r *BookResolver) Authors() []string {
	if r.book.Authors == nil {
		return []string{}
	}
	return r.book.Authors
}

func (r *BookResolver) Description() string {
	return r.book.Description
}

func (r *BookResolver) Image() *string {
	return optional(r.book.Image)
}

func (r *BookResolver) Link() *string {
	return optional(r.book.Link)
}

// AuthResolver resolves the Auth schema type.
type AuthResolver struct {
	payload *core.AuthPayload
}

func (r *AuthResolver) Token() graphqlgo.ID {
	return graphqlgo.ID(r.payload.Token)
}

func (r *AuthResolver) User() *UserResolver {
	return &UserResolver{user: r.payload.User}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
