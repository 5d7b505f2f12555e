package graphql

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	graphqlgo "github.com/graph-gophers/graphql-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookvault/internal/auth"
	"bookvault/internal/core"
	"bookvault/internal/crypto"
	"bookvault/internal/services"
	"bookvault/internal/token"
)

type fixture struct {
	schema *graphqlgo.Schema
	db     *services.FakeUserStorage
	tokens *token.Service
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	db := services.NewFakeUserStorage()
	tokens, err := token.New("test-secret", time.Hour)
	require.NoError(t, err)

	schema, err := ParseSchema(
		services.NewAuthService(db, crypto.NewBcrypt(4), tokens),
		services.NewBookService(db),
	)
	require.NoError(t, err)

	return &fixture{schema: schema, db: db, tokens: tokens}
}

func (f *fixture) exec(ctx context.Context, t *testing.T, query string, vars map[string]any) (json.RawMessage, []string) {
	t.Helper()

	resp := f.schema.Exec(ctx, query, "", vars)

	var msgs []string
	for _, e := range resp.Errors {
		msgs = append(msgs, e.Message)
	}
	return resp.Data, msgs
}

func (f *fixture) authedCtx(t *testing.T) context.Context {
	t.Helper()

	user := &core.User{Username: "alice", Email: "alice@example.com", PasswordHash: "x"}
	require.NoError(t, f.db.CreateUser(context.Background(), user))

	return auth.WithClaims(context.Background(), core.Claims{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
	})
}

func TestAddUser_IssuesVerifiableToken(t *testing.T) {
	t.Parallel()

	f := newFixture(t)

	data, errs := f.exec(context.Background(), t, `
		mutation {
			addUser(username: "alice", email: "alice@example.com", password: "secret123") {
				token
				user { id username email bookCount }
			}
		}
	`, nil)
	require.Empty(t, errs)

	var out struct {
		AddUser struct {
			Token string
			User  struct {
				ID        string
				Username  string
				Email     string
				BookCount int
			}
		}
	}
	require.NoError(t, json.Unmarshal(data, &out))

	assert.Equal(t, "alice", out.AddUser.User.Username)
	assert.Equal(t, 0, out.AddUser.User.BookCount)

	claims, err := f.tokens.Verify(out.AddUser.Token)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, out.AddUser.User.ID, claims.ID)
}

func TestLogin_WrongPassword(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.exec(context.Background(), t, `
		mutation { addUser(username: "alice", email: "alice@example.com", password: "secret123") { token } }
	`, nil)

	_, errs := f.exec(context.Background(), t, `
		mutation { login(email: "alice@example.com", password: "wrong") { token } }
	`, nil)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0], core.ErrInvalidCredentials.Error())
}

func TestMe_Anonymous(t *testing.T) {
	t.Parallel()

	f := newFixture(t)

	_, errs := f.exec(context.Background(), t, `{ me { username } }`, nil)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0], core.ErrNotAuthenticated.Error())
}

func TestMe_Authenticated(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	ctx := f.authedCtx(t)

	data, errs := f.exec(ctx, t, `{ me { username email savedBooks { bookId } } }`, nil)
	require.Empty(t, errs)

	var out struct {
		Me struct {
			Username string
			Email    string
		}
	}
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, "alice", out.Me.Username)
}

const saveBookMutation = `
	mutation SaveBook($book: BookInput!) {
		saveBook(bookData: $book) {
			bookCount
			savedBooks { bookId title authors image }
		}
	}
`

func TestSaveBook_SetSemantics(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	ctx := f.authedCtx(t)

	vars := map[string]any{
		"book": map[string]any{
			"bookId":  "B1",
			"title":   "The Go Programming Language",
			"authors": []any{"Alan A. A. Donovan"},
		},
	}

	for i := 0; i < 2; i++ {
		data, errs := f.exec(ctx, t, saveBookMutation, vars)
		require.Empty(t, errs)

		var out struct {
			SaveBook struct {
				BookCount  int
				SavedBooks []struct {
					BookID string
					Image  *string
				}
			}
		}
		require.NoError(t, json.Unmarshal(data, &out))
		assert.Equal(t, 1, out.SaveBook.BookCount, "repeat save must not duplicate")
		require.Len(t, out.SaveBook.SavedBooks, 1)
		assert.Equal(t, "B1", out.SaveBook.SavedBooks[0].BookID)
		assert.Nil(t, out.SaveBook.SavedBooks[0].Image, "empty image resolves to null")
	}
}

func TestSaveBook_Anonymous(t *testing.T) {
	t.Parallel()

	f := newFixture(t)

	vars := map[string]any{"book": map[string]any{"bookId": "B1", "title": "T"}}
	_, errs := f.exec(context.Background(), t, saveBookMutation, vars)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0], core.ErrNotAuthenticated.Error())
}

func TestRemoveBook_Idempotent(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	ctx := f.authedCtx(t)

	vars := map[string]any{"book": map[string]any{"bookId": "B1", "title": "T"}}
	_, errs := f.exec(ctx, t, saveBookMutation, vars)
	require.Empty(t, errs)

	removeBook := `mutation { removeBook(bookId: "B1") { bookCount } }`

	for i := 0; i < 2; i++ {
		data, errs := f.exec(ctx, t, removeBook, nil)
		require.Empty(t, errs)

		var out struct {
			RemoveBook struct{ BookCount int }
		}
		require.NoError(t, json.Unmarshal(data, &out))
		assert.Equal(t, 0, out.RemoveBook.BookCount)
	}
}
