package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"bookvault/internal/core"
	"bookvault/internal/crypto"
	"bookvault/internal/token"
)

// Matches the address shape enforced by the stored-user contract.
var emailPattern = regexp.MustCompile(`^.+@.+\..+$`)

// AuthService registers and authenticates users and issues their session
// tokens. It is the only component that ever sees a plaintext password:
// hashing happens here, exactly when the plaintext enters the system, so
// storage never receives anything but the hash.
type AuthService struct {
	db             core.UserStorage
	passwordHasher crypto.PasswordHandler
	tokens         *token.Service
}

func NewAuthService(db core.UserStorage, passwordHasher crypto.PasswordHandler, tokens *token.Service) *AuthService {
	return &AuthService{
		db:             db,
		passwordHasher: passwordHasher,
		tokens:         tokens,
	}
}

// RegisterInput contains the data needed to register a new user.
type RegisterInput struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (in *RegisterInput) validate() error {
	if in.Username == "" {
		return core.ErrUsernameRequired
	}
	if in.Email == "" {
		return core.ErrEmailRequired
	}
	if !emailPattern.MatchString(in.Email) {
		return core.ErrInvalidEmail
	}
	if in.Password == "" {
		return core.ErrPasswordRequired
	}
	return nil
}

// Register creates a user and issues their first session token.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*core.AuthPayload, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	// Step 1: Check if username or email is already taken
	if existing, err := s.db.GetUserByUsername(ctx, input.Username); err != nil && !errors.Is(err, core.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	} else if existing != nil {
		return nil, core.ErrUserExists
	}

	if existing, err := s.db.GetUserByEmail(ctx, input.Email); err != nil && !errors.Is(err, core.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	} else if existing != nil {
		return nil, core.ErrUserExists
	}

	// Step 2: Hash the password
	hashedPassword, err := s.passwordHasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	// Step 3: Create the user
	user := &core.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hashedPassword,
	}

	if err := s.db.CreateUser(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	// Step 4: Issue a session token for the new user
	signed, err := s.tokens.Issue(core.Claims{ID: user.ID, Username: user.Username, Email: user.Email})
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return &core.AuthPayload{Token: signed, User: user}, nil
}

// Login authenticates a user by username or email and issues a session
// token. Unknown user and wrong password are indistinguishable to the
// caller.
func (s *AuthService) Login(ctx context.Context, login, password string) (*core.AuthPayload, error) {
	if login == "" || password == "" {
		return nil, core.ErrInvalidCredentials
	}

	user, err := s.db.GetUserByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, core.ErrUserNotFound) {
			return nil, core.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if !s.passwordHasher.Verify(password, user.PasswordHash) {
		return nil, core.ErrInvalidCredentials
	}

	signed, err := s.tokens.Issue(core.Claims{ID: user.ID, Username: user.Username, Email: user.Email})
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return &core.AuthPayload{Token: signed, User: user}, nil
}
