package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/edventure-park/community-api/internal/user"
)

// ErrInvalidCredentials is returned on login failure. Unknown email and
// wrong password are deliberately indistinguishable.
var ErrInvalidCredentials = errors.New("incorrect email or password")

// Service provides registration, login and token authentication against
// the user directory.
type Service struct {
	users      user.Repository
	tokens     *TokenIssuer
	bcryptCost int
}

// NewService creates a new auth Service.
func NewService(users user.Repository, tokens *TokenIssuer, bcryptCost int) *Service {
	return &Service{
		users:      users,
		tokens:     tokens,
		bcryptCost: bcryptCost,
	}
}

// RegisterParams carries the fields accepted at registration.
type RegisterParams struct {
	Email      string
	Password   string
	Name       string
	Role       user.Role
	Phone      *string
	Location   *string
	College    *string
	Department *string
}

// Register creates a new identity and issues its first token. Returns
// user.ErrDuplicateEmail when the email is already taken.
func (s *Service) Register(ctx context.Context, p RegisterParams) (*user.User, string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(p.Password), s.bcryptCost)
	if err != nil {
		return nil, "", fmt.Errorf("hashing password: %w", err)
	}

	u := &user.User{
		ID:           uuid.NewString(),
		Email:        p.Email,
		PasswordHash: string(hash),
		Name:         p.Name,
		Role:         p.Role,
		Phone:        p.Phone,
		Location:     p.Location,
		College:      p.College,
		Department:   p.Department,
		Bio:          "",
		Skills:       []string{},
		Achievements: []string{},
		JoinedDate:   time.Now().UTC(),
	}

	if err := s.users.Create(ctx, u); err != nil {
		return nil, "", err
	}

	token, err := s.tokens.Issue(u)
	if err != nil {
		return nil, "", err
	}

	return u, token, nil
}

// Login verifies credentials and issues a fresh token.
func (s *Service) Login(ctx context.Context, email, password string) (*user.User, string, error) {
	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("looking up user: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(u)
	if err != nil {
		return nil, "", err
	}

	return u, token, nil
}

// Authenticate resolves a raw bearer token to a caller Identity. No
// directory lookup happens here; tokens are self-contained.
func (s *Service) Authenticate(rawToken string) (*Identity, error) {
	claims, err := s.tokens.Validate(rawToken)
	if err != nil {
		return nil, err
	}

	return &Identity{
		UserID: claims.UserID,
		Email:  claims.Subject,
		Role:   claims.Role,
	}, nil
}
