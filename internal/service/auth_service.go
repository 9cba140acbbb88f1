package service

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"gamenight/internal/apperror"
	"gamenight/internal/models"
	"gamenight/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const (
	minPasswordLen    = 6
	defaultSessionTTL = 24 * time.Hour
)

var ErrInvalidToken = errors.New("invalid token")

// AuthService handles registration, login and session tokens.
type AuthService struct {
	users  repository.Users
	secret []byte
	ttl    time.Duration
}

func NewAuthService(users repository.Users, opts SessionOptions) *AuthService {
	ttl := opts.TTL
	if ttl == 0 {
		ttl = defaultSessionTTL
	}
	return &AuthService{users: users, secret: []byte(opts.Secret), ttl: ttl}
}

// Register validates input, hashes the password and creates the user.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (int64, error) {
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.FirstName = strings.TrimSpace(in.FirstName)
	in.LastName = strings.TrimSpace(in.LastName)

	if in.Email == "" || in.FirstName == "" {
		return 0, apperror.NewValidation("first name and email are required")
	}
	if _, err := mail.ParseAddress(in.Email); err != nil {
		return 0, apperror.NewValidation("email is invalid")
	}
	if len(in.Password) < minPasswordLen {
		return 0, apperror.NewValidation(fmt.Sprintf("password must be at least %d characters", minPasswordLen))
	}

	hash, err := hashPassword(in.Password)
	if err != nil {
		return 0, err
	}

	id, err := s.users.Create(ctx, models.User{
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Email:        in.Email,
		PasswordHash: hash,
	})
	if errors.Is(err, repository.ErrDuplicate) {
		return 0, apperror.NewConflict("email already registered", err)
	}
	return id, err
}

// Login checks credentials and returns the user id.
func (s *AuthService) Login(ctx context.Context, email, password string) (int64, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	u, err := s.users.GetByEmail(ctx, email)
	if errors.Is(err, repository.ErrNotFound) {
		return 0, apperror.NewUnauthorized(ErrInvalidCredentials.Error(), ErrInvalidCredentials)
	}
	if err != nil {
		return 0, err
	}

	if err := verifyPassword(u.PasswordHash, password); err != nil {
		return 0, apperror.NewUnauthorized(ErrInvalidCredentials.Error(), ErrInvalidCredentials)
	}
	return u.ID, nil
}

// Claims defines the session token claims.
type Claims struct {
	jwt.RegisteredClaims
	UserID int64 `json:"user_id"`
}

// IssueSession returns a signed token carrying userID.
func (s *AuthService) IssueSession(userID int64) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		UserID: userID,
	})
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign session: %w", err)
	}
	return signed, nil
}

// ParseSession verifies the token and returns the user id it carries.
func (s *AuthService) ParseSession(accessToken string) (int64, error) {
	token, err := jwt.ParseWithClaims(accessToken, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		// Ensure HMAC signing is used
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return 0, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.UserID <= 0 {
		return 0, ErrInvalidToken
	}
	return claims.UserID, nil
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

func verifyPassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
