package service

import (
	"context"
	"errors"
	"time"

	"animevote/internal/config"
	"animevote/internal/http-api/middleware/auth"
	"animevote/internal/http-api/models"
	"animevote/internal/http-api/repository"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrNameInUse          = errors.New("username already in use")
	ErrEmailInUse         = errors.New("email already in use")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
)

// Claims is the credential payload carried by every issued token. The
// is_admin flag is a snapshot taken at issuance; admin routes still
// re-check the live user record (see middleware.RequireAdmin).
type Claims struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	IsAdmin  bool   `json:"is_admin"`
	jwt.RegisteredClaims
}

type AuthService interface {
	Register(ctx context.Context, username, email, password string) (string, *models.User, error)
	Login(ctx context.Context, email, password string) (string, *models.User, error)
	ValidateToken(tokenString string) (*Claims, error)
}

type authService struct {
	userRepo  repository.UserRepository
	jwtSecret string
	jwtExpiry time.Duration
}

func NewAuthService(userRepo repository.UserRepository, cfg *config.Config) AuthService {
	return &authService{
		userRepo:  userRepo,
		jwtSecret: cfg.JWTSecret,
		jwtExpiry: cfg.JWTExpiry,
	}
}

// Register creates a new user and issues a token for it right away, so
// the client is logged in after sign-up.
func (s *authService) Register(ctx context.Context, username, email, password string) (string, *models.User, error) {
	// Check if user exists
	if _, err := s.userRepo.FindByUsername(ctx, username); err == nil {
		return "", nil, ErrNameInUse
	}

	// Check if email exists
	if _, err := s.userRepo.FindByEmail(ctx, email); err == nil {
		return "", nil, ErrEmailInUse
	}

	// Hash password
	hashedPassword, err := auth.HashPassword(password)
	if err != nil {
		return "", nil, err
	}

	user := &models.User{
		Username: username,
		Email:    email,
		Password: hashedPassword,
		IsAdmin:  false,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return "", nil, err
	}

	token, err := s.generateToken(user)
	if err != nil {
		return "", nil, err
	}

	return token, user, nil
}

// Login authenticates a user by email and returns a signed token.
func (s *authService) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		// User not found: dummy compare to mitigate timing attacks (always take same time)
		auth.VerifyPassword("$2a$10$7EqJtq98hPqEX7fNZaFWoOHi6VbU5h6K9v8u5rO0m3j0h6dX5r8e", password)
		return "", nil, ErrInvalidCredentials
	}

	if err := auth.VerifyPassword(user.Password, password); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.generateToken(user)
	if err != nil {
		return "", nil, err
	}

	return token, user, nil
}

func (s *authService) generateToken(user *models.User) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID:   user.ID,
		Username: user.Username,
		IsAdmin:  user.IsAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.jwtExpiry)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}

func (s *authService) ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return []byte(s.jwtSecret), nil
	})

	if err != nil {
		return nil, ErrInvalidToken
	}

	if !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
