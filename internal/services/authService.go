package services

import (
	"context"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"schoolpress/internal/httperr"
	"schoolpress/internal/models"
	"schoolpress/internal/repository"
)

// AuthService handles registration, login, role lookup and token refresh.
type AuthService struct {
	users  repository.UserRepository
	secret string
}

func NewAuthService(users repository.UserRepository, secret string) *AuthService {
	return &AuthService{users: users, secret: secret}
}

// HashPassword hashes a password using bcrypt.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(hash), err
}

// VerifyPassword compares a plain password with a hashed password.
func VerifyPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// Register creates a user with the default student role and issues a token.
// A taken email surfaces as ErrUserExists from the unique index.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (*models.User, string, error) {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(email) == "" || password == "" {
		return nil, "", httperr.ErrMissingFields
	}

	hash, err := HashPassword(password)
	if err != nil {
		return nil, "", err
	}

	user := &models.User{
		ID:        primitive.NewObjectID(),
		Name:      name,
		Email:     email,
		Password:  hash,
		Role:      models.RoleStudent,
		CreatedAt: time.Now(),
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, "", err
	}

	token, err := GenerateToken(s.secret, user.ID.Hex(), user.Role)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Login authenticates by email and password and issues a token.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, "", err
	}

	if !VerifyPassword(password, user.Password) {
		return nil, "", httperr.ErrInvalidPassword
	}

	token, err := GenerateToken(s.secret, user.ID.Hex(), user.Role)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// GetRole returns the role of the user with the given id.
func (s *AuthService) GetRole(ctx context.Context, id string) (string, error) {
	user, err := s.findByHexID(ctx, id)
	if err != nil {
		return "", err
	}
	return user.Role, nil
}

// Refresh reissues a token for the given user id. No existing token is
// required; the endpoint trusts the id alone.
func (s *AuthService) Refresh(ctx context.Context, id string) (string, error) {
	user, err := s.findByHexID(ctx, id)
	if err != nil {
		return "", err
	}
	return GenerateToken(s.secret, user.ID.Hex(), user.Role)
}

func (s *AuthService) findByHexID(ctx context.Context, id string) (*models.User, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, httperr.ErrInvalidID
	}
	return s.users.FindByID(ctx, objID)
}
