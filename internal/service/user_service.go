package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"campusinfo/internal/database"
	"campusinfo/internal/domain"
	"campusinfo/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

// UserService owns signup/signin, bearer token issuance, and identity
// resolution. Every other service receives an already-resolved Identity.
type UserService struct {
	repo     domain.Repository
	tokens   domain.TokenStore
	secret   []byte
	tokenTTL time.Duration
	logger   *zerolog.Logger
}

// tokenClaims mirrors the original portal token shape with the identity
// embedded. Authentication still resolves the account record, so the claims
// snapshot is only a hint.
type tokenClaims struct {
	UserID    int64  `json:"uid"`
	StudentID string `json:"student_id"`
	Name      string `json:"name"`
	Role      string `json:"role"`
	jwt.RegisteredClaims
}

func NewUserService(repo domain.Repository, tokens domain.TokenStore, secret string, tokenTTL time.Duration, logger *zerolog.Logger) *UserService {
	if tokenTTL <= 0 {
		tokenTTL = models.TokenTTLHours * time.Hour
	}
	return &UserService{
		repo:     repo,
		tokens:   tokens,
		secret:   []byte(secret),
		tokenTTL: tokenTTL,
		logger:   logger,
	}
}

func (s *UserService) SignUp(ctx context.Context, studentID, name, password string) (*models.User, string, error) {
	studentID = strings.TrimSpace(studentID)
	name = strings.TrimSpace(name)

	if studentID == "" || name == "" || password == "" {
		return nil, "", validationError("Student ID, name, and password are required")
	}
	if len(password) < models.MinPasswordLength {
		return nil, "", validationError("Password must be at least %d characters long", models.MinPasswordLength)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		StudentID:    studentID,
		Name:         name,
		Role:         models.RoleStudent,
		PasswordHash: string(hash),
	}
	if err := s.repo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, database.ErrDuplicate) {
			return nil, "", validationError("Student ID already exists")
		}
		return nil, "", err
	}

	token, err := s.issueToken(user)
	if err != nil {
		return nil, "", err
	}

	s.logger.Info().Int64("user_id", user.ID).Str("student_id", user.StudentID).Msg("user signed up")
	return user, token, nil
}

func (s *UserService) SignIn(ctx context.Context, studentID, password string) (*models.User, string, error) {
	if strings.TrimSpace(studentID) == "" || password == "" {
		return nil, "", validationError("Student ID and password are required")
	}

	user, err := s.repo.GetUserByStudentID(ctx, studentID)
	if errors.Is(err, database.ErrNotFound) {
		return nil, "", ErrInvalidCredentials
	}
	if err != nil {
		return nil, "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.issueToken(user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// SignOut revokes the presented token for the remainder of its lifetime.
func (s *UserService) SignOut(ctx context.Context, token string) error {
	claims, err := s.parseToken(token)
	if err != nil {
		return err
	}

	ttl := time.Duration(0)
	if claims.ExpiresAt != nil {
		ttl = time.Until(claims.ExpiresAt.Time)
	}
	if err := s.tokens.Revoke(ctx, claims.ID, ttl); err != nil {
		return fmt.Errorf("revoke token: %w", err)
	}
	return nil
}

// Authenticate resolves a bearer token to an Identity, rejecting revoked
// tokens and tokens for accounts that no longer exist.
func (s *UserService) Authenticate(ctx context.Context, token string) (models.Identity, error) {
	claims, err := s.parseToken(token)
	if err != nil {
		return models.Identity{}, err
	}

	revoked, err := s.tokens.IsRevoked(ctx, claims.ID)
	if err != nil {
		// The revocation store is an availability concern, not a security
		// boundary for token validity itself; log and accept.
		s.logger.Error().Err(err).Msg("revocation check failed")
	} else if revoked {
		return models.Identity{}, ErrInvalidToken
	}

	// Role changes and account removal take effect on the next request, so
	// the stored record wins over the claims snapshot.
	user, err := s.repo.GetUserByID(ctx, claims.UserID)
	if errors.Is(err, database.ErrNotFound) {
		return models.Identity{}, ErrInvalidToken
	}
	if err != nil {
		return models.Identity{}, err
	}

	return models.Identity{
		ID:        user.ID,
		StudentID: user.StudentID,
		Name:      user.Name,
		Role:      user.Role,
	}, nil
}

func (s *UserService) ListUsers(ctx context.Context, identity models.Identity) ([]*models.User, error) {
	if err := RequireAdmin(identity); err != nil {
		return nil, err
	}
	return s.repo.GetAllUsers(ctx)
}

func (s *UserService) issueToken(user *models.User) (string, error) {
	now := time.Now()
	claims := tokenClaims{
		UserID:    user.ID,
		StudentID: user.StudentID,
		Name:      user.Name,
		Role:      user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

func (s *UserService) parseToken(token string) (*tokenClaims, error) {
	claims := &tokenClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	}, jwt.WithLeeway(5*time.Second))
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
