package auth

import (
	"context"
	"math"
	"strings"
	"time"

	"github.com/bandhub/band-management-backend/config"
	"github.com/bandhub/band-management-backend/internal/apperror"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type Service interface {
	Register(ctx context.Context, input RegisterInput) (*User, error)
	Login(ctx context.Context, input LoginInput) (string, *User, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (*User, error)
	ListUsers(ctx context.Context, page, limit int) (*PaginatedUsers, error)
	UpdateRole(ctx context.Context, id uuid.UUID, role Role) (*User, error)
	DeleteUser(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo         Repository
	accessSecret string
	accessTTL    time.Duration
}

func NewService(r Repository, cfg *config.Config) Service {
	return &service{
		repo:         r,
		accessSecret: cfg.JWTAccessSecret,
		accessTTL:    time.Duration(cfg.JWTAccessTTLHours) * time.Hour,
	}
}

// =============================
// Register
// =============================

type RegisterInput struct {
	Username string
	Email    string
	Password string
	Role     Role
}

func (s *service) Register(ctx context.Context, in RegisterInput) (*User, error) {
	in.Username = strings.TrimSpace(in.Username)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	if in.Role == "" {
		in.Role = RoleLector
	}
	if !in.Role.Valid() {
		return nil, apperror.InvalidInput("invalid role %q", in.Role)
	}

	exists, err := s.repo.ExistsByUsernameOrEmail(ctx, in.Username, in.Email)
	if err != nil {
		return nil, apperror.TransactionFailure(err, "check user")
	}
	if exists {
		return nil, apperror.Conflict("username or email already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &User{
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         in.Role,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, apperror.TransactionFailure(err, "create user")
	}
	return user, nil
}

// =============================
// Login
// =============================

type LoginInput struct {
	Login    string
	Password string
}

func (s *service) Login(ctx context.Context, in LoginInput) (string, *User, error) {
	user, err := s.repo.FindByLogin(ctx, strings.TrimSpace(in.Login))
	if err != nil {
		return "", nil, apperror.TransactionFailure(err, "find user")
	}
	if user == nil {
		return "", nil, apperror.Unauthorized("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return "", nil, apperror.Unauthorized("invalid credentials")
	}

	token, err := s.generateAccessToken(user)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

func (s *service) generateAccessToken(user *User) (string, error) {
	claims := jwt.MapClaims{
		"user_id":  user.ID.String(),
		"username": user.Username,
		"email":    user.Email,
		"role":     string(user.Role),
		"exp":      time.Now().Add(s.accessTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.accessSecret))
}

// =============================
// Users
// =============================

func (s *service) GetUserByID(ctx context.Context, id uuid.UUID) (*User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apperror.TransactionFailure(err, "find user")
	}
	if user == nil {
		return nil, apperror.NotFound("user not found")
	}
	return user, nil
}

func (s *service) ListUsers(ctx context.Context, page, limit int) (*PaginatedUsers, error) {
	users, total, err := s.repo.List(ctx, page, limit)
	if err != nil {
		return nil, apperror.TransactionFailure(err, "list users")
	}
	return &PaginatedUsers{
		Data:       users,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: int(math.Ceil(float64(total) / float64(limit))),
	}, nil
}

func (s *service) UpdateRole(ctx context.Context, id uuid.UUID, role Role) (*User, error) {
	if !role.Valid() {
		return nil, apperror.InvalidInput("invalid role %q", role)
	}
	if _, err := s.GetUserByID(ctx, id); err != nil {
		return nil, err
	}
	if err := s.repo.UpdateRole(ctx, id, role); err != nil {
		return nil, apperror.TransactionFailure(err, "update role")
	}
	return s.GetUserByID(ctx, id)
}

func (s *service) DeleteUser(ctx context.Context, id uuid.UUID) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return apperror.TransactionFailure(err, "delete user")
	}
	if !deleted {
		return apperror.NotFound("user not found")
	}
	return nil
}
