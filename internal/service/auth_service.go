package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/vmelnychenko/campusdesk/internal/config"
	"github.com/vmelnychenko/campusdesk/internal/dto"
	"github.com/vmelnychenko/campusdesk/internal/model"
	"github.com/vmelnychenko/campusdesk/internal/repository"
	"github.com/vmelnychenko/campusdesk/pkg/apperror"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService interface {
	Signup(ctx context.Context, input dto.SignupInput) (*dto.AuthResponse, error)
	Login(ctx context.Context, input dto.LoginInput) (*dto.AuthResponse, error)
}

type authService struct {
	repo        repository.UserRepository
	secret      string
	issuer      string
	audience    string
	tokenTTL    time.Duration
	defaultRole string
}

func NewAuthService(repo repository.UserRepository, cfg *config.Config) AuthService {
	return &authService{
		repo:        repo,
		secret:      cfg.JWTSecret,
		issuer:      cfg.JWTIssuer,
		audience:    cfg.JWTAudience,
		tokenTTL:    cfg.JWTTTL,
		defaultRole: model.RoleStudent,
	}
}

func (s *authService) Signup(ctx context.Context, input dto.SignupInput) (*dto.AuthResponse, error) {
	if _, err := s.repo.FindByEmail(ctx, input.Email); err == nil {
		return nil, apperror.ValidationField("email", "email is already taken")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.Database("signup", err)
	}

	if _, err := s.repo.FindByUsername(ctx, input.Username); err == nil {
		return nil, apperror.ValidationField("username", "username is already taken")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.Database("signup", err)
	}

	role, err := s.repo.FindRoleByName(ctx, s.defaultRole)
	if err != nil {
		return nil, found("role "+s.defaultRole, err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	roleID := role.ID
	user := &model.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: string(hashedPassword),
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		BirthDate:    input.BirthDate,
		RoleID:       &roleID,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, apperror.Database("create user", err)
	}

	created, err := s.repo.FindByEmail(ctx, input.Email)
	if err != nil {
		return nil, apperror.Database("load created user", err)
	}

	return s.buildAuthResponse(created)
}

// Login accepts either an email or a username as the credential, trying the
// email lookup first. The error payload tells the frontend which of the two
// inputs was wrong.
func (s *authService) Login(ctx context.Context, input dto.LoginInput) (*dto.AuthResponse, error) {
	user, err := s.repo.FindByEmail(ctx, input.Credential)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		user, err = s.repo.FindByUsername(ctx, input.Credential)
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.ValidationField("credential", "no account with this username or email")
		}
		return nil, apperror.Database("login", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, apperror.ValidationField("password", "wrong password")
	}

	return s.buildAuthResponse(user)
}

func (s *authService) buildAuthResponse(user *model.User) (*dto.AuthResponse, error) {
	token, expiresAt, err := s.generateToken(user)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   expiresAt,
		User:        UserToResponse(user),
	}, nil
}

func (s *authService) generateToken(user *model.User) (string, int64, error) {
	expiresAt := time.Now().Add(s.tokenTTL)

	claims := jwt.MapClaims{
		"sub":  fmt.Sprintf("%d", user.ID),
		"role": user.RoleName(),
		"iss":  s.issuer,
		"aud":  s.audience,
		"exp":  jwt.NewNumericDate(expiresAt),
		"iat":  jwt.NewNumericDate(time.Now()),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.secret))
	if err != nil {
		return "", 0, err
	}

	return signed, expiresAt.Unix(), nil
}

// UserToResponse projects a user row into its wire shape.
func UserToResponse(user *model.User) dto.UserResponse {
	return dto.UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		BirthDate: user.BirthDate,
		Role:      user.RoleName(),
	}
}
