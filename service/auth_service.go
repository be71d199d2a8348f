package service

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"weatherreminder.app/config"
	"weatherreminder.app/errors"
	"weatherreminder.app/models"
)

const (
	tokenTypeAccess  = "access"
	tokenTypeRefresh = "refresh"
)

// Claims is the JWT payload issued by the auth service
type Claims struct {
	UserID    uint   `json:"user_id"`
	TokenType string `json:"token_type"`
	jwt.RegisteredClaims
}

// AuthService handles registration and JWT issuance/verification
type AuthService struct {
	userRepo UserRepositoryInterface
	config   *config.AuthConfig
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo UserRepositoryInterface, config *config.AuthConfig) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		config:   config,
	}
}

// Register creates a new user account and returns the serialized user with an
// issued token pair
func (s *AuthService) Register(req *models.RegistrationRequest) (*models.RegistrationResponse, error) {
	if req.Password != req.Password2 {
		return nil, errors.NewValidationError("The passwords should match!")
	}

	if existing, err := s.userRepo.FindByUsername(req.Username); err != nil {
		return nil, errors.NewDatabaseError("failed to check username", err)
	} else if existing != nil {
		return nil, errors.NewValidationError("a user with that username already exists")
	}

	if existing, err := s.userRepo.FindByEmail(req.Email); err != nil {
		return nil, errors.NewDatabaseError("failed to check email", err)
	} else if existing != nil {
		return nil, errors.NewValidationError("a user with that email already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.Wrap(errors.ConfigurationError, "failed to hash password", err)
	}

	user := &models.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, errors.NewDatabaseError("failed to create user", err)
	}

	tokens, err := s.issueTokenPair(user)
	if err != nil {
		return nil, err
	}

	return &models.RegistrationResponse{
		Token:    *tokens,
		Username: user.Username,
		Email:    user.Email,
	}, nil
}

// Login verifies credentials and returns an access/refresh token pair
func (s *AuthService) Login(req *models.LoginRequest) (*models.TokenPair, error) {
	user, err := s.userRepo.FindByUsername(req.Username)
	if err != nil {
		return nil, errors.NewDatabaseError("failed to look up user", err)
	}
	if user == nil {
		return nil, errors.NewUnauthorizedError("no active account found with the given credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, errors.NewUnauthorizedError("no active account found with the given credentials")
	}

	return s.issueTokenPair(user)
}

// Refresh exchanges a valid refresh token for a new access token
func (s *AuthService) Refresh(refreshToken string) (string, error) {
	claims, err := s.parseToken(refreshToken)
	if err != nil {
		return "", err
	}
	if claims.TokenType != tokenTypeRefresh {
		return "", errors.NewUnauthorizedError("token has wrong type")
	}

	user, err := s.userRepo.FindByID(claims.UserID)
	if err != nil {
		return "", errors.NewDatabaseError("failed to look up user", err)
	}
	if user == nil {
		return "", errors.NewUnauthorizedError("user no longer exists")
	}

	access, err := s.signToken(user, tokenTypeAccess,
		time.Duration(s.config.AccessTTLMinutes)*time.Minute)
	if err != nil {
		return "", err
	}
	return access, nil
}

// Authenticate resolves an access token to its user. Used by the API
// middleware on every authenticated request.
func (s *AuthService) Authenticate(accessToken string) (*models.User, error) {
	claims, err := s.parseToken(accessToken)
	if err != nil {
		return nil, err
	}
	if claims.TokenType != tokenTypeAccess {
		return nil, errors.NewUnauthorizedError("token has wrong type")
	}

	user, err := s.userRepo.FindByID(claims.UserID)
	if err != nil {
		return nil, errors.NewDatabaseError("failed to look up user", err)
	}
	if user == nil {
		return nil, errors.NewUnauthorizedError("user no longer exists")
	}
	return user, nil
}

func (s *AuthService) issueTokenPair(user *models.User) (*models.TokenPair, error) {
	access, err := s.signToken(user, tokenTypeAccess,
		time.Duration(s.config.AccessTTLMinutes)*time.Minute)
	if err != nil {
		return nil, err
	}

	refresh, err := s.signToken(user, tokenTypeRefresh,
		time.Duration(s.config.RefreshTTLHours)*time.Hour)
	if err != nil {
		return nil, err
	}

	return &models.TokenPair{Access: access, Refresh: refresh}, nil
}

func (s *AuthService) signToken(user *models.User, tokenType string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID:    user.ID,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.config.Issuer,
			Subject:   fmt.Sprintf("%d", user.ID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        uuid.New().String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.config.JWTSecret))
	if err != nil {
		return "", errors.Wrap(errors.ConfigurationError, "failed to sign token", err)
	}
	return signed, nil
}

func (s *AuthService) parseToken(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.config.JWTSecret), nil
	})
	if err != nil {
		return nil, errors.NewUnauthorizedError("token is invalid or expired")
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.NewUnauthorizedError("token is invalid or expired")
	}
	return claims, nil
}
