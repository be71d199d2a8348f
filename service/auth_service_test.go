package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"weatherreminder.app/config"
	"weatherreminder.app/errors"
	"weatherreminder.app/models"
)

func authTestConfig() *config.AuthConfig {
	return &config.AuthConfig{
		JWTSecret:        "test-secret-key-for-auth",
		AccessTTLMinutes: 60,
		RefreshTTLHours:  24,
		Issuer:           "weather-reminder",
	}
}

func registrationRequest() *models.RegistrationRequest {
	return &models.RegistrationRequest{
		Username:  "alice",
		Email:     "alice@example.com",
		Password:  "s3cretpass",
		Password2: "s3cretpass",
	}
}

func TestRegister(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		service := NewAuthService(userRepo, authTestConfig())

		userRepo.On("FindByUsername", "alice").Return(nil, nil)
		userRepo.On("FindByEmail", "alice@example.com").Return(nil, nil)
		userRepo.On("Create", mock.AnythingOfType("*models.User")).
			Run(func(args mock.Arguments) {
				args.Get(0).(*models.User).ID = 1
			}).
			Return(nil)

		response, err := service.Register(registrationRequest())

		require.NoError(t, err)
		assert.Equal(t, "alice", response.Username)
		assert.Equal(t, "alice@example.com", response.Email)
		assert.NotEmpty(t, response.Token.Access)
		assert.NotEmpty(t, response.Token.Refresh)
		userRepo.AssertExpectations(t)

		// the stored credential is a bcrypt hash, never the raw password
		createdUser := userRepo.Calls[2].Arguments.Get(0).(*models.User)
		assert.NotEqual(t, "s3cretpass", createdUser.PasswordHash)
		assert.NoError(t, bcrypt.CompareHashAndPassword(
			[]byte(createdUser.PasswordHash), []byte("s3cretpass")))
	})

	t.Run("PasswordMismatch", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		service := NewAuthService(userRepo, authTestConfig())

		req := registrationRequest()
		req.Password2 = "different"

		_, err := service.Register(req)

		require.Error(t, err)
		assert.True(t, errors.IsType(err, errors.ValidationError))
		assert.Contains(t, err.Error(), "The passwords should match!")
		userRepo.AssertNotCalled(t, "Create")
	})

	t.Run("UsernameTaken", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		service := NewAuthService(userRepo, authTestConfig())

		existing := &models.User{Username: "alice"}
		existing.ID = 7
		userRepo.On("FindByUsername", "alice").Return(existing, nil)

		_, err := service.Register(registrationRequest())

		require.Error(t, err)
		assert.True(t, errors.IsType(err, errors.ValidationError))
		assert.Contains(t, err.Error(), "username already exists")
		userRepo.AssertNotCalled(t, "Create")
	})

	t.Run("EmailTaken", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		service := NewAuthService(userRepo, authTestConfig())

		existing := &models.User{Email: "alice@example.com"}
		existing.ID = 7
		userRepo.On("FindByUsername", "alice").Return(nil, nil)
		userRepo.On("FindByEmail", "alice@example.com").Return(existing, nil)

		_, err := service.Register(registrationRequest())

		require.Error(t, err)
		assert.True(t, errors.IsType(err, errors.ValidationError))
		assert.Contains(t, err.Error(), "email already exists")
		userRepo.AssertNotCalled(t, "Create")
	})
}

func TestLogin(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cretpass"), bcrypt.MinCost)
	require.NoError(t, err)
	user := &models.User{Username: "alice", Email: "alice@example.com", PasswordHash: string(hash)}
	user.ID = 1

	t.Run("Success", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		service := NewAuthService(userRepo, authTestConfig())

		userRepo.On("FindByUsername", "alice").Return(user, nil)

		tokens, err := service.Login(&models.LoginRequest{Username: "alice", Password: "s3cretpass"})

		require.NoError(t, err)
		assert.NotEmpty(t, tokens.Access)
		assert.NotEmpty(t, tokens.Refresh)
	})

	t.Run("WrongPassword", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		service := NewAuthService(userRepo, authTestConfig())

		userRepo.On("FindByUsername", "alice").Return(user, nil)

		_, err := service.Login(&models.LoginRequest{Username: "alice", Password: "wrong"})

		require.Error(t, err)
		assert.True(t, errors.IsType(err, errors.UnauthorizedError))
		assert.Contains(t, err.Error(), "no active account found with the given credentials")
	})

	t.Run("UnknownUser", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		service := NewAuthService(userRepo, authTestConfig())

		userRepo.On("FindByUsername", "ghost").Return(nil, nil)

		_, err := service.Login(&models.LoginRequest{Username: "ghost", Password: "s3cretpass"})

		require.Error(t, err)
		assert.True(t, errors.IsType(err, errors.UnauthorizedError))
	})
}

func TestRefresh(t *testing.T) {
	user := &models.User{Username: "alice", Email: "alice@example.com", PasswordHash: "x"}
	user.ID = 1

	t.Run("Success", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		service := NewAuthService(userRepo, authTestConfig())

		tokens, err := service.issueTokenPair(user)
		require.NoError(t, err)

		userRepo.On("FindByID", user.ID).Return(user, nil)

		access, err := service.Refresh(tokens.Refresh)

		require.NoError(t, err)
		assert.NotEmpty(t, access)

		// the returned token works as an access token
		authenticated, err := service.Authenticate(access)
		require.NoError(t, err)
		assert.Equal(t, user.ID, authenticated.ID)
	})

	t.Run("AccessTokenRejected", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		service := NewAuthService(userRepo, authTestConfig())

		tokens, err := service.issueTokenPair(user)
		require.NoError(t, err)

		_, err = service.Refresh(tokens.Access)

		require.Error(t, err)
		assert.True(t, errors.IsType(err, errors.UnauthorizedError))
		assert.Contains(t, err.Error(), "token has wrong type")
	})

	t.Run("GarbageToken", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		service := NewAuthService(userRepo, authTestConfig())

		_, err := service.Refresh("not-a-jwt")

		require.Error(t, err)
		assert.True(t, errors.IsType(err, errors.UnauthorizedError))
	})
}

func TestAuthenticate(t *testing.T) {
	user := &models.User{Username: "alice", Email: "alice@example.com", PasswordHash: "x"}
	user.ID = 1

	t.Run("Success", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		service := NewAuthService(userRepo, authTestConfig())

		tokens, err := service.issueTokenPair(user)
		require.NoError(t, err)

		userRepo.On("FindByID", user.ID).Return(user, nil)

		authenticated, err := service.Authenticate(tokens.Access)

		require.NoError(t, err)
		assert.Equal(t, "alice", authenticated.Username)
	})

	t.Run("RefreshTokenRejected", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		service := NewAuthService(userRepo, authTestConfig())

		tokens, err := service.issueTokenPair(user)
		require.NoError(t, err)

		_, err = service.Authenticate(tokens.Refresh)

		require.Error(t, err)
		assert.True(t, errors.IsType(err, errors.UnauthorizedError))
	})

	t.Run("WrongSecret", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		service := NewAuthService(userRepo, authTestConfig())

		otherConfig := authTestConfig()
		otherConfig.JWTSecret = "another-secret-entirely!"
		otherService := NewAuthService(userRepo, otherConfig)

		tokens, err := otherService.issueTokenPair(user)
		require.NoError(t, err)

		_, err = service.Authenticate(tokens.Access)

		require.Error(t, err)
		assert.True(t, errors.IsType(err, errors.UnauthorizedError))
	})

	t.Run("DeletedUser", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		service := NewAuthService(userRepo, authTestConfig())

		tokens, err := service.issueTokenPair(user)
		require.NoError(t, err)

		userRepo.On("FindByID", user.ID).Return(nil, nil)

		_, err = service.Authenticate(tokens.Access)

		require.Error(t, err)
		assert.True(t, errors.IsType(err, errors.UnauthorizedError))
		assert.Contains(t, err.Error(), "user no longer exists")
	})
}
