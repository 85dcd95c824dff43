package service

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"resmap"
	"resmap/internal/api/handler/request"
	"resmap/internal/api/repo"
)

func newTestUserService(db *gorm.DB) *UserService {
	cfg := resmap.AppConfig{}
	cfg.JWTConfig.Secret = "test-secret"
	cfg.JWTConfig.Expiration = 60
	cfg.JWTConfig.RefreshExpiration = 7
	return &UserService{
		userRepo: &repo.UserRepository{Db: db},
		config:   cfg,
		logger:   zerolog.Nop(),
	}
}

func TestUser_Register(t *testing.T) {
	db := newServiceDB(t)
	service := newTestUserService(db)

	result, err := service.Register(request.RegisterDTO{
		Email:     "jean@example.com",
		Password:  "testpassword123",
		FirstName: "Jean",
		LastName:  "Dupont",
	})
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.NotEmpty(t, result.Token)
	assert.NotEmpty(t, result.RefreshToken)
	assert.Equal(t, "jean@example.com", result.User.Email)
	assert.Equal(t, "Jean", result.User.FirstName)
	assert.Equal(t, "Dupont", result.User.LastName)
	assert.True(t, result.User.Active)
}

func TestUser_Register_DuplicateEmail(t *testing.T) {
	db := newServiceDB(t)
	service := newTestUserService(db)

	dto := request.RegisterDTO{
		Email:     "dup@example.com",
		Password:  "testpassword123",
		FirstName: "A",
		LastName:  "B",
	}
	_, err := service.Register(dto)
	require.NoError(t, err)

	_, err = service.Register(dto)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestUser_Login(t *testing.T) {
	db := newServiceDB(t)
	service := newTestUserService(db)

	_, err := service.Register(request.RegisterDTO{
		Email:     "login@example.com",
		Password:  "testpassword123",
		FirstName: "L",
		LastName:  "N",
	})
	require.NoError(t, err)

	result, err := service.Login(request.LoginDTO{Email: "login@example.com", Password: "testpassword123"})
	require.NoError(t, err)
	assert.NotEmpty(t, result.Token)
	assert.Equal(t, "login@example.com", result.User.Email)
}

func TestUser_Login_WrongPassword(t *testing.T) {
	db := newServiceDB(t)
	service := newTestUserService(db)

	_, err := service.Register(request.RegisterDTO{
		Email:     "wrong@example.com",
		Password:  "testpassword123",
		FirstName: "W",
		LastName:  "P",
	})
	require.NoError(t, err)

	_, err = service.Login(request.LoginDTO{Email: "wrong@example.com", Password: "nope"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid email or password")

	_, err = service.Login(request.LoginDTO{Email: "nobody@example.com", Password: "whatever"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid email or password")
}

func TestUser_RefreshToken(t *testing.T) {
	db := newServiceDB(t)
	service := newTestUserService(db)

	registered, err := service.Register(request.RegisterDTO{
		Email:     "refresh@example.com",
		Password:  "testpassword123",
		FirstName: "R",
		LastName:  "T",
	})
	require.NoError(t, err)

	result, err := service.RefreshToken(registered.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, result.Token)
	assert.NotEmpty(t, result.RefreshToken)
	assert.Equal(t, "refresh@example.com", result.User.Email)
}

func TestUser_RefreshToken_Garbage(t *testing.T) {
	db := newServiceDB(t)
	service := newTestUserService(db)

	_, err := service.RefreshToken("not-a-token")
	require.Error(t, err)
}
