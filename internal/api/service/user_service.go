package service

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"resmap"
	"resmap/internal/api/handler/request"
	"resmap/internal/api/handler/response"
	"resmap/internal/api/models"
	"resmap/internal/api/repo"
	"resmap/pkg"
)

type UserService struct {
	userRepo *repo.UserRepository
	config   resmap.AppConfig
	logger   zerolog.Logger
}

func NewUserService() *UserService {
	return &UserService{
		userRepo: repo.NewUserRepository(),
		config:   resmap.GetConfig(),
		logger:   resmap.Logger,
	}
}

func (slf *UserService) Register(registerDTO request.RegisterDTO) (*response.AuthResponseDTO, error) {
	exists, err := slf.userRepo.ExistsByEmail(registerDTO.Email)
	if err != nil {
		slf.logger.Error().Err(err).Msg("Error checking if user exists")
		return nil, err
	}
	if exists {
		return nil, errors.New("user with this email already exists")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(registerDTO.Password), bcrypt.DefaultCost)
	if err != nil {
		slf.logger.Error().Err(err).Msg("Error hashing password")
		return nil, err
	}

	user := models.User{
		Email:     registerDTO.Email,
		Password:  string(hashedPassword),
		FirstName: registerDTO.FirstName,
		LastName:  registerDTO.LastName,
		Role:      models.RoleUser,
		Active:    true,
	}

	if err = slf.userRepo.Create(&user); err != nil {
		slf.logger.Error().Err(err).Msg("Error creating user")
		return nil, err
	}

	token, refreshToken, err := slf.issueTokens(&user)
	if err != nil {
		return nil, err
	}

	slf.logger.Info().Uint("userId", user.ID).Msg("User registered successfully")
	return &response.AuthResponseDTO{
		Token:        token,
		RefreshToken: refreshToken,
		User:         slf.toUserResponse(user),
	}, nil
}

func (slf *UserService) Login(loginDTO request.LoginDTO) (*response.AuthResponseDTO, error) {
	user, err := slf.userRepo.FindByEmail(loginDTO.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("invalid email or password")
		}
		slf.logger.Error().Err(err).Msg("Error finding user by email")
		return nil, err
	}

	if !user.Active {
		return nil, errors.New("account is inactive")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(loginDTO.Password)); err != nil {
		return nil, errors.New("invalid email or password")
	}

	token, refreshToken, err := slf.issueTokens(&user)
	if err != nil {
		return nil, err
	}

	slf.logger.Info().Uint("userId", user.ID).Msg("User logged in successfully")
	return &response.AuthResponseDTO{
		Token:        token,
		RefreshToken: refreshToken,
		User:         slf.toUserResponse(user),
	}, nil
}

func (slf *UserService) GetByID(id uint) (response.UserResponseDTO, error) {
	user, err := slf.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.UserResponseDTO{}, fmt.Errorf("user %w", ErrNotFound)
		}
		slf.logger.Error().Err(err).Uint("userId", id).Msg("Error finding user by ID")
		return response.UserResponseDTO{}, err
	}
	return slf.toUserResponse(user), nil
}

func (slf *UserService) RefreshToken(refreshToken string) (response.AuthResponseDTO, error) {
	claims, err := pkg.ValidateRefreshToken(refreshToken, slf.config.JWTConfig.Secret)
	if err != nil {
		slf.logger.Error().Err(err).Msg("Invalid refresh token")
		return response.AuthResponseDTO{}, errors.New("invalid or expired refresh token")
	}

	user, err := slf.userRepo.FindByID(claims.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.AuthResponseDTO{}, fmt.Errorf("user %w", ErrNotFound)
		}
		slf.logger.Error().Err(err).Uint("userId", claims.UserID).Msg("Error finding user by ID")
		return response.AuthResponseDTO{}, err
	}

	if !user.Active {
		return response.AuthResponseDTO{}, errors.New("account is inactive")
	}

	if user.RefreshToken != refreshToken {
		slf.logger.Warn().Uint("userId", user.ID).Msg("Refresh token mismatch")
		return response.AuthResponseDTO{}, errors.New("invalid refresh token")
	}

	token, newRefreshToken, err := slf.issueTokens(&user)
	if err != nil {
		return response.AuthResponseDTO{}, err
	}

	slf.logger.Info().Uint("userId", user.ID).Msg("Token refreshed successfully")
	return response.AuthResponseDTO{
		Token:        token,
		RefreshToken: newRefreshToken,
		User:         slf.toUserResponse(user),
	}, nil
}

// issueTokens generates a fresh token pair and stores the refresh token on
// the user.
func (slf *UserService) issueTokens(user *models.User) (string, string, error) {
	token, err := pkg.GenerateToken(user.ID, user.Email, string(user.Role), slf.config.JWTConfig.Secret, slf.config.JWTConfig.Expiration)
	if err != nil {
		slf.logger.Error().Err(err).Msg("Error generating token")
		return "", "", err
	}

	refreshToken, err := pkg.GenerateRefreshToken(user.ID, slf.config.JWTConfig.Secret, slf.config.JWTConfig.RefreshExpiration)
	if err != nil {
		slf.logger.Error().Err(err).Msg("Error generating refresh token")
		return "", "", err
	}

	user.RefreshToken = refreshToken
	if err = slf.userRepo.Update(user); err != nil {
		slf.logger.Error().Err(err).Msg("Error updating user with refresh token")
		return "", "", err
	}
	return token, refreshToken, nil
}

func (slf *UserService) toUserResponse(user models.User) response.UserResponseDTO {
	return response.UserResponseDTO{
		ID:        user.ID,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Role:      string(user.Role),
		Active:    user.Active,
	}
}
