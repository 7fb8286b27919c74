package auth

import (
	"context"
	"healthlink-service/internal/app/config"
	"healthlink-service/internal/app/models"
	"healthlink-service/internal/app/services/shared/redis"
	"healthlink-service/internal/app/services/users"
	"healthlink-service/internal/pkg/dto/requests"
	"healthlink-service/internal/pkg/dto/responses"
	"healthlink-service/internal/pkg/exceptions"
	"healthlink-service/internal/pkg/utils"
	"time"

	"go.uber.org/zap"
)

type authUsecase struct {
	UserRepository  users.UserRepository
	RedisRepository redis.RedisRepository
	InternalConfig  *config.InternalConfig
	Logger          *zap.Logger
}

func NewAuthUsecase(
	userMongoRepository users.UserRepository,
	redisRepository redis.RedisRepository,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) AuthUsecase {
	return &authUsecase{
		UserRepository:  userMongoRepository,
		RedisRepository: redisRepository,
		InternalConfig:  internalConfig,
		Logger:          logger,
	}
}

func (uc *authUsecase) RegisterUser(ctx context.Context, request *requests.RegisterUser) (*responses.RegisterUser, error) {
	uc.Logger.Info("authUsecase.RegisterUser called", zap.String("email", request.Email))

	// Check if email already exists
	existingUser, err := uc.UserRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	if existingUser != nil {
		return nil, exceptions.ErrEmailAlreadyExist(nil)
	}

	// Hash password
	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, exceptions.ErrHashPassword(err)
	}

	now := time.Now().UTC()
	user := &models.User{
		Email:        request.Email,
		Name:         request.Name,
		PasswordHash: hashedPassword,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	// Create user
	err = uc.UserRepository.CreateUser(ctx, user)
	if err != nil {
		return nil, err
	}

	response := &responses.RegisterUser{
		Name:             user.Name,
		Email:            user.Email,
		ProfileCompleted: user.ProfileCompleted,
	}
	return response, nil
}

func (uc *authUsecase) LoginUser(ctx context.Context, request *requests.LoginUser) (*responses.LoginUser, error) {
	uc.Logger.Info("authUsecase.LoginUser called", zap.String("email", request.Email))

	// Get user by email
	user, err := uc.UserRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, exceptions.ErrInvalidEmailOrPassword(nil)
	}

	// Check password
	if !utils.CheckPasswordHash(request.Password, user.PasswordHash) {
		return nil, exceptions.ErrInvalidEmailOrPassword(nil)
	}

	// Store session data in Redis
	session := &models.Session{
		SessionID: utils.GenerateSessionID(),
		Email:     user.Email,
		Name:      user.Name,
	}
	sessionExpiry := time.Duration(uc.InternalConfig.JWT.ExpTimeInHour) * time.Hour
	err = uc.RedisRepository.CreateSession(ctx, session, sessionExpiry)
	if err != nil {
		return nil, err
	}

	// Create a JWT token carrying the session ID
	tokenString, err := utils.GenerateSessionJWT(session.SessionID, uc.InternalConfig.JWT.Secret, uc.InternalConfig.JWT.ExpTimeInHour)
	if err != nil {
		return nil, err
	}

	response := &responses.LoginUser{
		Token:            tokenString,
		Name:             user.Name,
		Email:            user.Email,
		ProfileCompleted: user.ProfileCompleted,
	}
	return response, nil
}

func (uc *authUsecase) LogoutUser(ctx context.Context, sessionID string) error {
	uc.Logger.Info("authUsecase.LogoutUser called")

	return uc.RedisRepository.DeleteSession(ctx, sessionID)
}
