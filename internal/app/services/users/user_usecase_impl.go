package users

import (
	"context"
	"healthlink-service/internal/app/models"
	"healthlink-service/internal/pkg/dto/requests"
	"healthlink-service/internal/pkg/dto/responses"
	"healthlink-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

type userUsecase struct {
	UserRepository UserRepository
	Logger         *zap.Logger
}

func NewUserUsecase(
	userMongoRepository UserRepository,
	logger *zap.Logger,
) UserUsecase {
	return &userUsecase{
		UserRepository: userMongoRepository,
		Logger:         logger,
	}
}

func (uc *userUsecase) GetUserProfile(ctx context.Context, session *models.Session) (*responses.UserProfile, error) {
	uc.Logger.Info("userUsecase.GetUserProfile called", zap.String("email", session.Email))

	user, err := uc.UserRepository.FindByEmail(ctx, session.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, exceptions.ErrUserNotExist(nil)
	}

	return buildUserProfileResponse(user), nil
}

func (uc *userUsecase) UpdateUserProfile(ctx context.Context, session *models.Session, request *requests.UpdateProfile) (*responses.UserProfile, error) {
	uc.Logger.Info("userUsecase.UpdateUserProfile called", zap.String("email", session.Email))

	user, err := uc.UserRepository.FindByEmail(ctx, session.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, exceptions.ErrUserNotExist(nil)
	}

	updateData := bson.M{}
	if request.Name != "" {
		updateData["name"] = request.Name
		user.Name = request.Name
	}
	if request.Phone != "" {
		updateData["phone"] = request.Phone
		user.Phone = request.Phone
	}
	if request.Address != "" {
		updateData["address"] = request.Address
		user.Address = request.Address
	}
	if request.City != "" {
		updateData["city"] = request.City
		user.City = request.City
	}

	if len(updateData) > 0 {
		if err := uc.UserRepository.UpdateUser(ctx, session.Email, updateData); err != nil {
			return nil, err
		}
	}

	return buildUserProfileResponse(user), nil
}

func (uc *userUsecase) CompleteUserProfile(ctx context.Context, session *models.Session, request *requests.CompleteProfile) (*responses.UserProfile, error) {
	uc.Logger.Info("userUsecase.CompleteUserProfile called", zap.String("email", session.Email))

	user, err := uc.UserRepository.FindByEmail(ctx, session.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, exceptions.ErrUserNotExist(nil)
	}

	updateData := bson.M{
		"age":               request.Age,
		"gender":            request.Gender,
		"blood_group":       request.BloodGroup,
		"allergies":         request.Allergies,
		"conditions":        request.Conditions,
		"profile_completed": true,
	}
	if err := uc.UserRepository.UpdateUser(ctx, session.Email, updateData); err != nil {
		return nil, err
	}

	user.Age = request.Age
	user.Gender = request.Gender
	user.BloodGroup = request.BloodGroup
	user.Allergies = request.Allergies
	user.Conditions = request.Conditions
	user.ProfileCompleted = true

	return buildUserProfileResponse(user), nil
}

func buildUserProfileResponse(user *models.User) *responses.UserProfile {
	return &responses.UserProfile{
		Name:             user.Name,
		Email:            user.Email,
		Phone:            user.Phone,
		Address:          user.Address,
		City:             user.City,
		Age:              user.Age,
		Gender:           user.Gender,
		BloodGroup:       user.BloodGroup,
		Allergies:        user.Allergies,
		Conditions:       user.Conditions,
		ProfileCompleted: user.ProfileCompleted,
	}
}
