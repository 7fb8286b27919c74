package users

import (
	"context"
	"healthlink-service/internal/app/models"
	"healthlink-service/internal/pkg/dto/requests"
	"healthlink-service/internal/pkg/dto/responses"

	"go.mongodb.org/mongo-driver/bson"
)

type UserUsecase interface {
	GetUserProfile(ctx context.Context, session *models.Session) (*responses.UserProfile, error)
	UpdateUserProfile(ctx context.Context, session *models.Session, request *requests.UpdateProfile) (*responses.UserProfile, error)
	CompleteUserProfile(ctx context.Context, session *models.Session, request *requests.CompleteProfile) (*responses.UserProfile, error)
}

type UserRepository interface {
	CreateUser(ctx context.Context, userEntity *models.User) error
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	UpdateUser(ctx context.Context, email string, updateData bson.M) error
}
