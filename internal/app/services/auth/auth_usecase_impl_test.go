package auth

import (
	"context"
	"healthlink-service/internal/app/config"
	"healthlink-service/internal/app/models"
	"healthlink-service/internal/pkg/dto/requests"
	"healthlink-service/internal/pkg/utils"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

type fakeUserRepository struct {
	users map[string]*models.User
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{users: make(map[string]*models.User)}
}

func (f *fakeUserRepository) CreateUser(ctx context.Context, userEntity *models.User) error {
	f.users[userEntity.Email] = userEntity
	return nil
}

func (f *fakeUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return f.users[email], nil
}

func (f *fakeUserRepository) UpdateUser(ctx context.Context, email string, updateData bson.M) error {
	return nil
}

type fakeSessionStore struct {
	sessions map[string]*models.Session
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{sessions: make(map[string]*models.Session)}
}

func (f *fakeSessionStore) CreateSession(ctx context.Context, session *models.Session, exp time.Duration) error {
	f.sessions[session.SessionID] = session
	return nil
}

func (f *fakeSessionStore) GetSession(ctx context.Context, sessionID string) (*models.Session, error) {
	return f.sessions[sessionID], nil
}

func (f *fakeSessionStore) DeleteSession(ctx context.Context, sessionID string) error {
	delete(f.sessions, sessionID)
	return nil
}

func (f *fakeSessionStore) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	return nil
}

func (f *fakeSessionStore) Get(ctx context.Context, key string) (string, error) { return "", nil }

func (f *fakeSessionStore) Delete(ctx context.Context, key string) error { return nil }

func (f *fakeSessionStore) PushToList(ctx context.Context, key string, exp time.Duration, values ...interface{}) error {
	return nil
}

func (f *fakeSessionStore) GetListMembers(ctx context.Context, key string) ([]string, error) {
	return nil, nil
}

func (f *fakeSessionStore) ReplaceList(ctx context.Context, key string, exp time.Duration, values ...interface{}) error {
	return nil
}

func newTestAuthUsecase() (AuthUsecase, *fakeUserRepository, *fakeSessionStore) {
	userRepository := newFakeUserRepository()
	sessionStore := newFakeSessionStore()
	internalConfig := &config.InternalConfig{
		JWT: config.JWT{Secret: "test-secret", ExpTimeInHour: 1},
	}
	uc := NewAuthUsecase(userRepository, sessionStore, internalConfig, zap.NewNop())
	return uc, userRepository, sessionStore
}

func TestRegisterUser(t *testing.T) {
	t.Run("Stores Hashed Password", func(t *testing.T) {
		uc, repo, _ := newTestAuthUsecase()

		response, err := uc.RegisterUser(context.Background(), &requests.RegisterUser{
			Name:     "Asha Rao",
			Email:    "asha@example.com",
			Password: "Secret@123",
		})

		assert.NoError(t, err)
		assert.Equal(t, "asha@example.com", response.Email)
		assert.False(t, response.ProfileCompleted)

		stored := repo.users["asha@example.com"]
		assert.NotNil(t, stored)
		assert.NotEqual(t, "Secret@123", stored.PasswordHash)
		assert.True(t, utils.CheckPasswordHash("Secret@123", stored.PasswordHash))
	})

	t.Run("Duplicate Email", func(t *testing.T) {
		uc, _, _ := newTestAuthUsecase()

		request := &requests.RegisterUser{Name: "Asha Rao", Email: "asha@example.com", Password: "Secret@123"}
		_, err := uc.RegisterUser(context.Background(), request)
		assert.NoError(t, err)

		_, err = uc.RegisterUser(context.Background(), request)
		assert.Error(t, err)
	})
}

func TestLoginUser(t *testing.T) {
	t.Run("Issues Token And Session", func(t *testing.T) {
		uc, _, sessions := newTestAuthUsecase()

		_, err := uc.RegisterUser(context.Background(), &requests.RegisterUser{
			Name: "Asha Rao", Email: "asha@example.com", Password: "Secret@123",
		})
		assert.NoError(t, err)

		response, err := uc.LoginUser(context.Background(), &requests.LoginUser{
			Email: "asha@example.com", Password: "Secret@123",
		})

		assert.NoError(t, err)
		assert.NotEmpty(t, response.Token)
		assert.Len(t, sessions.sessions, 1)

		sessionID, err := utils.ParseJWT(response.Token, "test-secret")
		assert.NoError(t, err)
		assert.Contains(t, sessions.sessions, sessionID, "token should reference the stored session")
	})

	t.Run("Wrong Password", func(t *testing.T) {
		uc, _, _ := newTestAuthUsecase()

		_, err := uc.RegisterUser(context.Background(), &requests.RegisterUser{
			Name: "Asha Rao", Email: "asha@example.com", Password: "Secret@123",
		})
		assert.NoError(t, err)

		_, err = uc.LoginUser(context.Background(), &requests.LoginUser{
			Email: "asha@example.com", Password: "Wrong@123",
		})
		assert.Error(t, err)
	})

	t.Run("Unknown Email", func(t *testing.T) {
		uc, _, _ := newTestAuthUsecase()

		_, err := uc.LoginUser(context.Background(), &requests.LoginUser{
			Email: "nobody@example.com", Password: "Secret@123",
		})
		assert.Error(t, err)
	})
}

func TestLogoutUser(t *testing.T) {
	t.Run("Drops The Session", func(t *testing.T) {
		uc, _, sessions := newTestAuthUsecase()
		sessions.sessions["sess-1"] = &models.Session{SessionID: "sess-1"}

		assert.NoError(t, uc.LogoutUser(context.Background(), "sess-1"))
		assert.Empty(t, sessions.sessions)
	})
}
