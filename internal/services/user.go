package services

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/sbilibin2017/exercise-tracker/internal/logger"
	"github.com/sbilibin2017/exercise-tracker/internal/models"
)

// Error variables
var (
	ErrUsernameRequired = errors.New("username is required")
)

// UserSaver defines write operations for users.
type UserSaver interface {
	Save(ctx context.Context, username string) (primitive.ObjectID, error)
}

// UserLister defines the listing operation for users.
type UserLister interface {
	GetAll(ctx context.Context) ([]models.UserDB, error)
}

// UserService handles user creation and listing.
type UserService struct {
	reader UserLister
	writer UserSaver
}

// NewUserService creates a new UserService instance.
func NewUserService(reader UserLister, writer UserSaver) *UserService {
	return &UserService{
		reader: reader,
		writer: writer,
	}
}

// Create inserts a new user with the given username and returns the created
// record.
func (svc *UserService) Create(ctx context.Context, username string) (*models.UserDB, error) {
	if username == "" {
		logger.Log.Errorw("username is required")
		return nil, ErrUsernameRequired
	}

	id, err := svc.writer.Save(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to save user", "err", err)
		return nil, err
	}

	return &models.UserDB{ID: id, Username: username}, nil
}

// List returns all users in store-native order.
func (svc *UserService) List(ctx context.Context) ([]models.UserDB, error) {
	users, err := svc.reader.GetAll(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list users", "err", err)
		return nil, err
	}

	return users, nil
}
