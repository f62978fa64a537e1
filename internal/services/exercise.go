package services

import (
	"context"
	"errors"
	"strconv"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/sbilibin2017/exercise-tracker/internal/logger"
	"github.com/sbilibin2017/exercise-tracker/internal/models"
)

// Error variables
var (
	ErrExerciseFieldsRequired = errors.New("description and duration are required")
	ErrUserNotFound           = errors.New("user not found")
	ErrInvalidDuration        = errors.New("duration must be a number")
	ErrInvalidDate            = errors.New("invalid date")
	ErrInvalidLimit           = errors.New("invalid limit")
)

// UserGetter defines the user lookup needed before exercise operations.
type UserGetter interface {
	GetByID(ctx context.Context, id string) (*models.UserDB, error)
}

// ExerciseSaver defines write operations for exercises.
type ExerciseSaver interface {
	Save(ctx context.Context, exercise models.ExerciseDB) (primitive.ObjectID, error)
}

// ExerciseLister defines the filtered listing operation for exercises.
type ExerciseLister interface {
	GetByFilter(ctx context.Context, filter models.LogFilter) ([]models.ExerciseDB, error)
}

// ExerciseService handles exercise creation and log retrieval.
type ExerciseService struct {
	users  UserGetter
	reader ExerciseLister
	writer ExerciseSaver
}

// NewExerciseService creates a new ExerciseService instance.
func NewExerciseService(users UserGetter, reader ExerciseLister, writer ExerciseSaver) *ExerciseService {
	return &ExerciseService{
		users:  users,
		reader: reader,
		writer: writer,
	}
}

// Add records an exercise against the user with the given id. The username is
// copied onto the exercise at creation time. When no date is supplied the
// current moment is used.
func (svc *ExerciseService) Add(ctx context.Context, userID, description, duration, date string) (*models.ExerciseDB, error) {
	if description == "" || duration == "" {
		logger.Log.Errorw("description and duration are required", "userID", userID)
		return nil, ErrExerciseFieldsRequired
	}

	minutes, err := strconv.Atoi(duration)
	if err != nil {
		logger.Log.Errorw("invalid duration", "duration", duration)
		return nil, ErrInvalidDuration
	}

	when := time.Now().UTC()
	if date != "" {
		when, err = models.ParseDate(date)
		if err != nil {
			logger.Log.Errorw("invalid date", "date", date)
			return nil, ErrInvalidDate
		}
	}

	user, err := svc.users.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "userID", userID, "err", err)
		return nil, err
	}
	if user == nil {
		logger.Log.Errorw("user not found", "userID", userID)
		return nil, ErrUserNotFound
	}

	exercise := models.ExerciseDB{
		UserID:      user.ID,
		Username:    user.Username,
		Description: description,
		Duration:    minutes,
		Date:        when,
	}

	id, err := svc.writer.Save(ctx, exercise)
	if err != nil {
		logger.Log.Errorw("failed to save exercise", "userID", userID, "err", err)
		return nil, err
	}

	exercise.ID = id
	return &exercise, nil
}

// GetLog returns the user's exercises filtered by the optional inclusive
// from/to date bounds and capped by the optional limit.
func (svc *ExerciseService) GetLog(ctx context.Context, userID, from, to, limit string) (*models.ExerciseLog, error) {
	user, err := svc.users.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "userID", userID, "err", err)
		return nil, err
	}
	if user == nil {
		logger.Log.Errorw("user not found", "userID", userID)
		return nil, ErrUserNotFound
	}

	filter := models.LogFilter{UserID: user.ID}

	if from != "" {
		t, err := models.ParseDate(from)
		if err != nil {
			logger.Log.Errorw("invalid from bound", "from", from)
			return nil, ErrInvalidDate
		}
		filter.From = &t
	}
	if to != "" {
		t, err := models.ParseDate(to)
		if err != nil {
			logger.Log.Errorw("invalid to bound", "to", to)
			return nil, ErrInvalidDate
		}
		filter.To = &t
	}
	if limit != "" {
		n, err := strconv.ParseInt(limit, 10, 64)
		if err != nil || n < 0 {
			logger.Log.Errorw("invalid limit", "limit", limit)
			return nil, ErrInvalidLimit
		}
		filter.Limit = &n
	}

	entries, err := svc.reader.GetByFilter(ctx, filter)
	if err != nil {
		logger.Log.Errorw("failed to get exercises", "userID", userID, "err", err)
		return nil, err
	}

	return &models.ExerciseLog{
		UserID:   user.ID,
		Username: user.Username,
		Entries:  entries,
	}, nil
}
