package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sbilibin2017/exercise-tracker/internal/logger"
	"github.com/sbilibin2017/exercise-tracker/internal/models"
)

const exercisesCollection = "exercises"

type ExerciseWriteRepository struct {
	db *mongo.Database
}

func NewExerciseWriteRepository(db *mongo.Database) *ExerciseWriteRepository {
	return &ExerciseWriteRepository{db: db}
}

// Save inserts a new exercise and returns the assigned id.
func (r *ExerciseWriteRepository) Save(ctx context.Context, exercise models.ExerciseDB) (primitive.ObjectID, error) {
	res, err := r.db.Collection(exercisesCollection).InsertOne(ctx, exercise)

	var id primitive.ObjectID
	if res != nil {
		id, _ = res.InsertedID.(primitive.ObjectID)
	}

	logger.Log.Infow(
		"query", "exercises.insertOne",
		"args", []any{exercise.UserID, exercise.Description, exercise.Duration, exercise.Date},
		"result", id,
		"error", err,
	)

	if err != nil {
		return primitive.NilObjectID, err
	}

	return id, nil
}

type ExerciseReadRepository struct {
	db *mongo.Database
}

func NewExerciseReadRepository(db *mongo.Database) *ExerciseReadRepository {
	return &ExerciseReadRepository{db: db}
}

// GetByFilter returns the exercises matching the filter, projected to
// description, duration and date, sorted by date ascending. The sort is
// applied before any limit so truncation keeps the oldest entries.
func (r *ExerciseReadRepository) GetByFilter(ctx context.Context, filter models.LogFilter) ([]models.ExerciseDB, error) {
	query := bson.M{"userId": filter.UserID}

	date := bson.M{}
	if filter.From != nil {
		date["$gte"] = *filter.From
	}
	if filter.To != nil {
		date["$lte"] = *filter.To
	}
	if len(date) > 0 {
		query["date"] = date
	}

	opts := options.Find().
		SetProjection(bson.M{"description": 1, "duration": 1, "date": 1, "_id": 0}).
		SetSort(bson.D{{Key: "date", Value: 1}})
	if filter.Limit != nil {
		opts.SetLimit(*filter.Limit)
	}

	cur, err := r.db.Collection(exercisesCollection).Find(ctx, query, opts)
	if err != nil {
		logger.Log.Infow(
			"query", "exercises.find",
			"args", query,
			"error", err,
		)
		return nil, err
	}
	defer cur.Close(ctx)

	var exercises []models.ExerciseDB
	err = cur.All(ctx, &exercises)

	logger.Log.Infow(
		"query", "exercises.find",
		"args", query,
		"result", len(exercises),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return exercises, nil
}
