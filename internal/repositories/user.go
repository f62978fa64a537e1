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

const usersCollection = "users"

type UserReadRepository struct {
	db *mongo.Database
}

func NewUserReadRepository(db *mongo.Database) *UserReadRepository {
	return &UserReadRepository{db: db}
}

// GetByID returns the user with the given id, or nil when no user matches.
// A malformed id cannot match any document, so it is reported as no match
// rather than a store error.
func (r *UserReadRepository) GetByID(ctx context.Context, id string) (*models.UserDB, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		logger.Log.Infow(
			"query", "users.findOne",
			"args", []any{id},
			"error", err,
		)
		return nil, nil
	}

	var user models.UserDB
	err = r.db.Collection(usersCollection).FindOne(ctx, bson.M{"_id": oid}).Decode(&user)

	logger.Log.Infow(
		"query", "users.findOne",
		"args", []any{id},
		"result", user,
		"error", err,
	)

	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// GetAll returns every user, projected to username and _id, in store-native
// order.
func (r *UserReadRepository) GetAll(ctx context.Context) ([]models.UserDB, error) {
	opts := options.Find().SetProjection(bson.M{"username": 1})

	cur, err := r.db.Collection(usersCollection).Find(ctx, bson.M{}, opts)
	if err != nil {
		logger.Log.Infow(
			"query", "users.find",
			"error", err,
		)
		return nil, err
	}
	defer cur.Close(ctx)

	var users []models.UserDB
	err = cur.All(ctx, &users)

	logger.Log.Infow(
		"query", "users.find",
		"result", len(users),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return users, nil
}

type UserWriteRepository struct {
	db *mongo.Database
}

func NewUserWriteRepository(db *mongo.Database) *UserWriteRepository {
	return &UserWriteRepository{db: db}
}

// Save inserts a new user and returns the assigned id.
func (r *UserWriteRepository) Save(ctx context.Context, username string) (primitive.ObjectID, error) {
	res, err := r.db.Collection(usersCollection).InsertOne(ctx, bson.M{"username": username})

	var id primitive.ObjectID
	if res != nil {
		id, _ = res.InsertedID.(primitive.ObjectID)
	}

	logger.Log.Infow(
		"query", "users.insertOne",
		"args", []any{username},
		"result", id,
		"error", err,
	)

	if err != nil {
		return primitive.NilObjectID, err
	}

	return id, nil
}
