package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/sbilibin2017/exercise-tracker/internal/models"
)

func TestExerciseWriteRepository_Save(t *testing.T) {
	db, teardown := setupMongoContainer(t)
	defer teardown()

	repo := NewExerciseWriteRepository(db)
	ctx := context.Background()

	userID := primitive.NewObjectID()
	id, err := repo.Save(ctx, models.ExerciseDB{
		UserID:      userID,
		Username:    "alice",
		Description: "run",
		Duration:    30,
		Date:        time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC),
	})
	assert.NoError(t, err)
	assert.NotEqual(t, primitive.NilObjectID, id)

	var doc models.ExerciseDB
	err = db.Collection(exercisesCollection).FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	assert.NoError(t, err)
	assert.Equal(t, userID, doc.UserID)
	assert.Equal(t, "alice", doc.Username)
	assert.Equal(t, "run", doc.Description)
	assert.Equal(t, 30, doc.Duration)
	assert.True(t, doc.Date.Equal(time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC)))
}

func TestExerciseReadRepository_GetByFilter(t *testing.T) {
	db, teardown := setupMongoContainer(t)
	defer teardown()

	writeRepo := NewExerciseWriteRepository(db)
	readRepo := NewExerciseReadRepository(db)
	ctx := context.Background()

	userID := primitive.NewObjectID()
	otherID := primitive.NewObjectID()

	// Inserted out of chronological order on purpose.
	exercises := []models.ExerciseDB{
		{UserID: userID, Username: "alice", Description: "swim", Duration: 45, Date: time.Date(2023, 2, 1, 0, 0, 0, 0, time.UTC)},
		{UserID: userID, Username: "alice", Description: "run", Duration: 30, Date: time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC)},
		{UserID: userID, Username: "alice", Description: "bike", Duration: 60, Date: time.Date(2023, 3, 10, 0, 0, 0, 0, time.UTC)},
		{UserID: otherID, Username: "bob", Description: "row", Duration: 20, Date: time.Date(2023, 1, 20, 0, 0, 0, 0, time.UTC)},
	}
	for _, ex := range exercises {
		_, err := writeRepo.Save(ctx, ex)
		assert.NoError(t, err)
	}

	t.Run("OnlyOwnExercisesSortedByDate", func(t *testing.T) {
		got, err := readRepo.GetByFilter(ctx, models.LogFilter{UserID: userID})
		assert.NoError(t, err)
		assert.Len(t, got, 3)
		assert.Equal(t, "run", got[0].Description)
		assert.Equal(t, "swim", got[1].Description)
		assert.Equal(t, "bike", got[2].Description)
	})

	t.Run("InclusiveFromBound", func(t *testing.T) {
		from := time.Date(2023, 2, 1, 0, 0, 0, 0, time.UTC)
		got, err := readRepo.GetByFilter(ctx, models.LogFilter{UserID: userID, From: &from})
		assert.NoError(t, err)
		assert.Len(t, got, 2)
		assert.Equal(t, "swim", got[0].Description)
		assert.Equal(t, "bike", got[1].Description)
	})

	t.Run("InclusiveToBound", func(t *testing.T) {
		to := time.Date(2023, 2, 1, 0, 0, 0, 0, time.UTC)
		got, err := readRepo.GetByFilter(ctx, models.LogFilter{UserID: userID, To: &to})
		assert.NoError(t, err)
		assert.Len(t, got, 2)
		assert.Equal(t, "run", got[0].Description)
		assert.Equal(t, "swim", got[1].Description)
	})

	t.Run("BothBounds", func(t *testing.T) {
		from := time.Date(2023, 1, 16, 0, 0, 0, 0, time.UTC)
		to := time.Date(2023, 3, 9, 0, 0, 0, 0, time.UTC)
		got, err := readRepo.GetByFilter(ctx, models.LogFilter{UserID: userID, From: &from, To: &to})
		assert.NoError(t, err)
		assert.Len(t, got, 1)
		assert.Equal(t, "swim", got[0].Description)
	})

	t.Run("LimitKeepsOldest", func(t *testing.T) {
		limit := int64(2)
		got, err := readRepo.GetByFilter(ctx, models.LogFilter{UserID: userID, Limit: &limit})
		assert.NoError(t, err)
		assert.Len(t, got, 2)
		assert.Equal(t, "run", got[0].Description)
		assert.Equal(t, "swim", got[1].Description)
	})

	t.Run("ProjectionExcludesIDs", func(t *testing.T) {
		got, err := readRepo.GetByFilter(ctx, models.LogFilter{UserID: userID})
		assert.NoError(t, err)
		for _, e := range got {
			assert.Equal(t, primitive.NilObjectID, e.ID)
		}
	})

	t.Run("NoMatches", func(t *testing.T) {
		got, err := readRepo.GetByFilter(ctx, models.LogFilter{UserID: primitive.NewObjectID()})
		assert.NoError(t, err)
		assert.Empty(t, got)
	})
}
