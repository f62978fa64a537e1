package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sbilibin2017/exercise-tracker/internal/logger"
	"github.com/sbilibin2017/exercise-tracker/internal/models"
	"github.com/sbilibin2017/exercise-tracker/internal/services"
)

// ExerciseAdder defines the interface that the service must implement.
type ExerciseAdder interface {
	Add(ctx context.Context, userID, description, duration, date string) (*models.ExerciseDB, error)
}

// ExerciseResponse represents a successfully recorded exercise.
// The _id field carries the owning user's id.
// swagger:model ExerciseResponse
type ExerciseResponse struct {
	// Owning user's identifier
	// default: 5fb5853f734231456ccb3b05
	ID string `json:"_id"`

	// Username
	// default: alice
	Username string `json:"username"`

	// Exercise date
	// default: Sun Jan 15 2023
	Date string `json:"date"`

	// Duration in minutes
	// default: 30
	Duration int `json:"duration"`

	// Description
	// default: run
	Description string `json:"description"`
}

// ExerciseErrorResponse represents an error response for exercise creation
// swagger:model ExerciseErrorResponse
type ExerciseErrorResponse struct {
	// Error message
	// default: Description and duration are required
	Error string `json:"error"`
}

// NewAddExerciseHandler returns an HTTP handler recording an exercise against
// a user. A missing user yields 400 rather than 404, matching the upstream
// API contract.
// @Summary Add an exercise
// @Description Records an exercise for the user. The date defaults to today when omitted.
// @Tags exercises
// @Accept x-www-form-urlencoded
// @Produce json
// @Param id path string true "User id"
// @Param description formData string true "Description"
// @Param duration formData int true "Duration in minutes"
// @Param date formData string false "Date (YYYY-MM-DD)"
// @Success 200 {object} handlers.ExerciseResponse "Recorded exercise"
// @Failure 400 {object} handlers.ExerciseErrorResponse "Missing fields / invalid input / user not found"
// @Failure 500 {object} handlers.ExerciseErrorResponse "Server error"
// @Router /api/users/{id}/exercises [post]
func NewAddExerciseHandler(svc ExerciseAdder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		if err := r.ParseForm(); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ExerciseErrorResponse{
				Error: "Description and duration are required",
			})
			return
		}

		exercise, err := svc.Add(
			r.Context(),
			chi.URLParam(r, "id"),
			r.PostFormValue("description"),
			r.PostFormValue("duration"),
			r.PostFormValue("date"),
		)
		if err != nil {
			switch err {
			case services.ErrExerciseFieldsRequired:
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ExerciseErrorResponse{
					Error: "Description and duration are required",
				})
			case services.ErrInvalidDuration:
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ExerciseErrorResponse{
					Error: "Invalid duration",
				})
			case services.ErrInvalidDate:
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ExerciseErrorResponse{
					Error: "Invalid date",
				})
			case services.ErrUserNotFound:
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ExerciseErrorResponse{
					Error: "User not found",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ExerciseErrorResponse{
					Error: "Server error",
				})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ExerciseResponse{
			ID:          exercise.UserID.Hex(),
			Username:    exercise.Username,
			Date:        models.FormatDate(exercise.Date),
			Duration:    exercise.Duration,
			Description: exercise.Description,
		})
	}
}
