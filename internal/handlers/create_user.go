package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/exercise-tracker/internal/logger"
	"github.com/sbilibin2017/exercise-tracker/internal/models"
	"github.com/sbilibin2017/exercise-tracker/internal/services"
)

// UserCreator defines the interface that the service must implement.
type UserCreator interface {
	Create(ctx context.Context, username string) (*models.UserDB, error)
}

// CreateUserResponse represents a successfully created user
// swagger:model CreateUserResponse
type CreateUserResponse struct {
	// Username
	// default: alice
	Username string `json:"username"`

	// Assigned identifier
	// default: 5fb5853f734231456ccb3b05
	ID string `json:"_id"`
}

// CreateUserErrorResponse represents an error response for user creation
// swagger:model CreateUserErrorResponse
type CreateUserErrorResponse struct {
	// Error message
	// default: Username is required
	Error string `json:"error"`
}

// NewCreateUserHandler returns an HTTP handler for creating a user.
// @Summary Create a new user
// @Description Creates a user with the given username. Usernames are not checked for uniqueness.
// @Tags users
// @Accept x-www-form-urlencoded
// @Produce json
// @Param username formData string true "Username"
// @Success 200 {object} handlers.CreateUserResponse "Created user"
// @Failure 400 {object} handlers.CreateUserErrorResponse "Username is required"
// @Failure 500 {object} handlers.CreateUserErrorResponse "Server error"
// @Router /api/users [post]
func NewCreateUserHandler(svc UserCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		if err := r.ParseForm(); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(CreateUserErrorResponse{
				Error: "Username is required",
			})
			return
		}

		user, err := svc.Create(r.Context(), r.PostFormValue("username"))
		if err != nil {
			switch err {
			case services.ErrUsernameRequired:
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(CreateUserErrorResponse{
					Error: "Username is required",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(CreateUserErrorResponse{
					Error: "Server error",
				})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(CreateUserResponse{
			Username: user.Username,
			ID:       user.ID.Hex(),
		})
	}
}
