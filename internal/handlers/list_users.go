package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/exercise-tracker/internal/logger"
	"github.com/sbilibin2017/exercise-tracker/internal/models"
)

// UserListGetter defines the interface that the service must implement.
type UserListGetter interface {
	List(ctx context.Context) ([]models.UserDB, error)
}

// ListUsersErrorResponse represents an error response for user listing
// swagger:model ListUsersErrorResponse
type ListUsersErrorResponse struct {
	// Error message
	// default: Server error
	Error string `json:"error"`
}

// NewListUsersHandler returns an HTTP handler listing all users.
// @Summary List users
// @Description Returns every user as {username, _id}, in store-native order.
// @Tags users
// @Produce json
// @Success 200 {array} handlers.CreateUserResponse "Users"
// @Failure 500 {object} handlers.ListUsersErrorResponse "Server error"
// @Router /api/users [get]
func NewListUsersHandler(svc UserListGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		users, err := svc.List(r.Context())
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ListUsersErrorResponse{
				Error: "Server error",
			})
			return
		}

		resp := make([]CreateUserResponse, 0, len(users))
		for _, u := range users {
			resp = append(resp, CreateUserResponse{
				Username: u.Username,
				ID:       u.ID.Hex(),
			})
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(resp)
	}
}
