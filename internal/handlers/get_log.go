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

// LogGetter defines the interface that the service must implement.
type LogGetter interface {
	GetLog(ctx context.Context, userID, from, to, limit string) (*models.ExerciseLog, error)
}

// LogEntry represents a single exercise in the log
// swagger:model LogEntry
type LogEntry struct {
	// Description
	// default: run
	Description string `json:"description"`

	// Duration in minutes
	// default: 30
	Duration int `json:"duration"`

	// Exercise date
	// default: Sun Jan 15 2023
	Date string `json:"date"`
}

// LogResponse represents a user's exercise log
// swagger:model LogResponse
type LogResponse struct {
	// User identifier
	// default: 5fb5853f734231456ccb3b05
	ID string `json:"_id"`

	// Username
	// default: alice
	Username string `json:"username"`

	// Number of log entries
	// default: 1
	Count int `json:"count"`

	// Log entries
	Log []LogEntry `json:"log"`
}

// LogErrorResponse represents an error response for log retrieval
// swagger:model LogErrorResponse
type LogErrorResponse struct {
	// Error message
	// default: User not found
	Error string `json:"error"`
}

// NewGetLogHandler returns an HTTP handler for a user's exercise log.
// A missing user yields 400 rather than 404, matching the upstream API
// contract.
// @Summary Get exercise log
// @Description Returns the user's exercises filtered by optional inclusive from/to date bounds and capped by limit. Entries are sorted by date ascending before the limit applies.
// @Tags exercises
// @Produce json
// @Param id path string true "User id"
// @Param from query string false "Lower date bound (YYYY-MM-DD, inclusive)"
// @Param to query string false "Upper date bound (YYYY-MM-DD, inclusive)"
// @Param limit query int false "Maximum number of entries"
// @Success 200 {object} handlers.LogResponse "Exercise log"
// @Failure 400 {object} handlers.LogErrorResponse "Invalid input / user not found"
// @Failure 500 {object} handlers.LogErrorResponse "Server error"
// @Router /api/users/{id}/logs [get]
func NewGetLogHandler(svc LogGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		q := r.URL.Query()

		log, err := svc.GetLog(
			r.Context(),
			chi.URLParam(r, "id"),
			q.Get("from"),
			q.Get("to"),
			q.Get("limit"),
		)
		if err != nil {
			switch err {
			case services.ErrUserNotFound:
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(LogErrorResponse{
					Error: "User not found",
				})
			case services.ErrInvalidDate:
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(LogErrorResponse{
					Error: "Invalid date",
				})
			case services.ErrInvalidLimit:
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(LogErrorResponse{
					Error: "Invalid limit",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(LogErrorResponse{
					Error: "Server error",
				})
			}
			return
		}

		entries := make([]LogEntry, 0, len(log.Entries))
		for _, e := range log.Entries {
			entries = append(entries, LogEntry{
				Description: e.Description,
				Duration:    e.Duration,
				Date:        models.FormatDate(e.Date),
			})
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(LogResponse{
			ID:       log.UserID.Hex(),
			Username: log.Username,
			Count:    len(entries),
			Log:      entries,
		})
	}
}
