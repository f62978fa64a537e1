package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/sbilibin2017/exercise-tracker/internal/models"
	"github.com/sbilibin2017/exercise-tracker/internal/services"
)

func TestGetLogHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := primitive.NewObjectID()

	log := &models.ExerciseLog{
		UserID:   userID,
		Username: "alice",
		Entries: []models.ExerciseDB{
			{Description: "run", Duration: 30, Date: time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC)},
			{Description: "swim", Duration: 45, Date: time.Date(2023, 2, 1, 0, 0, 0, 0, time.UTC)},
		},
	}

	tests := []struct {
		name         string
		query        string
		mockSetup    func(m *MockLogGetter)
		expectedCode int
		check        func(t *testing.T, body []byte)
	}{
		{
			name: "full log",
			mockSetup: func(m *MockLogGetter) {
				m.EXPECT().
					GetLog(gomock.Any(), userID.Hex(), "", "", "").
					Return(log, nil)
			},
			expectedCode: 200,
			check: func(t *testing.T, body []byte) {
				var resp LogResponse
				assert.NoError(t, json.Unmarshal(body, &resp))
				assert.Equal(t, userID.Hex(), resp.ID)
				assert.Equal(t, "alice", resp.Username)
				assert.Equal(t, 2, resp.Count)
				assert.Len(t, resp.Log, 2)
				assert.Equal(t, LogEntry{Description: "run", Duration: 30, Date: "Sun Jan 15 2023"}, resp.Log[0])
				assert.Equal(t, LogEntry{Description: "swim", Duration: 45, Date: "Wed Feb 01 2023"}, resp.Log[1])
			},
		},
		{
			name:  "query params are forwarded",
			query: "?from=2023-01-01&to=2023-12-31&limit=1",
			mockSetup: func(m *MockLogGetter) {
				m.EXPECT().
					GetLog(gomock.Any(), userID.Hex(), "2023-01-01", "2023-12-31", "1").
					Return(&models.ExerciseLog{UserID: userID, Username: "alice", Entries: log.Entries[:1]}, nil)
			},
			expectedCode: 200,
			check: func(t *testing.T, body []byte) {
				var resp LogResponse
				assert.NoError(t, json.Unmarshal(body, &resp))
				assert.Equal(t, 1, resp.Count)
				assert.Len(t, resp.Log, 1)
			},
		},
		{
			name: "empty log has count zero and empty array",
			mockSetup: func(m *MockLogGetter) {
				m.EXPECT().
					GetLog(gomock.Any(), userID.Hex(), "", "", "").
					Return(&models.ExerciseLog{UserID: userID, Username: "alice"}, nil)
			},
			expectedCode: 200,
			check: func(t *testing.T, body []byte) {
				var resp map[string]any
				assert.NoError(t, json.Unmarshal(body, &resp))
				assert.Equal(t, float64(0), resp["count"])
				assert.Equal(t, []any{}, resp["log"])
			},
		},
		{
			name: "user not found",
			mockSetup: func(m *MockLogGetter) {
				m.EXPECT().
					GetLog(gomock.Any(), userID.Hex(), "", "", "").
					Return(nil, services.ErrUserNotFound)
			},
			expectedCode: 400,
			check: func(t *testing.T, body []byte) {
				assert.JSONEq(t, `{"error":"User not found"}`, string(body))
			},
		},
		{
			name:  "invalid date bound",
			query: "?from=garbage",
			mockSetup: func(m *MockLogGetter) {
				m.EXPECT().
					GetLog(gomock.Any(), userID.Hex(), "garbage", "", "").
					Return(nil, services.ErrInvalidDate)
			},
			expectedCode: 400,
			check: func(t *testing.T, body []byte) {
				assert.JSONEq(t, `{"error":"Invalid date"}`, string(body))
			},
		},
		{
			name:  "invalid limit",
			query: "?limit=many",
			mockSetup: func(m *MockLogGetter) {
				m.EXPECT().
					GetLog(gomock.Any(), userID.Hex(), "", "", "many").
					Return(nil, services.ErrInvalidLimit)
			},
			expectedCode: 400,
			check: func(t *testing.T, body []byte) {
				assert.JSONEq(t, `{"error":"Invalid limit"}`, string(body))
			},
		},
		{
			name: "internal server error",
			mockSetup: func(m *MockLogGetter) {
				m.EXPECT().
					GetLog(gomock.Any(), userID.Hex(), "", "", "").
					Return(nil, errors.New("database failure"))
			},
			expectedCode: 500,
			check: func(t *testing.T, body []byte) {
				assert.JSONEq(t, `{"error":"Server error"}`, string(body))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockLogGetter(ctrl)
			tt.mockSetup(mockSvc)

			r := chi.NewRouter()
			r.Get("/api/users/{id}/logs", NewGetLogHandler(mockSvc))

			req := httptest.NewRequest(http.MethodGet, "/api/users/"+userID.Hex()+"/logs"+tt.query, nil)
			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			tt.check(t, rr.Body.Bytes())
		})
	}
}
