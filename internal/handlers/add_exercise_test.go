package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/sbilibin2017/exercise-tracker/internal/models"
	"github.com/sbilibin2017/exercise-tracker/internal/services"
)

func TestAddExerciseHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := primitive.NewObjectID()
	exercise := &models.ExerciseDB{
		ID:          primitive.NewObjectID(),
		UserID:      userID,
		Username:    "alice",
		Description: "run",
		Duration:    30,
		Date:        time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC),
	}

	tests := []struct {
		name         string
		form         url.Values
		mockSetup    func(m *MockExerciseAdder)
		expectedCode int
		check        func(t *testing.T, body []byte)
	}{
		{
			name: "success",
			form: url.Values{
				"description": {"run"},
				"duration":    {"30"},
				"date":        {"2023-01-15"},
			},
			mockSetup: func(m *MockExerciseAdder) {
				m.EXPECT().
					Add(gomock.Any(), userID.Hex(), "run", "30", "2023-01-15").
					Return(exercise, nil)
			},
			expectedCode: 200,
			check: func(t *testing.T, body []byte) {
				var resp struct {
					ID          string `json:"_id"`
					Username    string `json:"username"`
					Date        string `json:"date"`
					Duration    int    `json:"duration"`
					Description string `json:"description"`
				}
				assert.NoError(t, json.Unmarshal(body, &resp))
				assert.Equal(t, userID.Hex(), resp.ID)
				assert.Equal(t, "alice", resp.Username)
				assert.Equal(t, "Sun Jan 15 2023", resp.Date)
				assert.Equal(t, 30, resp.Duration)
				assert.Equal(t, "run", resp.Description)
			},
		},
		{
			name: "missing fields",
			form: url.Values{"description": {"run"}},
			mockSetup: func(m *MockExerciseAdder) {
				m.EXPECT().
					Add(gomock.Any(), userID.Hex(), "run", "", "").
					Return(nil, services.ErrExerciseFieldsRequired)
			},
			expectedCode: 400,
			check: func(t *testing.T, body []byte) {
				assert.JSONEq(t, `{"error":"Description and duration are required"}`, string(body))
			},
		},
		{
			name: "invalid duration",
			form: url.Values{"description": {"run"}, "duration": {"abc"}},
			mockSetup: func(m *MockExerciseAdder) {
				m.EXPECT().
					Add(gomock.Any(), userID.Hex(), "run", "abc", "").
					Return(nil, services.ErrInvalidDuration)
			},
			expectedCode: 400,
			check: func(t *testing.T, body []byte) {
				assert.JSONEq(t, `{"error":"Invalid duration"}`, string(body))
			},
		},
		{
			name: "invalid date",
			form: url.Values{"description": {"run"}, "duration": {"30"}, "date": {"soon"}},
			mockSetup: func(m *MockExerciseAdder) {
				m.EXPECT().
					Add(gomock.Any(), userID.Hex(), "run", "30", "soon").
					Return(nil, services.ErrInvalidDate)
			},
			expectedCode: 400,
			check: func(t *testing.T, body []byte) {
				assert.JSONEq(t, `{"error":"Invalid date"}`, string(body))
			},
		},
		{
			name: "user not found",
			form: url.Values{"description": {"run"}, "duration": {"30"}},
			mockSetup: func(m *MockExerciseAdder) {
				m.EXPECT().
					Add(gomock.Any(), userID.Hex(), "run", "30", "").
					Return(nil, services.ErrUserNotFound)
			},
			expectedCode: 400,
			check: func(t *testing.T, body []byte) {
				assert.JSONEq(t, `{"error":"User not found"}`, string(body))
			},
		},
		{
			name: "internal server error",
			form: url.Values{"description": {"run"}, "duration": {"30"}},
			mockSetup: func(m *MockExerciseAdder) {
				m.EXPECT().
					Add(gomock.Any(), userID.Hex(), "run", "30", "").
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
			mockSvc := NewMockExerciseAdder(ctrl)
			tt.mockSetup(mockSvc)

			r := chi.NewRouter()
			r.Post("/api/users/{id}/exercises", NewAddExerciseHandler(mockSvc))

			req := httptest.NewRequest(
				http.MethodPost,
				"/api/users/"+userID.Hex()+"/exercises",
				strings.NewReader(tt.form.Encode()),
			)
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			tt.check(t, rr.Body.Bytes())
		})
	}
}
