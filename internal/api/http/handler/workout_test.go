package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fit4ever/fit4ever-server/internal/api/http/apicontext"
	"github.com/fit4ever/fit4ever-server/internal/apperrors"
	"github.com/fit4ever/fit4ever-server/internal/model"
	"github.com/fit4ever/fit4ever-server/internal/testutil"
)

type fakeWorkoutService struct {
	created   model.Workout
	createErr error
	got       model.Workout
	getErr    error
	deleteErr error

	gotUserID    int64
	gotWorkoutID int64
}

func (f *fakeWorkoutService) Create(_ context.Context, userID int64, workout model.Workout) (model.Workout, error) {
	f.gotUserID = userID
	f.created = workout
	f.created.ID = 1
	return f.created, f.createErr
}

func (f *fakeWorkoutService) List(_ context.Context, userID int64) ([]model.Workout, error) {
	f.gotUserID = userID
	return []model.Workout{f.got}, nil
}

func (f *fakeWorkoutService) Get(_ context.Context, userID, workoutID int64) (model.Workout, error) {
	f.gotUserID = userID
	f.gotWorkoutID = workoutID
	return f.got, f.getErr
}

func (f *fakeWorkoutService) Update(_ context.Context, userID, workoutID int64, title, notes *string, date *time.Time, exercises []model.Exercise) (model.Workout, error) {
	f.gotUserID = userID
	f.gotWorkoutID = workoutID
	return f.got, f.getErr
}

func (f *fakeWorkoutService) Delete(_ context.Context, userID, workoutID int64) error {
	f.gotUserID = userID
	f.gotWorkoutID = workoutID
	return f.deleteErr
}

func setupWorkoutHandler(service WorkoutService, user *model.User) *gin.Engine {
	gin.SetMode(gin.TestMode)

	ctxMgr := apicontext.NewManager()
	h := NewWorkout(service, ctxMgr, testutil.MakeNoopLogger())

	engine := gin.New()
	if user != nil {
		engine.Use(func(c *gin.Context) { ctxMgr.SetUser(c, *user) })
	}
	engine.POST("/api/workouts", h.Create)
	engine.GET("/api/workouts/:id", h.Get)
	engine.DELETE("/api/workouts/:id", h.Delete)

	return engine
}

func TestWorkout_Create_Created(t *testing.T) {
	service := &fakeWorkoutService{}
	engine := setupWorkoutHandler(service, &model.User{ID: 7})

	w := postJSON(engine, "/api/workouts", `{
		"title": "Leg day",
		"date": "2026-08-29",
		"exercises": [{"name": "Squat", "sets": 5, "reps": 5, "weight": 100}]
	}`)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, int64(7), service.gotUserID)
	assert.Equal(t, "Leg day", service.created.Title)
	require.Len(t, service.created.Exercises, 1)
	assert.Equal(t, "Squat", service.created.Exercises[0].Name)
	assert.Contains(t, w.Body.String(), `"date":"2026-08-29"`)
}

func TestWorkout_Create_BadDate(t *testing.T) {
	service := &fakeWorkoutService{}
	engine := setupWorkoutHandler(service, &model.User{ID: 7})

	w := postJSON(engine, "/api/workouts", `{"title":"Leg day","date":"29.08.2026"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "YYYY-MM-DD")
}

func TestWorkout_Get_ForbiddenPassthrough(t *testing.T) {
	service := &fakeWorkoutService{getErr: apperrors.NewErrForbidden()}
	engine := setupWorkoutHandler(service, &model.User{ID: 7})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/workouts/42", nil)
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, int64(42), service.gotWorkoutID)
}

func TestWorkout_Get_BadID(t *testing.T) {
	service := &fakeWorkoutService{}
	engine := setupWorkoutHandler(service, &model.User{ID: 7})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/workouts/abc", nil)
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestWorkout_Delete_NoContent(t *testing.T) {
	service := &fakeWorkoutService{}
	engine := setupWorkoutHandler(service, &model.User{ID: 7})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/workouts/3", nil)
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, int64(3), service.gotWorkoutID)
}

// A protected handler reached without a resolved user answers 401; this
// only happens when the middleware chain is misconfigured.
func TestWorkout_Get_NoUserInContext(t *testing.T) {
	service := &fakeWorkoutService{}
	engine := setupWorkoutHandler(service, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/workouts/1", nil)
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
