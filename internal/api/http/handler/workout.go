package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fit4ever/fit4ever-server/internal/logger"
	"github.com/fit4ever/fit4ever-server/internal/model"
)

// WorkoutService covers workout CRUD scoped to the calling user.
type WorkoutService interface {
	Create(ctx context.Context, userID int64, workout model.Workout) (model.Workout, error)
	List(ctx context.Context, userID int64) ([]model.Workout, error)
	Get(ctx context.Context, userID, workoutID int64) (model.Workout, error)
	Update(ctx context.Context, userID, workoutID int64, title, notes *string, date *time.Time, exercises []model.Exercise) (model.Workout, error)
	Delete(ctx context.Context, userID, workoutID int64) error
}

// Workout handles the workout endpoints.
type Workout struct {
	service        WorkoutService
	contextManager ContextManager
	logger         *logger.Logger
}

// NewWorkout creates a new Workout handler instance.
func NewWorkout(service WorkoutService, contextManager ContextManager, logger *logger.Logger) *Workout {
	return &Workout{service: service, contextManager: contextManager, logger: logger}
}

type exerciseRequest struct {
	Name       string   `json:"name" binding:"required"`
	SetsCount  *int     `json:"sets"`
	RepsPerSet *int     `json:"reps"`
	Weight     *float64 `json:"weight"`
}

type createWorkoutRequest struct {
	Title     string            `json:"title" binding:"required"`
	Notes     string            `json:"notes"`
	Date      string            `json:"date" binding:"required"`
	Exercises []exerciseRequest `json:"exercises"`
}

type updateWorkoutRequest struct {
	Title     *string            `json:"title"`
	Notes     *string            `json:"notes"`
	Date      *string            `json:"date"`
	Exercises *[]exerciseRequest `json:"exercises"`
}

type exerciseResponse struct {
	ID         int64    `json:"id"`
	Name       string   `json:"name"`
	SetsCount  *int     `json:"sets,omitempty"`
	RepsPerSet *int     `json:"reps,omitempty"`
	Weight     *float64 `json:"weight,omitempty"`
}

type workoutResponse struct {
	ID        int64              `json:"id"`
	Title     string             `json:"title"`
	Notes     string             `json:"notes,omitempty"`
	Date      string             `json:"date"`
	Exercises []exerciseResponse `json:"exercises"`
	CreatedAt time.Time          `json:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt"`
}

func toExercises(reqs []exerciseRequest) []model.Exercise {
	exercises := make([]model.Exercise, 0, len(reqs))
	for _, r := range reqs {
		exercises = append(exercises, model.Exercise{
			Name:       r.Name,
			SetsCount:  r.SetsCount,
			RepsPerSet: r.RepsPerSet,
			Weight:     r.Weight,
		})
	}
	return exercises
}

func toWorkoutResponse(workout model.Workout) workoutResponse {
	resp := workoutResponse{
		ID:        workout.ID,
		Title:     workout.Title,
		Notes:     workout.Notes,
		Date:      workout.Date.Format(dateLayout),
		Exercises: make([]exerciseResponse, 0, len(workout.Exercises)),
		CreatedAt: workout.CreatedAt,
		UpdatedAt: workout.UpdatedAt,
	}
	for _, e := range workout.Exercises {
		resp.Exercises = append(resp.Exercises, exerciseResponse{
			ID:         e.ID,
			Name:       e.Name,
			SetsCount:  e.SetsCount,
			RepsPerSet: e.RepsPerSet,
			Weight:     e.Weight,
		})
	}
	return resp
}

// Create records a new workout for the authenticated user.
func (h *Workout) Create(c *gin.Context) {
	user, ok := currentUser(c, h.contextManager)
	if !ok {
		return
	}

	var req createWorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be formatted as YYYY-MM-DD"})
		return
	}

	workout := model.Workout{
		Title:     req.Title,
		Notes:     req.Notes,
		Date:      date,
		Exercises: toExercises(req.Exercises),
	}

	saved, err := h.service.Create(c.Request.Context(), user.ID, workout)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, toWorkoutResponse(saved))
}

// List answers with the authenticated user's workouts, newest first.
func (h *Workout) List(c *gin.Context) {
	user, ok := currentUser(c, h.contextManager)
	if !ok {
		return
	}

	workouts, err := h.service.List(c.Request.Context(), user.ID)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	resp := make([]workoutResponse, 0, len(workouts))
	for _, w := range workouts {
		resp = append(resp, toWorkoutResponse(w))
	}

	c.JSON(http.StatusOK, resp)
}

// Get answers with a single workout owned by the caller.
func (h *Workout) Get(c *gin.Context) {
	user, ok := currentUser(c, h.contextManager)
	if !ok {
		return
	}
	workoutID, ok := pathID(c, "id")
	if !ok {
		return
	}

	workout, err := h.service.Get(c.Request.Context(), user.ID, workoutID)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, toWorkoutResponse(workout))
}

// Update applies partial changes; a present exercises array replaces
// the stored set wholesale.
func (h *Workout) Update(c *gin.Context) {
	user, ok := currentUser(c, h.contextManager)
	if !ok {
		return
	}
	workoutID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req updateWorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var date *time.Time
	if req.Date != nil {
		parsed, err := time.Parse(dateLayout, *req.Date)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "date must be formatted as YYYY-MM-DD"})
			return
		}
		date = &parsed
	}

	var exercises []model.Exercise
	if req.Exercises != nil {
		exercises = toExercises(*req.Exercises)
	}

	saved, err := h.service.Update(c.Request.Context(), user.ID, workoutID, req.Title, req.Notes, date, exercises)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, toWorkoutResponse(saved))
}

// Delete removes a workout owned by the caller.
func (h *Workout) Delete(c *gin.Context) {
	user, ok := currentUser(c, h.contextManager)
	if !ok {
		return
	}
	workoutID, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), user.ID, workoutID); err != nil {
		handleError(c, h.logger, err)
		return
	}

	c.Status(http.StatusNoContent)
}
