package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fit4ever/fit4ever-server/internal/logger"
	"github.com/fit4ever/fit4ever-server/internal/model"
	"github.com/fit4ever/fit4ever-server/internal/service"
)

// GoalService covers goal CRUD and progress scoped to the calling user.
type GoalService interface {
	Create(ctx context.Context, userID int64, goal model.Goal) (model.Goal, error)
	List(ctx context.Context, userID int64) ([]model.Goal, error)
	Update(ctx context.Context, userID, goalID int64, params service.UpdateGoalParams) (model.Goal, error)
	Progress(ctx context.Context, userID, goalID int64) (service.GoalProgress, error)
}

// Goal handles the goal endpoints.
type Goal struct {
	service        GoalService
	contextManager ContextManager
	logger         *logger.Logger
}

// NewGoal creates a new Goal handler instance.
func NewGoal(service GoalService, contextManager ContextManager, logger *logger.Logger) *Goal {
	return &Goal{service: service, contextManager: contextManager, logger: logger}
}

type createGoalRequest struct {
	Type        string  `json:"type" binding:"required"`
	TargetValue float64 `json:"targetValue" binding:"required"`
	StartDate   string  `json:"startDate" binding:"required"`
	EndDate     string  `json:"endDate" binding:"required"`
}

type updateGoalRequest struct {
	Type        *string  `json:"type"`
	TargetValue *float64 `json:"targetValue"`
	StartDate   *string  `json:"startDate"`
	EndDate     *string  `json:"endDate"`
	Status      *string  `json:"status"`
}

type goalResponse struct {
	ID          int64     `json:"id"`
	Type        string    `json:"type"`
	TargetValue float64   `json:"targetValue"`
	StartDate   string    `json:"startDate"`
	EndDate     string    `json:"endDate"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type goalProgressResponse struct {
	ID          int64   `json:"id"`
	Type        string  `json:"type"`
	TargetValue float64 `json:"targetValue"`
	Progress    float64 `json:"progress"`
	Status      string  `json:"status"`
}

func toGoalResponse(goal model.Goal) goalResponse {
	return goalResponse{
		ID:          goal.ID,
		Type:        goal.Type,
		TargetValue: goal.TargetValue,
		StartDate:   goal.StartDate.Format(dateLayout),
		EndDate:     goal.EndDate.Format(dateLayout),
		Status:      goal.Status,
		CreatedAt:   goal.CreatedAt,
		UpdatedAt:   goal.UpdatedAt,
	}
}

// Create records a new goal for the authenticated user. New goals
// always start ACTIVE.
func (h *Goal) Create(c *gin.Context) {
	user, ok := currentUser(c, h.contextManager)
	if !ok {
		return
	}

	var req createGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	startDate, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "startDate must be formatted as YYYY-MM-DD"})
		return
	}
	endDate, err := time.Parse(dateLayout, req.EndDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "endDate must be formatted as YYYY-MM-DD"})
		return
	}

	goal := model.Goal{
		Type:        req.Type,
		TargetValue: req.TargetValue,
		StartDate:   startDate,
		EndDate:     endDate,
	}

	saved, err := h.service.Create(c.Request.Context(), user.ID, goal)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, toGoalResponse(saved))
}

// List answers with the authenticated user's goals.
func (h *Goal) List(c *gin.Context) {
	user, ok := currentUser(c, h.contextManager)
	if !ok {
		return
	}

	goals, err := h.service.List(c.Request.Context(), user.ID)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	resp := make([]goalResponse, 0, len(goals))
	for _, goal := range goals {
		resp = append(resp, toGoalResponse(goal))
	}

	c.JSON(http.StatusOK, resp)
}

// Update applies partial changes to a goal owned by the caller.
func (h *Goal) Update(c *gin.Context) {
	user, ok := currentUser(c, h.contextManager)
	if !ok {
		return
	}
	goalID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req updateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	params := service.UpdateGoalParams{
		Type:        req.Type,
		TargetValue: req.TargetValue,
		Status:      req.Status,
	}
	if req.StartDate != nil {
		parsed, err := time.Parse(dateLayout, *req.StartDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "startDate must be formatted as YYYY-MM-DD"})
			return
		}
		params.StartDate = &parsed
	}
	if req.EndDate != nil {
		parsed, err := time.Parse(dateLayout, *req.EndDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "endDate must be formatted as YYYY-MM-DD"})
			return
		}
		params.EndDate = &parsed
	}

	saved, err := h.service.Update(c.Request.Context(), user.ID, goalID, params)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, toGoalResponse(saved))
}

// Progress answers with the completion fraction of a goal owned by the
// caller.
func (h *Goal) Progress(c *gin.Context) {
	user, ok := currentUser(c, h.contextManager)
	if !ok {
		return
	}
	goalID, ok := pathID(c, "id")
	if !ok {
		return
	}

	progress, err := h.service.Progress(c.Request.Context(), user.ID, goalID)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, goalProgressResponse{
		ID:          progress.ID,
		Type:        progress.Type,
		TargetValue: progress.TargetValue,
		Progress:    progress.Progress,
		Status:      progress.Status,
	})
}
