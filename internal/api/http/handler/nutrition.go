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

// NutritionService covers food-log CRUD and summaries scoped to the
// calling user.
type NutritionService interface {
	CreateLog(ctx context.Context, userID int64, log model.FoodLog) (model.FoodLog, error)
	ListByDate(ctx context.Context, userID int64, date time.Time) ([]model.FoodLog, error)
	Delete(ctx context.Context, userID, logID int64) error
	Summary(ctx context.Context, userID int64, from, to time.Time) (service.NutritionSummary, error)
}

// Nutrition handles the food-log endpoints.
type Nutrition struct {
	service        NutritionService
	contextManager ContextManager
	logger         *logger.Logger
}

// NewNutrition creates a new Nutrition handler instance.
func NewNutrition(service NutritionService, contextManager ContextManager, logger *logger.Logger) *Nutrition {
	return &Nutrition{service: service, contextManager: contextManager, logger: logger}
}

type createFoodLogRequest struct {
	Date     string  `json:"date" binding:"required"`
	MealType string  `json:"mealType" binding:"required"`
	ItemName string  `json:"itemName" binding:"required"`
	Calories int     `json:"calories" binding:"min=0"`
	Protein  float64 `json:"protein" binding:"min=0"`
	Carbs    float64 `json:"carbs" binding:"min=0"`
	Fat      float64 `json:"fat" binding:"min=0"`
}

type foodLogResponse struct {
	ID       int64   `json:"id"`
	Date     string  `json:"date"`
	MealType string  `json:"mealType"`
	ItemName string  `json:"itemName"`
	Calories int     `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

type nutritionTotalsResponse struct {
	Calories int     `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

type nutritionDayResponse struct {
	Date   string                  `json:"date"`
	Totals nutritionTotalsResponse `json:"totals"`
}

type nutritionSummaryResponse struct {
	From   string                  `json:"from"`
	To     string                  `json:"to"`
	Totals nutritionTotalsResponse `json:"totals"`
	ByDay  []nutritionDayResponse  `json:"byDay"`
}

func toFoodLogResponse(log model.FoodLog) foodLogResponse {
	return foodLogResponse{
		ID:       log.ID,
		Date:     log.Date.Format(dateLayout),
		MealType: log.MealType,
		ItemName: log.ItemName,
		Calories: log.Calories,
		Protein:  log.Protein,
		Carbs:    log.Carbs,
		Fat:      log.Fat,
	}
}

func toTotalsResponse(t service.NutritionTotals) nutritionTotalsResponse {
	return nutritionTotalsResponse{
		Calories: t.Calories,
		Protein:  t.Protein,
		Carbs:    t.Carbs,
		Fat:      t.Fat,
	}
}

// CreateLog records an eaten item for the authenticated user.
func (h *Nutrition) CreateLog(c *gin.Context) {
	user, ok := currentUser(c, h.contextManager)
	if !ok {
		return
	}

	var req createFoodLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be formatted as YYYY-MM-DD"})
		return
	}

	log := model.FoodLog{
		Date:     date,
		MealType: req.MealType,
		ItemName: req.ItemName,
		Calories: req.Calories,
		Protein:  req.Protein,
		Carbs:    req.Carbs,
		Fat:      req.Fat,
	}

	saved, err := h.service.CreateLog(c.Request.Context(), user.ID, log)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, toFoodLogResponse(saved))
}

// ListByDate answers with the user's logs for one day. A missing date
// parameter defaults to today.
func (h *Nutrition) ListByDate(c *gin.Context) {
	user, ok := currentUser(c, h.contextManager)
	if !ok {
		return
	}

	date, ok := queryDate(c, "date")
	if !ok {
		return
	}
	if date.IsZero() {
		date = time.Now().UTC().Truncate(24 * time.Hour)
	}

	logs, err := h.service.ListByDate(c.Request.Context(), user.ID, date)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	resp := make([]foodLogResponse, 0, len(logs))
	for _, log := range logs {
		resp = append(resp, toFoodLogResponse(log))
	}

	c.JSON(http.StatusOK, resp)
}

// Delete removes a food log owned by the caller.
func (h *Nutrition) Delete(c *gin.Context) {
	user, ok := currentUser(c, h.contextManager)
	if !ok {
		return
	}
	logID, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), user.ID, logID); err != nil {
		handleError(c, h.logger, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Summary answers with aggregated macros over [from, to]; both bounds
// are optional and default to the trailing week.
func (h *Nutrition) Summary(c *gin.Context) {
	user, ok := currentUser(c, h.contextManager)
	if !ok {
		return
	}

	from, ok := queryDate(c, "from")
	if !ok {
		return
	}
	to, ok := queryDate(c, "to")
	if !ok {
		return
	}

	summary, err := h.service.Summary(c.Request.Context(), user.ID, from, to)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	resp := nutritionSummaryResponse{
		From:   summary.From.Format(dateLayout),
		To:     summary.To.Format(dateLayout),
		Totals: toTotalsResponse(summary.Totals),
		ByDay:  make([]nutritionDayResponse, 0, len(summary.ByDay)),
	}
	for _, day := range summary.ByDay {
		resp.ByDay = append(resp.ByDay, nutritionDayResponse{
			Date:   day.Date.Format(dateLayout),
			Totals: toTotalsResponse(day.Totals),
		})
	}

	c.JSON(http.StatusOK, resp)
}
