package handlers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/partnerlink/backend/internal/http/dto"
	"github.com/partnerlink/backend/internal/middleware"
	"github.com/partnerlink/backend/internal/tasks"
	"go.uber.org/zap"
)

type TaskHandler struct {
	aggregator *tasks.Aggregator
	log        *zap.Logger
}

func NewTaskHandler(aggregator *tasks.Aggregator, log *zap.Logger) *TaskHandler {
	return &TaskHandler{aggregator: aggregator, log: log}
}

// ListTasks returns everything the caller has in flight, sorted by due date.
func (h *TaskHandler) ListTasks(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	list, err := h.aggregator.ListTasks(c.Context(), userID)
	if err != nil {
		return h.taskError(c, err)
	}

	return c.JSON(dto.SuccessResponse{OK: true, Data: list})
}

func (h *TaskHandler) RecentTasks(c *fiber.Ctx) error {
	limit := 3
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}

	userID := middleware.GetUserID(c)
	list, err := h.aggregator.ListTasks(c.Context(), userID)
	if err != nil {
		return h.taskError(c, err)
	}

	return c.JSON(dto.SuccessResponse{OK: true, Data: tasks.RecentTasks(list, limit)})
}

// CalendarTasks groups tasks by due date, optionally filtered to one month
// (?month=YYYY-MM).
func (h *TaskHandler) CalendarTasks(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	list, err := h.aggregator.ListTasks(c.Context(), userID)
	if err != nil {
		return h.taskError(c, err)
	}

	if month := c.Query("month"); month != "" {
		list = tasks.FilterMonth(list, month)
	}

	return c.JSON(dto.SuccessResponse{OK: true, Data: tasks.GroupByDueDate(list)})
}

func (h *TaskHandler) taskError(c *fiber.Ctx, err error) error {
	if errors.Is(err, tasks.ErrNotAuthenticated) {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "not authenticated"})
	}
	h.log.Error("task aggregation failed", zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "failed to load tasks"})
}
