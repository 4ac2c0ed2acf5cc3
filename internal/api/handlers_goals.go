package api

import (
	"github.com/flowsync/flowsync/internal/models"
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) GetGoals(c *fiber.Ctx) error {
	goals, err := handler.repositories.Goals.ListAll()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch goals")
	}
	return c.JSON(goals)
}

func (handler *Handler) GetGoal(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid goal id")
	}

	goal, found, err := handler.repositories.Goals.FindByID(id)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch goal")
	}
	if !found {
		return apiError(c, fiber.StatusNotFound, "goal not found")
	}
	return c.JSON(goal)
}

func (handler *Handler) CreateGoal(c *fiber.Ctx) error {
	payload, targetDate, err := handler.parseGoalPayload(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	goal := models.Goal{
		Title:      payload.Title,
		Category:   payload.Category,
		TargetDate: targetDate,
		Tasks:      buildTasks(payload.Tasks),
	}
	goal.RecalculateProgress()

	if err := handler.repositories.Goals.Create(&goal); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to save goal")
	}
	return c.Status(fiber.StatusCreated).JSON(goal)
}

func (handler *Handler) UpdateGoal(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid goal id")
	}
	goal, found, err := handler.repositories.Goals.FindByID(id)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch goal")
	}
	if !found {
		return apiError(c, fiber.StatusNotFound, "goal not found")
	}

	payload, targetDate, err := handler.parseGoalPayload(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	goal.Title = payload.Title
	goal.Category = payload.Category
	goal.TargetDate = targetDate

	if payload.Tasks != nil {
		if err := handler.repositories.Goals.ReplaceTasks(&goal, buildTasks(payload.Tasks)); err != nil {
			return apiError(c, fiber.StatusInternalServerError, "failed to save goal")
		}
	}
	goal.RecalculateProgress()

	if err := handler.repositories.Goals.Save(&goal); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to save goal")
	}
	return c.JSON(goal)
}

func (handler *Handler) DeleteGoal(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid goal id")
	}
	_, found, err := handler.repositories.Goals.FindByID(id)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch goal")
	}
	if !found {
		return apiError(c, fiber.StatusNotFound, "goal not found")
	}

	if err := handler.repositories.Goals.DeleteByID(id); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to delete goal")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ToggleGoalTask flips one task and recomputes the goal's progress in the
// same request, so stored progress never drifts from task state.
func (handler *Handler) ToggleGoalTask(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid goal id")
	}
	taskID, err := parseIDParam(c, "taskId")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid task id")
	}

	goal, found, err := handler.repositories.Goals.FindByID(id)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch goal")
	}
	if !found {
		return apiError(c, fiber.StatusNotFound, "goal not found")
	}

	taskIndex := -1
	for index, task := range goal.Tasks {
		if task.ID == taskID {
			taskIndex = index
			break
		}
	}
	if taskIndex < 0 {
		return apiError(c, fiber.StatusNotFound, "task not found")
	}

	goal.Tasks[taskIndex].Completed = !goal.Tasks[taskIndex].Completed
	if err := handler.repositories.Goals.SaveTask(&goal.Tasks[taskIndex]); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to save task")
	}

	goal.RecalculateProgress()
	if err := handler.repositories.Goals.UpdateProgress(&goal); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to save goal")
	}
	return c.JSON(goal)
}

func (handler *Handler) GetGoalAdjustments(c *fiber.Ctx) error {
	plan, err := handler.insightService.BuildGoalAdjustmentPlan()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to compute goal adjustments")
	}
	return c.JSON(plan)
}

func buildTasks(payloads []taskPayload) []models.Task {
	tasks := make([]models.Task, 0, len(payloads))
	for _, payload := range payloads {
		tasks = append(tasks, models.Task{
			Title:     payload.Title,
			Completed: payload.Completed,
		})
	}
	return tasks
}
