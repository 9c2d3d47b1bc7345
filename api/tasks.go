package api

import (
	"net/http"

	"nutriplan/services"
	"nutriplan/utils"

	"github.com/gin-gonic/gin"
)

// ListTasksHandler returns the caller's tasks.
// GET /api/tasks?date=YYYY-MM-DD
func (h *APIHandler) ListTasksHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var dueDate *string
	if d, present := c.GetQuery("date"); present && d != "" {
		dueDate = &d
	}
	tasks, err := h.taskService.ListTasks(c.Request.Context(), userID, dueDate)
	if err != nil {
		sendServiceError(c, err, "Failed to fetch tasks.")
		return
	}
	utils.SendJSONSuccess(c, http.StatusOK, "Tasks retrieved successfully", tasks)
}

// CreateTaskHandler adds a task for the caller.
// POST /api/tasks
func (h *APIHandler) CreateTaskHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var in services.TaskInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.SendJSONError(c, http.StatusBadRequest, "Invalid request format.", err, err.Error())
		return
	}
	task, err := h.taskService.CreateTask(c.Request.Context(), userID, in)
	if err != nil {
		sendServiceError(c, err, "Failed to create task.")
		return
	}
	utils.SendJSONSuccess(c, http.StatusCreated, "Task created successfully", task)
}

// CompleteTaskHandler sets the completion state of a task.
// PATCH /api/tasks/:id/complete
// Request body: { "completed": bool }
func (h *APIHandler) CompleteTaskHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	taskID, ok := utils.ParseUintParam(c, "id")
	if !ok {
		utils.SendJSONError(c, http.StatusBadRequest, "Invalid task ID parameter.", nil)
		return
	}
	completed, ok := bindCompletion(c)
	if !ok {
		return
	}
	task, err := h.taskService.SetTaskCompletion(c.Request.Context(), userID, taskID, completed)
	if err != nil {
		sendServiceError(c, err, "Failed to update task.")
		return
	}
	utils.SendJSONSuccess(c, http.StatusOK, "Task updated successfully", task)
}

// DeleteTaskHandler removes one of the caller's tasks.
// DELETE /api/tasks/:id
func (h *APIHandler) DeleteTaskHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	taskID, ok := utils.ParseUintParam(c, "id")
	if !ok {
		utils.SendJSONError(c, http.StatusBadRequest, "Invalid task ID parameter.", nil)
		return
	}
	if err := h.taskService.DeleteTask(c.Request.Context(), userID, taskID); err != nil {
		sendServiceError(c, err, "Failed to delete task.")
		return
	}
	utils.SendJSONSuccess(c, http.StatusOK, "Task deleted successfully", nil)
}
