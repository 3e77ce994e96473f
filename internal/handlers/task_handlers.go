package handlers

import (
	"dealTracker/internal/handlers/dto"
	"dealTracker/internal/logger"
	"net/http"
	"time"

	"go.uber.org/zap"
)

func (h *Handler) CreateTask(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logger.HttpRequestInfo(r, "HTTP_IN:")

	var request dto.CreateTaskRequest
	if !decodeJSON(w, r, &request) {
		return
	}
	in, err := request.ToModel()
	if !checkFields(w, r, err) {
		return
	}

	task, err := h.tasks.Create(r.Context(), in)
	if err != nil {
		serviceError(w, r, err, "create_task")
		return
	}

	logOut("task created", start, http.StatusCreated, zap.Int64("task_id", task.ID))
	responseWithJSON(w, http.StatusCreated, toPayload("task", dto.FromTask(task, h.now())))
}

func (h *Handler) ListTasks(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logger.HttpRequestInfo(r, "HTTP_IN:")

	dealID, ok := parseID(w, r)
	if !ok {
		return
	}

	tasks, err := h.tasks.ListByDeal(r.Context(), dealID)
	if err != nil {
		serviceError(w, r, err, "list_tasks")
		return
	}

	logOut("tasks listed", start, http.StatusOK, zap.Int64("deal_id", dealID), zap.Int("count", len(tasks)))
	responseWithJSON(w, http.StatusOK, toPayload("tasks", dto.FromTaskList(tasks, h.now())))
}

func (h *Handler) GetTask(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logger.HttpRequestInfo(r, "HTTP_IN:")

	id, ok := parseID(w, r)
	if !ok {
		return
	}

	task, err := h.tasks.GetByID(r.Context(), id)
	if err != nil {
		serviceError(w, r, err, "get_task")
		return
	}

	logOut("task fetched", start, http.StatusOK, zap.Int64("task_id", id), zap.Bool("found", task != nil))
	responseWithJSON(w, http.StatusOK, toPayload("task", dto.FromTask(task, h.now())))
}

func (h *Handler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logger.HttpRequestInfo(r, "HTTP_IN:")

	id, ok := parseID(w, r)
	if !ok {
		return
	}

	var request dto.UpdateTaskRequest
	if !decodeJSON(w, r, &request) {
		return
	}

	patch, err := request.ToPatch()
	if !checkFields(w, r, err) {
		return
	}

	task, err := h.tasks.Update(r.Context(), id, patch)
	if err != nil {
		serviceError(w, r, err, "update_task")
		return
	}

	logOut("task updated", start, http.StatusOK, zap.Int64("task_id", id), zap.Bool("found", task != nil))
	responseWithJSON(w, http.StatusOK, toPayload("task", dto.FromTask(task, h.now())))
}

func (h *Handler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logger.HttpRequestInfo(r, "HTTP_IN:")

	id, ok := parseID(w, r)
	if !ok {
		return
	}

	deleted, err := h.tasks.Delete(r.Context(), id)
	if err != nil {
		serviceError(w, r, err, "delete_task")
		return
	}

	logOut("task deleted", start, http.StatusOK, zap.Int64("task_id", id), zap.Bool("deleted", deleted))
	responseWithJSON(w, http.StatusOK, toPayload("deleted", deleted))
}
