package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"taskhive/internal/service"
)

// TaskHandler answers task CRUD requests. The owner id is always taken from
// the request context set by the auth gate.
type TaskHandler struct {
	tasks *service.TaskService
	log   zerolog.Logger
}

func NewTaskHandler(tasks *service.TaskService, log zerolog.Logger) *TaskHandler {
	return &TaskHandler{tasks: tasks, log: log}
}

func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.tasks.List(r.Context(), UserIDFromContext(r.Context()))
	if err != nil {
		h.log.Error().Err(err).Msg("list tasks failed")
		writeErr(w, http.StatusInternalServerError, "internal server error")
		return
	}
	writeJSON(w, http.StatusOK, tasks)
}

func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Title  string `json:"title"`
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid body")
		return
	}

	task, err := h.tasks.Create(r.Context(), UserIDFromContext(r.Context()), service.CreateTaskInput{
		Title:  body.Title,
		Status: body.Status,
	})
	if err != nil {
		h.respondError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, task)
}

func (h *TaskHandler) Update(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Title  *string `json:"title"`
		Status *string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid body")
		return
	}

	task, err := h.tasks.Update(r.Context(), UserIDFromContext(r.Context()), chi.URLParam(r, "id"), service.UpdateTaskInput{
		Title:  body.Title,
		Status: body.Status,
	})
	if err != nil {
		h.respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, task)
}

func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.tasks.Delete(r.Context(), UserIDFromContext(r.Context()), chi.URLParam(r, "id")); err != nil {
		h.respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// respondError maps service errors to HTTP status. Unknown errors are logged
// and reported as a bare 500; internal detail never reaches the caller.
func (h *TaskHandler) respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrTitleRequired),
		errors.Is(err, service.ErrInvalidStatus),
		errors.Is(err, service.ErrEmptyUpdate):
		writeErr(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrTaskNotFound):
		writeErr(w, http.StatusNotFound, err.Error())
	default:
		h.log.Error().Err(err).Msg("task operation failed")
		writeErr(w, http.StatusInternalServerError, "internal server error")
	}
}
