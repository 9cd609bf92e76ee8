package rest

import (
	"errors"
	"net/http"

	"github.com/taskhub/taskhub/internal/common"
	"github.com/taskhub/taskhub/internal/server/models"
)

// POST /auth/register
func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, msgInvalidBody)
		return
	}

	user, err := s.users.Register(r.Context(), in.Name, in.Email, in.Password)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorConflict):
			writeError(w, http.StatusConflict, msgEmailTaken)
		case errors.Is(err, common.ErrorValidation):
			writeError(w, http.StatusBadRequest, msgInvalidData)
		default:
			s.logger.Error(r.Context(), "registration failed", "error", err.Error())
			writeError(w, http.StatusInternalServerError, msgInternal)
		}
		return
	}

	s.logger.Info(r.Context(), "user registered", "id", user.ID)
	writeJSON(w, http.StatusCreated, map[string]any{
		"id":    user.ID,
		"name":  user.Name,
		"email": user.Email,
	})
}

// POST /auth/login
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, msgInvalidBody)
		return
	}

	token, user, err := s.users.Login(r.Context(), in.Email, in.Password)
	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			writeError(w, http.StatusUnauthorized, msgInvalidCredentials)
			return
		}
		s.logger.Error(r.Context(), "login failed", "error", err.Error())
		writeError(w, http.StatusInternalServerError, msgInternal)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"token": token,
		"id":    user.ID,
		"name":  user.Name,
		"email": user.Email,
	})
}

// GET /users
func (s *Server) handleListUsers(w http.ResponseWriter, r *http.Request) {
	result, err := s.users.List(r.Context())
	if err != nil {
		s.logger.Error(r.Context(), "listing users failed", "error", err.Error())
		writeError(w, http.StatusInternalServerError, msgInternal)
		return
	}
	if result == nil {
		result = []*models.User{}
	}
	writeJSON(w, http.StatusOK, result)
}

// GET /tasks
func (s *Server) handleListTasks(w http.ResponseWriter, r *http.Request) {
	result, err := s.tasks.List(r.Context())
	if err != nil {
		s.logger.Error(r.Context(), "listing tasks failed", "error", err.Error())
		writeError(w, http.StatusInternalServerError, msgInternal)
		return
	}
	if result == nil {
		result = []*models.Task{}
	}
	writeJSON(w, http.StatusOK, result)
}

// POST /tasks
func (s *Server) handleCreateTask(w http.ResponseWriter, r *http.Request) {
	var in struct {
		UserID      string `json:"userId"`
		Title       string `json:"title"`
		Description string `json:"description"`
		Done        bool   `json:"done"`
	}
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, msgInvalidBody)
		return
	}

	task := &models.Task{
		UserID:      in.UserID,
		Title:       in.Title,
		Description: in.Description,
		Done:        in.Done,
	}
	created, err := s.tasks.Create(r.Context(), task)
	if err != nil {
		if errors.Is(err, common.ErrorValidation) {
			writeError(w, http.StatusBadRequest, msgInvalidData)
			return
		}
		s.logger.Error(r.Context(), "creating task failed", "error", err.Error())
		writeError(w, http.StatusInternalServerError, msgInternal)
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

// GET /tasks/{id}
func (s *Server) handleGetTask(w http.ResponseWriter, r *http.Request) {
	task, err := s.tasks.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			writeError(w, http.StatusNotFound, msgTaskNotFound)
			return
		}
		s.logger.Error(r.Context(), "getting task failed", "error", err.Error())
		writeError(w, http.StatusInternalServerError, msgInternal)
		return
	}
	writeJSON(w, http.StatusOK, task)
}

// PUT /tasks/{id}
func (s *Server) handleUpdateTask(w http.ResponseWriter, r *http.Request) {
	var in struct {
		UserID      *string `json:"userId"`
		Title       *string `json:"title"`
		Description *string `json:"description"`
		Done        *bool   `json:"done"`
	}
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, msgInvalidBody)
		return
	}
	if in.UserID == nil && in.Title == nil && in.Description == nil && in.Done == nil {
		writeError(w, http.StatusBadRequest, msgInvalidBody)
		return
	}

	current, err := s.tasks.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			writeError(w, http.StatusNotFound, msgTaskNotFound)
			return
		}
		s.logger.Error(r.Context(), "getting task failed", "error", err.Error())
		writeError(w, http.StatusInternalServerError, msgInternal)
		return
	}

	task := *current
	if in.UserID != nil {
		task.UserID = *in.UserID
	}
	if in.Title != nil {
		task.Title = *in.Title
	}
	if in.Description != nil {
		task.Description = *in.Description
	}
	if in.Done != nil {
		task.Done = *in.Done
	}

	updated, err := s.tasks.Update(r.Context(), &task)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			writeError(w, http.StatusNotFound, msgTaskNotFound)
			return
		}
		s.logger.Error(r.Context(), "updating task failed", "error", err.Error())
		writeError(w, http.StatusInternalServerError, msgInternal)
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

// DELETE /tasks/{id}
func (s *Server) handleDeleteTask(w http.ResponseWriter, r *http.Request) {
	if err := s.tasks.Delete(r.Context(), r.PathValue("id")); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			writeError(w, http.StatusNotFound, msgTaskNotFound)
			return
		}
		s.logger.Error(r.Context(), "deleting task failed", "error", err.Error())
		writeError(w, http.StatusInternalServerError, msgInternal)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"message": msgTaskDeleted})
}
