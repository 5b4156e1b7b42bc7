package handlers

import (
	"net/http"

	"jobport/internal/app"
	"jobport/internal/common"
	"jobport/internal/domain/application"
	"jobport/internal/http/response"
)

type ApplicationHandler struct {
	applications *app.ApplicationService
}

func NewApplicationHandler(applications *app.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{applications: applications}
}

type applyRequest struct {
	JobID       string `json:"job_id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Resume      string `json:"resume"`
	CoverLetter string `json:"cover_letter"`
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

func (h *ApplicationHandler) Apply(w http.ResponseWriter, r *http.Request) {
	principal, err := principalFrom(r)
	if err != nil {
		response.Error(w, err)
		return
	}
	var req applyRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	jobID, err := common.ParseUUID(req.JobID)
	if err != nil {
		response.Error(w, common.NewValidationError("invalid request", map[string]string{"job_id": "valid job_id is required"}))
		return
	}
	created, err := h.applications.Apply(r.Context(), principal, app.ApplyInput{
		JobID:       jobID,
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Resume:      req.Resume,
		CoverLetter: req.CoverLetter,
	})
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, created)
}

func (h *ApplicationHandler) List(w http.ResponseWriter, r *http.Request) {
	principal, err := principalFrom(r)
	if err != nil {
		response.Error(w, err)
		return
	}
	items, err := h.applications.List(r.Context(), principal)
	if err != nil {
		response.Error(w, err)
		return
	}
	if items == nil {
		items = []application.Application{}
	}
	response.JSON(w, http.StatusOK, items)
}

func (h *ApplicationHandler) Get(w http.ResponseWriter, r *http.Request) {
	principal, err := principalFrom(r)
	if err != nil {
		response.Error(w, err)
		return
	}
	id, err := idFromPath(r.URL.Path, "/applications/", "")
	if err != nil {
		response.Error(w, err)
		return
	}
	item, err := h.applications.Get(r.Context(), principal, id)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, item)
}

func (h *ApplicationHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	principal, err := principalFrom(r)
	if err != nil {
		response.Error(w, err)
		return
	}
	id, err := idFromPath(r.URL.Path, "/applications/", "/status")
	if err != nil {
		response.Error(w, err)
		return
	}
	var req updateStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	updated, err := h.applications.UpdateStatus(r.Context(), principal, id, application.Status(req.Status))
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, updated)
}
