package handlers

import (
	"net/http"
	"strconv"

	"jobport/internal/app"
	"jobport/internal/domain/job"
	"jobport/internal/http/response"
)

type JobHandler struct {
	jobs *app.JobService
}

func NewJobHandler(jobs *app.JobService) *JobHandler {
	return &JobHandler{jobs: jobs}
}

func (h *JobHandler) Create(w http.ResponseWriter, r *http.Request) {
	principal, err := principalFrom(r)
	if err != nil {
		response.Error(w, err)
		return
	}
	var posting job.Job
	if err := decodeJSON(r, &posting); err != nil {
		response.Error(w, err)
		return
	}
	created, err := h.jobs.Create(r.Context(), principal, posting)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, created)
}

func (h *JobHandler) Update(w http.ResponseWriter, r *http.Request) {
	principal, err := principalFrom(r)
	if err != nil {
		response.Error(w, err)
		return
	}
	id, err := idFromPath(r.URL.Path, "/jobs/", "")
	if err != nil {
		response.Error(w, err)
		return
	}
	var posting job.Job
	if err := decodeJSON(r, &posting); err != nil {
		response.Error(w, err)
		return
	}
	posting.ID = id
	updated, err := h.jobs.Update(r.Context(), principal, posting)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, updated)
}

func (h *JobHandler) Delete(w http.ResponseWriter, r *http.Request) {
	principal, err := principalFrom(r)
	if err != nil {
		response.Error(w, err)
		return
	}
	id, err := idFromPath(r.URL.Path, "/jobs/", "")
	if err != nil {
		response.Error(w, err)
		return
	}
	if err := h.jobs.Delete(r.Context(), principal, id); err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (h *JobHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := idFromPath(r.URL.Path, "/jobs/", "")
	if err != nil {
		response.Error(w, err)
		return
	}
	posting, err := h.jobs.Get(r.Context(), id)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, posting)
}

func (h *JobHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
	postings, err := h.jobs.List(r.Context(), limit, offset)
	if err != nil {
		response.Error(w, err)
		return
	}
	if postings == nil {
		postings = []job.Job{}
	}
	response.JSON(w, http.StatusOK, postings)
}

func (h *JobHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	principal, err := principalFrom(r)
	if err != nil {
		response.Error(w, err)
		return
	}
	postings, err := h.jobs.ListByRecruiter(r.Context(), principal)
	if err != nil {
		response.Error(w, err)
		return
	}
	if postings == nil {
		postings = []job.Job{}
	}
	response.JSON(w, http.StatusOK, postings)
}
