package handlers

import (
	"net/http"

	"jobport/internal/app"
	"jobport/internal/domain/application"
	"jobport/internal/http/response"
)

type StatsHandler struct {
	stats *app.StatsService
}

func NewStatsHandler(stats *app.StatsService) *StatsHandler {
	return &StatsHandler{stats: stats}
}

func (h *StatsHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	principal, err := principalFrom(r)
	if err != nil {
		response.Error(w, err)
		return
	}
	cards, err := h.stats.Dashboard(r.Context(), principal)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, map[string]any{"cards": cards})
}

func (h *StatsHandler) RecentApplications(w http.ResponseWriter, r *http.Request) {
	principal, err := principalFrom(r)
	if err != nil {
		response.Error(w, err)
		return
	}
	items, err := h.stats.RecentApplications(r.Context(), principal)
	if err != nil {
		response.Error(w, err)
		return
	}
	if items == nil {
		items = []application.Application{}
	}
	response.JSON(w, http.StatusOK, items)
}

func (h *StatsHandler) ProfileCompletion(w http.ResponseWriter, r *http.Request) {
	principal, err := principalFrom(r)
	if err != nil {
		response.Error(w, err)
		return
	}
	completion, err := h.stats.ProfileCompletion(r.Context(), principal)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, completion)
}
