package handlers

import (
	"net/http"

	"jobport/internal/app"
	"jobport/internal/http/response"
)

type CompanyHandler struct {
	companies *app.CompanyService
}

func NewCompanyHandler(companies *app.CompanyService) *CompanyHandler {
	return &CompanyHandler{companies: companies}
}

type companyInfoRequest struct {
	Name     string `json:"name"`
	Industry string `json:"industry"`
	Website  string `json:"website"`
}

type foundingInfoRequest struct {
	FounderName  string `json:"founder_name"`
	FoundedYear  int    `json:"founded_year"`
	Headquarters string `json:"headquarters"`
}

type socialLinksRequest struct {
	LinkedIn string `json:"linkedin"`
	Twitter  string `json:"twitter"`
}

type contactInfoRequest struct {
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

func (h *CompanyHandler) Create(w http.ResponseWriter, r *http.Request) {
	principal, err := principalFrom(r)
	if err != nil {
		response.Error(w, err)
		return
	}
	var req companyInfoRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	created, err := h.companies.Create(r.Context(), principal, app.CompanyInfoInput{
		Name:     req.Name,
		Industry: req.Industry,
		Website:  req.Website,
	})
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, created)
}

func (h *CompanyHandler) UpdateFoundingInfo(w http.ResponseWriter, r *http.Request) {
	principal, err := principalFrom(r)
	if err != nil {
		response.Error(w, err)
		return
	}
	id, err := idFromPath(r.URL.Path, "/companies/", "/founding-info")
	if err != nil {
		response.Error(w, err)
		return
	}
	var req foundingInfoRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	updated, err := h.companies.UpdateFoundingInfo(r.Context(), principal, id, app.FoundingInfoInput{
		FounderName:  req.FounderName,
		FoundedYear:  req.FoundedYear,
		Headquarters: req.Headquarters,
	})
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, updated)
}

func (h *CompanyHandler) UpdateSocialLinks(w http.ResponseWriter, r *http.Request) {
	principal, err := principalFrom(r)
	if err != nil {
		response.Error(w, err)
		return
	}
	id, err := idFromPath(r.URL.Path, "/companies/", "/social-links")
	if err != nil {
		response.Error(w, err)
		return
	}
	var req socialLinksRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	updated, err := h.companies.UpdateSocialLinks(r.Context(), principal, id, app.SocialLinksInput{
		LinkedIn: req.LinkedIn,
		Twitter:  req.Twitter,
	})
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, updated)
}

func (h *CompanyHandler) UpdateContactInfo(w http.ResponseWriter, r *http.Request) {
	principal, err := principalFrom(r)
	if err != nil {
		response.Error(w, err)
		return
	}
	id, err := idFromPath(r.URL.Path, "/companies/", "/contact-info")
	if err != nil {
		response.Error(w, err)
		return
	}
	var req contactInfoRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	updated, err := h.companies.UpdateContactInfo(r.Context(), principal, id, app.ContactInfoInput{
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
	})
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, updated)
}

func (h *CompanyHandler) Complete(w http.ResponseWriter, r *http.Request) {
	principal, err := principalFrom(r)
	if err != nil {
		response.Error(w, err)
		return
	}
	id, err := idFromPath(r.URL.Path, "/companies/", "/complete")
	if err != nil {
		response.Error(w, err)
		return
	}
	updated, err := h.companies.Complete(r.Context(), principal, id)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, updated)
}

func (h *CompanyHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := idFromPath(r.URL.Path, "/companies/", "")
	if err != nil {
		response.Error(w, err)
		return
	}
	profile, err := h.companies.Get(r.Context(), id)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, profile)
}
