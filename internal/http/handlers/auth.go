package handlers

import (
	"net/http"
	"strings"
	"time"

	"jobport/internal/app"
	"jobport/internal/common"
	"jobport/internal/domain/user"
	"jobport/internal/http/middleware"
	"jobport/internal/http/response"
)

type AuthHandler struct {
	auth    *app.AuthService
	limiter middleware.Limiter
}

func NewAuthHandler(auth *app.AuthService, limiter middleware.Limiter) *AuthHandler {
	return &AuthHandler{auth: auth, limiter: limiter}
}

type signupRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
	Role            string `json:"role"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type loginResponse struct {
	Token     string     `json:"token"`
	ExpiresAt string     `json:"expires_at"`
	User      *user.User `json:"user"`
}

type forgotPasswordRequest struct {
	Email string `json:"email"`
}

type resetPasswordRequest struct {
	Token           string `json:"token"`
	NewPassword     string `json:"new_password"`
	ConfirmPassword string `json:"confirm_password"`
}

func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	account, err := h.auth.Signup(r.Context(), app.SignupInput{
		Name:            req.Name,
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
		Role:            req.Role,
	})
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, account)
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	if h.limiter != nil {
		if !h.limiter.Allow(middleware.LoginIPKey(r), middleware.LoginPerIP) {
			response.Error(w, common.NewError(common.CodeRateLimited, "login rate limit exceeded", nil))
			return
		}
	}
	result, err := h.auth.Login(r.Context(), req.Email, req.Password, req.Role)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, loginResponse{
		Token:     result.Token,
		ExpiresAt: result.ExpiresAt.Format(time.RFC3339),
		User:      result.User,
	})
}

func (h *AuthHandler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req forgotPasswordRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if h.limiter != nil {
		if !h.limiter.Allow(middleware.ResetIPKey(r), middleware.ResetPerIP) {
			response.Error(w, common.NewError(common.CodeRateLimited, "reset rate limit exceeded", nil))
			return
		}
		if email != "" {
			if !h.limiter.Allow(middleware.ResetEmailKey(email), middleware.ResetPerEmail) {
				response.Error(w, common.NewError(common.CodeRateLimited, "reset rate limit exceeded", nil))
				return
			}
		}
	}
	if err := h.auth.ForgotPassword(r.Context(), email); err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, map[string]string{"status": "token_sent"})
}

func (h *AuthHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req resetPasswordRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	if err := h.auth.ResetPassword(r.Context(), req.Token, req.NewPassword, req.ConfirmPassword); err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, map[string]string{"status": "password_reset"})
}
