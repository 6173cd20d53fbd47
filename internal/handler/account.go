package handler

import (
	"net/http"

	"github.com/daybook/daybook-go/internal/model"
	"github.com/daybook/daybook-go/internal/service"
)

// AccountHandler handles HTTP requests for account operations.
type AccountHandler struct {
	service *service.AccountService
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(svc *service.AccountService) *AccountHandler {
	return &AccountHandler{service: svc}
}

// HandleRegister handles POST /api/v1/accounts/register requests.
func (h *AccountHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req model.RegisterRequest
	if !decodeBody(w, r, &req) {
		return
	}

	resp, err := h.service.Register(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}

// HandleLogin handles POST /api/v1/accounts/login requests.
func (h *AccountHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req model.LoginRequest
	if !decodeBody(w, r, &req) {
		return
	}

	resp, err := h.service.Login(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleGetInfo handles GET /api/v1/accounts/info requests.
func (h *AccountHandler) HandleGetInfo(w http.ResponseWriter, r *http.Request) {
	id, ok := accountID(w, r)
	if !ok {
		return
	}

	resp, err := h.service.GetProfile(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleChangeInfo handles POST /api/v1/accounts/info requests.
func (h *AccountHandler) HandleChangeInfo(w http.ResponseWriter, r *http.Request) {
	id, ok := accountID(w, r)
	if !ok {
		return
	}

	var req model.ChangeProfileRequest
	if !decodeBody(w, r, &req) {
		return
	}

	resp, err := h.service.ChangeProfile(r.Context(), id, req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}

// HandleChangeEmail handles POST /api/v1/accounts/email requests.
func (h *AccountHandler) HandleChangeEmail(w http.ResponseWriter, r *http.Request) {
	id, ok := accountID(w, r)
	if !ok {
		return
	}

	var req model.ChangeEmailRequest
	if !decodeBody(w, r, &req) {
		return
	}

	resp, err := h.service.ChangeEmail(r.Context(), id, req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}

// HandleChangePassword handles POST /api/v1/accounts/password requests.
// Success is 201 with an empty body.
func (h *AccountHandler) HandleChangePassword(w http.ResponseWriter, r *http.Request) {
	id, ok := accountID(w, r)
	if !ok {
		return
	}

	var req model.ChangePasswordRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if err := h.service.ChangePassword(r.Context(), id, req); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
}

// HandleGetSetting handles GET /api/v1/accounts/setting requests.
func (h *AccountHandler) HandleGetSetting(w http.ResponseWriter, r *http.Request) {
	id, ok := accountID(w, r)
	if !ok {
		return
	}

	resp, err := h.service.GetSettings(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleChangeSetting handles POST /api/v1/accounts/setting requests.
func (h *AccountHandler) HandleChangeSetting(w http.ResponseWriter, r *http.Request) {
	id, ok := accountID(w, r)
	if !ok {
		return
	}

	var req model.AppSetting
	if !decodeBody(w, r, &req) {
		return
	}

	resp, err := h.service.ChangeSettings(r.Context(), id, req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}
