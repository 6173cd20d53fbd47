package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/daybook/daybook-go/internal/model"
	"github.com/daybook/daybook-go/internal/service"
)

// DiaryHandler handles HTTP requests for diary operations.
type DiaryHandler struct {
	service *service.DiaryService
}

// NewDiaryHandler creates a new DiaryHandler.
func NewDiaryHandler(svc *service.DiaryService) *DiaryHandler {
	return &DiaryHandler{service: svc}
}

// HandleList handles GET /api/v1/diary requests. page and limit arrive as
// query parameters; unusable values fall back to the defaults.
func (h *DiaryHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	id, ok := accountID(w, r)
	if !ok {
		return
	}

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	resp, err := h.service.List(r.Context(), id, page, limit)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleGetByID handles GET /api/v1/diary/post/{diaryId} requests. The
// secret code, when the entry has one, travels as a query parameter.
func (h *DiaryHandler) HandleGetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := accountID(w, r)
	if !ok {
		return
	}

	diaryID := chi.URLParam(r, "diaryId")
	secretCode := r.URL.Query().Get("secret_code")

	resp, err := h.service.GetByID(r.Context(), id, diaryID, secretCode)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleCreate handles POST /api/v1/diary/post requests.
func (h *DiaryHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	id, ok := accountID(w, r)
	if !ok {
		return
	}

	var req model.CreateDiaryRequest
	if !decodeBody(w, r, &req) {
		return
	}

	resp, err := h.service.Create(r.Context(), id, req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}

// HandleUpdate handles POST /api/v1/diary/post/{diaryId} requests.
func (h *DiaryHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := accountID(w, r)
	if !ok {
		return
	}

	var req model.UpdateDiaryRequest
	if !decodeBody(w, r, &req) {
		return
	}

	resp, err := h.service.Update(r.Context(), id, chi.URLParam(r, "diaryId"), req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}

// HandleDelete handles POST /api/v1/diary/post/{diaryId}/delete requests.
// Success is 200 with an empty body.
func (h *DiaryHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := accountID(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), id, chi.URLParam(r, "diaryId")); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}
