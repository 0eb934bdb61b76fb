package http

import (
	"net/http"

	"github.com/cmlabs-hris/presence-analyzer/internal/domain/presence"
	"github.com/cmlabs-hris/presence-analyzer/internal/handler/http/response"
	"github.com/cmlabs-hris/presence-analyzer/internal/pkg/validator"
	"github.com/go-chi/chi/v5"
)

type PresenceHandler interface {
	// Users listing for the dashboard dropdown
	ListUsers(w http.ResponseWriter, r *http.Request)

	// Mean presence time grouped by weekday
	MeanTimeWeekday(w http.ResponseWriter, r *http.Request)

	// Total presence time grouped by weekday
	PresenceWeekday(w http.ResponseWriter, r *http.Request)

	// Average start and end grouped by weekday
	PresenceStartEnd(w http.ResponseWriter, r *http.Request)
}

type presenceHandlerImpl struct {
	presenceService presence.PresenceService
}

func NewPresenceHandler(presenceService presence.PresenceService) PresenceHandler {
	return &presenceHandlerImpl{
		presenceService: presenceService,
	}
}

func userIDParam(r *http.Request) (int, error) {
	userID, ok := validator.ParseUserID(chi.URLParam(r, "userID"))
	if !ok {
		return 0, presence.ErrInvalidUserID
	}
	return userID, nil
}

// ListUsers handles GET /api/v1/users
func (h *presenceHandlerImpl) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.presenceService.ListUsers(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.JSON(w, users)
}

// MeanTimeWeekday handles GET /api/v1/mean_time_weekday/{userID}
func (h *presenceHandlerImpl) MeanTimeWeekday(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDParam(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.presenceService.MeanTimeByWeekday(r.Context(), userID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.JSON(w, result)
}

// PresenceWeekday handles GET /api/v1/presence_weekday/{userID}
func (h *presenceHandlerImpl) PresenceWeekday(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDParam(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.presenceService.PresenceByWeekday(r.Context(), userID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.JSON(w, result)
}

// PresenceStartEnd handles GET /api/v1/presence_start_end/{userID}
func (h *presenceHandlerImpl) PresenceStartEnd(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDParam(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.presenceService.PresenceStartEnd(r.Context(), userID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.JSON(w, result)
}
