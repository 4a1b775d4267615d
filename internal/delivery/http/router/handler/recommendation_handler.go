package handler

import (
	"log/slog"
	"net/http"

	"lapmatch/internal/delivery/http/middleware"
	"lapmatch/internal/delivery/http/response"
	"lapmatch/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// RecommendationHandler holds dependencies for recommendation handlers.
type RecommendationHandler struct {
	uc     usecase.RecommendationUsecase
	logger *slog.Logger
}

// NewRecommendationHandler is the constructor for RecommendationHandler, injected by Fx.
func NewRecommendationHandler(uc usecase.RecommendationUsecase, logger *slog.Logger) *RecommendationHandler {
	return &RecommendationHandler{
		uc:     uc,
		logger: logger,
	}
}

// Personalized handles GET /recommendations/personalized.
func (h *RecommendationHandler) Personalized(c echo.Context) error {
	userID, ok := c.Get(middleware.ContextKeyUserID).(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing user identity")
	}

	output, err := h.uc.GetPersonalized(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "")
}

// Collaborative handles GET /recommendations/collaborative.
// An optional usage_type query parameter overrides the caller's stored one.
func (h *RecommendationHandler) Collaborative(c echo.Context) error {
	userID, ok := c.Get(middleware.ContextKeyUserID).(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing user identity")
	}

	output, err := h.uc.GetCollaborative(c.Request().Context(), userID, c.QueryParam("usage_type"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "")
}

// Similar handles GET /recommendations/similar/:laptopId.
func (h *RecommendationHandler) Similar(c echo.Context) error {
	laptopID, err := uuid.Parse(c.Param("laptopId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid laptop id")
	}

	output, err := h.uc.GetSimilar(c.Request().Context(), laptopID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "")
}
