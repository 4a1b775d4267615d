package handler

import (
	"log/slog"
	"net/http"

	"lapmatch/internal/delivery/http/middleware"
	"lapmatch/internal/delivery/http/response"
	"lapmatch/internal/domain/entity"
	"lapmatch/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PreferenceHandler holds dependencies for preference-profile handlers.
type PreferenceHandler struct {
	uc     usecase.PreferenceUsecase
	logger *slog.Logger
}

// NewPreferenceHandler is the constructor for PreferenceHandler, injected by Fx.
func NewPreferenceHandler(uc usecase.PreferenceUsecase, logger *slog.Logger) *PreferenceHandler {
	return &PreferenceHandler{
		uc:     uc,
		logger: logger,
	}
}

// GetPreferences handles GET /user/preferences.
func (h *PreferenceHandler) GetPreferences(c echo.Context) error {
	userID, ok := c.Get(middleware.ContextKeyUserID).(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing user identity")
	}

	profile, err := h.uc.GetPreferences(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, profile, "")
}

type updatePreferencesRequest struct {
	Budget      entity.BudgetPreference      `json:"budget"`
	Performance entity.PerformancePreference `json:"performance"`
	Portability entity.PortabilityPreference `json:"portability"`
	Display     entity.DisplayPreference     `json:"display"`
	Battery     entity.BatteryPreference     `json:"battery"`
}

// UpdatePreferences handles PUT /user/preferences.
func (h *PreferenceHandler) UpdatePreferences(c echo.Context) error {
	userID, ok := c.Get(middleware.ContextKeyUserID).(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing user identity")
	}

	var req updatePreferencesRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid preferences input")
	}

	profile, err := h.uc.UpdatePreferences(c.Request().Context(), userID, usecase.UpdatePreferencesInput{
		Budget:      req.Budget,
		Performance: req.Performance,
		Portability: req.Portability,
		Display:     req.Display,
		Battery:     req.Battery,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, profile, "Preferences updated")
}

type trackInteractionRequest struct {
	LaptopID uuid.UUID `json:"laptop_id" validate:"required"`
	Kind     string    `json:"kind" validate:"required,oneof=view save"`
	Rating   *int      `json:"rating" validate:"omitempty,min=1,max=5"`
	Note     string    `json:"note"`
}

// TrackInteraction handles POST /user/interactions.
func (h *PreferenceHandler) TrackInteraction(c echo.Context) error {
	userID, ok := c.Get(middleware.ContextKeyUserID).(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing user identity")
	}

	var req trackInteractionRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid interaction input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", err.Error())
	}

	err := h.uc.TrackInteraction(c.Request().Context(), userID, usecase.TrackInteractionInput{
		LaptopID: req.LaptopID,
		Kind:     usecase.InteractionKind(req.Kind),
		Rating:   req.Rating,
		Note:     req.Note,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, nil, "Interaction recorded")
}
