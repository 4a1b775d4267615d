package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"lapmatch/internal/delivery/http/middleware"
	"lapmatch/internal/delivery/http/validator"
	"lapmatch/internal/domain/entity"
	domainerrors "lapmatch/internal/domain/errors"
	"lapmatch/internal/usecase"

	mockUC "lapmatch/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validator.New()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func newTestUserHandler(t *testing.T) (*UserHandler, *mockUC.MockUserUsecase) {
	uc := mockUC.NewMockUserUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewUserHandler(uc, logger), uc
}

func TestUserHandler_Register_Success(t *testing.T) {
	h, uc := newTestUserHandler(t)

	uc.EXPECT().Register(mock.Anything, usecase.RegisterInput{
		Name:      "Alex",
		Email:     "alex@example.com",
		Password:  "superSecret1",
		UsageType: "coding",
	}).Return(&entity.User{ID: uuid.New(), Email: "alex@example.com", Name: "Alex"}, nil)

	c, rec := newTestContext(http.MethodPost, "/auth/register",
		`{"name":"Alex","email":"alex@example.com","password":"superSecret1","usage_type":"coding"}`)

	err := h.Register(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":true`)
	assert.Contains(t, rec.Body.String(), "alex@example.com")
}

func TestUserHandler_Register_ShortPasswordRejected(t *testing.T) {
	h, _ := newTestUserHandler(t)

	c, rec := newTestContext(http.MethodPost, "/auth/register",
		`{"name":"Alex","email":"alex@example.com","password":"short"}`)

	err := h.Register(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_INPUT")
}

func TestUserHandler_Register_UsecaseErrorPropagates(t *testing.T) {
	h, uc := newTestUserHandler(t)

	uc.EXPECT().Register(mock.Anything, mock.AnythingOfType("usecase.RegisterInput")).
		Return(nil, domainerrors.ErrUserAlreadyExists)

	c, _ := newTestContext(http.MethodPost, "/auth/register",
		`{"name":"Alex","email":"alex@example.com","password":"superSecret1"}`)

	err := h.Register(c)

	// The error middleware maps the domain error; the handler just forwards it.
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestUserHandler_Login_Success(t *testing.T) {
	h, uc := newTestUserHandler(t)

	uc.EXPECT().Login(mock.Anything, usecase.LoginInput{
		Email:    "alex@example.com",
		Password: "superSecret1",
	}).Return(&usecase.LoginOutput{AccessToken: "access", RefreshToken: "refresh"}, nil)

	c, rec := newTestContext(http.MethodPost, "/auth/login",
		`{"email":"alex@example.com","password":"superSecret1"}`)

	err := h.Login(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"access_token":"access"`)
}

func TestUserHandler_Login_MissingEmailRejected(t *testing.T) {
	h, _ := newTestUserHandler(t)

	c, rec := newTestContext(http.MethodPost, "/auth/login", `{"password":"superSecret1"}`)

	err := h.Login(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUserHandler_GetDashboard_MissingIdentity(t *testing.T) {
	h, _ := newTestUserHandler(t)

	c, rec := newTestContext(http.MethodGet, "/user/dashboard", "")

	err := h.GetDashboard(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestUserHandler_GetActivity_ParsesPagination(t *testing.T) {
	h, uc := newTestUserHandler(t)
	userID := uuid.New()

	uc.EXPECT().GetActivity(mock.Anything, userID, usecase.ActivityInput{Page: 2, Limit: 5}).
		Return(&usecase.ActivityOutput{Page: 2, Pages: 3}, nil)

	c, rec := newTestContext(http.MethodGet, "/user/activity?page=2&limit=5", "")
	c.Set(middleware.ContextKeyUserID, userID)

	err := h.GetActivity(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":true`)
}

func TestUserHandler_GetActivity_MissingIdentity(t *testing.T) {
	h, _ := newTestUserHandler(t)

	c, rec := newTestContext(http.MethodGet, "/user/activity", "")

	err := h.GetActivity(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestUserHandler_ExportData_ServesAttachment(t *testing.T) {
	h, uc := newTestUserHandler(t)
	userID := uuid.New()

	exportedAt := time.Date(2026, 8, 15, 9, 0, 0, 0, time.UTC)
	uc.EXPECT().ExportData(mock.Anything, userID).Return(&usecase.ExportOutput{
		User:       &entity.User{ID: userID, Email: "alex@example.com"},
		ExportedAt: exportedAt,
	}, nil)

	c, rec := newTestContext(http.MethodGet, "/user/export", "")
	c.Set(middleware.ContextKeyUserID, userID)

	err := h.ExportData(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	disposition := rec.Header().Get(echo.HeaderContentDisposition)
	assert.Contains(t, disposition, "attachment; filename=")
	assert.Contains(t, disposition, userID.String())

	// The takeout is the raw document, not the API envelope.
	assert.Contains(t, rec.Body.String(), `"user_info"`)
	assert.NotContains(t, rec.Body.String(), `"success"`)
}

func TestUserHandler_DeleteAccount_UsesContextIdentity(t *testing.T) {
	h, uc := newTestUserHandler(t)
	userID := uuid.New()

	uc.EXPECT().DeleteAccount(mock.Anything, userID).Return(nil)

	c, rec := newTestContext(http.MethodDelete, "/user/account", "")
	c.Set(middleware.ContextKeyUserID, userID)

	err := h.DeleteAccount(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Account deleted")
}
