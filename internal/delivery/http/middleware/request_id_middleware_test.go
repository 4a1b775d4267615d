package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runRequestIDMiddleware(t *testing.T, headerValue string) (string, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if headerValue != "" {
		req.Header.Set(HeaderXRequestID, headerValue)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var seen string
	handler := NewRequestIDMiddleware().Process(func(c echo.Context) error {
		seen = RequestIDFromContext(c.Request().Context())

		return c.NoContent(http.StatusOK)
	})

	require.NoError(t, handler(c))

	return seen, rec
}

func TestRequestIDMiddleware_PropagatesCallerID(t *testing.T) {
	seen, rec := runRequestIDMiddleware(t, "caller-supplied-id")

	assert.Equal(t, "caller-supplied-id", seen)
	assert.Equal(t, "caller-supplied-id", rec.Header().Get(HeaderXRequestID))
}

func TestRequestIDMiddleware_MintsIDWhenAbsent(t *testing.T) {
	seen, rec := runRequestIDMiddleware(t, "")

	_, err := uuid.Parse(seen)
	require.NoError(t, err)
	assert.Equal(t, seen, rec.Header().Get(HeaderXRequestID))
}

func TestRequestIDFromContext_EmptyOutsideRequest(t *testing.T) {
	assert.Empty(t, RequestIDFromContext(context.Background()))
}
