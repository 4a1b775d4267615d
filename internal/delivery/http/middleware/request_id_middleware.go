package middleware

import (
	"context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// HeaderXRequestID is the HTTP header carrying the request id.
const HeaderXRequestID = "X-Request-Id"

type requestIDKey struct{}

// RequestIDFromContext returns the request id attached by
// RequestIDMiddleware, or an empty string outside a request.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)

	return id
}

// RequestIDMiddleware propagates the caller's request id, minting one when
// the header is absent, so responses and error logs can be correlated.
type RequestIDMiddleware struct{}

// NewRequestIDMiddleware creates a new request id middleware.
func NewRequestIDMiddleware() *RequestIDMiddleware {
	return &RequestIDMiddleware{}
}

// Process echoes the request id back to the client and stores it in the
// request context for downstream use.
func (m *RequestIDMiddleware) Process(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := c.Request().Header.Get(HeaderXRequestID)
		if requestID == "" {
			requestID = uuid.New().String()
		}

		c.Response().Header().Set(HeaderXRequestID, requestID)

		ctx := context.WithValue(c.Request().Context(), requestIDKey{}, requestID)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}
